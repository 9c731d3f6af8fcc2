// Package queue provides the stable minimum-priority container the
// search engine drives its expansion front with. Ties on priority are
// broken by strict insertion order, a counter-backed sequence rather
// than relying on heap iteration order.
package queue

import (
	"container/heap"
	"errors"
)

// ErrEmpty is returned by ExtractMin on an empty queue.
var ErrEmpty = errors.New("queue: extract_min on empty priority queue")

// entry is one (priority, sequence, item) triple, ordered lexicographically.
type entry[T any] struct {
	priority int
	sequence uint64
	item     T
	index    int // heap.Interface bookkeeping
}

type heapSlice[T any] []*entry[T]

func (h heapSlice[T]) Len() int { return len(h) }

func (h heapSlice[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].sequence < h[j].sequence
}

func (h heapSlice[T]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *heapSlice[T]) Push(x any) {
	e := x.(*entry[T])
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *heapSlice[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// Queue is a min-heap over (priority, sequence, item), where sequence is
// a per-queue strictly increasing counter. Multiple entries for the same
// item are permitted: the contract never deletes stale entries, so
// callers that push duplicates must filter them at extraction time.
// The search engine in pkg/router never pushes duplicates: it only adds
// a cell whose label is still 0, and labels it as it adds it.
type Queue[T any] struct {
	h    heapSlice[T]
	next uint64
}

// New returns an empty queue ready for use.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Add inserts item with the given priority. The sequence counter starts
// at 0 and increases strictly with every call.
func (q *Queue[T]) Add(item T, priority int) {
	e := &entry[T]{priority: priority, sequence: q.next, item: item}
	q.next++
	heap.Push(&q.h, e)
}

// ExtractMin removes and returns the item with the smallest
// (priority, sequence). Returns ErrEmpty when the queue holds nothing.
func (q *Queue[T]) ExtractMin() (T, error) {
	var zero T
	if q.IsEmpty() {
		return zero, ErrEmpty
	}
	e := heap.Pop(&q.h).(*entry[T])
	return e.item, nil
}

// IsEmpty reports whether the queue holds no entries.
func (q *Queue[T]) IsEmpty() bool {
	return q.h.Len() == 0
}
