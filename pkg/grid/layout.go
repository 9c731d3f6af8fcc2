package grid

import "fmt"

// Observer is the capability set the core notifies at well-defined
// points. A presentation layer subscribes to it; the core never calls a
// GUI directly. NoopObserver is safe for headless runs.
type Observer interface {
	OnLabelChanged(x, y, label int)
	OnContentChanged(x, y int, content Content, netNum int)
	OnGridReset()
	OnRoutingFinished(routed, total int)
}

// NoopObserver implements Observer with no side effects. A headless
// router embeds this for tests and batch runs with no presentation
// layer attached.
type NoopObserver struct{}

func (NoopObserver) OnLabelChanged(x, y, label int)                    {}
func (NoopObserver) OnContentChanged(x, y int, content Content, n int) {}
func (NoopObserver) OnGridReset()                                      {}
func (NoopObserver) OnRoutingFinished(routed, total int)               {}

// Layout is the grid: a dense xsize*ysize arena of cells, indexed
// grid[y][x], plus the observer it notifies on mutation.
type Layout struct {
	XSize, YSize int
	cells        []Cell // flat arena, index = y*XSize + x
	Observer     Observer
}

// NewLayout allocates a w*h grid of empty cells.
func NewLayout(w, h int) *Layout {
	l := &Layout{XSize: w, YSize: h, Observer: NoopObserver{}}
	l.cells = make([]Cell, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			l.cells[y*w+x] = newCell(x, y)
		}
	}
	return l
}

// ref returns the arena index for (x, y), erroring on out-of-range access.
func (l *Layout) ref(x, y int) (Ref, error) {
	if x < 0 || x >= l.XSize || y < 0 || y >= l.YSize {
		return None, fmt.Errorf("grid: coordinate (%d,%d) out of range for %dx%d layout", x, y, l.XSize, l.YSize)
	}
	return Ref(y*l.XSize + x), nil
}

// At returns the cell at (x, y). Panics on out-of-range access; callers
// that accept untrusted coordinates must use CellAt instead.
func (l *Layout) At(x, y int) *Cell {
	r, err := l.ref(x, y)
	if err != nil {
		panic(err)
	}
	return &l.cells[r]
}

// CellAt returns the cell at (x, y), or an error if out of range.
func (l *Layout) CellAt(x, y int) (*Cell, error) {
	r, err := l.ref(x, y)
	if err != nil {
		return nil, err
	}
	return &l.cells[r], nil
}

// Cell dereferences a Ref obtained from Prev or from neighbour
// enumeration. Callers must not hold a Ref across a ResetGrid that
// reallocates the arena (ResetGrid never does; the arena is allocated
// once by NewLayout and mutated in place for the layout's lifetime).
func (l *Layout) Cell(r Ref) *Cell {
	return &l.cells[r]
}

// RefOf returns the Ref for a cell owned by this layout.
func (l *Layout) RefOf(c *Cell) Ref {
	return Ref(c.Y*l.XSize + c.X)
}

// SetLabel sets a cell's label and notifies the observer.
func (l *Layout) SetLabel(r Ref, label int) {
	c := &l.cells[r]
	c.Label = label
	l.Observer.OnLabelChanged(c.X, c.Y, label)
}

// ClearLabel resets a cell's label to zero (the "unlabelled" sentinel).
func (l *Layout) ClearLabel(r Ref) {
	l.SetLabel(r, 0)
}

// ClaimForNet marks a cell as belonging to a net's realized route.
// Source and sink cells keep their fixed Content; only Empty cells
// transition to Net.
func (l *Layout) ClaimForNet(r Ref, netNum int) {
	c := &l.cells[r]
	c.Connected = true
	if !c.IsSource() && !c.IsSink() {
		c.Content = Net
		c.NetNum = netNum
		l.Observer.OnContentChanged(c.X, c.Y, Net, netNum)
	}
}

// ResetGrid clears transient search state (label, dist, prev) on every
// cell and notifies the observer. Connected and Content are left
// untouched: a failed segment must not undo an earlier success.
func (l *Layout) ResetGrid() {
	for i := range l.cells {
		c := &l.cells[i]
		c.Label = 0
		c.DistFromSrc = 0
		c.Prev = None
	}
	l.Observer.OnGridReset()
}
