package router

import (
	"github.com/eng618/maze-router/pkg/grid"
	"github.com/eng618/maze-router/pkg/queue"
)

// mode is a small tagged value: the shared expansion loop branches only
// at the three places A* and Lee–Moore differ — initial label,
// termination test, and label formula.
type mode int

const (
	astarMode mode = iota
	leeMooreMode
)

// RouteSegment runs one segment search from start. If target is
// non-nil, it runs in A* mode, searching for that exact cell. If target
// is nil, it runs in Lee–Moore mode, searching for any cell already
// connected to start's net.
//
// On success it performs the traceback (claiming unclaimed cells for
// the net, marking the whole path connected) and returns the number of
// cells on the realized path including both endpoints. On failure it
// resets the grid and returns (false, 0). Either way the grid's
// transient search state (label, dist, prev) is clean on return.
func RouteSegment(ctx *Context, start grid.Ref, target *grid.Ref) (bool, int) {
	m := astarMode
	if target == nil {
		m = leeMooreMode
	}

	g := ctx.Grid
	startCell := g.Cell(start)
	netNum := startCell.NetNum

	var initialLabel int
	if m == astarMode {
		initialLabel = startCell.EstimateDist(g.Cell(*target)) * ctx.AStarWeight
	} else {
		initialLabel = 1
	}
	g.SetLabel(start, initialLabel)

	q := queue.New[grid.Ref]()
	q.Add(start, initialLabel)

	var found grid.Ref
	success := false

	for !q.IsEmpty() {
		cur, err := q.ExtractMin()
		if err != nil {
			break // unreachable: IsEmpty was just checked
		}
		curCell := g.Cell(cur)

		if segmentSucceeds(m, g, cur, start, target, netNum) {
			found = cur
			success = true
			break
		}

		for _, n := range g.Neighbours(cur, netNum, ctx.Rng) {
			nCell := g.Cell(n)
			if nCell.Label != 0 {
				continue
			}
			nCell.DistFromSrc = curCell.DistFromSrc + 1

			var label int
			if m == astarMode {
				label = nCell.DistFromSrc + nCell.EstimateDist(g.Cell(*target))*ctx.AStarWeight
			} else {
				label = nCell.DistFromSrc
			}
			g.SetLabel(n, label)
			nCell.Prev = cur
			q.Add(n, label)
		}
	}

	if !success {
		g.ResetGrid()
		return false, 0
	}

	length := traceback(g, found, start, netNum)
	g.ResetGrid()
	return true, length
}

// segmentSucceeds is the mode-specific termination test.
func segmentSucceeds(m mode, g *grid.Layout, cur, start grid.Ref, target *grid.Ref, netNum int) bool {
	if m == astarMode {
		return cur == *target
	}
	c := g.Cell(cur)
	return c.IsConnected() && c.NetNum == netNum && cur != start
}

// traceback walks from found back through Prev to start, claiming every
// cell on the path for netNum. Returns the number of cells on the path
// including both endpoints.
func traceback(g *grid.Layout, found, start grid.Ref, netNum int) int {
	count := 0
	cur := found
	for {
		g.ClaimForNet(cur, netNum)
		count++
		if cur == start {
			break
		}
		cur = g.Cell(cur).Prev
	}
	return count
}
