package router_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/eng618/maze-router/pkg/grid"
	"github.com/eng618/maze-router/pkg/netlist"
	"github.com/eng618/maze-router/pkg/router"
)

// Property 1 — obstacle cells are never claimed for a net, regardless of
// how many seeds or how contested the grid is.
func TestProperty_ObstaclesNeverClaimed(t *testing.T) {
	text := "6 6\n4\n2 2 3 2 2 3 3 3\n3\n" +
		"2 0 0 5 5\n2 5 0 0 5\n2 1 5 4 0\n"

	for seed := int64(0); seed < 5; seed++ {
		l, nl, err := netlist.Parse(strings.NewReader(text))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		var obstacles []*grid.Cell
		for y := 0; y < l.YSize; y++ {
			for x := 0; x < l.XSize; x++ {
				if c := l.At(x, y); c.IsObstacle() {
					obstacles = append(obstacles, c)
				}
			}
		}

		ctx := router.NewContext(l, nl, seed, 1)
		router.Route(ctx)

		for _, c := range obstacles {
			if c.Content != grid.Obstacle || c.NetNum != 0 || c.IsConnected() {
				t.Fatalf("seed %d: obstacle at (%d,%d) was claimed: content=%s net=%d", seed, c.X, c.Y, c.Content, c.NetNum)
			}
		}
	}
}

// Property 2 — no two distinct nets ever claim the same cell.
func TestProperty_NetsAreExclusive(t *testing.T) {
	text := "8 8\n0\n3\n" +
		"2 0 0 7 7\n2 7 0 0 7\n2 3 0 4 7\n"

	for seed := int64(0); seed < 8; seed++ {
		l, nl, err := netlist.Parse(strings.NewReader(text))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		ctx := router.NewContext(l, nl, seed, 1)
		router.Route(ctx)

		for y := 0; y < l.YSize; y++ {
			for x := 0; x < l.XSize; x++ {
				c := l.At(x, y)
				if !c.IsConnected() || c.Content != grid.Net {
					continue
				}
				if c.NetNum < 1 || c.NetNum > len(nl.Nets) {
					t.Fatalf("seed %d: claimed cell (%d,%d) has net num %d, not one of the %d nets", seed, x, y, c.NetNum, len(nl.Nets))
				}
			}
		}
	}
}

// Property 3 — source and sink cells keep their declared content tag and
// net number through a full routing pass, win or lose.
func TestProperty_SourceSinkPreserved(t *testing.T) {
	l, nl, err := netlist.Parse(strings.NewReader("4 1\n1\n2 0\n1\n2 0 0 3 0\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	srcRef := nl.Nets[0].Source
	sinkRef := nl.Nets[0].Sinks[0]
	srcCell := l.Cell(srcRef)
	sinkCell := l.Cell(sinkRef)
	if !srcCell.IsSource() || !sinkCell.IsSink() {
		t.Fatalf("precondition failed: expected source/sink content tags before routing")
	}

	ctx := router.NewContext(l, nl, 0, 1)
	summary := router.Route(ctx)
	if summary.Routed != 0 {
		t.Fatalf("expected this net to fail (obstacle blocks the only row), got routed=%d", summary.Routed)
	}

	if !srcCell.IsSource() || srcCell.NetNum != 1 {
		t.Fatalf("source cell content/net num changed after a failed pass: %+v", srcCell)
	}
	if !sinkCell.IsSink() || sinkCell.NetNum != 1 {
		t.Fatalf("sink cell content/net num changed after a failed pass: %+v", sinkCell)
	}
}

// Property 5 — the Manhattan heuristic never overestimates the true
// shortest remaining 4-connected distance on an obstacle-free grid, so
// A* on an empty grid always finds a path whose length equals the
// straight-line Manhattan distance plus one (endpoints inclusive).
func TestProperty_HeuristicAdmissibleOnEmptyGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		w, h := 3+rng.Intn(8), 3+rng.Intn(8)
		sx, sy := rng.Intn(w), rng.Intn(h)
		tx, ty := rng.Intn(w), rng.Intn(h)
		if sx == tx && sy == ty {
			continue
		}

		l := grid.NewLayout(w, h)
		src := l.At(sx, sy)
		sink := l.At(tx, ty)
		src.Content = grid.Source
		src.NetNum = 1
		src.Connected = true
		sink.Content = grid.Sink
		sink.NetNum = 1
		sink.EstDistToSrc = sink.EstimateDist(src)

		ctx := &router.Context{Grid: l, Rng: rng, AStarWeight: 1}
		target := l.RefOf(sink)
		ok, length := router.RouteSegment(ctx, l.RefOf(src), &target)
		if !ok {
			t.Fatalf("expected A* to find a path on an empty %dx%d grid from (%d,%d) to (%d,%d)", w, h, sx, sy, tx, ty)
		}

		want := sink.EstimateDist(src) + 1
		if length != want {
			t.Fatalf("expected shortest path length %d (Manhattan+1), got %d", want, length)
		}
	}
}
