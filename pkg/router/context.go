// Package router implements the search engine (A*/Lee–Moore) and the
// driver that orchestrates a full netlist pass.
package router

import (
	"math/rand"

	"github.com/eng618/maze-router/pkg/grid"
	"github.com/eng618/maze-router/pkg/netlist"
)

// Context bundles everything one routing session needs: the grid, the
// netlist, a seeded random generator, and the observer sink. Passing
// this explicitly keeps routing state out of package-level globals, so
// multiple sessions can run independently and concurrently.
type Context struct {
	Grid    *grid.Layout
	Netlist *netlist.Netlist
	Rng     *rand.Rand

	// AStarWeight multiplies A*'s heuristic term. 1 preserves
	// admissibility; values above 1 trade optimality for a faster,
	// greedier search.
	AStarWeight int
}

// NewContext builds a Context seeded with seed. AStarWeight defaults to
// 1 when zero.
func NewContext(l *grid.Layout, nl *netlist.Netlist, seed int64, aStarWeight int) *Context {
	if aStarWeight == 0 {
		aStarWeight = 1
	}
	return &Context{
		Grid:        l,
		Netlist:     nl,
		Rng:         rand.New(rand.NewSource(seed)),
		AStarWeight: aStarWeight,
	}
}
