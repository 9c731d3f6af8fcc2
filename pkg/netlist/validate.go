package netlist

import (
	"fmt"
	"io"

	"github.com/eng618/maze-router/pkg/grid"
)

// Issue is one structural problem found by ParseLenient/StructuralReport.
type Issue struct {
	NetNum  int // 0 for grid/obstacle-level issues
	Message string
}

// ParseLenient reads the textual netlist format like Parse, but treats
// coordinate collisions, out-of-range coordinates, and declared/actual
// pin-count mismatches as recoverable: each is recorded as an Issue and
// parsing continues, instead of aborting with ErrMalformedInput. A
// missing or non-numeric field of any kind, non-positive grid
// dimensions, a negative obstacle or net count, and a pin count below 1
// remain fatal, since there is no well-formed document left to report
// on past that point.
//
// A pin whose coordinate is out of range is dropped from its net's sink
// list (there is no cell to reference), which is what surfaces a
// pin-count mismatch in the returned issues. A pin that collides with
// an already-claimed cell keeps that cell's ref instead of overwriting
// its content, which is what surfaces a "does not have Source content"
// or duplicate-pin issue.
func ParseLenient(r io.Reader) (*grid.Layout, *Netlist, []Issue, error) {
	ts := newTokenScanner(r)
	var issues []Issue

	xsize, err := ts.nextInt("header xsize")
	if err != nil {
		return nil, nil, nil, err
	}
	ysize, err := ts.nextInt("header ysize")
	if err != nil {
		return nil, nil, nil, err
	}
	if xsize <= 0 || ysize <= 0 {
		return nil, nil, nil, malformed("header: grid dimensions must be positive, got %dx%d", xsize, ysize)
	}

	layout := grid.NewLayout(xsize, ysize)

	numObstacles, err := ts.nextInt("obstacle count")
	if err != nil {
		return nil, nil, nil, err
	}
	if numObstacles < 0 {
		return nil, nil, nil, malformed("obstacle count must be non-negative, got %d", numObstacles)
	}

	for i := 0; i < numObstacles; i++ {
		ox, err := ts.nextInt(fmt.Sprintf("obstacle %d x", i))
		if err != nil {
			return nil, nil, nil, err
		}
		oy, err := ts.nextInt(fmt.Sprintf("obstacle %d y", i))
		if err != nil {
			return nil, nil, nil, err
		}
		cell, cerr := layout.CellAt(ox, oy)
		if cerr != nil {
			issues = append(issues, Issue{0, fmt.Sprintf("obstacle %d: coordinate (%d,%d) out of range", i, ox, oy)})
			continue
		}
		if !cell.IsEmpty() {
			issues = append(issues, Issue{0, fmt.Sprintf("obstacle %d: cell (%d,%d) already claimed (content=%s)", i, ox, oy, cell.Content)})
			continue
		}
		cell.Content = grid.Obstacle
	}

	numNets, err := ts.nextInt("net count")
	if err != nil {
		return nil, nil, nil, err
	}
	if numNets < 0 {
		return nil, nil, nil, malformed("net count must be non-negative, got %d", numNets)
	}

	nl := &Netlist{Nets: make([]*Net, 0, numNets)}

	for i := 0; i < numNets; i++ {
		netNum := i + 1
		ctx := fmt.Sprintf("net %d", netNum)

		numPins, err := ts.nextInt(ctx + " pin count")
		if err != nil {
			return nil, nil, nil, err
		}
		if numPins < 1 {
			return nil, nil, nil, malformed("%s: pin count must be at least 1, got %d", ctx, numPins)
		}

		sx, err := ts.nextInt(ctx + " source x")
		if err != nil {
			return nil, nil, nil, err
		}
		sy, err := ts.nextInt(ctx + " source y")
		if err != nil {
			return nil, nil, nil, err
		}

		srcRef := grid.None
		var srcCellForDist *grid.Cell
		srcCell, cerr := layout.CellAt(sx, sy)
		switch {
		case cerr != nil:
			issues = append(issues, Issue{netNum, fmt.Sprintf("source: coordinate (%d,%d) out of range", sx, sy)})
		case !srcCell.IsEmpty():
			issues = append(issues, Issue{netNum, fmt.Sprintf("source: cell (%d,%d) already claimed (content=%s)", sx, sy, srcCell.Content)})
			srcRef = layout.RefOf(srcCell)
			srcCellForDist = srcCell
		default:
			srcCell.Content = grid.Source
			srcCell.NetNum = netNum
			srcCell.Connected = true
			srcRef = layout.RefOf(srcCell)
			srcCellForDist = srcCell
		}

		var sinks []grid.Ref
		for j := 0; j < numPins-1; j++ {
			sctx := fmt.Sprintf("%s sink %d", ctx, j)
			tx, err := ts.nextInt(sctx + " x")
			if err != nil {
				return nil, nil, nil, err
			}
			ty, err := ts.nextInt(sctx + " y")
			if err != nil {
				return nil, nil, nil, err
			}

			sinkCell, cerr := layout.CellAt(tx, ty)
			if cerr != nil {
				issues = append(issues, Issue{netNum, fmt.Sprintf("%s: coordinate (%d,%d) out of range", sctx, tx, ty)})
				continue
			}
			if !sinkCell.IsEmpty() {
				issues = append(issues, Issue{netNum, fmt.Sprintf("%s: cell (%d,%d) already claimed (content=%s)", sctx, tx, ty, sinkCell.Content)})
				sinks = append(sinks, layout.RefOf(sinkCell))
				continue
			}
			sinkCell.Content = grid.Sink
			sinkCell.NetNum = netNum
			if srcCellForDist != nil {
				sinkCell.EstDistToSrc = sinkCell.EstimateDist(srcCellForDist)
			}
			sinks = append(sinks, layout.RefOf(sinkCell))
		}

		nl.Nets = append(nl.Nets, &Net{
			NumPins: numPins,
			Source:  srcRef,
			Sinks:   sinks,
			NetNum:  netNum,
		})
	}

	issues = append(issues, StructuralReport(layout, nl)...)
	return layout, nl, issues, nil
}

// StructuralReport re-derives structural checks over an already-parsed
// Layout/Netlist: a source cell without Source content, a declared pin
// count that doesn't match the actual sink list, and duplicate pins
// within a net. These conditions cannot arise from a successful Parse
// (Parse rejects them fatally before returning), but they routinely
// arise from ParseLenient's recovered state, which is what this exists
// to report on.
func StructuralReport(l *grid.Layout, nl *Netlist) []Issue {
	var issues []Issue

	for _, n := range nl.Nets {
		seen := map[grid.Ref]bool{}

		if n.Source == grid.None {
			issues = append(issues, Issue{n.NetNum, "source coordinate is out of range; net has no source cell"})
		} else {
			src := l.Cell(n.Source)
			if !src.IsSource() {
				issues = append(issues, Issue{n.NetNum, fmt.Sprintf("source cell (%d,%d) does not have Source content", src.X, src.Y)})
			}
			seen[n.Source] = true
		}

		if n.NumPins != len(n.Sinks)+1 {
			issues = append(issues, Issue{n.NetNum, fmt.Sprintf("declared %d pins but found %d sinks", n.NumPins, len(n.Sinks))})
		}

		for _, s := range n.Sinks {
			if seen[s] {
				sink := l.Cell(s)
				issues = append(issues, Issue{n.NetNum, fmt.Sprintf("duplicate pin at (%d,%d)", sink.X, sink.Y)})
			}
			seen[s] = true
		}
	}

	return issues
}
