package netlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/eng618/maze-router/pkg/grid"
)

// ErrMalformedInput is the sentinel wrapped by every parse failure.
// Use errors.Is to detect it.
var ErrMalformedInput = errors.New("netlist: malformed input")

// malformed wraps ErrMalformedInput with context, keeping errors.Is
// working while still reporting what went wrong.
func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}

// tokenScanner pulls whitespace-separated tokens off r regardless of
// line boundaries; the netlist format is defined by field order, not by
// strict line counts, so this is more permissive than a line-by-line
// reader while still detecting missing fields. Tokens after the last
// field a parser asks for are never read, so trailing extra fields are
// not reported.
type tokenScanner struct {
	sc *bufio.Scanner
}

func newTokenScanner(r io.Reader) *tokenScanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &tokenScanner{sc: sc}
}

func (t *tokenScanner) nextInt(ctx string) (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, malformed("%s: read error: %v", ctx, err)
		}
		return 0, malformed("%s: unexpected end of input", ctx)
	}
	tok := t.sc.Text()
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, malformed("%s: expected an integer, got %q", ctx, tok)
	}
	return n, nil
}

// Parse reads the textual netlist format and returns the populated
// Layout and Netlist. Fails with ErrMalformedInput when any
// integer field is missing, non-numeric, out of range, or when a
// source/sink/obstacle coordinate collides with an already-claimed cell.
func Parse(r io.Reader) (*grid.Layout, *Netlist, error) {
	ts := newTokenScanner(r)

	xsize, err := ts.nextInt("header xsize")
	if err != nil {
		return nil, nil, err
	}
	ysize, err := ts.nextInt("header ysize")
	if err != nil {
		return nil, nil, err
	}
	if xsize <= 0 || ysize <= 0 {
		return nil, nil, malformed("header: grid dimensions must be positive, got %dx%d", xsize, ysize)
	}

	layout := grid.NewLayout(xsize, ysize)

	numObstacles, err := ts.nextInt("obstacle count")
	if err != nil {
		return nil, nil, err
	}
	if numObstacles < 0 {
		return nil, nil, malformed("obstacle count must be non-negative, got %d", numObstacles)
	}

	for i := 0; i < numObstacles; i++ {
		ox, err := ts.nextInt(fmt.Sprintf("obstacle %d x", i))
		if err != nil {
			return nil, nil, err
		}
		oy, err := ts.nextInt(fmt.Sprintf("obstacle %d y", i))
		if err != nil {
			return nil, nil, err
		}
		cell, err := layout.CellAt(ox, oy)
		if err != nil {
			return nil, nil, malformed("obstacle %d: %v", i, err)
		}
		if !cell.IsEmpty() {
			return nil, nil, malformed("obstacle %d: cell (%d,%d) already claimed", i, ox, oy)
		}
		cell.Content = grid.Obstacle
	}

	numNets, err := ts.nextInt("net count")
	if err != nil {
		return nil, nil, err
	}
	if numNets < 0 {
		return nil, nil, malformed("net count must be non-negative, got %d", numNets)
	}

	nl := &Netlist{Nets: make([]*Net, 0, numNets)}

	for i := 0; i < numNets; i++ {
		netNum := i + 1
		ctx := fmt.Sprintf("net %d", netNum)

		numPins, err := ts.nextInt(ctx + " pin count")
		if err != nil {
			return nil, nil, err
		}
		if numPins < 1 {
			return nil, nil, malformed("%s: pin count must be at least 1, got %d", ctx, numPins)
		}

		sx, err := ts.nextInt(ctx + " source x")
		if err != nil {
			return nil, nil, err
		}
		sy, err := ts.nextInt(ctx + " source y")
		if err != nil {
			return nil, nil, err
		}
		srcCell, err := layout.CellAt(sx, sy)
		if err != nil {
			return nil, nil, malformed("%s source: %v", ctx, err)
		}
		if !srcCell.IsEmpty() {
			return nil, nil, malformed("%s source: cell (%d,%d) already claimed", ctx, sx, sy)
		}
		srcCell.Content = grid.Source
		srcCell.NetNum = netNum
		srcCell.Connected = true
		srcRef := layout.RefOf(srcCell)

		sinks := make([]grid.Ref, 0, numPins-1)
		for j := 0; j < numPins-1; j++ {
			sctx := fmt.Sprintf("%s sink %d", ctx, j)
			tx, err := ts.nextInt(sctx + " x")
			if err != nil {
				return nil, nil, err
			}
			ty, err := ts.nextInt(sctx + " y")
			if err != nil {
				return nil, nil, err
			}
			sinkCell, err := layout.CellAt(tx, ty)
			if err != nil {
				return nil, nil, malformed("%s: %v", sctx, err)
			}
			if !sinkCell.IsEmpty() {
				return nil, nil, malformed("%s: cell (%d,%d) already claimed", sctx, tx, ty)
			}
			sinkCell.Content = grid.Sink
			sinkCell.NetNum = netNum
			sinkCell.EstDistToSrc = sinkCell.EstimateDist(srcCell)
			sinks = append(sinks, layout.RefOf(sinkCell))
		}

		nl.Nets = append(nl.Nets, &Net{
			NumPins: numPins,
			Source:  srcRef,
			Sinks:   sinks,
			NetNum:  netNum,
		})
	}

	return layout, nl, nil
}
