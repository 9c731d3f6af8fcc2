package netlist

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/eng618/maze-router/pkg/grid"
)

// Write regenerates the exact textual netlist format from a layout and
// netlist: parsing the output of Write reproduces equivalent nets and
// obstacles (after whitespace normalisation).
//
// Obstacles are emitted in ascending (y, x) order, independent of parse
// order, since the format does not define an obstacle ordering. Nets are
// emitted in ascending NetNum order — the order they were assigned at
// parse time — rather than whatever order nl.Nets is currently sorted
// into by SortNetlist, so that re-parsing reproduces the original net
// numbering regardless of any routing pass run in between.
func Write(w io.Writer, nl *Netlist, l *grid.Layout) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%d %d\n", l.XSize, l.YSize); err != nil {
		return err
	}

	type obstacle struct{ x, y int }
	var obstacles []obstacle
	for y := 0; y < l.YSize; y++ {
		for x := 0; x < l.XSize; x++ {
			if l.At(x, y).IsObstacle() {
				obstacles = append(obstacles, obstacle{x, y})
			}
		}
	}
	if _, err := fmt.Fprintf(bw, "%d\n", len(obstacles)); err != nil {
		return err
	}
	for _, o := range obstacles {
		if _, err := fmt.Fprintf(bw, "%d %d\n", o.x, o.y); err != nil {
			return err
		}
	}

	ordered := make([]*Net, len(nl.Nets))
	copy(ordered, nl.Nets)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].NetNum < ordered[j].NetNum })

	if _, err := fmt.Fprintf(bw, "%d\n", len(ordered)); err != nil {
		return err
	}
	for _, n := range ordered {
		src := l.Cell(n.Source)
		if _, err := fmt.Fprintf(bw, "%d %d %d", n.NumPins, src.X, src.Y); err != nil {
			return err
		}
		for _, s := range n.Sinks {
			sink := l.Cell(s)
			if _, err := fmt.Fprintf(bw, " %d %d", sink.X, sink.Y); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
