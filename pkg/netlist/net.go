// Package netlist holds the Net/Netlist model and the textual
// netlist format parser/writer.
package netlist

import (
	"sort"

	"github.com/eng618/maze-router/pkg/grid"
)

// Net is a signal to be realised as a connected set of grid cells joining
// one source to one or more sinks.
type Net struct {
	NumPins int
	Source  grid.Ref
	Sinks   []grid.Ref
	NetNum  int
}

// IsRouted reports whether every sink of the net is connected.
func (n *Net) IsRouted(l *grid.Layout) bool {
	for _, s := range n.Sinks {
		if !l.Cell(s).IsConnected() {
			return false
		}
	}
	return true
}

// SortSinks stably sorts the net's sinks ascending by EstDistToSrc, the
// default sink ordering within a net. The sort must be stable so that
// two sinks tying on distance preserve their file-listed order.
func (n *Net) SortSinks(l *grid.Layout) {
	sort.SliceStable(n.Sinks, func(i, j int) bool {
		return l.Cell(n.Sinks[i]).EstDistToSrc < l.Cell(n.Sinks[j]).EstDistToSrc
	})
}

// Netlist is the ordered collection of nets parsed from one netlist file.
type Netlist struct {
	Nets []*Net
}

// SortNetlist stably sorts nets ascending by pin count, the default net
// ordering.
func (nl *Netlist) SortNetlist() {
	sort.SliceStable(nl.Nets, func(i, j int) bool {
		return nl.Nets[i].NumPins < nl.Nets[j].NumPins
	})
}
