package router

import "github.com/eng618/maze-router/pkg/netlist"

// NetResult reports the outcome of routing one net.
type NetResult struct {
	NetNum  int
	Routed  bool
	Lengths []int // realized cell count of each successful segment, in attempt order
}

// Summary is the aggregate report the driver produces after a full pass
// over the netlist.
type Summary struct {
	Routed  int
	Total   int
	Results []NetResult
}

// Route orchestrates a full routing pass: sort the netlist, then for
// each net sort its sinks, route the source to the nearest sink with
// A*, and expand every remaining sink toward the growing trunk with
// Lee–Moore. A segment failure does not abort the run; the driver
// records the miss and continues with the next segment or net.
func Route(ctx *Context) Summary {
	ctx.Grid.ResetGrid() // ensure label cleanliness before the first segment
	ctx.Netlist.SortNetlist()

	summary := Summary{Total: len(ctx.Netlist.Nets)}

	for _, net := range ctx.Netlist.Nets {
		result := routeNet(ctx, net)
		summary.Results = append(summary.Results, result)
		if result.Routed {
			summary.Routed++
		}
	}

	ctx.Grid.Observer.OnRoutingFinished(summary.Routed, summary.Total)
	return summary
}

func routeNet(ctx *Context, net *netlist.Net) NetResult {
	result := NetResult{NetNum: net.NetNum}

	if len(net.Sinks) == 0 {
		result.Routed = true
		return result
	}

	net.SortSinks(ctx.Grid)

	first := net.Sinks[0]
	ok, length := RouteSegment(ctx, net.Source, &first)
	if ok {
		result.Lengths = append(result.Lengths, length)
	}

	for _, sink := range net.Sinks[1:] {
		ok, length := RouteSegment(ctx, sink, nil)
		if ok {
			result.Lengths = append(result.Lengths, length)
		}
	}

	result.Routed = net.IsRouted(ctx.Grid)
	return result
}
