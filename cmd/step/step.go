// Package step implements the `step` subcommand: an interactive,
// line-edited REPL (via github.com/peterh/liner) that steps a routing
// pass one segment at a time for debugging. This is a textual stepper,
// not an interactive grid viewer.
package step

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/eng618/maze-router/internal/config"
	"github.com/eng618/maze-router/pkg/grid"
	"github.com/eng618/maze-router/pkg/netlist"
	"github.com/eng618/maze-router/pkg/router"
)

var seedFlag int64

// GetCommand returns the step command for registration with root.
func GetCommand(verbose *bool, cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Interactively step through a routing pass one segment at a time",
		Long: `Step opens an interactive shell that advances a routing pass one
segment at a time, printing each segment's outcome. Available commands:
  next (n)    route the next pending segment
  net  (N)    finish routing the current net (remaining segments)
  all  (a)    run every remaining segment to completion
  status (s)  print routed/total so far
  quit  (q)   exit

Example:
  maze-router step netlist.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], cfg)
		},
	}
	cmd.Flags().Int64Var(&seedFlag, "seed", 0, "random seed for neighbour-order reproducibility")
	return cmd
}

// segment is one pending (net, sink-or-nil-target) unit of work the
// driver would otherwise run automatically.
type segment struct {
	net    *netlist.Net
	start  grid.Ref
	target *grid.Ref // nil selects Lee-Moore mode
}

// exploreCounter is the Observer attached to the grid for the lifetime
// of the stepper. Each segment search labels every cell it expands and
// ends by calling ResetGrid, so OnGridReset is the point at which this
// turn's label count is known final; it is latched into lastExplored
// before the counter rearms for the next segment.
type exploreCounter struct {
	grid.NoopObserver
	labelled, lastExplored int
}

func (c *exploreCounter) OnLabelChanged(x, y, label int) {
	c.labelled++
}

func (c *exploreCounter) OnGridReset() {
	c.lastExplored = c.labelled
	c.labelled = 0
}

func run(path string, cfg *config.Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening netlist %s: %w", path, err)
	}
	layout, nl, err := netlist.Parse(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("parsing netlist: %w", err)
	}

	seed := seedFlag
	if seed == 0 {
		seed = cfg.Seed
	}
	ctx := router.NewContext(layout, nl, seed, cfg.AStarWeight)
	explored := &exploreCounter{}
	ctx.Grid.Observer = explored
	ctx.Grid.ResetGrid()
	ctx.Netlist.SortNetlist()

	segments := buildSegments(ctx)
	routed, total := 0, len(ctx.Netlist.Nets)

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	totalSegments := len(segments)
	fmt.Printf("Loaded %s: %d nets, %d segments queued\n", path, total, totalSegments)

	for len(segments) > 0 {
		input, err := line.Prompt(fmt.Sprintf("route[%d/%d segments left]> ", len(segments), totalSegments))
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				fmt.Println("aborted")
				continue
			}
			break
		}
		line.AppendHistory(input)

		cmdName := strings.Fields(strings.TrimSpace(input))
		if len(cmdName) == 0 {
			continue
		}

		switch cmdName[0] {
		case "next", "n":
			segments = runOne(ctx, segments, explored)
		case "net", "N":
			netNum := segments[0].net.NetNum
			for len(segments) > 0 && segments[0].net.NetNum == netNum {
				segments = runOne(ctx, segments, explored)
			}
		case "all", "a":
			for len(segments) > 0 {
				segments = runOne(ctx, segments, explored)
			}
		case "status", "s":
			fmt.Printf("%d/%d nets routed so far\n", countRouted(ctx), total)
		case "quit", "q":
			segments = nil
		default:
			fmt.Println("unknown command; try next/net/all/status/quit")
		}
	}

	routed = countRouted(ctx)
	fmt.Printf("Routed %d/%d nets\n", routed, total)
	return nil
}

func buildSegments(ctx *router.Context) []segment {
	var out []segment
	for _, net := range ctx.Netlist.Nets {
		if len(net.Sinks) == 0 {
			continue
		}
		net.SortSinks(ctx.Grid)
		first := net.Sinks[0]
		out = append(out, segment{net: net, start: net.Source, target: &first})
		for _, sink := range net.Sinks[1:] {
			s := sink
			out = append(out, segment{net: net, start: s, target: nil})
		}
	}
	return out
}

func runOne(ctx *router.Context, segments []segment, explored *exploreCounter) []segment {
	if len(segments) == 0 {
		return segments
	}
	s := segments[0]
	ok, length := router.RouteSegment(ctx, s.start, s.target)
	mode := "Lee-Moore"
	if s.target != nil {
		mode = "A*"
	}
	if ok {
		fmt.Printf("net %d: %s segment succeeded, %d cells (explored %d)\n", s.net.NetNum, mode, length, explored.lastExplored)
	} else {
		fmt.Printf("net %d: %s segment failed (explored %d)\n", s.net.NetNum, mode, explored.lastExplored)
	}
	return segments[1:]
}

func countRouted(ctx *router.Context) int {
	routed := 0
	for _, net := range ctx.Netlist.Nets {
		if net.IsRouted(ctx.Grid) {
			routed++
		}
	}
	return routed
}
