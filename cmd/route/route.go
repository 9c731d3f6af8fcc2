// Package route implements the `route` subcommand: parse a netlist
// file, run a full routing pass over it, and report the routed/total
// net count.
package route

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/eng618/maze-router/internal/config"
	"github.com/eng618/maze-router/internal/logging"
	"github.com/eng618/maze-router/pkg/netlist"
	"github.com/eng618/maze-router/pkg/router"
	"github.com/eng618/maze-router/pkg/ui"
)

var (
	netlistPath   string
	seedFlag      int64
	deterministic bool
)

func newCommand(verbose *bool, cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Route a netlist file and report routed/total counts",
		Long: `Route parses a netlist file (grid size, obstacle list, then
one line per net) and runs the router driver over it:
nets ordered by ascending pin count, sinks within a net ordered by
ascending Manhattan distance to the source, A* from source to the
nearest sink, then Lee-Moore from every other sink toward the growing
trunk.

Examples:
  maze-router route netlist.txt
  maze-router route netlist.txt --seed 42
  maze-router route netlist.txt --deterministic`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			netlistPath = args[0]
			return run(*verbose, cfg)
		},
	}

	cmd.Flags().Int64Var(&seedFlag, "seed", 0, "random seed for neighbour-order reproducibility (default: derived from config or current time)")
	cmd.Flags().BoolVar(&deterministic, "deterministic", false, "force seed 0 regardless of --seed or config, for exact reproducibility across runs")

	return cmd
}

// GetCommand returns the route command for registration with root.
// cfg is shared with root's resolved configuration (populated by
// PersistentPreRunE before this command's RunE executes).
func GetCommand(verbose *bool, cfg *config.Config) *cobra.Command {
	return newCommand(verbose, cfg)
}

func run(verbose bool, cfg *config.Config) error {
	ui.VerboseEnabled = verbose
	log, err := logging.New(cfg.Log, verbose)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer log.Sync()

	f, err := os.Open(netlistPath)
	if err != nil {
		return fmt.Errorf("opening netlist %s: %w", netlistPath, err)
	}
	defer f.Close()

	log.Info("parsing netlist %s", netlistPath)
	layout, nl, err := netlist.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing netlist: %w", err)
	}

	seed := resolveSeed(cfg)
	ctx := router.NewContext(layout, nl, seed, cfg.AStarWeight)
	log.Verbose("run %s: seed=%d astar_weight=%d nets=%d", log.RunID(), seed, cfg.AStarWeight, len(nl.Nets))

	spin := ui.NewSpinner(fmt.Sprintf("routing %d nets...", len(nl.Nets)))
	spin.Start()
	summary := router.Route(ctx)
	spin.Stop()

	for _, r := range summary.Results {
		if r.Routed {
			log.Verbose("net %d routed (%d segment(s), lengths=%v)", r.NetNum, len(r.Lengths), r.Lengths)
		} else {
			log.Warning("net %d failed to route", r.NetNum)
		}
	}

	fmt.Printf("Routed %d/%d nets\n", summary.Routed, summary.Total)
	return nil
}

func resolveSeed(cfg *config.Config) int64 {
	switch {
	case deterministic:
		return 0
	case seedFlag != 0:
		return seedFlag
	case cfg.Seed != 0:
		return cfg.Seed
	default:
		return time.Now().UnixNano()
	}
}
