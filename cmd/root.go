package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/eng618/maze-router/cmd/render"
	"github.com/eng618/maze-router/cmd/route"
	"github.com/eng618/maze-router/cmd/step"
	"github.com/eng618/maze-router/cmd/validate"
	"github.com/eng618/maze-router/internal/config"
	"github.com/eng618/maze-router/pkg/netlist"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Cfg is the resolved configuration, populated in PersistentPreRunE
	// and shared with subcommands.
	Cfg config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "maze-router",
	Short: "Grid-based multi-net maze router",
	Long: `maze-router is a CLI tool that routes a netlist of source/sink
pins across a fixed-size rectangular grid with blocking cells.

It provides commands for:
  - Routing a netlist file and reporting the routed/total net count
  - Rendering a routed grid as a colourised ASCII layout
  - Validating a netlist file's structure without routing it
  - Stepping through a routing pass one segment at a time`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		Cfg = cfg
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
//
// Exit codes: 0 when a routing pass completed (regardless of per-net
// failures), 2 on malformed netlist input, 3 when the netlist file
// could not be found, 1 for anything else unexpected.
func Execute() {
	err := rootCmd.Execute()
	switch {
	case err == nil:
		os.Exit(0)
	case errors.Is(err, netlist.ErrMalformedInput):
		os.Exit(2)
	case errors.Is(err, os.ErrNotExist):
		os.Exit(3)
	default:
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output for debugging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file with router defaults")

	// Register subcommands
	rootCmd.AddCommand(route.GetCommand(&verbose, &Cfg))
	rootCmd.AddCommand(render.GetCommand())
	rootCmd.AddCommand(validate.GetCommand())
	rootCmd.AddCommand(step.GetCommand(&verbose, &Cfg))
}
