// Package validate implements the `validate` subcommand: parse a
// netlist file and report structural issues without routing it.
package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eng618/maze-router/pkg/netlist"
)

// GetCommand returns the validate command for registration with root.
func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "validate",
		Aliases: []string{"val"},
		Short:   "Check a netlist file's structure without routing it",
		Long: `Validate parses a netlist file leniently and reports every
structural problem it finds in one pass: obstacle/pin coordinates out
of range, coordinates colliding with an already-claimed cell, a source
cell left without Source content by such a collision, a net whose
declared pin count doesn't match its recovered sink list, and duplicate
pins within a net.

Missing or non-numeric fields, non-positive grid dimensions, negative
counts and a pin count below 1 are still fatal, since there is no
well-formed document left to report on past that point.

Example:
  maze-router validate netlist.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
}

func run(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening netlist %s: %w", path, err)
	}
	defer f.Close()

	_, nl, issues, err := netlist.ParseLenient(f)
	if err != nil {
		return fmt.Errorf("parsing netlist: %w", err)
	}

	if len(issues) == 0 {
		fmt.Printf("%s: %d nets, no structural issues found\n", path, len(nl.Nets))
		return nil
	}

	for _, issue := range issues {
		fmt.Printf("net %d: %s\n", issue.NetNum, issue.Message)
	}
	return fmt.Errorf("%s: %d structural issue(s) found", path, len(issues))
}
