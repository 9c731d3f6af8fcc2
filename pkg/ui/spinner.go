// Package ui holds small terminal presentation helpers for the CLI
// commands: currently a progress spinner. Colourised grid output lives
// in cmd/render. These are presentation-layer concerns, out of scope
// for the router core itself.
package ui

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
)

// VerboseEnabled suppresses the spinner animation when set, since a
// spinner and line-oriented verbose logging fight over the same
// terminal line.
var VerboseEnabled = false

// Spinner wraps github.com/briandowns/spinner for progress feedback
// while a multi-net netlist is being routed.
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner creates a new spinner with a default configuration.
func NewSpinner(msg string) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + msg
	_ = s.Color("cyan", "bold")
	return &Spinner{s: s}
}

// Start starts the spinner if verbose mode is disabled.
func (s *Spinner) Start() {
	if !VerboseEnabled {
		s.s.Start()
	}
}

// Stop stops the spinner.
func (s *Spinner) Stop() {
	s.s.Stop()
}

// UpdateMessage updates the spinner's suffix message.
func (s *Spinner) UpdateMessage(format string, args ...interface{}) {
	s.s.Suffix = " " + fmt.Sprintf(format, args...)
}
