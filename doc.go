// Package main provides the maze-router CLI tool.
//
// # Overview
//
// maze-router routes a netlist of source/sink pins across a fixed-size
// rectangular grid containing obstacle cells. Each net is routed by first
// growing an A* path from its source to its nearest sink (by Manhattan
// distance), then growing a Lee-Moore wavefront from each remaining sink
// inward to the net's existing claimed trunk. Nets are processed in
// ascending pin-count order so simple nets claim cells before harder ones
// compete for the same corridors.
//
// # Commands
//
// ## route
//
// Parse a netlist file and run a full routing pass, reporting how many
// nets routed successfully out of the total.
//
//	maze-router route netlist.txt
//	maze-router route netlist.txt --seed 42
//	maze-router route netlist.txt --deterministic
//
// ## render
//
// Route a netlist and print a colourised ASCII dump of the resulting
// grid: obstacles in red, each net in a distinct colour, unclaimed cells
// blank.
//
//	maze-router render netlist.txt
//
// ## validate
//
// Parse a netlist file and report structural issues (pin-count
// mismatches, duplicate pins, mistagged source cells, colliding or
// out-of-range coordinates) without routing it. Missing or non-numeric
// fields and invalid sizes or counts are still a fatal parse error here,
// since there is no well-formed grid to validate further.
//
//	maze-router validate netlist.txt
//
// ## step
//
// Open an interactive, line-edited shell that advances a routing pass
// one segment at a time, for debugging why a particular net failed.
//
//	maze-router step netlist.txt
//
// # Netlist format
//
// A netlist file is whitespace-separated integers:
//
//	xsize ysize
//	obstacle_count
//	ox1 oy1 ox2 oy2 ...
//	net_count
//	npins sx sy tx1 ty1 tx2 ty2 ...
//
// # Architecture
//
//	pkg/grid/      - cell model, layout, Observer notifications
//	pkg/queue/     - generic stable priority queue (container/heap)
//	pkg/netlist/   - parsing, writing, structural validation
//	pkg/router/    - shared A*/Lee-Moore expansion loop, driver
//	pkg/ui/        - terminal spinner
//	internal/config - YAML config loading
//	internal/logging - structured logging
//	cmd/           - cobra command implementations
//
// # Exit codes
//
//	0  a routing pass completed (regardless of per-net outcome)
//	1  unexpected internal error
//	2  malformed netlist input
//	3  netlist file not found
package main
