// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later
// Package main implements the seqbuf CLI, a workbench for the owned
// sequence container in pkg/seq.
//
// Usage:
//
//	seqbuf concat <s>...              Concatenate inputs
//	seqbuf repeat --count N <s>       Repeat an input N times
//	seqbuf slice --start S --len N <s>  Extract a substring
//	seqbuf transform --op upper <s>   Transform every element
//	seqbuf compare <a> <b>            Lexicographic verdict
//	seqbuf demo                       Run the full pipeline
package main

import (
	"flag"
	"fmt"
	"os"
)

// Version information (set via ldflags during build)
var (
	version = "dev"     // Version string
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// GlobalFlags carries the flags shared by every command.
type GlobalFlags struct {
	// JSON switches all output to machine-readable JSON.
	JSON bool

	// NoColor disables colored output.
	NoColor bool

	// Stats prints container metric counters after the command.
	Stats bool
}

// globals is populated in main before any command runs.
var globals GlobalFlags

// main is the entry point for the seqbuf CLI.
//
// It parses global flags, loads the optional configuration, and
// dispatches to command handlers.
//
// Global flags:
//   - --version: Display version information and exit
//   - --json: Output as JSON
//   - --no-color: Disable colored output
//   - --stats: Print container metrics after the command
//   - --config: Path to .seqbuf/config.yaml configuration file
func main() {
	// Global flags
	var (
		showVersion = flag.Bool("version", false, "Show version and exit")
		jsonOut     = flag.Bool("json", false, "Output as JSON")
		noColor     = flag.Bool("no-color", false, "Disable colored output")
		stats       = flag.Bool("stats", false, "Print container metrics after the command")
		configPath  = flag.String("config", "", "Path to .seqbuf/config.yaml (default: ./.seqbuf/config.yaml)")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `seqbuf - owned sequence buffer workbench

seqbuf exposes a value-semantic owning sequence container on the
command line: every result is built in a freshly allocated buffer,
copies are deep, and ownership transfer is explicit. The CLI works on
byte elements; the library underneath is generic.

Usage:
  seqbuf <command> [options] [arguments]

Commands:
  init          Create .seqbuf/config.yaml configuration
  concat        Concatenate inputs into one buffer
  repeat        Repeat an input N times
  slice         Extract a substring
  transform     Transform every element (upper|lower|rot13)
  compare       Compare two inputs lexicographically
  demo          Run the full pipeline on a sample input
  bench         Measure the reallocate-on-append cost
  completion    Generate shell completion script (bash|zsh|fish)

Global Options:
  --json        Output as JSON
  --no-color    Disable colored output
  --stats       Print container metrics after the command
  --config      Path to .seqbuf/config.yaml
  --version     Show version and exit

Examples:
  seqbuf concat "hello" " world"
  seqbuf repeat --count 3 "ab"
  seqbuf slice --start 6 --len 5 "hello world"
  seqbuf transform --op upper "hello"
  seqbuf compare "abc" "abd"
  seqbuf demo
  seqbuf bench --appends 10000

Environment Variables:
  SEQBUF_MAX_ELEMS  Soft limit on result sizes (default: 16Mi elements)
  NO_COLOR          Disable colored output

For detailed command help: seqbuf <command> --help

`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("seqbuf version %s\n", version)
		fmt.Printf("commit: %s\n", commit)
		fmt.Printf("built: %s\n", date)
		os.Exit(0)
	}

	globals = GlobalFlags{JSON: *jsonOut, NoColor: *noColor, Stats: *stats}
	applyConfig(*configPath)

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "init":
		runInit(cmdArgs)
	case "concat":
		runConcat(cmdArgs)
	case "repeat":
		runRepeat(cmdArgs)
	case "slice":
		runSlice(cmdArgs)
	case "transform":
		runTransform(cmdArgs, *configPath)
	case "compare":
		runCompare(cmdArgs)
	case "demo":
		runDemo(cmdArgs)
	case "bench":
		runBench(cmdArgs)
	case "completion":
		runCompletion(cmdArgs)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}

	maybePrintStats()
}
