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

package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/seqbuf/internal/errors"
	"github.com/kraklabs/seqbuf/internal/output"
	"github.com/kraklabs/seqbuf/pkg/seq"
)

// compareJSON is the JSON shape of a comparison verdict.
type compareJSON struct {
	Left    string `json:"left"`
	Right   string `json:"right"`
	Verdict string `json:"verdict"` // "<", "==", or ">"
}

// runCompare executes the 'compare' CLI command.
func runCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: seqbuf compare <a> <b>

Description:
  Compare two inputs lexicographically over their elements. A strict
  prefix sorts before the longer input; inputs of different length are
  never equal.

Examples:
  seqbuf compare "abc" "abd"
  seqbuf compare "ab" "abc"
`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() != 2 {
		errors.FatalError(errors.NewInputError(
			"Invalid arguments",
			"The compare command takes exactly two input strings",
			"Run: seqbuf compare \"abc\" \"abd\"",
		), globals.JSON)
	}

	a := seq.Bytes(fs.Arg(0))
	b := seq.Bytes(fs.Arg(1))

	var verdict string
	switch a.Compare(b) {
	case -1:
		verdict = "<"
	case 0:
		verdict = "=="
	default:
		verdict = ">"
	}

	if globals.JSON {
		if err := output.JSON(compareJSON{Left: fs.Arg(0), Right: fs.Arg(1), Verdict: verdict}); err != nil {
			errors.FatalError(err, true)
		}
		return
	}

	fmt.Printf("%q %s %q\n", fs.Arg(0), verdict, fs.Arg(1))
}
