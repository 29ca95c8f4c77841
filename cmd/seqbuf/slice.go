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
	"github.com/kraklabs/seqbuf/pkg/seq"
)

// runSlice executes the 'slice' CLI command, extracting a substring.
func runSlice(args []string) {
	fs := flag.NewFlagSet("slice", flag.ExitOnError)

	start := fs.Int("start", 0, "Start position (0-based)")
	length := fs.Int("len", -1, "Element count; negative means to the end")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: seqbuf slice [options] <s>

Description:
  Extract a substring into a new buffer. A start past the end of the
  input is an error; a length that overruns the end is clamped. These
  asymmetric policies match the container's contract.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  seqbuf slice --start 6 --len 5 "hello world"
  seqbuf slice --start 6 "hello world"     # to the end
`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		errors.FatalError(errors.NewInputError(
			"Invalid arguments",
			"The slice command takes exactly one input string",
			"Run: seqbuf slice --start 6 --len 5 \"hello world\"",
		), globals.JSON)
	}

	input := seq.Bytes(fs.Arg(0))

	n := *length
	if n < 0 {
		n = input.Len()
	}

	sub, err := input.Substring(*start, n)
	if err != nil {
		errors.FatalError(errors.FromBuffer("slice", err), globals.JSON)
	}

	emitBuffer(sub)
}
