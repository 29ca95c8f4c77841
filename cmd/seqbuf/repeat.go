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

// runRepeat executes the 'repeat' CLI command.
func runRepeat(args []string) {
	fs := flag.NewFlagSet("repeat", flag.ExitOnError)

	count := fs.IntP("count", "n", 2, "Number of repetitions")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: seqbuf repeat [options] <s>

Description:
  Build a new buffer holding N back-to-back copies of the input. A
  non-positive count yields the empty buffer; that is the defined
  result, not an error.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  seqbuf repeat --count 3 "ab"
  seqbuf repeat -n 0 "ab"        # empty output
`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		errors.FatalError(errors.NewInputError(
			"Invalid arguments",
			"The repeat command takes exactly one input string",
			"Run: seqbuf repeat --count 3 \"ab\"",
		), globals.JSON)
	}

	input := seq.Bytes(fs.Arg(0))
	if *count > 0 {
		guardResultSize(input.Len() * *count)
	}

	emitBuffer(input.Repeat(*count))
}
