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

	"github.com/kraklabs/seqbuf/pkg/seq"
)

// runConcat executes the 'concat' CLI command, folding all arguments
// into a single freshly owned buffer.
func runConcat(args []string) {
	fs := flag.NewFlagSet("concat", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: seqbuf concat <s>...

Description:
  Concatenate the arguments left to right. Each step builds a new
  buffer of the exact combined size; the operands are never mutated.
  With no arguments the result is the empty buffer.

Examples:
  seqbuf concat "hello" " world"
  seqbuf --json concat a b c
`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	total := 0
	for _, arg := range fs.Args() {
		total += len(arg)
	}
	guardResultSize(total)

	result := seq.New[byte]()
	for _, arg := range fs.Args() {
		result = result.Concat(seq.Bytes(arg))
	}

	emitBuffer(result)
}
