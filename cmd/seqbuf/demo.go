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
	"github.com/kraklabs/seqbuf/internal/ui"
	"github.com/kraklabs/seqbuf/pkg/seq"
)

// demoJSON is the JSON shape of the demo pipeline, one field per
// intermediate result.
type demoJSON struct {
	Concat    string `json:"concat"`
	Append    string `json:"append"`
	Repeat    string `json:"repeat"`
	Transform string `json:"transform"`
	Slice     string `json:"slice"`
}

// runDemo executes the 'demo' CLI command: the canonical pipeline that
// touches every container operation, printing each intermediate result.
func runDemo(args []string) {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)

	left := fs.String("left", "hello", "First input")
	right := fs.String("right", " world", "Second input")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: seqbuf demo [options]

Description:
  Run the canonical pipeline: concatenate two inputs, append '!',
  repeat twice, uppercase every element, and slice out a word. Each
  intermediate buffer is freshly owned; the pipeline also exercises an
  explicit ownership transfer.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  seqbuf demo
  seqbuf demo --left foo --right bar
`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	s1 := seq.Bytes(*left)
	s2 := seq.Bytes(*right)

	s3 := s1.Concat(s2)
	concatStr := output.Render(s3)

	s3.Append('!')
	appendStr := output.Render(s3)

	// Transfer ownership before repeating: s3 is empty afterward but
	// stays valid.
	s4 := s3.Move().Repeat(2)
	repeatStr := output.Render(s4)

	s4.Apply(transformers["upper"])
	transformStr := output.Render(s4)

	sub, err := s4.Substring(6, 5)
	if err != nil {
		errors.FatalError(errors.FromBuffer("demo", err), globals.JSON)
	}
	sliceStr := output.Render(sub)

	if globals.JSON {
		if err := output.JSON(demoJSON{
			Concat:    concatStr,
			Append:    appendStr,
			Repeat:    repeatStr,
			Transform: transformStr,
			Slice:     sliceStr,
		}); err != nil {
			errors.FatalError(err, true)
		}
		return
	}

	ui.Header("seqbuf pipeline")
	ui.Step("concat", concatStr)
	ui.Step("append", appendStr)
	ui.Step("repeat", repeatStr)
	ui.Step("transform", transformStr)
	ui.Step("slice", sliceStr)
}
