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
	"time"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/seqbuf/internal/errors"
	"github.com/kraklabs/seqbuf/internal/output"
	"github.com/kraklabs/seqbuf/internal/ui"
	"github.com/kraklabs/seqbuf/pkg/seq"
)

// benchJSON is the JSON shape of a bench run.
type benchJSON struct {
	Appends   int     `json:"appends"`
	Elapsed   float64 `json:"elapsed_seconds"`
	PerAppend float64 `json:"per_append_microseconds"`
}

// runBench executes the 'bench' CLI command. It appends elements one at
// a time, which under the exact-reallocation contract costs a full copy
// per append; the point of the command is to make that cost visible.
func runBench(args []string) {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)

	appends := fs.Int("appends", 10000, "Number of single-element appends")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: seqbuf bench [options]

Description:
  Append N elements one at a time. The container reallocates the whole
  buffer on every append, so the run performs O(N²) element copies by
  contract. Combine with --stats to see the allocation counters.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  seqbuf bench --appends 10000
  seqbuf --stats bench --appends 50000
`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if *appends <= 0 {
		errors.FatalError(errors.NewInputError(
			"Invalid append count",
			"--appends must be positive",
			"Run: seqbuf bench --appends 10000",
		), globals.JSON)
	}
	guardResultSize(*appends)

	bar := NewProgressBar(NewProgressConfig(globals), int64(*appends), "appending")

	b := seq.New[byte]()
	start := time.Now()
	for i := 0; i < *appends; i++ {
		b.Append(byte('a' + i%26))
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	elapsed := time.Since(start)

	if bar != nil {
		_ = bar.Finish()
	}

	perAppend := float64(elapsed.Microseconds()) / float64(*appends)

	if globals.JSON {
		if err := output.JSON(benchJSON{
			Appends:   *appends,
			Elapsed:   elapsed.Seconds(),
			PerAppend: perAppend,
		}); err != nil {
			errors.FatalError(err, true)
		}
		return
	}

	ui.Infof("appended %d elements in %s (%.2fµs per append)", *appends, elapsed.Round(time.Millisecond), perAppend)
	ui.Info("every append reallocates the full buffer; growth is deliberately unamortized")
}
