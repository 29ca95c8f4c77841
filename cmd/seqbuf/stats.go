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
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kraklabs/seqbuf/internal/output"
	"github.com/kraklabs/seqbuf/internal/ui"
)

// gatherStats collects the seqbuf_* counters from the default registry.
// The container registers its metrics lazily, so a command that never
// touched a buffer yields an empty map.
func gatherStats() (map[string]float64, error) {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return nil, fmt.Errorf("gathering metrics: %w", err)
	}

	stats := make(map[string]float64)
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "seqbuf_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			stats[mf.GetName()] = m.GetCounter().GetValue()
		}
	}
	return stats, nil
}

// maybePrintStats emits the container metric counters to stderr when
// --stats is active. Called once, after the command has run.
func maybePrintStats() {
	if !globals.Stats {
		return
	}

	stats, err := gatherStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return
	}

	if globals.JSON {
		if err := output.JSONTo(os.Stderr, stats); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		return
	}

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, ui.Label("Container metrics:"))
	for _, name := range []string{
		"seqbuf_allocs_total",
		"seqbuf_alloc_elements_total",
		"seqbuf_elements_copied_total",
		"seqbuf_clones_total",
		"seqbuf_moves_total",
		"seqbuf_transforms_total",
		"seqbuf_transform_elements_total",
	} {
		if v, ok := stats[name]; ok {
			fmt.Fprintf(os.Stderr, "  %-32s %.0f\n", name, v)
		}
	}
}
