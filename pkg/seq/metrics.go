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

package seq

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// metricsBuffer holds Prometheus metrics for buffer activity. Because
// the container reallocates on every size change, the allocation
// counters double as a direct measure of mutation cost.
type metricsBuffer struct {
	once sync.Once

	// Allocations
	allocs     prometheus.Counter
	allocElems prometheus.Counter

	// Element traffic
	elemsCopied prometheus.Counter

	// Ownership
	clones prometheus.Counter
	moves  prometheus.Counter

	// Transformations
	transforms     prometheus.Counter
	transformElems prometheus.Counter
}

var bufMetrics metricsBuffer

func (m *metricsBuffer) init() {
	m.once.Do(func() {
		m.allocs = prometheus.NewCounter(prometheus.CounterOpts{Name: "seqbuf_allocs_total", Help: "Backing blocks allocated"})
		m.allocElems = prometheus.NewCounter(prometheus.CounterOpts{Name: "seqbuf_alloc_elements_total", Help: "Elements covered by allocated blocks"})

		m.elemsCopied = prometheus.NewCounter(prometheus.CounterOpts{Name: "seqbuf_elements_copied_total", Help: "Elements copied between blocks"})

		m.clones = prometheus.NewCounter(prometheus.CounterOpts{Name: "seqbuf_clones_total", Help: "Deep copies of whole buffers"})
		m.moves = prometheus.NewCounter(prometheus.CounterOpts{Name: "seqbuf_moves_total", Help: "Ownership transfers between buffers"})

		m.transforms = prometheus.NewCounter(prometheus.CounterOpts{Name: "seqbuf_transforms_total", Help: "In-place transformation passes"})
		m.transformElems = prometheus.NewCounter(prometheus.CounterOpts{Name: "seqbuf_transform_elements_total", Help: "Elements replaced by transformation passes"})

		prometheus.MustRegister(
			m.allocs, m.allocElems,
			m.elemsCopied,
			m.clones, m.moves,
			m.transforms, m.transformElems,
		)
	})
}

// record helpers - used by the container for metrics tracking
func recordAlloc(n int) {
	bufMetrics.init()
	bufMetrics.allocs.Inc()
	bufMetrics.allocElems.Add(float64(n))
}

func recordCopied(n int) {
	bufMetrics.init()
	bufMetrics.elemsCopied.Add(float64(n))
}

func recordClone() { bufMetrics.init(); bufMetrics.clones.Inc() }
func recordMove()  { bufMetrics.init(); bufMetrics.moves.Inc() }

func recordTransform(n int) {
	bufMetrics.init()
	bufMetrics.transforms.Inc()
	bufMetrics.transformElems.Add(float64(n))
}
