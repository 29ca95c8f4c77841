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

package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kraklabs/seqbuf/pkg/seq"
)

func TestAll(t *testing.T) {
	b := seq.Bytes("abc")

	var idx []int
	var got []byte
	for i, v := range b.All() {
		idx = append(idx, i)
		got = append(got, v)
	}

	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []byte("abc"), got)
}

func TestValues(t *testing.T) {
	b := seq.FromSlice([]int{3, 1, 4})

	var got []int
	for v := range b.Values() {
		got = append(got, v)
	}

	assert.Equal(t, []int{3, 1, 4}, got, "storage order, duplicates and all")
}

func TestIterationEarlyBreak(t *testing.T) {
	b := seq.Bytes("abcdef")

	n := 0
	for range b.Values() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestIterationEmpty(t *testing.T) {
	b := seq.New[int]()
	for range b.All() {
		t.Fatal("empty buffer must yield nothing")
	}
	for range b.Values() {
		t.Fatal("empty buffer must yield nothing")
	}
}
