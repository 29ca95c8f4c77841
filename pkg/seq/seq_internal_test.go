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

import "testing"

// checkInvariants asserts the two structural invariants of Buffer:
// nil backing block exactly when empty, and no spare capacity.
func checkInvariants(t *testing.T, b *Buffer[byte]) {
	t.Helper()

	if len(b.data) == 0 && b.data != nil {
		t.Errorf("empty buffer holds an allocation (cap %d)", cap(b.data))
	}
	if cap(b.data) != len(b.data) {
		t.Errorf("spare capacity retained: len %d, cap %d", len(b.data), cap(b.data))
	}
}

// TestExactAllocation verifies that every size-changing operation leaves
// the buffer with an exact-size block and that empty results hold none.
func TestExactAllocation(t *testing.T) {
	b := Bytes("abc")
	checkInvariants(t, b)

	b.Append('d')
	checkInvariants(t, b)

	c := b.Concat(Bytes("ef"))
	checkInvariants(t, c)

	r := c.Repeat(3)
	checkInvariants(t, r)

	sub, err := r.Substring(2, 4)
	if err != nil {
		t.Fatalf("Substring: %v", err)
	}
	checkInvariants(t, sub)

	b.Clear()
	checkInvariants(t, b)

	moved := c.Move()
	checkInvariants(t, c)
	checkInvariants(t, moved)
}

// TestAppendReallocates verifies that Append never reuses the previous
// block, even when a larger allocation could have held the new element.
func TestAppendReallocates(t *testing.T) {
	b := Bytes("ab")
	before := &b.data[0]

	b.Append('c')
	after := &b.data[0]

	if before == after {
		t.Error("Append reused the backing block; every append must reallocate")
	}
}

// TestEmptyResultsHoldNoAllocation covers constructors that can produce
// the empty state.
func TestEmptyResultsHoldNoAllocation(t *testing.T) {
	for name, b := range map[string]*Buffer[byte]{
		"default":         New[byte](),
		"fill zero":       Fill(0, byte('x')),
		"from nil slice":  FromSlice[byte](nil),
		"repeat zero":     Bytes("ab").Repeat(0),
		"repeat negative": Bytes("ab").Repeat(-1),
	} {
		if b.data != nil {
			t.Errorf("%s: expected nil backing block, got cap %d", name, cap(b.data))
		}
	}
}
