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

package testing

import (
	"testing"

	"github.com/kraklabs/seqbuf/pkg/seq"
)

// Rendered returns the string form of a byte buffer.
func Rendered(b *seq.Buffer[byte]) string {
	return string(b.Slice())
}

// AssertRendered fails the test when the buffer's string form differs
// from want.
func AssertRendered(t *testing.T, b *seq.Buffer[byte], want string) {
	t.Helper()

	if got := Rendered(b); got != want {
		t.Errorf("buffer renders as %q, want %q", got, want)
	}
}

// MustSubstring extracts a substring, failing the test on error.
func MustSubstring(t *testing.T, b *seq.Buffer[byte], start, n int) *seq.Buffer[byte] {
	t.Helper()

	sub, err := b.Substring(start, n)
	if err != nil {
		t.Fatalf("Substring(%d, %d): %v", start, n, err)
	}
	return sub
}

// MustAt reads an element, failing the test on error.
func MustAt(t *testing.T, b *seq.Buffer[byte], i int) byte {
	t.Helper()

	v, err := b.At(i)
	if err != nil {
		t.Fatalf("At(%d): %v", i, err)
	}
	return v
}
