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

// Package testing provides shared test helpers for working with byte
// buffers in seqbuf tests.
//
// The helpers convert between buffers and strings and unwrap fallible
// buffer operations, failing the test on error, so that test bodies
// stay focused on the behavior under test. Import with an alias to
// avoid clashing with the standard testing package:
//
//	import seqtest "github.com/kraklabs/seqbuf/internal/testing"
//
//	func TestSlice(t *testing.T) {
//	    sub := seqtest.MustSubstring(t, seq.Bytes("hello world"), 6, 5)
//	    seqtest.AssertRendered(t, sub, "world")
//	}
package testing
