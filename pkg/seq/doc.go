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

// Package seq provides Buffer, a generic value-semantic sequence container
// that exclusively owns a contiguous block of elements.
//
// A Buffer never shares its backing storage: copies are deep, and transfer
// of ownership is explicit through Move/MoveFrom, which leave the source
// valid and empty. Every size-changing mutation reallocates the backing
// block to the exact new size — the container keeps no spare capacity.
// This makes per-element Append O(n); callers that build large buffers
// should construct them from a slice in one step instead.
//
// # Quick Start
//
// Build buffers from existing data and combine them:
//
//	a := seq.Bytes("hello")
//	b := seq.Bytes(" world")
//	c := a.Concat(b)       // "hello world", a and b untouched
//	c.Append('!')          // reallocates to the exact new size
//	d := c.Repeat(2)       // "hello world!hello world!"
//
// # Ownership
//
// Clone and CopyFrom duplicate elements into a fresh block. Move and
// MoveFrom transfer the block in constant time and empty the source:
//
//	m := c.Move()          // m owns c's elements, c is now empty
//	c.Append('x')          // still valid: c reallocates from empty
//
// # Transformation
//
// Two mechanisms replace every element in index order, in place. Apply
// takes a Transformer implementation and dispatches dynamically, for
// mappings selected at run time. Map takes a plain function and is
// resolved statically:
//
//	c.Apply(upcase{})          // upcase implements Transformer[byte]
//	c.Map(func(e byte) byte {  // monomorphized per callsite
//	    return e + 1
//	})
//
// # Errors
//
// Indexed access and Substring report ErrOutOfRange; FromRange reports
// ErrInvalidRange. Test with errors.Is. A failed operation leaves the
// buffer unchanged.
//
// # Iteration Hazard
//
// All and Values yield the live elements. Any mutation invalidates
// in-flight iterators because the backing block may have been replaced;
// the container does not detect this. Buffers are not safe for
// unsynchronized concurrent use.
package seq
