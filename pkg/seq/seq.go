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
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Buffer is a value-semantic sequence container that exclusively owns a
// contiguous block of elements of type T.
//
// Invariants:
//   - data is nil exactly when the buffer is empty.
//   - len(data) == cap(data): no spare capacity is ever retained, every
//     size change reallocates to the exact new size.
//
// The zero value is an empty buffer ready for use, but most callers go
// through the constructors so that ownership stays explicit.
type Buffer[T cmp.Ordered] struct {
	data []T
}

// alloc returns a fresh exact-size block, never sharing storage.
func alloc[T any](n int) []T {
	recordAlloc(n)
	return make([]T, n)
}

// copyInto copies src into dst and accounts for the copied elements.
func copyInto[T any](dst, src []T) {
	recordCopied(copy(dst, src))
}

// New returns an empty buffer holding no allocation.
func New[T cmp.Ordered]() *Buffer[T] {
	return &Buffer[T]{}
}

// Fill returns a buffer of n copies of v. Non-positive n yields an empty
// buffer.
func Fill[T cmp.Ordered](n int, v T) *Buffer[T] {
	if n <= 0 {
		return &Buffer[T]{}
	}
	d := alloc[T](n)
	for i := range d {
		d[i] = v
	}
	return &Buffer[T]{data: d}
}

// FromSlice returns a buffer holding a deep copy of src. The result never
// aliases src.
func FromSlice[T cmp.Ordered](src []T) *Buffer[T] {
	if len(src) == 0 {
		return &Buffer[T]{}
	}
	d := alloc[T](len(src))
	copyInto(d, src)
	return &Buffer[T]{data: d}
}

// FromTerminated copies elements from src up to, but not including, the
// first zero value of T. When src contains no zero value the whole slice
// is copied.
func FromTerminated[T cmp.Ordered](src []T) *Buffer[T] {
	var zero T
	n := 0
	for n < len(src) && src[n] != zero {
		n++
	}
	return FromSlice(src[:n])
}

// FromRange copies the half-open range src[begin:end] into a new buffer.
// It reports ErrInvalidRange when begin is after end, or when the range
// lies outside src.
func FromRange[T cmp.Ordered](src []T, begin, end int) (*Buffer[T], error) {
	if begin > end {
		return nil, fmt.Errorf("%w: begin %d after end %d", ErrInvalidRange, begin, end)
	}
	if begin < 0 || end > len(src) {
		return nil, fmt.Errorf("%w: [%d, %d) outside source of %d elements", ErrInvalidRange, begin, end, len(src))
	}
	return FromSlice(src[begin:end]), nil
}

// Bytes returns a byte buffer holding a copy of s.
func Bytes(s string) *Buffer[byte] {
	return FromSlice([]byte(s))
}

// Runes returns a rune buffer holding the code points of s.
func Runes(s string) *Buffer[rune] {
	return FromSlice([]rune(s))
}

// Convert builds a buffer of T from a buffer of a different element type U
// by applying conv to every element in order. The result owns a fresh
// block and never aliases src.
func Convert[T, U cmp.Ordered](src *Buffer[U], conv func(U) T) *Buffer[T] {
	if src.Len() == 0 {
		return &Buffer[T]{}
	}
	d := alloc[T](len(src.data))
	for i, v := range src.data {
		d[i] = conv(v)
	}
	return &Buffer[T]{data: d}
}

// Clone returns a deep copy. Mutating the clone never affects the
// original.
func (b *Buffer[T]) Clone() *Buffer[T] {
	recordClone()
	return FromSlice(b.data)
}

// CopyFrom replaces the buffer's contents with a deep copy of other.
// Copying from itself is a no-op.
func (b *Buffer[T]) CopyFrom(other *Buffer[T]) {
	if b == other {
		return
	}
	if len(other.data) == 0 {
		b.data = nil
		return
	}
	d := alloc[T](len(other.data))
	copyInto(d, other.data)
	b.data = d
}

// Move transfers ownership of the backing block to a new buffer in
// constant time. The receiver is left valid and empty and supports all
// operations afterward.
func (b *Buffer[T]) Move() *Buffer[T] {
	recordMove()
	moved := &Buffer[T]{data: b.data}
	b.data = nil
	return moved
}

// MoveFrom releases the buffer's current block and takes ownership of
// other's, leaving other empty. Moving from itself is a no-op.
func (b *Buffer[T]) MoveFrom(other *Buffer[T]) {
	if b == other {
		return
	}
	recordMove()
	b.data = other.data
	other.data = nil
}

// Len returns the number of elements held.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Empty reports whether the buffer holds no elements.
func (b *Buffer[T]) Empty() bool {
	return len(b.data) == 0
}

// Clear releases the backing block and resets the buffer to the empty
// state. Clearing an empty buffer is a no-op.
func (b *Buffer[T]) Clear() {
	b.data = nil
}

// At returns the element at position i, or ErrOutOfRange when i lies
// outside [0, Len()).
func (b *Buffer[T]) At(i int) (T, error) {
	if i < 0 || i >= len(b.data) {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, len(b.data))
	}
	return b.data[i], nil
}

// Set replaces the element at position i, or reports ErrOutOfRange when i
// lies outside [0, Len()). Set does not change the buffer's size and does
// not reallocate.
func (b *Buffer[T]) Set(i int, v T) error {
	if i < 0 || i >= len(b.data) {
		return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, len(b.data))
	}
	b.data[i] = v
	return nil
}

// Substring returns a new buffer holding up to n elements starting at
// start. A start outside [0, Len()] reports ErrOutOfRange. An n that
// overruns the end is clamped to the remaining length rather than
// failing; this start/length asymmetry is deliberate and part of the
// contract. Negative n yields an empty result.
func (b *Buffer[T]) Substring(start, n int) (*Buffer[T], error) {
	if start < 0 || start > len(b.data) {
		return nil, fmt.Errorf("%w: start %d, length %d", ErrOutOfRange, start, len(b.data))
	}
	if n > len(b.data)-start {
		n = len(b.data) - start
	}
	if n < 0 {
		n = 0
	}
	return FromSlice(b.data[start : start+n]), nil
}

// Concat returns a new buffer holding the elements of b followed by the
// elements of other. Neither operand is mutated.
func (b *Buffer[T]) Concat(other *Buffer[T]) *Buffer[T] {
	total := len(b.data) + len(other.data)
	if total == 0 {
		return &Buffer[T]{}
	}
	d := alloc[T](total)
	copyInto(d, b.data)
	copyInto(d[len(b.data):], other.data)
	return &Buffer[T]{data: d}
}

// Append adds one element at the end. The backing block is reallocated to
// exactly Len()+1 on every call, so appending n elements one at a time
// costs O(n²) copies; this exactness is part of the contract.
func (b *Buffer[T]) Append(v T) {
	d := alloc[T](len(b.data) + 1)
	copyInto(d, b.data)
	d[len(d)-1] = v
	b.data = d
}

// Repeat returns a new buffer holding n back-to-back copies of the
// elements. Non-positive n yields an empty buffer; no error is raised.
func (b *Buffer[T]) Repeat(n int) *Buffer[T] {
	if n <= 0 || len(b.data) == 0 {
		return &Buffer[T]{}
	}
	d := alloc[T](len(b.data) * n)
	for i := 0; i < n; i++ {
		copyInto(d[i*len(b.data):], b.data)
	}
	return &Buffer[T]{data: d}
}

// Equal reports whether both buffers hold the same elements in the same
// order. Buffers of different length are never equal.
func (b *Buffer[T]) Equal(other *Buffer[T]) bool {
	return slices.Equal(b.data, other.data)
}

// Compare orders two buffers lexicographically over their elements,
// returning -1, 0, or 1. A buffer that is a strict prefix of the other
// sorts first.
func (b *Buffer[T]) Compare(other *Buffer[T]) int {
	return slices.Compare(b.data, other.data)
}

// Less reports whether b sorts strictly before other.
func (b *Buffer[T]) Less(other *Buffer[T]) bool {
	return b.Compare(other) < 0
}

// LessOrEqual reports whether b sorts before or equal to other.
func (b *Buffer[T]) LessOrEqual(other *Buffer[T]) bool {
	return !other.Less(b)
}

// Greater reports whether b sorts strictly after other.
func (b *Buffer[T]) Greater(other *Buffer[T]) bool {
	return other.Less(b)
}

// GreaterOrEqual reports whether b sorts after or equal to other.
func (b *Buffer[T]) GreaterOrEqual(other *Buffer[T]) bool {
	return !b.Less(other)
}

// Slice returns a copy of the elements. The returned slice is owned by
// the caller; mutating it never affects the buffer. An empty buffer
// yields nil.
func (b *Buffer[T]) Slice() []T {
	if len(b.data) == 0 {
		return nil
	}
	d := make([]T, len(b.data))
	copy(d, b.data)
	return d
}

// WriteTo serializes the buffer by writing each element's textual
// representation to w in order, with no separators. It implements
// io.WriterTo.
func (b *Buffer[T]) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, v := range b.data {
		n, err := fmt.Fprintf(w, "%v", v)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String renders the buffer for debugging using each element's default
// textual representation.
func (b *Buffer[T]) String() string {
	var sb strings.Builder
	_, _ = b.WriteTo(&sb) // strings.Builder writes cannot fail
	return sb.String()
}
