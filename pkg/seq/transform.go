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

// Transformer maps one element to a new element of the same type. It is
// the dynamic-dispatch transformation capability consumed by Apply: the
// buffer never knows the concrete mapping, so callers can select it at
// run time.
type Transformer[T any] interface {
	Transform(v T) T
}

// TransformFunc adapts a plain function to the Transformer interface,
// in the manner of http.HandlerFunc.
type TransformFunc[T any] func(T) T

// Transform calls f(v).
func (f TransformFunc[T]) Transform(v T) T {
	return f(v)
}

// Apply replaces every element with t.Transform(element), in increasing
// index order, exactly once per element. The mapping is dispatched
// through the interface on each element; use Map when the mapping is
// known at compile time. The buffer's size does not change and the
// backing block is not reallocated.
func (b *Buffer[T]) Apply(t Transformer[T]) {
	for i := range b.data {
		b.data[i] = t.Transform(b.data[i])
	}
	recordTransform(len(b.data))
}

// Map replaces every element with fn(element), in increasing index order,
// exactly once per element. fn is resolved statically at the callsite.
// Semantics are identical to Apply.
func (b *Buffer[T]) Map(fn func(T) T) {
	for i := range b.data {
		b.data[i] = fn(b.data[i])
	}
	recordTransform(len(b.data))
}
