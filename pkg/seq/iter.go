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

import "iter"

// All returns an iterator over index/element pairs in storage order,
// yielding exactly Len() pairs. The iterator reads the live backing
// block: any mutation of the buffer invalidates it, because the block
// may have been replaced. This is not detected.
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range b.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in storage order. The
// same invalidation rule as All applies.
func (b *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range b.data {
			if !yield(v) {
				return
			}
		}
	}
}
