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

import "errors"

// Sentinel errors returned by Buffer operations. Returned errors wrap
// these values with positional detail; match them with errors.Is.
var (
	// ErrOutOfRange is reported by At, Set and Substring when a position
	// lies outside the buffer.
	ErrOutOfRange = errors.New("seq: position out of range")

	// ErrInvalidRange is reported by FromRange when the requested range
	// is malformed (begin after end, or outside the source).
	ErrInvalidRange = errors.New("seq: invalid range")
)
