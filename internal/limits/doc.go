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

// Package limits provides size-limit validation for the seqbuf CLI.
//
// Because the container reallocates to the exact size of every result,
// a single careless `repeat` can demand an enormous allocation. The CLI
// therefore enforces a soft limit on the element count of results it is
// asked to materialize:
//
//	// Default limit is 16 Mi elements
//	if res := limits.ValidateResultElems(n); !res.OK {
//	    // refuse the operation
//	}
//
// The limit is tunable through the SEQBUF_MAX_ELEMS environment
// variable. The library itself never enforces a limit; this is purely a
// CLI guard.
package limits
