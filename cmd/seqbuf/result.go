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

package main

import (
	"fmt"

	"github.com/kraklabs/seqbuf/internal/errors"
	"github.com/kraklabs/seqbuf/internal/limits"
	"github.com/kraklabs/seqbuf/internal/output"
	"github.com/kraklabs/seqbuf/pkg/seq"
)

// resultJSON is the JSON shape shared by commands that produce a single
// buffer.
type resultJSON struct {
	Value  string `json:"value"`
	Length int    `json:"length"`
}

// emitBuffer prints a byte buffer in the active output mode.
func emitBuffer(b *seq.Buffer[byte]) {
	if globals.JSON {
		if err := output.JSON(resultJSON{Value: output.Render(b), Length: b.Len()}); err != nil {
			errors.FatalError(err, true)
		}
		return
	}
	fmt.Println(output.Render(b))
}

// guardResultSize refuses to materialize results over the soft limit.
func guardResultSize(n int) {
	if res := limits.ValidateResultElems(n); !res.OK {
		errors.FatalError(errors.NewInputError(
			"Result too large",
			res.Message,
			"Reduce the input or repeat count, or raise SEQBUF_MAX_ELEMS",
		), globals.JSON)
	}
}
