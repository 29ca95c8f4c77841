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
	"os"
	"sort"
	"strings"
	"unicode"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/seqbuf/internal/errors"
	"github.com/kraklabs/seqbuf/internal/output"
	"github.com/kraklabs/seqbuf/pkg/seq"
)

// Byte-element mappings. ASCII-only on purpose: the container treats
// elements as opaque values, so byte mode transforms bytes, not text.
func upperByte(e byte) byte {
	if e >= 'a' && e <= 'z' {
		return e - 'a' + 'A'
	}
	return e
}

func lowerByte(e byte) byte {
	if e >= 'A' && e <= 'Z' {
		return e - 'A' + 'a'
	}
	return e
}

func rot13Byte(e byte) byte {
	switch {
	case e >= 'a' && e <= 'z':
		return 'a' + (e-'a'+13)%26
	case e >= 'A' && e <= 'Z':
		return 'A' + (e-'A'+13)%26
	default:
		return e
	}
}

// transformers maps --op names to element mappings. The buffer receives
// them through the Transformer interface, so the concrete mapping is
// picked at run time without the container knowing its type.
var transformers = map[string]seq.Transformer[byte]{
	"upper": seq.TransformFunc[byte](upperByte),
	"lower": seq.TransformFunc[byte](lowerByte),
	"rot13": seq.TransformFunc[byte](rot13Byte),
}

// runeTransformers are the rune-element counterparts used with --runes.
var runeTransformers = map[string]seq.Transformer[rune]{
	"upper": seq.TransformFunc[rune](unicode.ToUpper),
	"lower": seq.TransformFunc[rune](unicode.ToLower),
	"rot13": seq.TransformFunc[rune](func(e rune) rune {
		if e < 128 {
			return rune(rot13Byte(byte(e)))
		}
		return e
	}),
}

// transformerNames returns the known op names, sorted, for messages.
func transformerNames() string {
	names := make([]string, 0, len(transformers))
	for name := range transformers {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// runTransform executes the 'transform' CLI command, replacing every
// element of the input through a runtime-selected mapping.
func runTransform(args []string, configPath string) {
	fs := flag.NewFlagSet("transform", flag.ExitOnError)

	op := fs.String("op", "", "Transform op (default from config, else upper)")
	runes := fs.Bool("runes", false, "Operate on decoded runes instead of raw bytes")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: seqbuf transform [options] <s>

Description:
  Replace every element of the input, in index order, using the mapping
  named by --op. The mapping is dispatched dynamically through the
  container's transformer interface. By default elements are raw bytes;
  --runes decodes the input so that non-ASCII text transforms correctly.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  seqbuf transform --op upper "hello"
  seqbuf transform --op rot13 "uryyb"
  seqbuf transform --op upper --runes "héllo"
`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		errors.FatalError(errors.NewInputError(
			"Invalid arguments",
			"The transform command takes exactly one input string",
			"Run: seqbuf transform --op upper \"hello\"",
		), globals.JSON)
	}

	name := *op
	if name == "" {
		cfg, _, err := LoadConfig(resolveConfigPath(configPath))
		if err != nil {
			errors.FatalError(errors.NewConfigError(
				"Cannot load seqbuf configuration", err.Error(),
				"Fix or remove .seqbuf/config.yaml", err,
			), globals.JSON)
		}
		name = cfg.DefaultOp
	}

	if *runes {
		tr, ok := runeTransformers[name]
		if !ok {
			unknownOp(name)
		}
		buf := seq.Runes(fs.Arg(0))
		buf.Apply(tr)
		emitRunes(buf)
		return
	}

	tr, ok := transformers[name]
	if !ok {
		unknownOp(name)
	}
	buf := seq.Bytes(fs.Arg(0))
	buf.Apply(tr)
	emitBuffer(buf)
}

func unknownOp(name string) {
	errors.FatalError(errors.NewInputError(
		"Unknown transform op",
		fmt.Sprintf("'%s' is not a known transform", name),
		"Use one of: "+transformerNames(),
	), globals.JSON)
}

// emitRunes prints a rune buffer in the active output mode.
func emitRunes(b *seq.Buffer[rune]) {
	value := string(b.Slice())
	if globals.JSON {
		if err := output.JSON(resultJSON{Value: value, Length: b.Len()}); err != nil {
			errors.FatalError(err, true)
		}
		return
	}
	fmt.Println(value)
}
