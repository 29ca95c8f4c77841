// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package output provides utilities for consistent CLI output formatting.
//
// This package handles JSON encoding for machine-readable output and the
// textual rendering of byte buffers, ensuring consistent formatting
// across all seqbuf CLI commands. It complements the ui package (for
// human-readable output) and the errors package (for error handling).
//
// # Usage
//
// For JSON output in CLI commands:
//
//	type Result struct {
//	    Value  string `json:"value"`
//	    Length int    `json:"length"`
//	}
//	result := &Result{Value: "hello world", Length: 11}
//	if err := output.JSON(result); err != nil {
//	    errors.FatalError(err, true)
//	}
//
// For rendering a byte buffer as text:
//
//	fmt.Println(output.Render(buf))
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kraklabs/seqbuf/pkg/seq"
)

// Render converts a byte buffer to its string form. Byte elements are
// interpreted as text here; the buffer's own WriteTo serializes each
// element's numeric representation instead, which is not what a CLI
// user reading strings wants.
func Render(b *seq.Buffer[byte]) string {
	return string(b.Slice())
}

// JSON writes data as pretty-printed JSON to stdout.
//
// The output is formatted with 2-space indentation for readability.
// This is the standard format for --json output in seqbuf CLI commands.
//
// Returns an error if JSON encoding fails (e.g., for unencodable types
// like channels or functions).
func JSON(data any) error {
	return JSONTo(os.Stdout, data)
}

// JSONTo writes data as pretty-printed JSON to the specified writer.
//
// This is useful for testing or when output needs to go somewhere
// other than stdout.
func JSONTo(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("JSON encoding failed: %w", err)
	}
	return nil
}

// ErrorJSON represents an error in JSON format for machine consumption.
type ErrorJSON struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// JSONError writes an error as JSON to stderr.
//
// The error is wrapped in a JSON object with an "error" field. This
// ensures consistent error output format when --json mode is active.
func JSONError(err error) {
	enc := json.NewEncoder(os.Stderr)
	// Encoding an ErrorJSON cannot fail; the write target may, but
	// there is nowhere left to report that.
	_ = enc.Encode(ErrorJSON{Error: err.Error()})
}
