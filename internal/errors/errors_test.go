// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package errors

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/kraklabs/seqbuf/pkg/seq"
)

// TestUserError_Error verifies the Error() method implementation.
func TestUserError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *UserError
		want string
	}{
		{
			name: "with underlying error",
			err: &UserError{
				Message: "Cannot load configuration",
				Err:     fmt.Errorf("file missing"),
			},
			want: "Cannot load configuration: file missing",
		},
		{
			name: "without underlying error",
			err: &UserError{
				Message: "Invalid input",
				Err:     nil,
			},
			want: "Invalid input",
		},
		{
			name: "empty message with underlying error",
			err: &UserError{
				Message: "",
				Err:     fmt.Errorf("some error"),
			},
			want: ": some error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.want {
				t.Errorf("UserError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestUserError_Unwrap verifies error chain compatibility.
func TestUserError_Unwrap(t *testing.T) {
	underlying := fmt.Errorf("underlying error")
	err := NewConfigError("msg", "cause", "fix", underlying)

	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find the wrapped error")
	}
	if NewInputError("msg", "cause", "fix").Unwrap() != nil {
		t.Error("input errors should not wrap an underlying error")
	}
}

// TestConstructors_ExitCodes verifies each constructor assigns its
// category's exit code.
func TestConstructors_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *UserError
		want int
	}{
		{name: "config", err: NewConfigError("m", "c", "f", nil), want: ExitConfig},
		{name: "input", err: NewInputError("m", "c", "f"), want: ExitInput},
		{name: "internal", err: NewInternalError("m", "c", "f", nil), want: ExitInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.ExitCode != tt.want {
				t.Errorf("ExitCode = %d, want %d", tt.err.ExitCode, tt.want)
			}
		})
	}
}

// TestFromBuffer verifies the mapping from pkg/seq sentinels to
// structured input errors.
func TestFromBuffer(t *testing.T) {
	b := seq.Bytes("abc")

	_, rangeErr := b.At(10)
	_, invalidErr := seq.FromRange([]byte("abc"), 2, 1)

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantIs   error
	}{
		{name: "out of range", err: rangeErr, wantCode: ExitInput, wantIs: seq.ErrOutOfRange},
		{name: "invalid range", err: invalidErr, wantCode: ExitInput, wantIs: seq.ErrInvalidRange},
		{name: "unknown error", err: fmt.Errorf("boom"), wantCode: ExitInternal, wantIs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ue := FromBuffer("slice", tt.err)
			if ue.ExitCode != tt.wantCode {
				t.Errorf("ExitCode = %d, want %d", ue.ExitCode, tt.wantCode)
			}
			if tt.wantIs != nil && !errors.Is(ue, tt.wantIs) {
				t.Errorf("FromBuffer should preserve the sentinel in the chain")
			}
		})
	}
}

// TestFormat verifies the plain-text rendering with colors disabled.
func TestFormat(t *testing.T) {
	// Force color off regardless of environment.
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	err := NewInputError("Bad slice", "start past end", "lower --start")
	got := err.Format(true)

	for _, want := range []string{"Error: Bad slice", "Cause: start past end", "Fix:   lower --start"} {
		if !strings.Contains(got, want) {
			t.Errorf("Format() missing %q in:\n%s", want, got)
		}
	}

	// Empty sections are omitted.
	bare := (&UserError{Message: "just a message"}).Format(true)
	if strings.Contains(bare, "Cause:") || strings.Contains(bare, "Fix:") {
		t.Errorf("Format() should omit empty sections:\n%s", bare)
	}
}

// TestToJSON verifies the JSON projection.
func TestToJSON(t *testing.T) {
	err := NewConfigError("m", "c", "f", nil)
	j := err.ToJSON()

	if j.Error != "m" || j.Cause != "c" || j.Fix != "f" || j.ExitCode != ExitConfig {
		t.Errorf("ToJSON() = %+v", j)
	}
}
