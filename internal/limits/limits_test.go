// Copyright 2025 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package limits

import "testing"

func TestMaxElems_Default(t *testing.T) {
	t.Setenv("SEQBUF_MAX_ELEMS", "")
	if got := MaxElems(); got != DefaultMaxElems {
		t.Errorf("MaxElems() = %d, want %d", got, DefaultMaxElems)
	}
}

func TestMaxElems_EnvOverride(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want int
	}{
		{name: "valid override", env: "1000", want: 1000},
		{name: "non-numeric falls back", env: "lots", want: DefaultMaxElems},
		{name: "non-positive falls back", env: "-5", want: DefaultMaxElems},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SEQBUF_MAX_ELEMS", tt.env)
			if got := MaxElems(); got != tt.want {
				t.Errorf("MaxElems() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidateResultElems(t *testing.T) {
	t.Setenv("SEQBUF_MAX_ELEMS", "10")

	if res := ValidateResultElems(10); !res.OK {
		t.Errorf("size at the limit should pass: %s", res.Message)
	}
	if res := ValidateResultElems(11); res.OK {
		t.Error("size above the limit should fail")
	}
}
