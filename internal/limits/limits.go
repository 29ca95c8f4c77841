// Copyright 2025 KrakLabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package limits

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultMaxElems is the baseline soft limit on the element count of a
// materialized result.
const DefaultMaxElems = 16 << 20 // 16 Mi elements

// MaxElems returns the effective soft limit for result sizes.
// Controlled via env SEQBUF_MAX_ELEMS; falls back to DefaultMaxElems.
func MaxElems() int {
	if v := os.Getenv("SEQBUF_MAX_ELEMS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return DefaultMaxElems
}

// ValidationResult represents the result of a validation check.
type ValidationResult struct {
	OK      bool
	Message string
}

// ValidateResultElems checks a prospective result size against the soft
// limit before the CLI materializes it.
func ValidateResultElems(n int) *ValidationResult {
	if n > MaxElems() {
		return &ValidationResult{
			OK:      false,
			Message: fmt.Sprintf("result of %d elements exceeds the soft limit of %d (raise SEQBUF_MAX_ELEMS to override)", n, MaxElems()),
		}
	}
	return &ValidationResult{OK: true}
}
