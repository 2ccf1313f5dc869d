// SPDX-License-Identifier: MIT
// Package builder provides validation helpers to enforce parameter contracts
// in Constructor factories.

package builder

import "fmt"

// validateMin ensures got ≥ min, naming the parameter in the error.
// Complexity: O(1).
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s must be ≥ %d, got %d: %w", method, param, min, got, ErrTooFewCells)
	}
	return nil
}

// validateRand ensures jitter has a random source to draw from.
func validateRand(method string, cfg builderConfig) error {
	if cfg.jitter > 0 && cfg.rng == nil {
		return fmt.Errorf("%s: jitter %.3g without WithSeed/WithRand: %w", method, cfg.jitter, ErrNeedRandSource)
	}
	return nil
}
