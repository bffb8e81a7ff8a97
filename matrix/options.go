// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults.
// Design goals:
//   - Deterministic behavior: no global mutable state, no implicit randomness.
//   - Single source of truth for the finite-value guard shared by Dense
//     constructors, Set and NewFromRows.
package matrix

import "math"

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
// Integer cells are always finite, so the guard only bites for Float element types.
const DefaultValidateNaNInf = true

// MaxElements caps rows*cols for NewDense. Larger shapes are rejected with
// ErrInvalidDimensions instead of overflowing the buffer length.
const MaxElements = math.MaxInt32
