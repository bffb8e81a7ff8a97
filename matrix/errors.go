// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across matxor.
// Every stage (generator, xorcomb, colmax, pipeline) returns these sentinels,
// wrapped with operation context, and tests match them via errors.Is.
// No function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Wrap with
// fmt.Errorf("Op: %w", ErrX) at the detection site; callers use errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/dimensions -> dimension mismatch -> empty -> NaN/Inf.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	// Returned by NewDense and by generator.Generate.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned when row slices passed to NewFromRows are ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. XOR-combining a 3×3 with a 2×3 matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrEmptyMatrix indicates that a reduction received a matrix with zero rows
	// or zero columns.
	ErrEmptyMatrix = errors.New("matrix: matrix is empty")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
