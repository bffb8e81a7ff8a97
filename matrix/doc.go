// SPDX-License-Identifier: MIT

// Package matrix provides the row-major Dense container shared by every
// matxor stage, together with the sentinel errors and validators those
// stages report through.
//
// The package provides:
//
//   - Dense[T], generic over float32/float64/int32/int64 cells, with safe
//     At/Set accessors that return errors instead of panicking.
//   - NewDense for strict positive shapes and NewFromRows for literal data
//     (which may legally be empty).
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrEmptyMatrix and friends,
//     matched with errors.Is by callers.
//
// Matrices are value data: stages allocate a new Dense for their output and
// never mutate the matrices they receive.
package matrix
