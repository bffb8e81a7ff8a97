// SPDX-License-Identifier: MIT

package xorcomb

import (
	"fmt"

	"github.com/katalvlaran/matxor/matrix"
)

const (
	opXor     = "Xor"
	opCombine = "Combine"
)

// Xor returns out[i,j] = a[i,j] ^ b[i,j] in a newly allocated matrix.
//
// Implementation:
//   - Stage 1: validate both operands (nil → shape).
//   - Stage 2: allocate the output with NewDense.
//   - Stage 3: deterministic i→j loop, one read from each operand, one write.
//
// Errors:
//   - ErrNilMatrix if either operand is nil.
//   - ErrDimensionMismatch if shapes differ.
//   - ErrInvalidDimensions if the operands have zero rows or columns.
//
// Complexity: O(r*c).
func Xor(a, b *matrix.Dense[int32]) (*matrix.Dense[int32], error) {
	if err := validatePair(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opXor, err)
	}

	r, c := a.Shape()
	out, err := matrix.NewDense[int32](r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opXor, err)
	}

	var (
		i, j   int
		av, bv int32
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", opXor, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", opXor, err)
			}
			if err = out.Set(i, j, av^bv); err != nil {
				return nil, fmt.Errorf("%s: %w", opXor, err)
			}
		}
	}

	return out, nil
}

// Combine rounds a and b with Round and XORs the results cell by cell.
//
// Implementation:
//   - Stage 1: validate both operands before any rounding (nil → shape).
//   - Stage 2: RoundMatrix(a), RoundMatrix(b).
//   - Stage 3: Xor.
//
// Behavior highlights:
//   - Commutative: Combine(a,b) == Combine(b,a).
//   - Combine(a,a) is all zeros.
//   - Operands with zero rows or columns are rejected (ErrInvalidDimensions).
//
// Complexity: O(r*c).
func Combine[F matrix.Float](a, b *matrix.Dense[F]) (*matrix.Dense[int32], error) {
	if err := validatePair(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opCombine, err)
	}

	ra, err := RoundMatrix(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCombine, err)
	}
	rb, err := RoundMatrix(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCombine, err)
	}

	out, err := Xor(ra, rb)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCombine, err)
	}

	return out, nil
}

// validatePair runs the shared nil → shape checks.
func validatePair[T matrix.Element](a, b *matrix.Dense[T]) error {
	if err := matrix.ValidateNotNil(a); err != nil {
		return err
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return err
	}

	return matrix.ValidateSameShape(a, b)
}
