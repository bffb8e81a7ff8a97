// SPDX-License-Identifier: MIT

package xorcomb

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matxor/matrix"
)

const (
	opRound       = "Round"
	opRoundMatrix = "RoundMatrix"
)

// Round converts x to the nearest int32 using round-half-up.
//
// Implementation:
//   - Stage 1: reject NaN/±Inf.
//   - Stage 2: take floor(x) and bump by one when the fractional part is ≥ 0.5.
//     x - floor(x) is exact in binary floating point, unlike x + 0.5.
//   - Stage 3: saturate to the int32 range.
//
// Complexity: O(1).
func Round[F matrix.Float](x F) (int32, error) {
	f := float64(x)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s(%v): %w", opRound, f, matrix.ErrNaNInf)
	}

	r := math.Floor(f)
	if f-r >= 0.5 {
		r++
	}

	switch {
	case r >= math.MaxInt32:
		return math.MaxInt32, nil
	case r <= math.MinInt32:
		return math.MinInt32, nil
	default:
		return int32(r), nil
	}
}

// RoundMatrix applies Round to every cell of m and returns a new int32 matrix
// of the same shape. m must have at least one row and one column.
// Complexity: O(r*c).
func RoundMatrix[F matrix.Float](m *matrix.Dense[F]) (*matrix.Dense[int32], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opRoundMatrix, err)
	}

	r, c := m.Shape()
	out, err := matrix.NewDense[int32](r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRoundMatrix, err)
	}

	var (
		i, j int
		v    F
		n    int32
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("%s: %w", opRoundMatrix, err)
			}
			if n, err = Round(v); err != nil {
				return nil, fmt.Errorf("%s: cell (%d,%d): %w", opRoundMatrix, i, j, err)
			}
			if err = out.Set(i, j, n); err != nil {
				return nil, fmt.Errorf("%s: %w", opRoundMatrix, err)
			}
		}
	}

	return out, nil
}
