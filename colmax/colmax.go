// SPDX-License-Identifier: MIT

// Package colmax reduces an integer matrix to the sum of its per-column maxima.
//
// Description:
//
//	For each column j, take max_i M[i,j]; return Σ_j of those maxima.
//	[[1,5,2],[9,0,3]] → 9 + 5 + 3 = 17.
//
// The sum is accumulated in int64, so an int32 matrix cannot overflow it.
//
// Complexity:
//
//	Time   = O(rows·cols)
//	Memory = O(cols) for the maxima vector
//
// Errors:
//   - matrix.ErrNilMatrix: nil input.
//   - matrix.ErrEmptyMatrix: zero rows or zero columns.
package colmax

import (
	"fmt"

	"github.com/katalvlaran/matxor/matrix"
)

const (
	opColumnMaxima = "ColumnMaxima"
	opColumnMaxSum = "ColumnMaxSum"
)

// ColumnMaxima returns maxima[j] = max over rows of m[i,j].
// Rows are scanned in order; the first row seeds every column.
func ColumnMaxima[T matrix.Integer](m *matrix.Dense[T]) ([]T, error) {
	if err := validate(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opColumnMaxima, err)
	}

	maxima := make([]T, m.Cols())
	m.Do(func(i, j int, v T) bool {
		if i == 0 || v > maxima[j] {
			maxima[j] = v
		}
		return true
	})

	return maxima, nil
}

// ColumnMaxSum returns the sum of the per-column maxima of m.
func ColumnMaxSum[T matrix.Integer](m *matrix.Dense[T]) (int64, error) {
	maxima, err := ColumnMaxima(m)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opColumnMaxSum, err)
	}

	return sum(maxima), nil
}

// columnMax scans a single column. Caller guarantees a valid, non-empty m.
func columnMax[T matrix.Integer](m *matrix.Dense[T], j int) (T, error) {
	best, err := m.At(0, j)
	if err != nil {
		return 0, err
	}
	for i := 1; i < m.Rows(); i++ {
		v, err := m.At(i, j)
		if err != nil {
			return 0, err
		}
		if v > best {
			best = v
		}
	}

	return best, nil
}

func sum[T matrix.Integer](vs []T) int64 {
	var total int64
	for _, v := range vs {
		total += int64(v)
	}

	return total
}

// validate runs NotNil → NonEmpty.
func validate[T matrix.Integer](m *matrix.Dense[T]) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}

	return matrix.ValidateNonEmpty(m)
}
