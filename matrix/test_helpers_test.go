// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the Dense and validator tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matxor/matrix"
)

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense[T matrix.Element](t *testing.T, r, c int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows builds a Dense from literal rows or fails the test.
func MustFromRows[T matrix.Element](t *testing.T, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// Compare asserts that m matches the 2-D slice want exactly; fails the test on mismatch.
func Compare[T matrix.Element](t *testing.T, want [][]T, m *matrix.Dense[T]) {
	t.Helper()
	r, c := m.Shape()
	if len(want) != r {
		t.Fatalf("Rows = %d; want %d", r, len(want))
	}
	var (
		i, j int // loop iterators
		v    T
		err  error
	)
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			v, err = m.At(i, j)
			if err != nil {
				t.Fatalf("At(%d,%d): %v", i, j, err)
			}
			if v != want[i][j] {
				t.Errorf("At(%d,%d) = %v; want %v", i, j, v, want[i][j])
			}
		}
	}
}
