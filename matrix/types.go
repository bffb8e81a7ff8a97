// SPDX-License-Identifier: MIT

// Package matrix: element constraints shared by Dense and the stage packages.
// This file intentionally contains ONLY type-level declarations; storage lives
// in impl_dense.go, errors in errors.go.
package matrix

// Float is the set of floating-point cell types (generated matrices).
type Float interface {
	~float32 | ~float64
}

// Integer is the set of signed integer cell types (combined matrices).
// Only signed widths are admitted: XOR results are two's-complement values
// and may be negative.
type Integer interface {
	~int32 | ~int64
}

// Element is any cell type a Dense may hold.
type Element interface {
	Float | Integer
}

// Shaped is the minimal view validators need: a row and a column count.
// *Dense[T] satisfies it for every T.
type Shaped interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int
}
