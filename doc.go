// SPDX-License-Identifier: MIT

// Package matxor is a small pipeline over random matrices: generate two
// float matrices, round them half-up and XOR them cell by cell, then sum the
// largest value of each column of the result.
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/      generic row-major Dense container, sentinel errors, validators
//	generator/   MatrixGenerator over an injectable U[0,1) Source
//	xorcomb/     round-half-up and element-wise XOR combine
//	colmax/      sum of per-column maxima (sequential and bounded-parallel)
//	pipeline/    orchestrator returning A, B, C and the sum
//	render/      text ("%.2f" / "%d") and JSON presentation
//	cmd/matxor   CLI wrapper configured through MATXOR_* variables
//
// Quick example:
//
//	res, err := pipeline.Run(3, 3, generator.NewUniformSource(42))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.Sum)
//
// Every stage returns errors matched with errors.Is against the matrix
// sentinels (ErrInvalidDimensions, ErrDimensionMismatch, ErrEmptyMatrix) and
// never panics on user input.
package matxor
