// SPDX-License-Identifier: MIT

// Package generator produces matrices of uniformly distributed float32 values.
//
// Randomness is an injected collaborator: any Source exposing
// Float64() float64 in [0,1) works, including *math/rand.Rand and
// *math/rand/v2.Rand. NewUniformSource gives a seeded gonum-backed stream;
// ConstantSource and SequenceSource are deterministic doubles for tests.
//
// Generate draws exactly one value per cell in row-major order and scales it
// by 100 (see WithScale), so every cell lies in [0, 100).
//
//	src := generator.NewUniformSource(42)
//	a, err := generator.Generate(3, 3, src)
package generator
