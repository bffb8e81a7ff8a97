// SPDX-License-Identifier: MIT

// Package xorcomb rounds float matrices to int32 and combines them cell by
// cell with bitwise XOR.
//
// Rounding law: round half up, i.e. floor(x + 0.5) evaluated without the
// intermediate addition losing precision. 2.5 → 3, -2.5 → -2, 0.49999997 → 0.
// Results beyond the int32 range saturate to math.MinInt32 / math.MaxInt32.
// NaN and ±Inf are rejected with matrix.ErrNaNInf.
//
// XOR acts on the two's-complement representation, so negative operands are
// well defined: -1 ^ 0 == -1, -2 ^ 1 == -1.
//
// Every function returns a freshly allocated matrix; inputs are never modified.
package xorcomb
