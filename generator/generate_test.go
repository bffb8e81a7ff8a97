// SPDX-License-Identifier: MIT
package generator_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/matxor/generator"
	"github.com/katalvlaran/matxor/matrix"
	"github.com/stretchr/testify/require"
)

// TestGenerateShapeAndRange checks dimensions and the [0,100) bound over many shapes.
func TestGenerateShapeAndRange(t *testing.T) {
	shapes := [][2]int{{1, 1}, {3, 3}, {2, 5}, {7, 1}, {16, 16}}
	for k, sh := range shapes {
		src := generator.NewUniformSource(uint64(k + 1))
		m, err := generator.Generate(sh[0], sh[1], src)
		require.NoError(t, err)
		require.Equal(t, sh[0], m.Rows())
		require.Equal(t, sh[1], m.Cols())

		m.Do(func(i, j int, v float32) bool {
			require.GreaterOrEqualf(t, v, float32(0), "cell (%d,%d)", i, j)
			require.Lessf(t, v, float32(100), "cell (%d,%d)", i, j)
			return true
		})
	}
}

// TestGenerateInvalidDimensions rejects non-positive rows or cols.
func TestGenerateInvalidDimensions(t *testing.T) {
	src := generator.ConstantSource(0.5)
	for _, sh := range [][2]int{{0, 3}, {3, 0}, {-1, 2}, {0, 0}} {
		m, err := generator.Generate(sh[0], sh[1], src)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		require.Nil(t, m)
	}
}

// TestGenerateOversizedShape returns an error for shapes whose cell count
// overflows int, without drawing from the source.
func TestGenerateOversizedShape(t *testing.T) {
	src := generator.NewSequenceSource(0.5)
	for _, sh := range [][2]int{{math.MaxInt/2 + 1, 4}, {4, math.MaxInt/4 + 1}, {math.MaxInt32, math.MaxInt32}} {
		m, err := generator.Generate(sh[0], sh[1], src)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		require.Nil(t, m)
	}
}

// TestGenerateConstantHalf pins the deterministic scenario: 0.5 → 50.0 everywhere.
func TestGenerateConstantHalf(t *testing.T) {
	m, err := generator.Generate(2, 2, generator.ConstantSource(0.5))
	require.NoError(t, err)
	require.Equal(t, [][]float32{{50, 50}, {50, 50}}, m.ToRows())
}

// TestGenerateRowMajorDraws ensures one draw per cell in row-major order.
func TestGenerateRowMajorDraws(t *testing.T) {
	src := generator.NewSequenceSource(0.01, 0.02, 0.03, 0.04, 0.05, 0.06)
	m, err := generator.Generate(2, 3, src)
	require.NoError(t, err)
	require.Equal(t, [][]float32{{1, 2, 3}, {4, 5, 6}}, m.ToRows())
}

// TestGenerateDeterministicSeed checks that equal seeds give equal matrices
// and that consecutive generations from one source differ.
func TestGenerateDeterministicSeed(t *testing.T) {
	a1, err := generator.Generate(3, 3, generator.NewUniformSource(7))
	require.NoError(t, err)
	a2, err := generator.Generate(3, 3, generator.NewUniformSource(7))
	require.NoError(t, err)
	require.Equal(t, a1.ToRows(), a2.ToRows())

	src := generator.NewUniformSource(7)
	first, err := generator.Generate(3, 3, src)
	require.NoError(t, err)
	second, err := generator.Generate(3, 3, src)
	require.NoError(t, err)
	require.NotEqual(t, first.ToRows(), second.ToRows())
}

// TestGenerateAcceptsStdlibRand ensures *math/rand.Rand satisfies Source.
func TestGenerateAcceptsStdlibRand(t *testing.T) {
	m, err := generator.Generate(2, 2, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
}

// TestGenerateUpperEdgeStaysBelowScale covers the float32 rounding edge:
// the largest float64 below 1 times 100 rounds to 100 in float32.
func TestGenerateUpperEdgeStaysBelowScale(t *testing.T) {
	edge := math.Nextafter(1, 0)
	m, err := generator.Generate(1, 1, generator.ConstantSource(edge))
	require.NoError(t, err)

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Less(t, v, float32(100))
	require.Equal(t, math.Nextafter32(100, 0), v)
}

// TestGenerateBadSource surfaces broken sources instead of clamping them.
func TestGenerateBadSource(t *testing.T) {
	_, err := generator.Generate(2, 2, nil)
	require.ErrorIs(t, err, generator.ErrNilSource)

	for _, u := range []float64{1, 1.5, -0.1, math.NaN()} {
		_, err = generator.Generate(2, 2, generator.ConstantSource(u))
		require.ErrorIs(t, err, generator.ErrDrawOutOfRange, "draw %v", u)
	}
}

// TestWithScale applies a custom multiplier and rejects nonsense values.
func TestWithScale(t *testing.T) {
	m, err := generator.Generate(1, 2, generator.ConstantSource(0.25), generator.WithScale(8))
	require.NoError(t, err)
	require.Equal(t, [][]float32{{2, 2}}, m.ToRows())

	require.Panics(t, func() { generator.WithScale(0) })
	require.Panics(t, func() { generator.WithScale(-3) })
	require.Panics(t, func() { generator.WithScale(math.Inf(1)) })
}

// TestSequenceSourceWraps replays draws cyclically; empty means zero.
func TestSequenceSourceWraps(t *testing.T) {
	s := generator.NewSequenceSource(0.1, 0.2)
	require.Equal(t, []float64{0.1, 0.2, 0.1}, []float64{s.Float64(), s.Float64(), s.Float64()})

	require.Zero(t, generator.NewSequenceSource().Float64())
}
