// SPDX-License-Identifier: MIT

package generator

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matxor/matrix"
)

const opGenerate = "Generate"

// Generate builds a rows×cols matrix whose cells are src draws times the
// configured scale (100 by default).
//
// Implementation:
//   - Stage 1: validate shape (ErrInvalidDimensions) and source (ErrNilSource).
//   - Stage 2: draw one value per cell in row-major order; reject draws
//     outside [0,1) with ErrDrawOutOfRange.
//   - Stage 3: scale in float32. When float32 rounding lands exactly on the
//     scale, step down to the largest float32 below it so cells stay in [0, scale).
//
// No side effects beyond consuming len(rows*cols) draws from src.
// Complexity: O(rows*cols).
func Generate(rows, cols int, src Source, opts ...Option) (*matrix.Dense[float32], error) {
	o := gatherOptions(opts...)

	out, err := matrix.NewDense[float32](rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", opGenerate, rows, cols, err)
	}
	if src == nil {
		return nil, fmt.Errorf("%s: %w", opGenerate, ErrNilSource)
	}

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			u := src.Float64()
			if !(u >= 0 && u < 1) { // also catches NaN
				return nil, fmt.Errorf("%s: cell (%d,%d) drew %v: %w", opGenerate, i, j, u, ErrDrawOutOfRange)
			}
			if err = out.Set(i, j, scaleDraw(u, o.scale)); err != nil {
				return nil, fmt.Errorf("%s: %w", opGenerate, err)
			}
		}
	}

	return out, nil
}

// scaleDraw maps u∈[0,1) to [0, scale) in float32.
func scaleDraw(u float64, scale float32) float32 {
	v := float32(u * float64(scale))
	if v >= scale {
		v = math.Nextafter32(scale, 0)
	}

	return v
}
