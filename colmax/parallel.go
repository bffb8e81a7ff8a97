// SPDX-License-Identifier: MIT

package colmax

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/matxor/matrix"
)

const opColumnMaxSumParallel = "ColumnMaxSumParallel"

// ColumnMaxSumParallel is ColumnMaxSum with one task per column, at most
// workers tasks in flight. Each task writes only its own slot of the maxima
// vector; the sum is taken after every task has finished, so there is no
// shared accumulator.
//
// workers < 1 is treated as 1. A cancelled ctx stops scheduling new columns
// and its error is returned.
func ColumnMaxSumParallel[T matrix.Integer](ctx context.Context, m *matrix.Dense[T], workers int) (int64, error) {
	if err := validate(m); err != nil {
		return 0, fmt.Errorf("%s: %w", opColumnMaxSumParallel, err)
	}
	if workers < 1 {
		workers = 1
	}

	maxima := make([]T, m.Cols())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for j := 0; j < m.Cols(); j++ {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := columnMax(m, j)
			if err != nil {
				return err
			}
			maxima[j] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("%s: %w", opColumnMaxSumParallel, err)
	}
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", opColumnMaxSumParallel, err)
	}

	return sum(maxima), nil
}
