// SPDX-License-Identifier: MIT

// Package pipeline sequences the matxor stages: generate A, generate B,
// combine them with rounding XOR into C, and reduce C to the sum of its
// column maxima.
//
// Run performs no rendering. It returns every intermediate artifact so a
// presentation layer can show them, and it returns nothing but the error when
// any stage fails.
package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/matxor/colmax"
	"github.com/katalvlaran/matxor/generator"
	"github.com/katalvlaran/matxor/matrix"
	"github.com/katalvlaran/matxor/xorcomb"
)

// Stage names, used as error prefixes and log fields.
const (
	StageGenerateA = "generate A"
	StageGenerateB = "generate B"
	StageCombine   = "combine"
	StageReduce    = "reduce"
)

// Result carries every artifact of one run.
type Result struct {
	A   *matrix.Dense[float32] // first generated matrix
	B   *matrix.Dense[float32] // second generated matrix
	C   *matrix.Dense[int32]   // round(A) XOR round(B)
	Sum int64                  // Σ_j max_i C[i,j]
}

// Run executes the pipeline over a rows×cols shape, drawing A and then B
// from src.
//
// Errors from any stage are returned wrapped with the stage name; errors.Is
// still matches the stage sentinel (matrix.ErrInvalidDimensions,
// matrix.ErrDimensionMismatch, matrix.ErrEmptyMatrix, generator.ErrDrawOutOfRange...).
func Run(rows, cols int, src generator.Source, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	log := o.logger.With(zap.Int("rows", rows), zap.Int("cols", cols))

	a, err := generator.Generate(rows, cols, src, o.genOpts...)
	if err != nil {
		return nil, stageError(log, StageGenerateA, err)
	}
	log.Debug("stage done", zap.String("stage", StageGenerateA))

	b, err := generator.Generate(rows, cols, src, o.genOpts...)
	if err != nil {
		return nil, stageError(log, StageGenerateB, err)
	}
	log.Debug("stage done", zap.String("stage", StageGenerateB))

	c, err := xorcomb.Combine(a, b)
	if err != nil {
		return nil, stageError(log, StageCombine, err)
	}
	log.Debug("stage done", zap.String("stage", StageCombine))

	var sum int64
	if o.workers > 1 {
		sum, err = colmax.ColumnMaxSumParallel(context.Background(), c, o.workers)
	} else {
		sum, err = colmax.ColumnMaxSum(c)
	}
	if err != nil {
		return nil, stageError(log, StageReduce, err)
	}
	log.Debug("stage done",
		zap.String("stage", StageReduce),
		zap.Int64("sum", sum),
		zap.Int("workers", o.workers),
	)

	return &Result{A: a, B: b, C: c, Sum: sum}, nil
}

// stageError logs the failure and prefixes it with the stage name.
func stageError(log *zap.Logger, stage string, err error) error {
	log.Debug("stage failed", zap.String("stage", stage), zap.Error(err))

	return fmt.Errorf("%s: %w", stage, err)
}
