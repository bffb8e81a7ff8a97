// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/matxor/generator"
	"github.com/katalvlaran/matxor/internal/config"
	"github.com/katalvlaran/matxor/internal/logging"
	"github.com/katalvlaran/matxor/pipeline"
	"github.com/katalvlaran/matxor/render"
)

// deps are the collaborators the command needs from the outside world.
type deps struct {
	newSource func(seed uint64) generator.Source
	now       func() time.Time
}

func defaultDeps() deps {
	return deps{
		newSource: func(seed uint64) generator.Source { return generator.NewUniformSource(seed) },
		now:       time.Now,
	}
}

func newRootCmd(d deps) *cobra.Command {
	return &cobra.Command{
		Use:   "matxor",
		Short: "XOR two random matrices and sum the column maxima",
		Long: `matxor generates two random float matrices with values in [0, 100),
rounds them half-up to integers, XORs them cell by cell, and prints the sum of
the largest value in each column of the result.

Configuration (environment):
  MATXOR_ROWS, MATXOR_COLS   matrix shape (default 3x3)
  MATXOR_SEED                random seed (0 = derive from clock)
  MATXOR_FORMAT              text | json
  MATXOR_ORDER               row | column
  MATXOR_WORKERS             parallel column reduction when > 1
  MATXOR_LOG_LEVEL           debug | info | warn | error
  MATXOR_LOG_DEV             console logs when true`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, d)
		},
	}
}

func run(cmd *cobra.Command, d deps) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Level,
		Development: cfg.Development,
		OutputPaths: logging.DefaultConfig().OutputPaths,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(d.now().UnixNano())
	}

	res, err := pipeline.Run(cfg.Rows, cfg.Cols, d.newSource(seed),
		pipeline.WithLogger(logger),
		pipeline.WithWorkers(cfg.Workers),
	)
	if err != nil {
		logger.Debug("pipeline failed", zap.Error(err))
		return err
	}
	logger.Info("pipeline finished",
		zap.Uint64("seed", seed),
		zap.Int("rows", cfg.Rows),
		zap.Int("cols", cfg.Cols),
		zap.Int64("sum", res.Sum),
	)

	// Render fully before touching stdout so a failure prints nothing partial.
	var buf bytes.Buffer
	if cfg.JSON() {
		err = render.JSON(&buf, newReport(seed, res), false)
	} else {
		err = writeText(&buf, res, cfg.Order)
	}
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return err
}
