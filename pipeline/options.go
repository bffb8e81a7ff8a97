// SPDX-License-Identifier: MIT

package pipeline

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/matxor/generator"
)

// DefaultWorkers keeps the column reduction sequential.
const DefaultWorkers = 1

const panicWorkersInvalid = "pipeline: WithWorkers: workers must be >= 1"

// Option configures Run.
type Option func(*Options)

// Options holds Run settings. Fields are unexported; use Option funcs.
type Options struct {
	logger  *zap.Logger
	genOpts []generator.Option
	workers int
}

// WithLogger routes stage logs to l. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithScale forwards a generation scale to both matrices (see generator.WithScale).
func WithScale(scale float64) Option {
	opt := generator.WithScale(scale)
	return func(o *Options) { o.genOpts = append(o.genOpts, opt) }
}

// WithWorkers selects the parallel column reducer when n > 1.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		logger:  zap.NewNop(),
		workers: DefaultWorkers,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
