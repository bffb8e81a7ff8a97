// SPDX-License-Identifier: MIT

package generator

import "math"

// DefaultScale maps a unit draw onto [0, 100).
const DefaultScale = 100.0

const panicScaleInvalid = "generator: WithScale: scale must be finite and > 0"

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options holds generation settings. Fields are unexported; use Option funcs.
type Options struct {
	scale float32
}

// WithScale sets the multiplier applied to each U[0,1) draw.
// Panics if scale is not finite or not positive.
func WithScale(scale float64) Option {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 || scale > math.MaxFloat32 {
		panic(panicScaleInvalid)
	}

	return func(o *Options) { o.scale = float32(scale) }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{scale: DefaultScale}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
