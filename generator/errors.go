// SPDX-License-Identifier: MIT

package generator

import "errors"

var (
	// ErrNilSource indicates that Generate received no randomness source.
	ErrNilSource = errors.New("generator: randomness source is nil")

	// ErrDrawOutOfRange indicates that a Source returned a value outside [0,1)
	// (or NaN). The broken source is surfaced to the caller unchanged.
	ErrDrawOutOfRange = errors.New("generator: draw outside [0,1)")
)
