// SPDX-License-Identifier: MIT

// Package render turns matrices into text for humans or JSON for tools.
//
// The cell display rule is chosen by the caller, not by the element type:
// Fixed2 prints "%.2f", Plain prints "%d". Text writes one line per row with
// values separated by single spaces; ColumnMajor renders the transpose.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/matxor/matrix"
)

// ErrUnknownOrder is returned by ParseOrder for unrecognised names.
var ErrUnknownOrder = errors.New("render: unknown iteration order")

// Order selects the iteration order used by Text.
type Order int

const (
	// RowMajor prints each matrix row on its own line.
	RowMajor Order = iota
	// ColumnMajor prints each matrix column on its own line.
	ColumnMajor
)

// String returns the config name of the order.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row"
	case ColumnMajor:
		return "column"
	default:
		return "Order(" + strconv.Itoa(int(o)) + ")"
	}
}

// ParseOrder maps "row" / "column" (case-insensitive) to an Order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "row", "rows", "row-major":
		return RowMajor, nil
	case "column", "columns", "col", "column-major":
		return ColumnMajor, nil
	default:
		return RowMajor, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
	}
}

// CellFormat renders a single cell.
type CellFormat[T matrix.Element] func(T) string

// Fixed2 formats floats with two decimals.
func Fixed2[T matrix.Float](v T) string {
	return strconv.FormatFloat(float64(v), 'f', 2, 64)
}

// Plain formats integers in base 10.
func Plain[T matrix.Integer](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

// Text writes m to w, one line per row (or per column for ColumnMajor),
// cells separated by single spaces.
func Text[T matrix.Element](w io.Writer, m *matrix.Dense[T], cell CellFormat[T], order Order) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("render.Text: %w", err)
	}
	if order == ColumnMajor {
		m = m.Transpose()
	}

	var b strings.Builder
	for _, row := range m.ToRows() {
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(cell(v))
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())

	return err
}
