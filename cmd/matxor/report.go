// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/matxor/pipeline"
	"github.com/katalvlaran/matxor/render"
)

// report is the JSON document emitted with MATXOR_FORMAT=json.
type report struct {
	Seed uint64      `json:"seed"`
	Rows int         `json:"rows"`
	Cols int         `json:"cols"`
	A    [][]float32 `json:"a"`
	B    [][]float32 `json:"b"`
	C    [][]int32   `json:"c"`
	Sum  int64       `json:"sum"`
}

func newReport(seed uint64, res *pipeline.Result) report {
	return report{
		Seed: seed,
		Rows: res.C.Rows(),
		Cols: res.C.Cols(),
		A:    res.A.ToRows(),
		B:    res.B.ToRows(),
		C:    res.C.ToRows(),
		Sum:  res.Sum,
	}
}

// writeText prints the three matrices and the sum in the classic layout.
func writeText(w io.Writer, res *pipeline.Result, orderName string) error {
	order, err := render.ParseOrder(orderName)
	if err != nil {
		return err
	}

	sections := []struct {
		title string
		write func() error
	}{
		{"Matrix A:", func() error { return render.Text(w, res.A, render.Fixed2[float32], order) }},
		{"Matrix B:", func() error { return render.Text(w, res.B, render.Fixed2[float32], order) }},
		{"Result Matrix C (A XOR B):", func() error { return render.Text(w, res.C, render.Plain[int32], order) }},
	}
	for _, s := range sections {
		if _, err = fmt.Fprintln(w, s.title); err != nil {
			return err
		}
		if err = s.write(); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(w, "Sum of maximum elements in each column: %d\n", res.Sum)
	return err
}
