// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/matxor/generator"
	"github.com/katalvlaran/matxor/pipeline"
	"github.com/katalvlaran/matxor/render"
)

// ExampleRun walks the deterministic 2×2 scenario and renders every artifact.
func ExampleRun() {
	res, err := pipeline.Run(2, 2, generator.NewSequenceSource(0.1, 0.2, 0.3, 0.4, 0.05, 0.2, 0.33, 0.01))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_ = render.Text(os.Stdout, res.A, render.Fixed2[float32], render.RowMajor)
	_ = render.Text(os.Stdout, res.B, render.Fixed2[float32], render.RowMajor)
	_ = render.Text(os.Stdout, res.C, render.Plain[int32], render.RowMajor)
	fmt.Println("sum:", res.Sum)
	// Output:
	// 10.00 20.00
	// 30.00 40.00
	// 5.00 20.00
	// 33.00 1.00
	// 15 0
	// 63 41
	// sum: 104
}
