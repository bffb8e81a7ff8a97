// SPDX-License-Identifier: MIT

package colmax_test

import (
	"fmt"

	"github.com/katalvlaran/matxor/colmax"
	"github.com/katalvlaran/matxor/matrix"
)

func ExampleColumnMaxSum() {
	m, _ := matrix.NewFromRows([][]int32{
		{1, 5, 2},
		{9, 0, 3},
	})
	sum, err := colmax.ColumnMaxSum(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sum)
	// Output: 17
}
