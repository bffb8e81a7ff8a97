// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"
)

// JSON encodes v to w followed by a newline. compact disables indentation.
func JSON(w io.Writer, v any, compact bool) error {
	var (
		data []byte
		err  error
	)
	if compact {
		data, err = sonic.Marshal(v)
	} else {
		data, err = sonic.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("render.JSON: %w", err)
	}

	data = append(data, '\n')
	_, err = w.Write(data)

	return err
}
