// SPDX-License-Identifier: MIT

package logging

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	out := filepath.Join(t.TempDir(), "log.json")

	logger, err := New(Config{Level: "error", OutputPaths: []string{out}})
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.WarnLevel))
	require.True(t, logger.Core().Enabled(zapcore.ErrorLevel))

	logger, err = New(Config{Level: "debug", Development: true, OutputPaths: []string{out}})
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	require.Error(t, err)
}

func TestEncoding(t *testing.T) {
	require.Equal(t, "console", encodingFormat(true))
	require.Equal(t, "json", encodingFormat(false))
	require.Equal(t, []string{"stderr"}, DefaultConfig().OutputPaths)
}
