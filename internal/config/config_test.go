// SPDX-License-Identifier: MIT

package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matxor/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
	require.False(t, cfg.JSON())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MATXOR_ROWS", "4")
	t.Setenv("MATXOR_COLS", "2")
	t.Setenv("MATXOR_SEED", "99")
	t.Setenv("MATXOR_WORKERS", "3")
	t.Setenv("MATXOR_FORMAT", "JSON")
	t.Setenv("MATXOR_ORDER", "column")
	t.Setenv("MATXOR_LOG_LEVEL", "debug")
	t.Setenv("MATXOR_LOG_DEV", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Rows)
	require.Equal(t, 2, cfg.Cols)
	require.Equal(t, uint64(99), cfg.Seed)
	require.Equal(t, 3, cfg.Workers)
	require.True(t, cfg.JSON())
	require.Equal(t, "column", cfg.Order)
	require.Equal(t, "debug", cfg.Level)
	require.True(t, cfg.Development)
}

func TestLoadDoesNotCheckDimensions(t *testing.T) {
	t.Setenv("MATXOR_ROWS", "0")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 0, cfg.Rows)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name, key, val string
	}{
		{"format", "MATXOR_FORMAT", "yaml"},
		{"order", "MATXOR_ORDER", "diagonal"},
		{"workers", "MATXOR_WORKERS", "0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			_, err := config.Load()
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	t.Run("unparsable", func(t *testing.T) {
		t.Setenv("MATXOR_ROWS", "three")
		_, err := config.Load()
		require.Error(t, err)
	})
}
