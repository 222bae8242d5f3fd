package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Run("console only", func(t *testing.T) {
		l, err := New(Config{Mode: "production"})
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zap.DebugLevel))
	})

	t.Run("development enables debug", func(t *testing.T) {
		l, err := New(Config{Mode: "development"})
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zap.DebugLevel))
	})

	t.Run("file output writes json lines", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "catalog.log")
		l, err := New(Config{Mode: "production", FileEnable: true, Filename: file, MaxSizeMB: 1})
		require.NoError(t, err)

		l.Info("product saved", zap.String("product_id", "p1"))
		_ = l.Sync()

		data, err := os.ReadFile(file)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"product_id":"p1"`)
	})
}

func TestInit_ReplacesGlobals(t *testing.T) {
	l, flush, err := Init(Config{Mode: "production"})
	require.NoError(t, err)
	defer flush()

	assert.Same(t, l, zap.L())
}
