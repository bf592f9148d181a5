package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nconklindev/stockcell/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stockcell.log")

	logger, err := New(config.LogConfig{Level: "info", File: path}, false)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("import complete")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"import complete"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_SilentWithoutConsole(t *testing.T) {
	logger, err := New(config.LogConfig{Level: "debug"}, false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestNew_ConsoleLevel(t *testing.T) {
	logger, err := New(config.LogConfig{Level: "warn"}, true)
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud"}, true)
	assert.Error(t, err)
}
