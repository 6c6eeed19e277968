package logging

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestBuildLevels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"nonsense", zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Level = tt.level
			logger, err := Build(cfg)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestBuildFileOutput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Output = filepath.Join(t.TempDir(), "calc.log")

	logger, err := Build(cfg)
	require.NoError(t, err)
	logger.Warn("written")
	assert.NoError(t, logger.Sync())
	assert.FileExists(t, cfg.Output)
}

func TestBuildBadFileOutput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = filepath.Join(t.TempDir(), "missing", "calc.log")

	_, err := Build(cfg)
	assert.Error(t, err)
}
