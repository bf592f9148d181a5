package logging

import (
	"fmt"

	"github.com/nconklindev/stockcell/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger. With a log file configured it writes
// JSON there. Otherwise it logs to stderr when console is true and is
// silent when it is false (the TUI owns the terminal).
func New(cfg config.LogConfig, console bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var zc zap.Config
	switch {
	case cfg.File != "":
		zc = zap.NewProductionConfig()
		zc.OutputPaths = []string{cfg.File}
		zc.ErrorOutputPaths = []string{cfg.File}
	case console:
		zc = zap.NewDevelopmentConfig()
		zc.DisableStacktrace = true
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return zap.NewNop(), nil
	}

	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
