package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing debug output to stderr when verbose
// is set, and a no-op logger otherwise. Stdout is reserved for passwords.
func New(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
