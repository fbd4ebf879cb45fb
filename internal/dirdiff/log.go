package dirdiff

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a console logger on stderr when debug is set,
// and a no-op logger otherwise.
func NewLogger(debug bool) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	cfg.DisableStacktrace = true

	return buildLogger(cfg, os.Stderr)
}

// buildLogger builds cfg, reporting a failure to errOut before falling back
// to a no-op logger.
func buildLogger(cfg zap.Config, errOut io.Writer) *zap.Logger {
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(errOut, "debug logging disabled: building logger: %v\n", err)

		return zap.NewNop()
	}

	return logger
}
