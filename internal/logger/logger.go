// Package logger builds the zap logger used by the CLI and the services.
package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to w. Verbose enables debug output,
// timestamps and caller information.
func New(verbose bool, w io.Writer) *zap.SugaredLogger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.CallerKey = ""
	encoderConfig.TimeKey = ""

	level := zapcore.InfoLevel
	var opts []zap.Option
	if verbose {
		level = zapcore.DebugLevel
		encoderConfig.TimeKey = "T"
		encoderConfig.CallerKey = "C"
		opts = append(opts, zap.AddCaller())
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return zap.New(core, opts...).Sugar()
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
