package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds a SugaredLogger writing to stdout and a rotating log file
// under dir. Debug enables debug-level output and caller annotations.
//
// Parameters:
//   - dir: directory for the rotating log file
//   - debug: if true, logs at debug level
//
// Returns:
//   - *zap.SugaredLogger: the configured logger
//   - error: error if the log directory cannot be created
func New(dir string, debug bool) (*zap.SugaredLogger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(encoderCfg)

	fileSink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(dir, "playground.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     7, // days
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
		zapcore.NewCore(encoder, fileSink, level),
	)

	return zap.New(core, zap.AddCaller()).Sugar(), nil
}

// Nop returns a logger that discards everything. Useful in tests.
//
// Returns:
//   - *zap.SugaredLogger: a no-op logger
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
