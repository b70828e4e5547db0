package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envProd = "prod"

var global = zap.NewNop()

// SetupLogger builds the process-wide logger: human-readable console output
// in development, JSON at info level in prod. The sugared logger is returned
// for wiring code; handlers and repositories use the package-level helpers.
func SetupLogger(env string) *zap.SugaredLogger {
	var cfg zap.Config
	if env == envProd {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	global = l
	return l.Sugar()
}

// Logger exposes the underlying zap logger for middleware that needs it
// (ginzap request logging and panic recovery).
func Logger() *zap.Logger {
	return global
}

func Debug(msg string, fields ...zap.Field) {
	global.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	global.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	global.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	global.Error(msg, fields...)
}
