package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	global *zap.SugaredLogger
	once   sync.Once
)

// Init builds the process-wide logger. level is one of debug/info/warn/error,
// defaulting to info. Safe to call once at startup.
func Init(level string) {
	once.Do(func() {
		var zapLevel zapcore.Level
		switch level {
		case "debug":
			zapLevel = zapcore.DebugLevel
		case "warn":
			zapLevel = zapcore.WarnLevel
		case "error":
			zapLevel = zapcore.ErrorLevel
		default:
			zapLevel = zapcore.InfoLevel
		}

		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapLevel)
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.OutputPaths = []string{"stdout"}
		cfg.ErrorOutputPaths = []string{"stderr"}

		base, err := cfg.Build(zap.AddCallerSkip(1))
		if err != nil {
			base = zap.NewNop()
		}
		global = base.Sugar()
	})
}

func log() *zap.SugaredLogger {
	if global == nil {
		Init("info")
	}
	return global
}

func Debugf(_ context.Context, format string, args ...interface{}) {
	log().Debugf(format, args...)
}

func Infof(_ context.Context, format string, args ...interface{}) {
	log().Infof(format, args...)
}

func Warnf(_ context.Context, format string, args ...interface{}) {
	log().Warnf(format, args...)
}

func Error(_ context.Context, msg string) {
	log().Error(msg)
}

func Errorf(_ context.Context, format string, args ...interface{}) {
	log().Errorf(format, args...)
}

func Fatal(_ context.Context, err error) {
	log().Fatal(err)
}
