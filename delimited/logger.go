package delimited

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the delimited package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the delimited package's logger.
// This must be called before any read or write operations.
func SetLogger(l *zap.Logger) {
	logger = l
}

func debugf(msg string, fields ...zap.Field) {
	Logger().Debug(msg, fields...)
}
