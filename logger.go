package benjson

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the logger used for transcode instrumentation, such as the
// byte counts reported after a completed transcode. It is a no-op logger by
// default: the core never renders errors or diagnostics itself.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger installs the instrumentation logger.
// Call it before the first Transcode.
func SetLogger(l *zap.Logger) {
	logger = l
}
