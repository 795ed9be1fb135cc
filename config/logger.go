package config

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewLogger builds the application logger. Level comes from LOG_LEVEL and
// falls back to info on anything unparseable.
func NewLogger(level string) *logrus.Logger {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	return &logrus.Logger{
		Out:       os.Stdout,
		Formatter: &logrus.TextFormatter{DisableLevelTruncation: true},
		Hooks:     make(logrus.LevelHooks),
		Level:     lvl,
	}
}

// RequestLogger logs every request with its latency and flags slow ones.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		entry := log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": latency,
		})
		if latency > 200*time.Millisecond {
			entry.Warn("slow request")
			return
		}
		entry.Debug("request")
	}
}
