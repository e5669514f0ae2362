package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/finapi/internal/logger"
)

// Logger пишет в лог каждый запрос. Приватные ошибки запроса попадают в лог, но не клиенту.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	entry := logger.Component(l, "api", "http")

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     path,
			"status":   c.Writer.Status(),
			"latency":  time.Since(start).String(),
			"clientIP": c.ClientIP(),
		}

		reqEntry := entry.WithFields(fields)
		if privateErrs := c.Errors.ByType(gin.ErrorTypePrivate); len(privateErrs) > 0 {
			reqEntry.WithError(privateErrs.Last()).Error("request failed")
			return
		}

		switch status := c.Writer.Status(); {
		case status >= 500: //nolint:mnd
			reqEntry.Error("request")
		case status >= 400: //nolint:mnd
			reqEntry.Warn("request")
		default:
			reqEntry.Info("request")
		}
	}
}
