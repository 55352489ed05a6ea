package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-question-bank/pkg/helpers"
)

// AccessLog writes one structured line per request.
func AccessLog(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		helpers.LogInfo(logger, "http request", logrus.Fields{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       normalizePath(c),
			"status":     c.Writer.Status(),
			"ip":         ipFromCtx(c),
			"latency_ms": time.Since(start).Milliseconds(),
		})
	}
}
