package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/siteideas/website-ideas/pkg/logger"
)

// RequestLogger writes one line per request through the process logger.
// Server errors are logged at error level, client errors at warn.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		format := "%s %s -> %d (%s) client=%s"
		args := []interface{}{c.Request.Method, c.Request.URL.Path, status, time.Since(start), c.ClientIP()}
		switch {
		case status >= 500:
			logger.Errorf(format, args...)
		case status >= 400:
			logger.Warnf(format, args...)
		default:
			logger.Infof(format, args...)
		}
	}
}
