package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// Check reports whether one dependency is usable.
type Check func(ctx context.Context) error

// RegisterHealth registers the liveness and readiness endpoints.
// /ready returns 200 only when every check passes within timeout.
func RegisterHealth(r *gin.Engine, checks map[string]Check, timeout time.Duration) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		ready := true
		deps := make(map[string]bool, len(names))
		for _, name := range names {
			ok := checks[name](ctx) == nil
			deps[name] = ok
			ready = ready && ok
		}

		body := gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()}
		if !ready {
			body["status"] = "not_ready"
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
		c.JSON(http.StatusOK, body)
	})
}
