package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/siteideas/website-ideas/pkg/metrics"
	"golang.org/x/time/rate"
)

const MsgRateLimited = "Rate limit exceeded"

// clientKey identifies the caller for rate limiting purposes.
func clientKey(c *gin.Context) string {
	ip := c.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	return "ip:" + ip
}

func reject(c *gin.Context, retryAfter string) {
	c.Header("Retry-After", retryAfter)
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"success": false, "data": nil, "message": MsgRateLimited})
}

// RateLimitMiddleware returns a Gin middleware enforcing an in-memory
// token bucket per client IP. rps is the refill rate, burst the bucket size.
// Each call gets its own limiter set.
func RateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	var limiters sync.Map // map[string]*rate.Limiter
	return func(c *gin.Context) {
		v, _ := limiters.LoadOrStore(clientKey(c), rate.NewLimiter(rate.Limit(rps), burst))
		if !v.(*rate.Limiter).Allow() {
			metrics.RateLimitRejected.WithLabelValues("memory").Inc()
			reject(c, "1")
			return
		}
		metrics.RateLimitAllowed.WithLabelValues("memory").Inc()
		c.Next()
	}
}
