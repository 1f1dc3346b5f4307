package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/siteideas/website-ideas/handlers"
	"github.com/siteideas/website-ideas/internal/config"
	"github.com/siteideas/website-ideas/internal/idea/handler"
	"github.com/siteideas/website-ideas/internal/idea/service"
	"github.com/siteideas/website-ideas/pkg/middleware"
)

// newRouter wires every HTTP route of the service. rdb may be nil.
func newRouter(cfg *config.Config, svc service.Service, rdb *redis.Client, gatherer prometheus.Gatherer) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	checks := map[string]handlers.Check{"store": svc.Ready}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	handlers.RegisterHealth(r, checks, 2*time.Second)
	handlers.RegisterSwagger(r)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := r.Group("/api")
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			api.Use(middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			api.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}
	handler.RegisterIdeaRoutes(api, svc)
	return r
}
