package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/siteideas/website-ideas/internal/config"
	"github.com/siteideas/website-ideas/internal/database"
	"github.com/siteideas/website-ideas/internal/idea/repository"
	"github.com/siteideas/website-ideas/internal/idea/service"
	"github.com/siteideas/website-ideas/pkg/logger"
	"github.com/siteideas/website-ideas/pkg/metrics"
)

func main() {
	// initialize logging early; LOG_LEVEL from config is applied once loaded
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	logger.Infof("config loaded: store=%s redis=%v rate_limit=%v log_level=%s",
		cfg.Store.Driver, cfg.Redis.Addr() != "", cfg.RateLimit.Enabled, logger.LevelString())

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var svc service.Service
	switch cfg.Store.Driver {
	case config.StoreMemory:
		logger.Warn("using in-memory store; website ideas are lost on restart")
		svc = service.NewMemoryService()
	default:
		client, err := database.ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5, time.Second)
		if err != nil {
			logger.Fatalf("could not connect to MongoDB: %v", err)
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		col := client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection)
		idxCtx, cancel := context.WithTimeout(ctx, cfg.MongoDB.Timeout)
		if err := repository.NewMongoRepo(col).EnsureIndexes(idxCtx); err != nil {
			logger.Warnf("failed to ensure indexes on %s: %v", cfg.MongoDB.Collection, err)
		}
		cancel()
		svc = service.NewMongoService(col)
		logger.Infof("using MongoDB collection %s.%s", cfg.MongoDB.Database, cfg.MongoDB.Collection)
	}

	var rdb *redis.Client
	if addr := cfg.Redis.Addr(); addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s): %v", addr, err)
		} else {
			logger.Infof("connected to Redis at %s", addr)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.RegisterCollectors(reg)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      newRouter(cfg, svc, rdb, reg),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("starting website ideas service on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
}
