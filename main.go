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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hellodesc/hellodesc/handlers"
	"github.com/hellodesc/hellodesc/internal/config"
	"github.com/hellodesc/hellodesc/internal/description/generator"
	"github.com/hellodesc/hellodesc/internal/description/handler"
	"github.com/hellodesc/hellodesc/internal/description/service"
	"github.com/hellodesc/hellodesc/pkg/logger"
	"github.com/hellodesc/hellodesc/pkg/metrics"
	"github.com/hellodesc/hellodesc/pkg/middleware"
)

var startTime = time.Now()

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	logger.Infof("config loaded: store=%s azure_openai=%v", cfg.Store.Backend, cfg.AzureOpenAI.Configured())

	ctx := context.Background()

	// store and completion clients are created once and shared by all requests
	store, closeStore, err := service.FromConfig(ctx, cfg)
	if err != nil {
		logger.Fatalf("failed to open %s store: %v", cfg.Store.Backend, err)
	}
	defer closeStore()

	var gen *generator.Generator
	if client, err := generator.NewAzureClient(cfg.AzureOpenAI); err != nil {
		logger.Warnf("completion client not configured (%v); every description will use the fallback text", err)
		gen = generator.New(nil, cfg.AzureOpenAI.Deployment)
	} else {
		gen = generator.New(client, cfg.AzureOpenAI.Deployment)
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	r := newRouter(cfg, gen, store)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("Starting hellodesc on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Infof("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
}

// newRouter wires the operational endpoints, the form pages and swagger.
func newRouter(cfg *config.Config, gen handler.Describer, store *service.Service) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestMetrics())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: a store is always present once we get here; the completion
	// client is the only optional dependency
	r.GET("/ready", func(c *gin.Context) {
		deps := gin.H{"store": store.Backend(), "completion": cfg.AzureOpenAI.Configured()}
		uptime := time.Since(startTime).String()
		if !cfg.AzureOpenAI.Configured() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": uptime})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": uptime})
	})

	handler.RegisterRoutes(r, handler.NewHandler(gen, store))
	handlers.RegisterSwagger(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
