// @title Project Review API
// @version 1.0
// @description Project, plan and report review lifecycle.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/project-review/internal/api/handlers"
	"github.com/linskybing/project-review/internal/api/middleware"
	"github.com/linskybing/project-review/internal/api/routes"
	"github.com/linskybing/project-review/internal/application"
	"github.com/linskybing/project-review/internal/config"
	"github.com/linskybing/project-review/internal/config/db"
	"github.com/linskybing/project-review/internal/cron"
	"github.com/linskybing/project-review/internal/infra/cache"
	"github.com/linskybing/project-review/internal/infra/storage"
	"github.com/linskybing/project-review/internal/repository"
	"github.com/linskybing/project-review/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	zlog, err := logger.New(config.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	// Initialize JWT signing key
	middleware.Init()

	// Connect and migrate
	db.Init(zlog)
	repos := repository.NewRepositories(db.DB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis and MinIO are optional: without them views are not counted and
	// stored objects are not cleaned up on delete.
	var views repository.ViewCounter
	if rdb, err := cache.New(); err != nil {
		zlog.Warn("redis unavailable, view counting disabled", zap.Error(err))
	} else {
		defer func() { _ = rdb.Close() }()
		views = repository.NewRedisViewCounter(rdb, config.ViewCountTTL)
	}

	var objects repository.ObjectStore
	if mc, err := storage.NewMinio(ctx, zlog); err != nil {
		zlog.Warn("minio unavailable, object cleanup disabled", zap.Error(err))
	} else {
		objects = repository.NewMinioObjectStore(mc, config.MinioBucket)
	}

	services := application.New(repos, zlog, views, objects)
	if objects != nil && config.ObjectSweepInterval > 0 {
		cron.StartObjectSweep(ctx, services.Project, config.ObjectSweepInterval, zlog)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware(zlog))

	routes.RegisterRoutes(router, handlers.New(services, zlog))

	srv := &http.Server{
		Addr:    ":" + config.ServerPort,
		Handler: router,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
		<-sigChan
		zlog.Info("shutdown signal")

		shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zlog.Error("graceful shutdown failed", zap.Error(err))
		}
		cancel()
	}()

	zlog.Info("starting API server", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
