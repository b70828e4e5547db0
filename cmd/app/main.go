package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHttp "github.com/canref/backend/internal/api/http"
	"github.com/canref/backend/internal/cache"
	"github.com/canref/backend/internal/config"
	"github.com/canref/backend/internal/db"
	"github.com/canref/backend/internal/repository"
	"github.com/canref/backend/internal/server"
	"github.com/canref/backend/internal/service"
	"github.com/canref/backend/pkg/logger"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	// Dependencies
	appLogger := logger.SetupLogger(cfg.Env)

	appLogger.Infow("starting reference data api", "env", cfg.Env)
	appLogger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		appLogger.Errorw("mysql connect problem", "error", err)
		os.Exit(1)
	}
	defer func() {
		err = dbMySQL.Close()
		if err != nil {
			appLogger.Errorw("error when closing", "error", err)
		}
	}()
	appLogger.Info("mysql connection done")

	if err := db.Migrate(context.Background(), dbMySQL); err != nil {
		appLogger.Errorw("schema migration failed", "error", err)
		os.Exit(1)
	}

	// Cache is optional: without Redis the services fall through to MySQL.
	listCache := cache.NewNoop()
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Cache)
		if err != nil {
			appLogger.Errorw("redis connect problem, continuing without cache", "error", err)
		} else {
			listCache = cache.NewRedisCache(redisClient, cfg.Cache.TTL)
			appLogger.Info("redis connection done")
		}
	}

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL)
	services := service.NewServices(service.Deps{
		Repos: repos,
		Cache: listCache,
	})
	handlers := apiHttp.NewHandlers(services, cfg)

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			appLogger.Errorw("error occurred while running http server", "error", err)
		}
	}()
	appLogger.Info("server started")

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		appLogger.Errorw("failed to stop server", "error", err)
	}

	appLogger.Info("app stopped")
}
