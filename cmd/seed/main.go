package main

import (
	"context"
	"os"

	"github.com/canref/backend/internal/config"
	"github.com/canref/backend/internal/db"
	"github.com/canref/backend/internal/repository"
	"github.com/canref/backend/internal/seed"
	"github.com/canref/backend/pkg/logger"
)

func main() {
	cfg := config.MustLoad()
	appLogger := logger.SetupLogger(cfg.Env)

	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		appLogger.Errorw("mysql connect problem", "error", err)
		os.Exit(1)
	}
	defer dbMySQL.Close()

	ctx := context.Background()
	if err := db.Migrate(ctx, dbMySQL); err != nil {
		appLogger.Errorw("schema migration failed", "error", err)
		os.Exit(1)
	}

	repos := repository.NewRepositories(dbMySQL)
	if err := seed.Run(ctx, repos); err != nil {
		appLogger.Errorw("seeding failed", "error", err)
		os.Exit(1)
	}

	appLogger.Info("seeding done")
}
