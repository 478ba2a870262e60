package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agroklass/SmartFarm_Go/internal/catalog"
	"github.com/agroklass/SmartFarm_Go/internal/config"
	"github.com/agroklass/SmartFarm_Go/internal/database"
	"github.com/agroklass/SmartFarm_Go/internal/database/postgres"
	"github.com/agroklass/SmartFarm_Go/internal/farm"
	"github.com/agroklass/SmartFarm_Go/internal/inventory"
	"github.com/agroklass/SmartFarm_Go/internal/logger"
	"github.com/agroklass/SmartFarm_Go/internal/pet"
	"github.com/agroklass/SmartFarm_Go/internal/progression"
	"github.com/agroklass/SmartFarm_Go/internal/server"
	"github.com/agroklass/SmartFarm_Go/internal/task"
	"github.com/agroklass/SmartFarm_Go/internal/user"
)

const (
	dbMaxConnIdleTime = 5 * time.Minute
	dbMaxConnLifetime = 30 * time.Minute
	shutdownTimeout   = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, dbMaxConnIdleTime, dbMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	farmRepo := postgres.NewFarmRepository(pool)
	petRepo := postgres.NewPetRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	progressRepo := postgres.NewProgressRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)

	userSvc := user.NewService(userRepo)
	inventorySvc := inventory.NewService(inventoryRepo)
	farmSvc := farm.NewService(farmRepo, catalogRepo, progressRepo)
	petSvc := pet.NewService(petRepo)
	catalogSvc := catalog.NewService(catalogRepo, progressRepo)
	progressionSvc := progression.NewService(progressRepo)
	taskSvc := task.NewService(taskRepo, userRepo, progressionSvc)

	srv := server.NewServer(
		cfg.Port,
		cfg.APIKey,
		pool,
		userSvc,
		inventorySvc,
		farmSvc,
		petSvc,
		catalogSvc,
		progressionSvc,
		taskSvc,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}
