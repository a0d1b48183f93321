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

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"safeqr/config"
	"safeqr/di"
	"safeqr/driver/qr_db"
	"safeqr/rest"
	"safeqr/utils/logger"
)

func main() {
	// Missing .env is fine in container deployments
	_ = godotenv.Load()

	log := logger.InitLogger()
	log.Info("Starting server")

	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := qr_db.InitDBPool(ctx)
	if err != nil {
		logger.Logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Logger.Error("Failed to connect to redis", "error", err, "addr", cfg.Redis.Addr)
			os.Exit(1)
		}
		defer redisClient.Close()
		logger.Logger.Info("Rate limit windows backed by redis", "addr", cfg.Redis.Addr)
	}

	container := di.NewApplicationComponents(pool, redisClient, cfg)
	defer container.AuthSessionUsecase.Events().Close()

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	rest.RegisterRoutes(e, container, cfg)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Error("Error starting server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("Forced shutdown", "error", err)
	}
}
