package qr_db

import (
	"context"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"safeqr/utils/logger"
)

// InitDBPool connects a pgx pool using DATABASE_URL when set, otherwise the
// individual DB_* variables.
func InitDBPool(ctx context.Context) (*pgxpool.Pool, error) {
	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		connString = NewDatabaseConfigFromEnv().BuildConnectionString()
	}

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		logger.Logger.Error("Failed to create database pool", "error", err)
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Logger.Error("Failed to ping database", "error", err)
		pool.Close()
		return nil, err
	}

	logger.Logger.Info("Connected to database", "database", os.Getenv("DB_NAME"))

	return pool, nil
}
