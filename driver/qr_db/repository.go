package qr_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repository needs. Tests substitute a
// pgxmock pool through the same interface.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type QRDBRepository struct {
	pool DB
}

func NewQRDBRepository(pool DB) *QRDBRepository {
	return &QRDBRepository{pool: pool}
}
