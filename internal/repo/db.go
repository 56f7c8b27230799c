package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Open(ctx context.Context, dsn string, maxConns int32) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.MaxConns = maxConns
	cfg.MinConns = 1
	cfg.MaxConnLifetime = time.Hour
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS huffman_sessions (
  id          TEXT PRIMARY KEY,
  frequencies JSONB NOT NULL,
  codes       JSONB NOT NULL,
  bits        TEXT NOT NULL,
  packed      BYTEA NOT NULL,
  bit_len     INTEGER NOT NULL,
  symbols     INTEGER NOT NULL,
  created_at  TIMESTAMPTZ NOT NULL
)`)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
