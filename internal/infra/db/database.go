package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"portaria/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolCfg.MaxConns = 20
	poolCfg.MaxConnLifetime = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	// An unreachable database is not fatal: the service starts from its
	// local snapshot and keeps retrying per-query through the pool.
	if err := pool.Ping(ctx); err != nil {
		slog.Warn("database unreachable at startup, continuing with local snapshot", "error", err.Error())
	}

	cleanup := func() {
		pool.Close()
	}

	return pool, cleanup, nil
}
