// Package database opens the PostgreSQL connection pool used by the
// article store.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"go.uber.org/zap"
)

// PingTimeout bounds the startup ping so a dead database fails fast.
const PingTimeout = 10 * time.Second

// New parses dsn, creates the pool and pings it. With traceQueries set,
// every statement is logged at debug level through logger.
func New(ctx context.Context, dsn string, logger *zap.Logger, traceQueries bool) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}

	if traceQueries {
		cfg.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   NewZapLogger(logger),
			LogLevel: tracelog.LogLevelDebug,
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()

		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("connected to the database", zap.String("host", cfg.ConnConfig.Host))

	return pool, nil
}
