package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/docufield/docufield/gen/ent"
	"github.com/docufield/docufield/internal/common"
)

// Open creates the database client. A postgres:// DSN gets a pgx pool wrapped
// for Ent; a sqlite: DSN (local runs, integration tests) uses the pure-Go
// sqlite driver. The pool is nil in the sqlite case.
func Open(ctx context.Context, cfg common.DatabaseConfig, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	if strings.HasPrefix(cfg.DSN, "sqlite:") {
		return openSQLite(cfg.DSN, logger)
	}

	logger.Info("connecting to database", "dsn", cfg.DSN)
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Error("failed to parse database config", "error", err)
		return nil, nil, err
	}

	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	pc.ConnConfig.RuntimeParams["application_name"] = "docufield"
	if cfg.StatementTimeout > 0 {
		pc.ConnConfig.RuntimeParams["statement_timeout"] = cfg.StatementTimeout.String()
	}
	if cfg.DialTimeout > 0 {
		pc.ConnConfig.ConnectTimeout = cfg.DialTimeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		logger.Error("failed to create connection pool", "error", err)
		return nil, nil, err
	}

	db := stdlib.OpenDBFromPool(pool)
	drv := entsql.OpenDB(dialect.Postgres, db)
	return ent.NewClient(ent.Driver(drv)), pool, nil
}

func openSQLite(dsn string, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	path := strings.TrimPrefix(dsn, "sqlite:")
	logger.Info("opening sqlite database", "path", path)
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	db, err := sql.Open("sqlite", path+sep+"_pragma=foreign_keys(1)")
	if err != nil {
		logger.Error("failed to open sqlite database", "path", path, "error", err)
		return nil, nil, err
	}
	drv := entsql.OpenDB(dialect.SQLite, db)
	return ent.NewClient(ent.Driver(drv)), nil, nil
}

// HealthCheck pings the pool with a bounded timeout.
func HealthCheck(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration, logger *slog.Logger) error {
	if pool == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("database ping failed", "error", err)
		return err
	}
	return nil
}

// Close shuts down the ent client and the underlying pool.
func Close(entc *ent.Client, pool *pgxpool.Pool, logger *slog.Logger) {
	if entc != nil {
		if err := entc.Close(); err != nil {
			logger.Warn("closing ent client", "error", err)
		}
	}
	if pool != nil {
		pool.Close()
	}
}
