// Package postgres implements the domain repository contracts on top of
// PostgreSQL. Rows are reconstructed through the entities' NewWithID
// constructors so nothing invalid can enter memory from storage.
package postgres

import (
	"context"
	"fmt"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sauna-shop/backend/db"
)

// NewPool opens a connection pool for the given database URL. Every new
// connection registers shopspring/decimal codecs so the NUMERIC price and
// total-amount columns scan directly into decimal.Decimal.
func NewPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open connection pool: %w", err)
	}

	return pool, nil
}

// RunMigrations applies the embedded schema. The DDL uses IF NOT EXISTS
// throughout, so running it against an already migrated database is safe.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, db.Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
