package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type migration struct {
	name string
	sql  string
}

var migrations = []migration{
	{
		name: "001_create_users",
		sql: `CREATE TABLE IF NOT EXISTS users (
            id  TEXT PRIMARY KEY,
            doc JSONB NOT NULL
        )`,
	},
	{
		name: "002_create_tickets",
		sql: `CREATE TABLE IF NOT EXISTS tickets (
            id  TEXT PRIMARY KEY,
            doc JSONB NOT NULL
        )`,
	},
}

// RunMigrations applies the embedded schema statements in order. Statements
// are idempotent, so reruns on startup are safe.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if pool == nil {
		logger.Warn("no postgres pool available; skipping migrations")
		return nil
	}

	for _, m := range migrations {
		logger.Info("applying migration", zap.String("name", m.name))
		if _, err := pool.Exec(ctx, m.sql); err != nil {
			return fmt.Errorf("apply migration %s: %w", m.name, err)
		}
	}

	logger.Info("migrations applied", zap.Int("count", len(migrations)))
	return nil
}
