package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const PingInterval = 500 * time.Millisecond

// Database is the subset of *pgxpool.Pool used by the harness. pgxmock.PgxPoolIface satisfies it.
type Database interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// Connect builds a pool and blocks until the server answers or ctx is done. The deadline of ctx
// is the whole wait budget.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("can't parse dsn: %w", err)
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err = WaitReady(ctx, dbpool, PingInterval); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func WaitReady(ctx context.Context, db Pinger, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		err := db.Ping(ctx)
		if err == nil {
			return nil
		}
		zap.L().Debug("database is not ready", zap.Int("attempt", attempt), zap.Error(err))

		select {
		case <-ctx.Done():
			return fmt.Errorf("database not reachable after %d attempts: %w", attempt, err)
		case <-ticker.C:
		}
	}
}
