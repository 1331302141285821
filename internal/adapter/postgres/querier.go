package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the scope handle every repository executes on. It is
// implemented by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx, so the same
// repository code runs on the pool, on one pinned connection, or inside a
// transaction depending on the handle it was built with.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Conn is a single connection checked out of the pool.
type Conn interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
	Release()
}

// Connector hands out dedicated connections.
type Connector interface {
	Acquire(ctx context.Context) (Conn, error)
}

// PoolConnector acquires connections from a pgx pool.
type PoolConnector struct {
	pool *pgxpool.Pool
}

// NewPoolConnector creates a Connector backed by pool.
func NewPoolConnector(pool *pgxpool.Pool) *PoolConnector {
	return &PoolConnector{pool: pool}
}

// Acquire checks out one connection. Pool exhaustion past the context
// deadline and dial failures are reported as domain.ErrConnection.
func (c *PoolConnector) Acquire(ctx context.Context) (Conn, error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return nil, ConnectionError("acquire connection", err)
	}
	return conn, nil
}
