package uow

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres"
)

// scope is the handle every repository of a UnitOfWork executes on. It is
// resolved per statement: the open transaction, else the held connection,
// else the pool. After release every statement fails with domain.ErrTransaction.
type scope struct {
	u *UnitOfWork
}

var _ postgres.Querier = scope{}

func (s scope) current() (postgres.Querier, error) {
	u := s.u
	switch {
	case u.state == stateReleased:
		return nil, errReleased
	case u.tx != nil:
		return u.tx, nil
	case u.conn != nil:
		return u.conn, nil
	default:
		return u.pool, nil
	}
}

func (s scope) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q, err := s.current()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return q.Exec(ctx, sql, args...)
}

func (s scope) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	q, err := s.current()
	if err != nil {
		return nil, err
	}
	return q.Query(ctx, sql, args...)
}

func (s scope) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	q, err := s.current()
	if err != nil {
		return errRow{err: err}
	}
	return q.QueryRow(ctx, sql, args...)
}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error { return r.err }
