// Package routine is the typed client for the server-side routines and
// views. Every function takes the scope handle it runs on, so the same call
// joins the caller's transaction when given one.
package routine

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres"
	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres/base"
)

// getOne scans a single row into T; no row yields (nil, nil).
func getOne[T any](ctx context.Context, q postgres.Querier, name, key, sql string, args ...any) (*T, error) {
	var dst T
	if err := pgxscan.Get(ctx, q, &dst, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, postgres.MapError(err, name, key)
	}
	return &dst, nil
}

// getAll scans every row into T; the result is never nil.
func getAll[T any](ctx context.Context, q postgres.Querier, name, key, sql string, args ...any) ([]T, error) {
	dst := make([]T, 0)
	if err := pgxscan.Select(ctx, q, &dst, sql, args...); err != nil {
		return nil, postgres.MapError(err, name, key)
	}
	return dst, nil
}

// scalar scans a single column of a single row into T.
func scalar[T any](ctx context.Context, q postgres.Querier, name, key, sql string, args ...any) (T, error) {
	var dst T
	if err := q.QueryRow(ctx, sql, args...).Scan(&dst); err != nil {
		var zero T
		return zero, postgres.MapError(err, name, key)
	}
	return dst, nil
}

type idArg struct {
	field string
	id    int64
}

func arg(field string, id int64) idArg { return idArg{field: field, id: id} }

// validateIDs checks ids in order and returns the first failure.
func validateIDs(ids ...idArg) error {
	for _, a := range ids {
		if err := base.ValidateID(a.id, a.field); err != nil {
			return err
		}
	}
	return nil
}
