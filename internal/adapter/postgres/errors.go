package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pavlo-petrychenko/labb/internal/domain"
)

// MapError classifies a pgx/pgconn error into a *domain.StoreError whose
// Kind is one of the domain sentinels. The original error stays reachable
// through errors.As. Context errors and pgx.ErrNoRows are only annotated.
func MapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return annotate(err, entity, key)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return annotate(err, entity, key)
	}

	if kind := classify(err); kind != nil {
		return &domain.StoreError{Kind: kind, Entity: entity, Key: key, Err: err}
	}

	return annotate(err, entity, key)
}

// ConnectionError marks err as a connection failure regardless of its shape.
func ConnectionError(op string, err error) error {
	if errors.Is(err, domain.ErrConnection) {
		return err
	}
	return &domain.StoreError{Kind: domain.ErrConnection, Entity: op, Err: err}
}

// IsConstraintViolation reports whether err is an integrity constraint failure.
func IsConstraintViolation(err error) bool {
	return errors.Is(err, domain.ErrConstraintViolation)
}

func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "23"): // integrity_constraint_violation
			return domain.ErrConstraintViolation
		case strings.HasPrefix(pgErr.Code, "08"): // connection_exception
			return domain.ErrConnection
		case strings.HasPrefix(pgErr.Code, "25"): // invalid_transaction_state
			return domain.ErrTransaction
		case strings.HasPrefix(pgErr.Code, "40"): // transaction_rollback
			return domain.ErrTransaction
		}
		return nil
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) {
		return domain.ErrConnection
	}

	if errors.Is(err, pgx.ErrTxClosed) || errors.Is(err, pgx.ErrTxCommitRollback) {
		return domain.ErrTransaction
	}

	return nil
}

func annotate(err error, entity, key string) error {
	if key == "" {
		return fmt.Errorf("%s: %w", entity, err)
	}
	return fmt.Errorf("%s %s: %w", entity, key, err)
}

// Key formats one or more surrogate keys for error messages, e.g. "10/5".
func Key(ids ...int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, "/")
}
