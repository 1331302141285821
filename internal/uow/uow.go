// Package uow implements the Unit of Work: one connection scope per business
// operation, the repositories bound to it, transaction control and the
// composite workflows built on top.
package uow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres"
	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres/course"
	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres/enrollment"
	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres/grade"
	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres/submission"
	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres/user"
	"github.com/pavlo-petrychenko/labb/internal/domain"
)

// cleanupTimeout bounds the rollback issued while releasing, which must run
// even when the caller's context is already done.
const cleanupTimeout = 5 * time.Second

type state int

const (
	stateIdle state = iota
	stateInTransaction
	stateReleased
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateInTransaction:
		return "in transaction"
	case stateReleased:
		return "released"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

var errReleased = &domain.StoreError{
	Kind:   domain.ErrTransaction,
	Entity: "unit of work",
	Err:    errors.New("already released"),
}

// UnitOfWork owns at most one pooled connection for its lifetime.
//
// States: Idle -> BeginTransaction -> InTransaction -> Commit|Rollback -> Idle
// -> Release -> Released. Commit and Rollback outside a transaction, and any
// call after Release, fail with domain.ErrTransaction.
//
// A UnitOfWork is not safe for concurrent use.
type UnitOfWork struct {
	connector postgres.Connector
	pool      postgres.Querier
	timeout   time.Duration
	log       *slog.Logger

	state state
	conn  postgres.Conn
	tx    pgx.Tx

	users       *user.Repo
	courses     *course.Repo
	enrollments *enrollment.Repo
	submissions *submission.Repo
	grades      *grade.Repo
}

// Users returns the user repository bound to this unit of work.
func (u *UnitOfWork) Users() *user.Repo {
	if u.users == nil {
		u.users = user.New(scope{u})
	}
	return u.users
}

// Courses returns the course repository bound to this unit of work.
func (u *UnitOfWork) Courses() *course.Repo {
	if u.courses == nil {
		u.courses = course.New(scope{u})
	}
	return u.courses
}

// Enrollments returns the enrollment repository bound to this unit of work.
func (u *UnitOfWork) Enrollments() *enrollment.Repo {
	if u.enrollments == nil {
		u.enrollments = enrollment.New(scope{u})
	}
	return u.enrollments
}

// Submissions returns the submission repository bound to this unit of work.
func (u *UnitOfWork) Submissions() *submission.Repo {
	if u.submissions == nil {
		u.submissions = submission.New(scope{u})
	}
	return u.submissions
}

// Grades returns the grade repository bound to this unit of work.
func (u *UnitOfWork) Grades() *grade.Repo {
	if u.grades == nil {
		u.grades = grade.New(scope{u})
	}
	return u.grades
}

// InTransaction reports whether a transaction is open.
func (u *UnitOfWork) InTransaction() bool {
	return u.state == stateInTransaction
}

// BeginTransaction acquires a connection on first use and opens a
// transaction on it. Pool exhaustion and an unreachable store fail with
// domain.ErrConnection.
func (u *UnitOfWork) BeginTransaction(ctx context.Context) error {
	if err := u.expect("begin", stateIdle); err != nil {
		return err
	}

	if u.conn == nil {
		conn, err := u.connector.Acquire(ctx)
		if err != nil {
			return err
		}
		u.conn = conn
	}

	tx, err := u.conn.Begin(ctx)
	if err != nil {
		return postgres.ConnectionError("begin transaction", err)
	}

	u.tx = tx
	u.state = stateInTransaction
	return nil
}

// Commit commits the open transaction. The unit of work returns to Idle
// whether or not the commit succeeds.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	if err := u.expect("commit", stateInTransaction); err != nil {
		return err
	}

	err := u.tx.Commit(ctx)
	u.tx = nil
	u.state = stateIdle
	if err != nil {
		return postgres.MapError(err, "commit", "")
	}
	return nil
}

// Rollback discards every write since BeginTransaction.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	if err := u.expect("rollback", stateInTransaction); err != nil {
		return err
	}

	err := u.tx.Rollback(ctx)
	u.tx = nil
	u.state = stateIdle
	if err != nil {
		return postgres.MapError(err, "rollback", "")
	}
	return nil
}

// Release returns the connection to the pool, rolling back a transaction that
// is still open. It must be called exactly once; a second call fails with
// domain.ErrTransaction.
func (u *UnitOfWork) Release() error {
	if u.state == stateReleased {
		return errReleased
	}

	var err error
	if u.state == stateInTransaction {
		ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
		err = u.Rollback(ctx)
		cancel()
		if err != nil {
			u.log.Warn("rollback on release failed", slog.String("error", err.Error()))
		}
	}

	if u.conn != nil {
		u.conn.Release()
		u.conn = nil
	}
	u.state = stateReleased
	return err
}

func (u *UnitOfWork) expect(op string, want state) error {
	if u.state == stateReleased {
		return errReleased
	}
	if u.state != want {
		return &domain.StoreError{
			Kind:   domain.ErrTransaction,
			Entity: "unit of work",
			Err:    fmt.Errorf("%s while %s", op, u.state),
		}
	}
	return nil
}
