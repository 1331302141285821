// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres"
	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres/base"
	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres/routine"
	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres/schema"
	"github.com/pavlo-petrychenko/labb/internal/domain"
)

// Repo provides user persistence: generic CRUD plus role management and the
// user routines and views.
type Repo struct {
	*base.Repo[domain.User]
}

// New creates a user repository executing on q.
func New(q postgres.Querier) *Repo {
	return &Repo{Repo: base.New[domain.User](q, schema.Users)}
}

// FindByEmail returns the live user with the given email, or nil.
func (r *Repo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if email == "" {
		return nil, domain.NewValidationError("email", "required")
	}
	return r.FindOneBy(ctx, base.Fields{"email": email, schema.ColDeletedAt: nil})
}

// GetUserWithRoles returns the user with role names, or nil.
func (r *Repo) GetUserWithRoles(ctx context.Context, id int64) (*domain.UserWithRoles, error) {
	return routine.UserWithRoles(ctx, r.Q(), id)
}

// GetActiveUsers returns every live user with role names.
func (r *Repo) GetActiveUsers(ctx context.Context) ([]domain.ActiveUser, error) {
	return routine.ActiveUsersWithRoles(ctx, r.Q())
}

// SoftDeleteUser soft-deletes through soft_delete_user.
func (r *Repo) SoftDeleteUser(ctx context.Context, id, actorID int64) (bool, error) {
	return routine.SoftDeleteUser(ctx, r.Q(), id, actorID)
}

// AssignRole grants roleID to userID. It reports false when the pair already
// existed.
func (r *Repo) AssignRole(ctx context.Context, userID, roleID int64) (bool, error) {
	if err := validatePair(userID, roleID); err != nil {
		return false, err
	}

	query := base.Builder().
		Insert(schema.UserRoles.Name).
		Columns("user_id", "role_id", "granted_at").
		Values(userID, roleID, sq.Expr("now()")).
		Suffix("ON CONFLICT (user_id, role_id) DO NOTHING")

	return r.exec(ctx, query, userID, roleID)
}

// RevokeRole removes roleID from userID and reports whether it was held.
func (r *Repo) RevokeRole(ctx context.Context, userID, roleID int64) (bool, error) {
	if err := validatePair(userID, roleID); err != nil {
		return false, err
	}

	query := base.Builder().
		Delete(schema.UserRoles.Name).
		Where(sq.Eq{"user_id": userID, "role_id": roleID})

	return r.exec(ctx, query, userID, roleID)
}

func (r *Repo) exec(ctx context.Context, query sq.Sqlizer, userID, roleID int64) (bool, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("user_roles: build query: %w", err)
	}
	tag, err := r.Q().Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, schema.UserRoles.Name, postgres.Key(userID, roleID))
	}
	return tag.RowsAffected() > 0, nil
}

func validatePair(userID, roleID int64) error {
	if err := base.ValidateID(userID, "user_id"); err != nil {
		return err
	}
	return base.ValidateID(roleID, "role_id")
}
