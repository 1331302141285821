package routine

import (
	"context"

	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres"
	"github.com/pavlo-petrychenko/labb/internal/domain"
)

const (
	userWithRolesSQL = `
SELECT id, email, full_name, roles
FROM get_user_with_roles($1)`

	softDeleteUserSQL = `SELECT soft_delete_user($1, $2)`

	activeUsersSQL = `
SELECT id, email, full_name, roles
FROM v_active_users_with_roles
ORDER BY id`
)

// UserWithRoles calls get_user_with_roles, or nil for an unknown user.
func UserWithRoles(ctx context.Context, q postgres.Querier, userID int64) (*domain.UserWithRoles, error) {
	if err := validateIDs(arg("user_id", userID)); err != nil {
		return nil, err
	}
	return getOne[domain.UserWithRoles](ctx, q, "get_user_with_roles", postgres.Key(userID), userWithRolesSQL, userID)
}

// SoftDeleteUser calls soft_delete_user and reports whether the user exists.
func SoftDeleteUser(ctx context.Context, q postgres.Querier, userID, actorID int64) (bool, error) {
	if err := validateIDs(arg("user_id", userID), arg("actor_id", actorID)); err != nil {
		return false, err
	}
	return scalar[bool](ctx, q, "soft_delete_user", postgres.Key(userID), softDeleteUserSQL, userID, actorID)
}

// ActiveUsersWithRoles reads v_active_users_with_roles.
func ActiveUsersWithRoles(ctx context.Context, q postgres.Querier) ([]domain.ActiveUser, error) {
	return getAll[domain.ActiveUser](ctx, q, "v_active_users_with_roles", "", activeUsersSQL)
}
