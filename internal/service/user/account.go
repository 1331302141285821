package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres/base"
	"github.com/pavlo-petrychenko/labb/internal/domain"
)

// GetUser returns a user by id, soft-deleted users included. A missing user
// yields (nil, nil).
func (s *Service) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.GetUser: %w", err)
	}
	return u, nil
}

// GetUserWithRoles returns a live user and the names of their roles.
func (s *Service) GetUserWithRoles(ctx context.Context, id int64) (*domain.UserWithRoles, error) {
	u, err := s.users.GetUserWithRoles(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.GetUserWithRoles: %w", err)
	}
	return u, nil
}

// ListActiveUsers returns every live user with their roles.
func (s *Service) ListActiveUsers(ctx context.Context) ([]domain.ActiveUser, error) {
	users, err := s.users.GetActiveUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.ListActiveUsers: %w", err)
	}
	return users, nil
}

// CreateUser hashes the password and stores a new account. A taken email is
// reported as a constraint violation.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser: hash password: %w", err)
	}

	fields := base.Fields{
		"email":         strings.ToLower(strings.TrimSpace(input.Email)),
		"password_hash": string(hash),
	}
	if input.FullName != nil {
		fields["full_name"] = strings.TrimSpace(*input.FullName)
	}

	u, err := s.users.Create(ctx, fields)
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser: %w", err)
	}

	s.activity.UserCreated(u.ID, u.Email)
	s.log.InfoContext(ctx, "user created", slog.Int64("user_id", u.ID))

	return u, nil
}

// DeleteUser soft-deletes a user. Deleting an already-deleted user succeeds;
// an unknown user yields domain.ErrNotFound.
func (s *Service) DeleteUser(ctx context.Context, input DeleteUserInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	ok, err := s.users.SoftDeleteUser(ctx, input.UserID, input.DeletedBy)
	if err != nil {
		return fmt.Errorf("user.DeleteUser: %w", err)
	}
	if !ok {
		return fmt.Errorf("user.DeleteUser: user %d: %w", input.UserID, domain.ErrNotFound)
	}

	s.activity.UserDeleted(input.UserID, input.DeletedBy)
	s.log.InfoContext(ctx, "user deleted",
		slog.Int64("user_id", input.UserID),
		slog.Int64("deleted_by", input.DeletedBy),
	)

	return nil
}

// AssignRole grants a role. It reports whether the grant is new.
func (s *Service) AssignRole(ctx context.Context, input AssignRoleInput) (bool, error) {
	if err := input.Validate(); err != nil {
		return false, err
	}

	created, err := s.users.AssignRole(ctx, input.UserID, input.RoleID)
	if err != nil {
		return false, fmt.Errorf("user.AssignRole: %w", err)
	}
	return created, nil
}
