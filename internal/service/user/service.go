package user

import (
	"context"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres/base"
	"github.com/pavlo-petrychenko/labb/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, fields base.Fields) (*domain.User, error)
	GetUserWithRoles(ctx context.Context, id int64) (*domain.UserWithRoles, error)
	GetActiveUsers(ctx context.Context) ([]domain.ActiveUser, error)
	SoftDeleteUser(ctx context.Context, id, actorID int64) (bool, error)
	AssignRole(ctx context.Context, userID, roleID int64) (bool, error)
}

// activityRecorder receives user events after they have been committed.
type activityRecorder interface {
	UserCreated(userID int64, email string)
	UserDeleted(userID, deletedBy int64)
}

// Service implements user account operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	activity activityRecorder
	hashCost int
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	activity activityRecorder,
) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		activity: activity,
		hashCost: bcrypt.DefaultCost,
	}
}
