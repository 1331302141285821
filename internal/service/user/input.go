package user

import "github.com/pavlo-petrychenko/labb/internal/service/validate"

// CreateUserInput holds parameters for account creation.
type CreateUserInput struct {
	Email    string  `json:"email"    validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	FullName *string `json:"fullName" validate:"omitempty,max=255"`
}

// Validate validates the create user input.
func (i CreateUserInput) Validate() error { return validate.Struct(i) }

// DeleteUserInput holds parameters for a soft delete.
type DeleteUserInput struct {
	UserID    int64 `json:"userId"    validate:"gt=0"`
	DeletedBy int64 `json:"deletedBy" validate:"gt=0"`
}

// Validate validates the delete user input.
func (i DeleteUserInput) Validate() error { return validate.Struct(i) }

// AssignRoleInput holds parameters for granting a role.
type AssignRoleInput struct {
	UserID int64 `json:"userId" validate:"gt=0"`
	RoleID int64 `json:"roleId" validate:"gt=0"`
}

// Validate validates the assign role input.
func (i AssignRoleInput) Validate() error { return validate.Struct(i) }
