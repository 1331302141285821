package domain

import "time"

// User is a platform account: student, teacher, or administrator depending on roles.
type User struct {
	ID           int64      `db:"id"            json:"id"`
	Email        string     `db:"email"         json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	FullName     *string    `db:"full_name"     json:"fullName,omitempty"`
	DeletedAt    *time.Time `db:"deleted_at"    json:"deletedAt,omitempty"`
	UpdatedAt    *time.Time `db:"updated_at"    json:"updatedAt,omitempty"`
	UpdatedBy    *int64     `db:"updated_by"    json:"updatedBy,omitempty"`
}

// IsDeleted reports whether the user has been soft-deleted.
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// Role is a named permission group.
type Role struct {
	ID   int64  `db:"id"   json:"id"`
	Name string `db:"name" json:"name"`
}

// UserRole links a user to a role. The pair (UserID, RoleID) is the key.
type UserRole struct {
	UserID    int64      `db:"user_id"    json:"userId"`
	RoleID    int64      `db:"role_id"    json:"roleId"`
	GrantedAt *time.Time `db:"granted_at" json:"grantedAt,omitempty"`
}

// UserWithRoles is the row produced by get_user_with_roles.
type UserWithRoles struct {
	ID       int64    `db:"id"        json:"id"`
	Email    string   `db:"email"     json:"email"`
	FullName *string  `db:"full_name" json:"fullName,omitempty"`
	Roles    []string `db:"roles"     json:"roles"`
}

// ActiveUser is a row of v_active_users_with_roles.
type ActiveUser struct {
	ID       int64    `db:"id"        json:"id"`
	Email    string   `db:"email"     json:"email"`
	FullName *string  `db:"full_name" json:"fullName,omitempty"`
	Roles    []string `db:"roles"     json:"roles"`
}
