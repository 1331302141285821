// Package schema holds compile-time descriptors of the relational tables.
// Repositories build every statement from these lists, never from reflection.
package schema

import "slices"

// Audit columns carried by every mutable entity.
const (
	ColID        = "id"
	ColDeletedAt = "deleted_at"
	ColUpdatedAt = "updated_at"
	ColUpdatedBy = "updated_by"
)

// Table describes one table: its name, surrogate key, the columns selected
// into the entity, and the subset a caller may write through create/update.
type Table struct {
	Name     string
	Key      string
	Columns  []string
	Writable []string
	// SoftDelete is set when the table carries deleted_at.
	SoftDelete bool
	// Audit is set when the table carries updated_at/updated_by.
	Audit bool
}

// Has reports whether col is one of the selected columns.
func (t Table) Has(col string) bool {
	return slices.Contains(t.Columns, col)
}

// IsWritable reports whether col may be set by create or update.
func (t Table) IsWritable(col string) bool {
	return slices.Contains(t.Writable, col)
}

// Qualified returns col prefixed with the table name.
func (t Table) Qualified(col string) string {
	return t.Name + "." + col
}

func mutable(name string, cols ...string) Table {
	all := append([]string{ColID}, cols...)
	all = append(all, ColDeletedAt, ColUpdatedAt, ColUpdatedBy)
	return Table{
		Name:       name,
		Key:        ColID,
		Columns:    all,
		Writable:   cols,
		SoftDelete: true,
		Audit:      true,
	}
}

func plain(name string, cols ...string) Table {
	return Table{
		Name:     name,
		Key:      ColID,
		Columns:  append([]string{ColID}, cols...),
		Writable: cols,
	}
}

var (
	Users           = mutable("users", "email", "password_hash", "full_name")
	Courses         = mutable("courses", "title", "description", "teacher_id")
	Modules         = mutable("modules", "course_id", "title", "order_index")
	Lessons         = mutable("lessons", "module_id", "title", "content")
	Assignments     = mutable("assignments", "lesson_id", "title", "description", "due_date")
	CourseMaterials = mutable("course_materials", "course_id", "file_url", "type")

	Roles         = plain("roles", "name")
	Submissions   = plain("submissions", "assignment_id", "student_id", "content", "submitted_at")
	Grades        = plain("grades", "graded_by", "submission_id", "grade", "graded_at")
	Enrollments   = plain("enrollments", "student_id", "course_id", "enrolled_at", "status")
	Attendance    = plain("attendance", "lesson_id", "student_id", "status", "recorded_at")
	Notifications = plain("notifications", "user_id", "message", "is_read", "created_at")
	AuditLogs     = plain("audit_logs", "entity_name", "entity_id", "action", "changed_by", "changed_at")

	// Comments can be soft-deleted but carry no updated_at/updated_by.
	Comments = Table{
		Name:       "comments",
		Key:        ColID,
		Columns:    []string{ColID, "user_id", "entity_type", "entity_id", "content", "created_at", ColDeletedAt},
		Writable:   []string{"user_id", "entity_type", "entity_id", "content", "created_at"},
		SoftDelete: true,
	}

	// UserRoles has the composite key (user_id, role_id) and no surrogate id.
	UserRoles = Table{
		Name:     "user_roles",
		Columns:  []string{"user_id", "role_id", "granted_at"},
		Writable: []string{"user_id", "role_id", "granted_at"},
	}
)
