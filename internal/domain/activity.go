package domain

import "time"

// Attendance records a student's presence at a lesson.
type Attendance struct {
	ID         int64      `db:"id"          json:"id"`
	LessonID   int64      `db:"lesson_id"   json:"lessonId"`
	StudentID  int64      `db:"student_id"  json:"studentId"`
	Status     *string    `db:"status"      json:"status,omitempty"`
	RecordedAt *time.Time `db:"recorded_at" json:"recordedAt,omitempty"`
}

// Comment is attached to any entity by (EntityType, EntityID).
type Comment struct {
	ID         int64      `db:"id"          json:"id"`
	UserID     int64      `db:"user_id"     json:"userId"`
	EntityType string     `db:"entity_type" json:"entityType"`
	EntityID   int64      `db:"entity_id"   json:"entityId"`
	Content    *string    `db:"content"     json:"content,omitempty"`
	CreatedAt  *time.Time `db:"created_at"  json:"createdAt,omitempty"`
	DeletedAt  *time.Time `db:"deleted_at"  json:"deletedAt,omitempty"`
}

// Notification is a message for a user.
type Notification struct {
	ID        int64      `db:"id"         json:"id"`
	UserID    int64      `db:"user_id"    json:"userId"`
	Message   *string    `db:"message"    json:"message,omitempty"`
	IsRead    bool       `db:"is_read"    json:"isRead"`
	CreatedAt *time.Time `db:"created_at" json:"createdAt,omitempty"`
}

// AuditLog is an append-only record of a change made by a user.
type AuditLog struct {
	ID         int64      `db:"id"          json:"id"`
	EntityName string     `db:"entity_name" json:"entityName"`
	EntityID   int64      `db:"entity_id"   json:"entityId"`
	Action     string     `db:"action"      json:"action"`
	ChangedBy  int64      `db:"changed_by"  json:"changedBy"`
	ChangedAt  *time.Time `db:"changed_at"  json:"changedAt,omitempty"`
}
