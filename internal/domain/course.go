package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Course is owned by a teacher and groups modules, materials and enrollments.
type Course struct {
	ID          int64      `db:"id"          json:"id"`
	Title       string     `db:"title"       json:"title"`
	Description *string    `db:"description" json:"description,omitempty"`
	TeacherID   int64      `db:"teacher_id"  json:"teacherId"`
	DeletedAt   *time.Time `db:"deleted_at"  json:"deletedAt,omitempty"`
	UpdatedAt   *time.Time `db:"updated_at"  json:"updatedAt,omitempty"`
	UpdatedBy   *int64     `db:"updated_by"  json:"updatedBy,omitempty"`
}

// Module is an ordered section of a course.
type Module struct {
	ID         int64      `db:"id"          json:"id"`
	CourseID   int64      `db:"course_id"   json:"courseId"`
	Title      *string    `db:"title"       json:"title,omitempty"`
	OrderIndex *int32     `db:"order_index" json:"orderIndex,omitempty"`
	DeletedAt  *time.Time `db:"deleted_at"  json:"deletedAt,omitempty"`
	UpdatedAt  *time.Time `db:"updated_at"  json:"updatedAt,omitempty"`
	UpdatedBy  *int64     `db:"updated_by"  json:"updatedBy,omitempty"`
}

// Lesson belongs to a module.
type Lesson struct {
	ID        int64      `db:"id"         json:"id"`
	ModuleID  int64      `db:"module_id"  json:"moduleId"`
	Title     *string    `db:"title"      json:"title,omitempty"`
	Content   *string    `db:"content"    json:"content,omitempty"`
	DeletedAt *time.Time `db:"deleted_at" json:"deletedAt,omitempty"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
	UpdatedBy *int64     `db:"updated_by" json:"updatedBy,omitempty"`
}

// Assignment belongs to a lesson.
type Assignment struct {
	ID          int64      `db:"id"          json:"id"`
	LessonID    int64      `db:"lesson_id"   json:"lessonId"`
	Title       *string    `db:"title"       json:"title,omitempty"`
	Description *string    `db:"description" json:"description,omitempty"`
	DueDate     *time.Time `db:"due_date"    json:"dueDate,omitempty"`
	DeletedAt   *time.Time `db:"deleted_at"  json:"deletedAt,omitempty"`
	UpdatedAt   *time.Time `db:"updated_at"  json:"updatedAt,omitempty"`
	UpdatedBy   *int64     `db:"updated_by"  json:"updatedBy,omitempty"`
}

// CourseMaterial is a file attached to a course.
type CourseMaterial struct {
	ID        int64      `db:"id"         json:"id"`
	CourseID  int64      `db:"course_id"  json:"courseId"`
	FileURL   *string    `db:"file_url"   json:"fileUrl,omitempty"`
	Type      *string    `db:"type"       json:"type,omitempty"`
	DeletedAt *time.Time `db:"deleted_at" json:"deletedAt,omitempty"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
	UpdatedBy *int64     `db:"updated_by" json:"updatedBy,omitempty"`
}

// CourseDetails is a row of v_course_details.
type CourseDetails struct {
	ID              int64   `db:"id"               json:"id"`
	Title           string  `db:"title"            json:"title"`
	Description     *string `db:"description"      json:"description,omitempty"`
	TeacherID       int64   `db:"teacher_id"       json:"teacherId"`
	TeacherName     *string `db:"teacher_name"     json:"teacherName,omitempty"`
	ModuleCount     int64   `db:"module_count"     json:"moduleCount"`
	MaterialCount   int64   `db:"material_count"   json:"materialCount"`
	EnrollmentCount int64   `db:"enrollment_count" json:"enrollmentCount"`
}

// CourseStatistics is the aggregate produced by get_course_statistics.
type CourseStatistics struct {
	CourseID         int64               `db:"course_id"         json:"courseId"`
	TotalStudents    int64               `db:"total_students"    json:"totalStudents"`
	ActiveStudents   int64               `db:"active_students"   json:"activeStudents"`
	TotalAssignments int64               `db:"total_assignments" json:"totalAssignments"`
	TotalSubmissions int64               `db:"total_submissions" json:"totalSubmissions"`
	AverageGrade     decimal.NullDecimal `db:"average_grade"     json:"averageGrade"`
}

// TeacherCourse is a row produced by get_teacher_courses.
type TeacherCourse struct {
	ID             int64   `db:"id"              json:"id"`
	Title          string  `db:"title"           json:"title"`
	Description    *string `db:"description"     json:"description,omitempty"`
	ActiveStudents int64   `db:"active_students" json:"activeStudents"`
}
