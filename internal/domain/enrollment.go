package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EnrollmentStatus is the constrained lifecycle state of an enrollment.
type EnrollmentStatus string

const (
	EnrollmentStatusActive    EnrollmentStatus = "active"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
	EnrollmentStatusDropped   EnrollmentStatus = "dropped"
)

func (s EnrollmentStatus) String() string { return string(s) }

func (s EnrollmentStatus) IsValid() bool {
	switch s {
	case EnrollmentStatusActive, EnrollmentStatusCompleted, EnrollmentStatusDropped:
		return true
	}
	return false
}

// IsTerminal reports whether the status frees the (student, course) pair
// for a new active enrollment.
func (s EnrollmentStatus) IsTerminal() bool {
	return s == EnrollmentStatusCompleted || s == EnrollmentStatusDropped
}

// Enrollment ties a student to a course.
type Enrollment struct {
	ID         int64            `db:"id"          json:"id"`
	StudentID  int64            `db:"student_id"  json:"studentId"`
	CourseID   int64            `db:"course_id"   json:"courseId"`
	EnrolledAt *time.Time       `db:"enrolled_at" json:"enrolledAt,omitempty"`
	Status     EnrollmentStatus `db:"status"      json:"status"`
}

// StudentEnrollment is a row of v_student_enrollments.
type StudentEnrollment struct {
	EnrollmentID int64            `db:"enrollment_id" json:"enrollmentId"`
	StudentID    int64            `db:"student_id"    json:"studentId"`
	CourseID     int64            `db:"course_id"     json:"courseId"`
	CourseTitle  string           `db:"course_title"  json:"courseTitle"`
	Status       EnrollmentStatus `db:"status"        json:"status"`
	EnrolledAt   *time.Time       `db:"enrolled_at"   json:"enrolledAt,omitempty"`
}

// StudentProgress is the row produced by get_student_progress.
type StudentProgress struct {
	StudentID            int64               `db:"student_id"            json:"studentId"`
	CourseID             int64               `db:"course_id"             json:"courseId"`
	TotalLessons         int64               `db:"total_lessons"         json:"totalLessons"`
	AttendedLessons      int64               `db:"attended_lessons"      json:"attendedLessons"`
	TotalAssignments     int64               `db:"total_assignments"     json:"totalAssignments"`
	SubmittedAssignments int64               `db:"submitted_assignments" json:"submittedAssignments"`
	AverageGrade         decimal.NullDecimal `db:"average_grade"         json:"averageGrade"`
}

// CompletedItems is the number of lessons attended plus assignments submitted.
func (p *StudentProgress) CompletedItems() int64 {
	return p.AttendedLessons + p.SubmittedAssignments
}

// EnrollmentResult is the outcome of the enroll-with-materials workflow.
// Progress is nil when the progress routine returned no row.
type EnrollmentResult struct {
	EnrollmentID int64            `json:"enrollmentId"`
	Progress     *StudentProgress `json:"progress"`
}
