package routine

import (
	"context"

	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres"
	"github.com/pavlo-petrychenko/labb/internal/domain"
)

const (
	enrollStudentSQL = `SELECT enroll_student_in_course($1, $2)`

	studentProgressSQL = `
SELECT student_id, course_id, total_lessons, attended_lessons, total_assignments, submitted_assignments, average_grade
FROM get_student_progress($1, $2)`

	studentEnrollmentsSQL = `
SELECT enrollment_id, student_id, course_id, course_title, status, enrolled_at
FROM v_student_enrollments
WHERE student_id = $1
ORDER BY enrolled_at DESC, enrollment_id DESC`
)

// EnrollStudentInCourse calls enroll_student_in_course and returns the new
// enrollment id. A second active enrollment of the same pair is rejected by
// the store with domain.ErrConstraintViolation.
func EnrollStudentInCourse(ctx context.Context, q postgres.Querier, studentID, courseID int64) (int64, error) {
	if err := validateIDs(arg("student_id", studentID), arg("course_id", courseID)); err != nil {
		return 0, err
	}
	return scalar[int64](ctx, q, "enroll_student_in_course", postgres.Key(studentID, courseID), enrollStudentSQL, studentID, courseID)
}

// StudentProgress calls get_student_progress. It is a pure read.
func StudentProgress(ctx context.Context, q postgres.Querier, studentID, courseID int64) (*domain.StudentProgress, error) {
	if err := validateIDs(arg("student_id", studentID), arg("course_id", courseID)); err != nil {
		return nil, err
	}
	return getOne[domain.StudentProgress](ctx, q, "get_student_progress", postgres.Key(studentID, courseID), studentProgressSQL, studentID, courseID)
}

// StudentEnrollments reads v_student_enrollments, newest first.
func StudentEnrollments(ctx context.Context, q postgres.Querier, studentID int64) ([]domain.StudentEnrollment, error) {
	if err := validateIDs(arg("student_id", studentID)); err != nil {
		return nil, err
	}
	return getAll[domain.StudentEnrollment](ctx, q, "v_student_enrollments", postgres.Key(studentID), studentEnrollmentsSQL, studentID)
}
