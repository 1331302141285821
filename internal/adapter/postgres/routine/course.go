package routine

import (
	"context"

	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres"
	"github.com/pavlo-petrychenko/labb/internal/domain"
)

const (
	courseDetailsSQL = `
SELECT id, title, description, teacher_id, teacher_name, module_count, material_count, enrollment_count
FROM v_course_details
WHERE id = $1`

	courseStatisticsSQL = `
SELECT course_id, total_students, active_students, total_assignments, total_submissions, average_grade
FROM get_course_statistics($1)`

	teacherCoursesSQL = `
SELECT id, title, description, active_students
FROM get_teacher_courses($1)`

	softDeleteCourseSQL = `SELECT soft_delete_course($1, $2)`
)

// CourseDetails reads v_course_details for one course, or nil.
func CourseDetails(ctx context.Context, q postgres.Querier, courseID int64) (*domain.CourseDetails, error) {
	if err := validateIDs(arg("course_id", courseID)); err != nil {
		return nil, err
	}
	return getOne[domain.CourseDetails](ctx, q, "v_course_details", postgres.Key(courseID), courseDetailsSQL, courseID)
}

// CourseStatistics calls get_course_statistics. It is a pure read.
func CourseStatistics(ctx context.Context, q postgres.Querier, courseID int64) (*domain.CourseStatistics, error) {
	if err := validateIDs(arg("course_id", courseID)); err != nil {
		return nil, err
	}
	return getOne[domain.CourseStatistics](ctx, q, "get_course_statistics", postgres.Key(courseID), courseStatisticsSQL, courseID)
}

// TeacherCourses calls get_teacher_courses.
func TeacherCourses(ctx context.Context, q postgres.Querier, teacherID int64) ([]domain.TeacherCourse, error) {
	if err := validateIDs(arg("teacher_id", teacherID)); err != nil {
		return nil, err
	}
	return getAll[domain.TeacherCourse](ctx, q, "get_teacher_courses", postgres.Key(teacherID), teacherCoursesSQL, teacherID)
}

// SoftDeleteCourse calls soft_delete_course and reports whether the course exists.
func SoftDeleteCourse(ctx context.Context, q postgres.Querier, courseID, actorID int64) (bool, error) {
	if err := validateIDs(arg("course_id", courseID), arg("actor_id", actorID)); err != nil {
		return false, err
	}
	return scalar[bool](ctx, q, "soft_delete_course", postgres.Key(courseID), softDeleteCourseSQL, courseID, actorID)
}
