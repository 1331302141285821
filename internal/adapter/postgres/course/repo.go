// Package course implements the Course repository using PostgreSQL.
package course

import (
	"context"

	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres"
	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres/base"
	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres/routine"
	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres/schema"
	"github.com/pavlo-petrychenko/labb/internal/domain"
)

// Repo provides course persistence and the course routines and views.
type Repo struct {
	*base.Repo[domain.Course]
}

// New creates a course repository executing on q.
func New(q postgres.Querier) *Repo {
	return &Repo{Repo: base.New[domain.Course](q, schema.Courses)}
}

// GetCourseDetails returns the v_course_details row, or nil.
func (r *Repo) GetCourseDetails(ctx context.Context, id int64) (*domain.CourseDetails, error) {
	return routine.CourseDetails(ctx, r.Q(), id)
}

// GetCourseStatistics returns aggregate counts and the average grade.
func (r *Repo) GetCourseStatistics(ctx context.Context, id int64) (*domain.CourseStatistics, error) {
	return routine.CourseStatistics(ctx, r.Q(), id)
}

// GetTeacherCourses returns the live courses taught by teacherID.
func (r *Repo) GetTeacherCourses(ctx context.Context, teacherID int64) ([]domain.TeacherCourse, error) {
	return routine.TeacherCourses(ctx, r.Q(), teacherID)
}

// SoftDeleteCourse soft-deletes through soft_delete_course.
func (r *Repo) SoftDeleteCourse(ctx context.Context, id, actorID int64) (bool, error) {
	return routine.SoftDeleteCourse(ctx, r.Q(), id, actorID)
}

// ListMaterials returns the live materials attached to a course.
func (r *Repo) ListMaterials(ctx context.Context, courseID int64) ([]domain.CourseMaterial, error) {
	if err := base.ValidateID(courseID, "course_id"); err != nil {
		return nil, err
	}
	materials := base.New[domain.CourseMaterial](r.Q(), schema.CourseMaterials)
	return materials.FindAll(ctx, &base.ListOptions{
		Where:    base.Fields{"course_id": courseID},
		OnlyLive: true,
	})
}
