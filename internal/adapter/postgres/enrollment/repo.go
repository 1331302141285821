// Package enrollment implements the Enrollment repository using PostgreSQL.
package enrollment

import (
	"context"

	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres"
	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres/base"
	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres/routine"
	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres/schema"
	"github.com/pavlo-petrychenko/labb/internal/domain"
)

// Repo provides enrollment persistence and the enrollment routines.
type Repo struct {
	*base.Repo[domain.Enrollment]
}

// New creates an enrollment repository executing on q.
func New(q postgres.Querier) *Repo {
	return &Repo{Repo: base.New[domain.Enrollment](q, schema.Enrollments)}
}

// EnrollStudent creates an active enrollment and returns its id. A pair that
// already holds an active enrollment fails with domain.ErrConstraintViolation.
func (r *Repo) EnrollStudent(ctx context.Context, studentID, courseID int64) (int64, error) {
	return routine.EnrollStudentInCourse(ctx, r.Q(), studentID, courseID)
}

// GetStudentEnrollments returns every enrollment of a student, newest first.
func (r *Repo) GetStudentEnrollments(ctx context.Context, studentID int64) ([]domain.StudentEnrollment, error) {
	return routine.StudentEnrollments(ctx, r.Q(), studentID)
}

// GetStudentProgress returns lesson and assignment progress for a pair.
func (r *Repo) GetStudentProgress(ctx context.Context, studentID, courseID int64) (*domain.StudentProgress, error) {
	return routine.StudentProgress(ctx, r.Q(), studentID, courseID)
}

// SetStatus moves an enrollment to status. It returns nil when the id does
// not exist.
func (r *Repo) SetStatus(ctx context.Context, id int64, status domain.EnrollmentStatus) (*domain.Enrollment, error) {
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "must be one of active, completed, dropped")
	}
	return r.Update(ctx, id, base.Fields{"status": status.String()})
}
