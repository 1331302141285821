// Package grade implements the Grade repository using PostgreSQL.
package grade

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres"
	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres/base"
	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres/routine"
	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres/schema"
	"github.com/pavlo-petrychenko/labb/internal/domain"
)

// Repo provides grade persistence and the grading routine.
type Repo struct {
	*base.Repo[domain.Grade]
}

// New creates a grade repository executing on q.
func New(q postgres.Querier) *Repo {
	return &Repo{Repo: base.New[domain.Grade](q, schema.Grades)}
}

// GradeSubmission grades an existing submission and returns the grade id.
// A missing submission or an out-of-range grade fails with
// domain.ErrConstraintViolation.
func (r *Repo) GradeSubmission(ctx context.Context, submissionID, graderID int64, grade decimal.Decimal) (int64, error) {
	return routine.GradeSubmission(ctx, r.Q(), submissionID, graderID, grade)
}

// ForSubmission returns every grade given to a submission, oldest first.
func (r *Repo) ForSubmission(ctx context.Context, submissionID int64) ([]domain.Grade, error) {
	if err := base.ValidateID(submissionID, "submission_id"); err != nil {
		return nil, err
	}
	return r.FindAll(ctx, &base.ListOptions{
		Where:   base.Fields{"submission_id": submissionID},
		OrderBy: []string{"graded_at", "id"},
	})
}
