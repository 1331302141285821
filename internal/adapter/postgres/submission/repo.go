// Package submission implements the Submission repository using PostgreSQL.
package submission

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres"
	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres/base"
	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres/routine"
	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres/schema"
	"github.com/pavlo-petrychenko/labb/internal/domain"
)

// Repo provides submission persistence and the submission routines.
type Repo struct {
	*base.Repo[domain.Submission]
}

// New creates a submission repository executing on q.
func New(q postgres.Querier) *Repo {
	return &Repo{Repo: base.New[domain.Submission](q, schema.Submissions)}
}

// SubmitAssignment records a submission and returns its id.
func (r *Repo) SubmitAssignment(ctx context.Context, assignmentID, studentID int64, content string) (int64, error) {
	return routine.SubmitAssignment(ctx, r.Q(), assignmentID, studentID, content)
}

// GetAssignmentSubmissions returns every submission of an assignment with its
// latest grade, newest first.
func (r *Repo) GetAssignmentSubmissions(ctx context.Context, assignmentID int64) ([]domain.AssignmentSubmission, error) {
	return routine.AssignmentSubmissions(ctx, r.Q(), assignmentID)
}

// CourseOfAssignment returns the course an assignment belongs to through its
// lesson and module, or 0 when the assignment does not exist.
func (r *Repo) CourseOfAssignment(ctx context.Context, assignmentID int64) (int64, error) {
	if err := base.ValidateID(assignmentID, "assignment_id"); err != nil {
		return 0, err
	}
	return r.courseID(ctx, courseOfAssignment().Where(sq.Eq{"a.id": assignmentID}), postgres.Key(assignmentID))
}

// CourseOfSubmission returns the course a submission was made in, or 0 when
// the submission does not exist.
func (r *Repo) CourseOfSubmission(ctx context.Context, submissionID int64) (int64, error) {
	if err := base.ValidateID(submissionID, "submission_id"); err != nil {
		return 0, err
	}
	query := courseOfAssignment().
		Join("submissions s ON s.assignment_id = a.id").
		Where(sq.Eq{"s.id": submissionID})
	return r.courseID(ctx, query, postgres.Key(submissionID))
}

func courseOfAssignment() sq.SelectBuilder {
	return base.Builder().
		Select("m.course_id").
		From("assignments a").
		Join("lessons l ON l.id = a.lesson_id").
		Join("modules m ON m.id = l.module_id")
}

func (r *Repo) courseID(ctx context.Context, query sq.SelectBuilder, key string) (int64, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("submissions: build query: %w", err)
	}

	var id int64
	if err := pgxscan.Get(ctx, r.Q(), &id, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return 0, nil
		}
		return 0, postgres.MapError(err, "submissions", key)
	}
	return id, nil
}
