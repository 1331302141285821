package submission

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pavlo-petrychenko/labb/internal/domain"
)

// Submit stores a submission. With a grader and a grade it runs
// submit-and-grade, so a rejected grade leaves no submission behind.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.SubmitAndGradeResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var res *domain.SubmitAndGradeResult
	if input.graded() {
		r, err := s.workflow.SubmitAndGradeAssignment(ctx, input.AssignmentID, input.StudentID, input.Content, *input.GraderID, *input.Grade)
		if err != nil {
			return nil, fmt.Errorf("submission.Submit: %w", err)
		}
		res = r
	} else {
		id, err := s.submissions.SubmitAssignment(ctx, input.AssignmentID, input.StudentID, input.Content)
		if err != nil {
			return nil, fmt.Errorf("submission.Submit: %w", err)
		}
		res = &domain.SubmitAndGradeResult{SubmissionID: id}
	}

	s.invalidate(ctx, s.submissions.CourseOfAssignment, input.AssignmentID)
	s.analytics.Submitted(input.StudentID, input.AssignmentID, res.SubmissionID, res.GradeID)
	s.log.InfoContext(ctx, "assignment submitted",
		slog.Int64("assignment_id", input.AssignmentID),
		slog.Int64("student_id", input.StudentID),
		slog.Int64("submission_id", res.SubmissionID),
		slog.Bool("graded", res.GradeID != 0),
	)

	return res, nil
}

// Grade grades an existing submission and returns the grade id.
func (s *Service) Grade(ctx context.Context, input GradeInput) (int64, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	id, err := s.grades.GradeSubmission(ctx, input.SubmissionID, input.GraderID, input.Grade)
	if err != nil {
		return 0, fmt.Errorf("submission.Grade: %w", err)
	}
	s.invalidate(ctx, s.submissions.CourseOfSubmission, input.SubmissionID)

	s.log.InfoContext(ctx, "submission graded",
		slog.Int64("submission_id", input.SubmissionID),
		slog.Int64("grade_id", id),
	)
	return id, nil
}

// AssignmentSubmissions lists the submissions of an assignment with their
// grades.
func (s *Service) AssignmentSubmissions(ctx context.Context, assignmentID int64) ([]domain.AssignmentSubmission, error) {
	v, err := s.submissions.GetAssignmentSubmissions(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("submission.AssignmentSubmissions: %w", err)
	}
	return v, nil
}

// invalidate drops the cached aggregates of the course that owns id. The
// write has already committed, so a failed lookup is only logged.
func (s *Service) invalidate(ctx context.Context, courseOf func(context.Context, int64) (int64, error), id int64) {
	courseID, err := courseOf(ctx, id)
	if err != nil {
		s.log.WarnContext(ctx, "course lookup for cache invalidation failed",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return
	}
	if courseID != 0 {
		s.cache.InvalidateCourse(ctx, courseID)
	}
}
