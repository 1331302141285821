package routine

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres"
	"github.com/pavlo-petrychenko/labb/internal/domain"
)

const (
	submitAssignmentSQL = `SELECT submit_assignment($1, $2, $3)`
	gradeSubmissionSQL  = `SELECT grade_submission($1, $2, $3)`

	assignmentSubmissionsSQL = `
SELECT submission_id, assignment_id, student_id, student_name, content, submitted_at, grade, graded_at
FROM v_assignment_submissions
WHERE assignment_id = $1
ORDER BY submitted_at DESC, submission_id DESC`
)

// SubmitAssignment calls submit_assignment and returns the submission id.
func SubmitAssignment(ctx context.Context, q postgres.Querier, assignmentID, studentID int64, content string) (int64, error) {
	if err := validateIDs(arg("assignment_id", assignmentID), arg("student_id", studentID)); err != nil {
		return 0, err
	}
	return scalar[int64](ctx, q, "submit_assignment", postgres.Key(assignmentID, studentID), submitAssignmentSQL, assignmentID, studentID, content)
}

// GradeSubmission calls grade_submission and returns the grade id. The store
// rejects a missing submission or an out-of-range grade with
// domain.ErrConstraintViolation.
func GradeSubmission(ctx context.Context, q postgres.Querier, submissionID, graderID int64, grade decimal.Decimal) (int64, error) {
	if err := validateIDs(arg("submission_id", submissionID), arg("grader_id", graderID)); err != nil {
		return 0, err
	}
	return scalar[int64](ctx, q, "grade_submission", postgres.Key(submissionID), gradeSubmissionSQL, submissionID, graderID, grade)
}

// AssignmentSubmissions reads v_assignment_submissions, newest first.
func AssignmentSubmissions(ctx context.Context, q postgres.Querier, assignmentID int64) ([]domain.AssignmentSubmission, error) {
	if err := validateIDs(arg("assignment_id", assignmentID)); err != nil {
		return nil, err
	}
	return getAll[domain.AssignmentSubmission](ctx, q, "v_assignment_submissions", postgres.Key(assignmentID), assignmentSubmissionsSQL, assignmentID)
}
