package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Submission is a student's answer to an assignment.
type Submission struct {
	ID           int64      `db:"id"            json:"id"`
	AssignmentID int64      `db:"assignment_id" json:"assignmentId"`
	StudentID    int64      `db:"student_id"    json:"studentId"`
	Content      *string    `db:"content"       json:"content,omitempty"`
	SubmittedAt  *time.Time `db:"submitted_at"  json:"submittedAt,omitempty"`
}

// Grade is a grader's score for a submission, NUMERIC(5,2).
type Grade struct {
	ID           int64           `db:"id"            json:"id"`
	GradedBy     int64           `db:"graded_by"     json:"gradedBy"`
	SubmissionID int64           `db:"submission_id" json:"submissionId"`
	Grade        decimal.Decimal `db:"grade"         json:"grade"`
	GradedAt     *time.Time      `db:"graded_at"     json:"gradedAt,omitempty"`
}

// AssignmentSubmission is a row of v_assignment_submissions.
type AssignmentSubmission struct {
	SubmissionID int64               `db:"submission_id" json:"submissionId"`
	AssignmentID int64               `db:"assignment_id" json:"assignmentId"`
	StudentID    int64               `db:"student_id"    json:"studentId"`
	StudentName  *string             `db:"student_name"  json:"studentName,omitempty"`
	Content      *string             `db:"content"       json:"content,omitempty"`
	SubmittedAt  *time.Time          `db:"submitted_at"  json:"submittedAt,omitempty"`
	Grade        decimal.NullDecimal `db:"grade"         json:"grade"`
	GradedAt     *time.Time          `db:"graded_at"     json:"gradedAt,omitempty"`
}

// SubmitAndGradeResult is the outcome of the submit-and-grade workflow.
// GradeID is zero for a submission stored without a grade.
type SubmitAndGradeResult struct {
	SubmissionID int64 `json:"submissionId"`
	GradeID      int64 `json:"gradeId,omitempty"`
}
