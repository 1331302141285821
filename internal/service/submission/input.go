package submission

import (
	"github.com/shopspring/decimal"

	"github.com/pavlo-petrychenko/labb/internal/domain"
	"github.com/pavlo-petrychenko/labb/internal/service/validate"
)

// SubmitInput holds parameters for a submission. GraderID and Grade are
// given together or not at all; when given, the submission is graded in the
// same transaction.
type SubmitInput struct {
	AssignmentID int64            `json:"assignmentId" validate:"gt=0"`
	StudentID    int64            `json:"studentId"    validate:"gt=0"`
	Content      string           `json:"content"      validate:"max=100000"`
	GraderID     *int64           `json:"graderId"     validate:"omitempty,gt=0"`
	Grade        *decimal.Decimal `json:"grade"        validate:"omitempty,min=0,max=100"`
}

// Validate validates the submit input.
func (i SubmitInput) Validate() error {
	if err := validate.Struct(i); err != nil {
		return err
	}
	switch {
	case i.GraderID != nil && i.Grade == nil:
		return domain.NewValidationError("grade", "required with graderId")
	case i.GraderID == nil && i.Grade != nil:
		return domain.NewValidationError("graderId", "required with grade")
	}
	return nil
}

// graded reports whether the submission carries a grade.
func (i SubmitInput) graded() bool { return i.GraderID != nil && i.Grade != nil }

// GradeInput holds parameters for grading an existing submission.
type GradeInput struct {
	SubmissionID int64           `json:"submissionId" validate:"gt=0"`
	GraderID     int64           `json:"graderId"     validate:"gt=0"`
	Grade        decimal.Decimal `json:"grade"        validate:"min=0,max=100"`
}

// Validate validates the grade input.
func (i GradeInput) Validate() error { return validate.Struct(i) }
