package enrollment

import (
	"github.com/pavlo-petrychenko/labb/internal/domain"
	"github.com/pavlo-petrychenko/labb/internal/service/validate"
)

// EnrollInput holds parameters for enrolling a student.
type EnrollInput struct {
	StudentID int64 `json:"studentId" validate:"gt=0"`
	CourseID  int64 `json:"courseId"  validate:"gt=0"`
}

// Validate validates the enroll input.
func (i EnrollInput) Validate() error { return validate.Struct(i) }

// ProgressInput identifies a (student, course) pair.
type ProgressInput struct {
	StudentID int64 `json:"studentId" validate:"gt=0"`
	CourseID  int64 `json:"courseId"  validate:"gt=0"`
}

// Validate validates the progress input.
func (i ProgressInput) Validate() error { return validate.Struct(i) }

// SetStatusInput holds parameters for moving an enrollment.
type SetStatusInput struct {
	EnrollmentID int64                   `json:"enrollmentId" validate:"gt=0"`
	Status       domain.EnrollmentStatus `json:"status"       validate:"required,oneof=active completed dropped"`
}

// Validate validates the set status input.
func (i SetStatusInput) Validate() error { return validate.Struct(i) }
