package course

import "github.com/pavlo-petrychenko/labb/internal/service/validate"

// CreateCourseInput holds parameters for creating a course.
type CreateCourseInput struct {
	Title       string  `json:"title"       validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=10000"`
	TeacherID   int64   `json:"teacherId"   validate:"gt=0"`
}

// Validate validates the create course input.
func (i CreateCourseInput) Validate() error { return validate.Struct(i) }

// DeleteCourseInput holds parameters for a soft delete.
type DeleteCourseInput struct {
	CourseID  int64 `json:"courseId"  validate:"gt=0"`
	DeletedBy int64 `json:"deletedBy" validate:"gt=0"`
}

// Validate validates the delete course input.
func (i DeleteCourseInput) Validate() error { return validate.Struct(i) }
