package enrollment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pavlo-petrychenko/labb/internal/domain"
)

// Enroll enrolls a student and returns the enrollment with the student's
// progress, both read in the same transaction.
func (s *Service) Enroll(ctx context.Context, input EnrollInput) (*domain.EnrollmentResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	res, err := s.workflow.EnrollStudentInCourseWithMaterials(ctx, input.StudentID, input.CourseID)
	if err != nil {
		return nil, fmt.Errorf("enrollment.Enroll: %w", err)
	}

	s.cache.InvalidateCourse(ctx, input.CourseID)
	s.analytics.Enrolled(input.StudentID, input.CourseID, res.EnrollmentID)

	s.log.InfoContext(ctx, "student enrolled",
		slog.Int64("student_id", input.StudentID),
		slog.Int64("course_id", input.CourseID),
		slog.Int64("enrollment_id", res.EnrollmentID),
	)

	return res, nil
}

// StudentEnrollments lists a student's enrollments, newest first.
func (s *Service) StudentEnrollments(ctx context.Context, studentID int64) ([]domain.StudentEnrollment, error) {
	v, err := s.enrollments.GetStudentEnrollments(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("enrollment.StudentEnrollments: %w", err)
	}
	return v, nil
}

// StudentProgress returns the progress of a student in a course.
func (s *Service) StudentProgress(ctx context.Context, input ProgressInput) (*domain.StudentProgress, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	v, err := s.enrollments.GetStudentProgress(ctx, input.StudentID, input.CourseID)
	if err != nil {
		return nil, fmt.Errorf("enrollment.StudentProgress: %w", err)
	}
	return v, nil
}

// SetStatus moves an enrollment to a new status. An unknown enrollment
// yields domain.ErrNotFound.
func (s *Service) SetStatus(ctx context.Context, input SetStatusInput) (*domain.Enrollment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	e, err := s.enrollments.SetStatus(ctx, input.EnrollmentID, input.Status)
	if err != nil {
		return nil, fmt.Errorf("enrollment.SetStatus: %w", err)
	}
	if e == nil {
		return nil, fmt.Errorf("enrollment.SetStatus: enrollment %d: %w", input.EnrollmentID, domain.ErrNotFound)
	}

	s.cache.InvalidateCourse(ctx, e.CourseID)
	s.log.InfoContext(ctx, "enrollment status changed",
		slog.Int64("enrollment_id", e.ID),
		slog.String("status", e.Status.String()),
	)

	return e, nil
}
