package course

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres/base"
	"github.com/pavlo-petrychenko/labb/internal/domain"
)

// GetCourse returns a course by id. A missing course yields (nil, nil).
func (s *Service) GetCourse(ctx context.Context, id int64) (*domain.Course, error) {
	c, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("course.GetCourse: %w", err)
	}
	return c, nil
}

// GetCourseDetails returns the details view of a live course, cached.
func (s *Service) GetCourseDetails(ctx context.Context, id int64) (*domain.CourseDetails, error) {
	if v, ok := s.cache.CourseDetails(ctx, id); ok {
		return v, nil
	}

	v, err := s.courses.GetCourseDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("course.GetCourseDetails: %w", err)
	}
	if v != nil {
		s.cache.SetCourseDetails(ctx, v)
	}
	return v, nil
}

// GetCourseStatistics returns the aggregate statistics of a course, cached.
func (s *Service) GetCourseStatistics(ctx context.Context, id int64) (*domain.CourseStatistics, error) {
	if v, ok := s.cache.CourseStatistics(ctx, id); ok {
		return v, nil
	}

	v, err := s.courses.GetCourseStatistics(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("course.GetCourseStatistics: %w", err)
	}
	if v != nil {
		s.cache.SetCourseStatistics(ctx, v)
	}
	return v, nil
}

// GetTeacherCourses lists the live courses a teacher owns.
func (s *Service) GetTeacherCourses(ctx context.Context, teacherID int64) ([]domain.TeacherCourse, error) {
	v, err := s.courses.GetTeacherCourses(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("course.GetTeacherCourses: %w", err)
	}
	return v, nil
}

// CreateCourse stores a new course and seeds its analytics.
func (s *Service) CreateCourse(ctx context.Context, input CreateCourseInput) (*domain.Course, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	fields := base.Fields{
		"title":      strings.TrimSpace(input.Title),
		"teacher_id": input.TeacherID,
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}

	c, err := s.courses.Create(ctx, fields)
	if err != nil {
		return nil, fmt.Errorf("course.CreateCourse: %w", err)
	}

	s.analytics.CourseCreated(c.ID)
	s.log.InfoContext(ctx, "course created",
		slog.Int64("course_id", c.ID),
		slog.Int64("teacher_id", c.TeacherID),
	)

	return c, nil
}

// DeleteCourse soft-deletes a course and drops its cached reads. An unknown
// course yields domain.ErrNotFound.
func (s *Service) DeleteCourse(ctx context.Context, input DeleteCourseInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	ok, err := s.courses.SoftDeleteCourse(ctx, input.CourseID, input.DeletedBy)
	if err != nil {
		return fmt.Errorf("course.DeleteCourse: %w", err)
	}
	if !ok {
		return fmt.Errorf("course.DeleteCourse: course %d: %w", input.CourseID, domain.ErrNotFound)
	}

	s.cache.InvalidateCourse(ctx, input.CourseID)
	s.log.InfoContext(ctx, "course deleted",
		slog.Int64("course_id", input.CourseID),
		slog.Int64("deleted_by", input.DeletedBy),
	)

	return nil
}
