package course

import (
	"context"
	"log/slog"

	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres/base"
	"github.com/pavlo-petrychenko/labb/internal/domain"
)

type courseRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.Course, error)
	Create(ctx context.Context, fields base.Fields) (*domain.Course, error)
	GetCourseDetails(ctx context.Context, id int64) (*domain.CourseDetails, error)
	GetCourseStatistics(ctx context.Context, id int64) (*domain.CourseStatistics, error)
	GetTeacherCourses(ctx context.Context, teacherID int64) ([]domain.TeacherCourse, error)
	SoftDeleteCourse(ctx context.Context, id, actorID int64) (bool, error)
}

// courseCache holds aggregate reads. Misses and failures look the same.
type courseCache interface {
	CourseDetails(ctx context.Context, courseID int64) (*domain.CourseDetails, bool)
	SetCourseDetails(ctx context.Context, v *domain.CourseDetails)
	CourseStatistics(ctx context.Context, courseID int64) (*domain.CourseStatistics, bool)
	SetCourseStatistics(ctx context.Context, v *domain.CourseStatistics)
	InvalidateCourse(ctx context.Context, courseID int64)
}

type analyticsRecorder interface {
	CourseCreated(courseID int64)
}

// Service provides course operations.
type Service struct {
	courses   courseRepo
	cache     courseCache
	analytics analyticsRecorder
	log       *slog.Logger
}

// NewService creates a new course service. A nil cache disables caching.
func NewService(
	log *slog.Logger,
	courses courseRepo,
	cache courseCache,
	analytics analyticsRecorder,
) *Service {
	if cache == nil {
		cache = NoCache{}
	}
	return &Service{
		courses:   courses,
		cache:     cache,
		analytics: analytics,
		log:       log.With("service", "course"),
	}
}

// NoCache never hits.
type NoCache struct{}

func (NoCache) CourseDetails(context.Context, int64) (*domain.CourseDetails, bool) { return nil, false }
func (NoCache) SetCourseDetails(context.Context, *domain.CourseDetails)            {}
func (NoCache) CourseStatistics(context.Context, int64) (*domain.CourseStatistics, bool) {
	return nil, false
}
func (NoCache) SetCourseStatistics(context.Context, *domain.CourseStatistics) {}
func (NoCache) InvalidateCourse(context.Context, int64)                       {}
