package enrollment

import (
	"context"
	"log/slog"

	"github.com/pavlo-petrychenko/labb/internal/domain"
)

// enrollWorkflow runs enroll-with-materials on a fresh unit of work.
type enrollWorkflow interface {
	EnrollStudentInCourseWithMaterials(ctx context.Context, studentID, courseID int64) (*domain.EnrollmentResult, error)
}

type enrollmentRepo interface {
	GetStudentEnrollments(ctx context.Context, studentID int64) ([]domain.StudentEnrollment, error)
	GetStudentProgress(ctx context.Context, studentID, courseID int64) (*domain.StudentProgress, error)
	SetStatus(ctx context.Context, id int64, status domain.EnrollmentStatus) (*domain.Enrollment, error)
}

type cacheInvalidator interface {
	InvalidateCourse(ctx context.Context, courseID int64)
}

type analyticsRecorder interface {
	Enrolled(studentID, courseID, enrollmentID int64)
}

// Service provides enrollment operations.
type Service struct {
	workflow    enrollWorkflow
	enrollments enrollmentRepo
	cache       cacheInvalidator
	analytics   analyticsRecorder
	log         *slog.Logger
}

// NewService creates a new enrollment service. A nil cache disables
// invalidation.
func NewService(
	log *slog.Logger,
	workflow enrollWorkflow,
	enrollments enrollmentRepo,
	cache cacheInvalidator,
	analytics analyticsRecorder,
) *Service {
	if cache == nil {
		cache = noCache{}
	}
	return &Service{
		workflow:    workflow,
		enrollments: enrollments,
		cache:       cache,
		analytics:   analytics,
		log:         log.With("service", "enrollment"),
	}
}

type noCache struct{}

func (noCache) InvalidateCourse(context.Context, int64) {}
