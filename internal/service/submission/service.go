package submission

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/pavlo-petrychenko/labb/internal/domain"
)

// gradeWorkflow runs submit-and-grade on a fresh unit of work.
type gradeWorkflow interface {
	SubmitAndGradeAssignment(
		ctx context.Context,
		assignmentID, studentID int64,
		content string,
		graderID int64,
		grade decimal.Decimal,
	) (*domain.SubmitAndGradeResult, error)
}

type submissionRepo interface {
	CourseOfAssignment(ctx context.Context, assignmentID int64) (int64, error)
	CourseOfSubmission(ctx context.Context, submissionID int64) (int64, error)
	SubmitAssignment(ctx context.Context, assignmentID, studentID int64, content string) (int64, error)
	GetAssignmentSubmissions(ctx context.Context, assignmentID int64) ([]domain.AssignmentSubmission, error)
}

type gradeRepo interface {
	GradeSubmission(ctx context.Context, submissionID, graderID int64, grade decimal.Decimal) (int64, error)
}

type cacheInvalidator interface {
	InvalidateCourse(ctx context.Context, courseID int64)
}

type analyticsRecorder interface {
	Submitted(studentID, assignmentID, submissionID, gradeID int64)
}

// Service provides submission and grading operations.
type Service struct {
	workflow    gradeWorkflow
	submissions submissionRepo
	grades      gradeRepo
	cache       cacheInvalidator
	analytics   analyticsRecorder
	log         *slog.Logger
}

// NewService creates a new submission service. A nil cache disables
// invalidation.
func NewService(
	log *slog.Logger,
	workflow gradeWorkflow,
	submissions submissionRepo,
	grades gradeRepo,
	cache cacheInvalidator,
	analytics analyticsRecorder,
) *Service {
	if cache == nil {
		cache = noCache{}
	}
	return &Service{
		workflow:    workflow,
		submissions: submissions,
		grades:      grades,
		cache:       cache,
		analytics:   analytics,
		log:         log.With("service", "submission"),
	}
}

type noCache struct{}

func (noCache) InvalidateCourse(context.Context, int64) {}
