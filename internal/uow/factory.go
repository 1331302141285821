package uow

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres"
	"github.com/pavlo-petrychenko/labb/internal/config"
	"github.com/pavlo-petrychenko/labb/internal/domain"
)

// Factory creates one UnitOfWork per business operation.
type Factory struct {
	connector postgres.Connector
	pool      postgres.Querier
	timeout   time.Duration
	log       *slog.Logger
}

// NewFactory creates a Factory over connector. Repositories of a unit of work
// with no held connection run on pool.
func NewFactory(connector postgres.Connector, pool postgres.Querier, cfg config.UOWConfig, logger *slog.Logger) *Factory {
	return &Factory{
		connector: connector,
		pool:      pool,
		timeout:   cfg.OperationTimeout,
		log:       logger.With("component", "uow"),
	}
}

// NewPoolFactory creates a Factory backed by a pgx pool.
func NewPoolFactory(pool *pgxpool.Pool, cfg config.UOWConfig, logger *slog.Logger) *Factory {
	return NewFactory(postgres.NewPoolConnector(pool), pool, cfg, logger)
}

// New returns a fresh, Idle unit of work. The caller must Release it.
func (f *Factory) New() *UnitOfWork {
	return &UnitOfWork{
		connector: f.connector,
		pool:      f.pool,
		timeout:   f.timeout,
		log:       f.log,
	}
}

// Run executes fn inside a transaction on a fresh unit of work.
// On success: commits.
// On error from fn: rolls back and returns the error unchanged.
// On panic from fn: rolls back and re-panics.
// The unit of work is released on every path.
func (f *Factory) Run(ctx context.Context, fn func(ctx context.Context, u *UnitOfWork) error) error {
	u := f.New()
	return u.runOnce(ctx, "run", func(ctx context.Context) error {
		return fn(ctx, u)
	})
}

// EnrollStudentInCourseWithMaterials runs the enroll workflow on a fresh
// unit of work.
func (f *Factory) EnrollStudentInCourseWithMaterials(ctx context.Context, studentID, courseID int64) (*domain.EnrollmentResult, error) {
	return f.New().EnrollStudentInCourseWithMaterials(ctx, studentID, courseID)
}

// SubmitAndGradeAssignment runs the submit-and-grade workflow on a fresh
// unit of work.
func (f *Factory) SubmitAndGradeAssignment(
	ctx context.Context,
	assignmentID, studentID int64,
	content string,
	graderID int64,
	grade decimal.Decimal,
) (*domain.SubmitAndGradeResult, error) {
	return f.New().SubmitAndGradeAssignment(ctx, assignmentID, studentID, content, graderID, grade)
}
