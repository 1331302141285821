package uow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/pavlo-petrychenko/labb/internal/domain"
)

// EnrollStudentInCourseWithMaterials enrolls a student and reads their
// progress in one transaction, then releases the unit of work. Either the
// enrollment is committed and its progress returned, or nothing is visible.
func (u *UnitOfWork) EnrollStudentInCourseWithMaterials(ctx context.Context, studentID, courseID int64) (*domain.EnrollmentResult, error) {
	var res domain.EnrollmentResult

	err := u.runOnce(ctx, "enroll with materials", func(ctx context.Context) error {
		id, err := u.Enrollments().EnrollStudent(ctx, studentID, courseID)
		if err != nil {
			return err
		}
		res.EnrollmentID = id

		progress, err := u.Enrollments().GetStudentProgress(ctx, studentID, courseID)
		if err != nil {
			return err
		}
		res.Progress = progress
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// SubmitAndGradeAssignment records a submission and its grade in one
// transaction, then releases the unit of work. A rejected grade rolls the
// submission back as well.
func (u *UnitOfWork) SubmitAndGradeAssignment(
	ctx context.Context,
	assignmentID, studentID int64,
	content string,
	graderID int64,
	grade decimal.Decimal,
) (*domain.SubmitAndGradeResult, error) {
	var res domain.SubmitAndGradeResult

	err := u.runOnce(ctx, "submit and grade", func(ctx context.Context) error {
		subID, err := u.Submissions().SubmitAssignment(ctx, assignmentID, studentID, content)
		if err != nil {
			return err
		}
		res.SubmissionID = subID

		gradeID, err := u.Grades().GradeSubmission(ctx, subID, graderID, grade)
		if err != nil {
			return err
		}
		res.GradeID = gradeID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// runOnce runs fn inside a transaction bounded by the operation timeout and
// releases the unit of work on every path. On failure it rolls back, releases
// and returns fn's error unchanged. A panic in fn rolls back, releases and
// re-panics.
func (u *UnitOfWork) runOnce(ctx context.Context, op string, fn func(ctx context.Context) error) (err error) {
	if u.state == stateReleased {
		return errReleased
	}

	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	log := u.log.With(slog.String("op", op))

	defer func() {
		if r := recover(); r != nil {
			u.abort(ctx, log)
			_ = u.Release()
			panic(r)
		}
	}()

	if err := u.BeginTransaction(ctx); err != nil {
		_ = u.Release()
		return err
	}

	if err := fn(ctx); err != nil {
		u.abort(ctx, log)
		_ = u.Release()
		return err
	}

	if err := u.Commit(ctx); err != nil {
		_ = u.Release()
		return err
	}

	if err := u.Release(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// abort rolls back if a transaction is open. A rollback failure is logged and
// never replaces the error that caused it.
func (u *UnitOfWork) abort(ctx context.Context, log *slog.Logger) {
	if !u.InTransaction() {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()
	if err := u.Rollback(ctx); err != nil {
		log.Warn("rollback failed", slog.String("error", err.Error()))
	}
}
