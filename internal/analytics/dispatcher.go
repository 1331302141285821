// Package analytics records user activity and course analytics in the
// document store after relational writes have committed. Writes are fire and
// forget: a failure is logged and never reaches the caller.
package analytics

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pavlo-petrychenko/labb/internal/domain"
)

// Sink persists analytics documents.
type Sink interface {
	RecordActivity(ctx context.Context, a domain.UserActivity) error
	RecordCourseAnalytics(ctx context.Context, a domain.CourseAnalytics) error
	RecordLearningPath(ctx context.Context, p domain.StudentLearningPath) error
}

type event struct {
	name  string
	write func(ctx context.Context, s Sink) error
}

// Dispatcher queues documents and writes them from a fixed set of workers.
type Dispatcher struct {
	sink    Sink
	queue   chan event
	workers int
	log     *slog.Logger
	stopped atomic.Bool
	now     func() time.Time
}

// NewDispatcher creates a Dispatcher. queueSize and workers are clamped to 1.
func NewDispatcher(sink Sink, queueSize, workers int, log *slog.Logger) *Dispatcher {
	if sink == nil {
		sink = Nop{}
	}
	return &Dispatcher{
		sink:    sink,
		queue:   make(chan event, max(queueSize, 1)),
		workers: max(workers, 1),
		log:     log.With("service", "analytics"),
		now:     time.Now,
	}
}

// Run writes queued documents until ctx is done, then drains what is left.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.log.Info("analytics dispatcher started", slog.Int("workers", d.workers))

	g := new(errgroup.Group)
	for range d.workers {
		g.Go(func() error {
			d.work(ctx)
			return nil
		})
	}
	err := g.Wait()

	d.log.Info("analytics dispatcher stopped")
	return err
}

func (d *Dispatcher) work(ctx context.Context) {
	for {
		select {
		case ev := <-d.queue:
			d.write(ctx, ev)
		case <-ctx.Done():
			d.stopped.Store(true)
			d.drain(context.WithoutCancel(ctx))
			return
		}
	}
}

func (d *Dispatcher) drain(ctx context.Context) {
	for {
		select {
		case ev := <-d.queue:
			d.write(ctx, ev)
		default:
			return
		}
	}
}

func (d *Dispatcher) write(ctx context.Context, ev event) {
	if err := ev.write(ctx, d.sink); err != nil {
		d.log.WarnContext(ctx, "analytics write failed",
			slog.String("event", ev.name),
			slog.String("error", err.Error()),
		)
	}
}

func (d *Dispatcher) enqueue(ev event) {
	if d.stopped.Load() {
		d.log.Debug("analytics event after shutdown", slog.String("event", ev.name))
		return
	}
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("analytics queue full, event dropped", slog.String("event", ev.name))
	}
}

// UserCreated records a USER_CREATED activity.
func (d *Dispatcher) UserCreated(userID int64, email string) {
	a := domain.UserActivity{
		UserID:       userID,
		ActivityType: domain.ActivityUserCreated,
		Timestamp:    d.now(),
		Metadata:     map[string]any{"email": email},
	}
	d.enqueue(event{name: a.ActivityType, write: func(ctx context.Context, s Sink) error {
		return s.RecordActivity(ctx, a)
	}})
}

// UserDeleted records a USER_DELETED activity on the deleted user.
func (d *Dispatcher) UserDeleted(userID, deletedBy int64) {
	a := domain.UserActivity{
		UserID:       userID,
		ActivityType: domain.ActivityUserDeleted,
		Timestamp:    d.now(),
		Metadata:     map[string]any{"deletedBy": deletedBy},
	}
	d.enqueue(event{name: a.ActivityType, write: func(ctx context.Context, s Sink) error {
		return s.RecordActivity(ctx, a)
	}})
}

// CourseCreated seeds the analytics of a new course with zero counters.
func (d *Dispatcher) CourseCreated(courseID int64) {
	a := domain.CourseAnalytics{CourseID: courseID, Date: d.now()}
	d.enqueue(event{name: "COURSE_CREATED", write: func(ctx context.Context, s Sink) error {
		return s.RecordCourseAnalytics(ctx, a)
	}})
}

// Enrolled creates the learning path of the pair and records an ENROLLED
// activity.
func (d *Dispatcher) Enrolled(studentID, courseID, enrollmentID int64) {
	p := domain.StudentLearningPath{StudentID: studentID, CourseID: courseID}
	a := domain.UserActivity{
		UserID:       studentID,
		ActivityType: domain.ActivityEnrolled,
		Timestamp:    d.now(),
		Metadata:     map[string]any{"courseId": courseID, "enrollmentId": enrollmentID},
	}
	d.enqueue(event{name: a.ActivityType, write: func(ctx context.Context, s Sink) error {
		if err := s.RecordLearningPath(ctx, p); err != nil {
			return err
		}
		return s.RecordActivity(ctx, a)
	}})
}

// Submitted records a SUBMITTED activity. gradeID is zero when the
// submission was not graded in the same operation.
func (d *Dispatcher) Submitted(studentID, assignmentID, submissionID, gradeID int64) {
	meta := map[string]any{"assignmentId": assignmentID, "submissionId": submissionID}
	if gradeID != 0 {
		meta["gradeId"] = gradeID
	}
	a := domain.UserActivity{
		UserID:       studentID,
		ActivityType: domain.ActivitySubmitted,
		Timestamp:    d.now(),
		Metadata:     meta,
	}
	d.enqueue(event{name: a.ActivityType, write: func(ctx context.Context, s Sink) error {
		return s.RecordActivity(ctx, a)
	}})
}

// Nop discards every document. It stands in when no document store is
// configured.
type Nop struct{}

func (Nop) RecordActivity(context.Context, domain.UserActivity) error           { return nil }
func (Nop) RecordCourseAnalytics(context.Context, domain.CourseAnalytics) error { return nil }
func (Nop) RecordLearningPath(context.Context, domain.StudentLearningPath) error {
	return nil
}
