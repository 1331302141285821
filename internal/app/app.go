package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/pavlo-petrychenko/labb/internal/adapter/mongo"
	"github.com/pavlo-petrychenko/labb/internal/adapter/postgres"
	pgcourse "github.com/pavlo-petrychenko/labb/internal/adapter/postgres/course"
	pgenrollment "github.com/pavlo-petrychenko/labb/internal/adapter/postgres/enrollment"
	pggrade "github.com/pavlo-petrychenko/labb/internal/adapter/postgres/grade"
	pgsubmission "github.com/pavlo-petrychenko/labb/internal/adapter/postgres/submission"
	pguser "github.com/pavlo-petrychenko/labb/internal/adapter/postgres/user"
	"github.com/pavlo-petrychenko/labb/internal/adapter/redis"
	"github.com/pavlo-petrychenko/labb/internal/analytics"
	"github.com/pavlo-petrychenko/labb/internal/config"
	"github.com/pavlo-petrychenko/labb/internal/domain"
	"github.com/pavlo-petrychenko/labb/internal/service/course"
	"github.com/pavlo-petrychenko/labb/internal/service/enrollment"
	"github.com/pavlo-petrychenko/labb/internal/service/submission"
	"github.com/pavlo-petrychenko/labb/internal/service/user"
	"github.com/pavlo-petrychenko/labb/internal/transport/middleware"
	"github.com/pavlo-petrychenko/labb/internal/transport/rest"
	"github.com/pavlo-petrychenko/labb/internal/uow"
)

// courseCache is the read cache as seen by the services that read or write
// course aggregates.
type courseCache interface {
	CourseDetails(ctx context.Context, courseID int64) (*domain.CourseDetails, bool)
	SetCourseDetails(ctx context.Context, v *domain.CourseDetails)
	CourseStatistics(ctx context.Context, courseID int64) (*domain.CourseStatistics, bool)
	SetCourseStatistics(ctx context.Context, v *domain.CourseStatistics)
	InvalidateCourse(ctx context.Context, courseID int64)
}

// Run is the application entry point. It loads configuration, connects the
// stores, serves HTTP until ctx is cancelled and then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	optional := map[string]rest.Pinger{}

	var sink analytics.Sink
	if cfg.Mongo.Enabled() {
		client, err := mongo.Connect(ctx, cfg.Mongo)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Disconnect(context.WithoutCancel(ctx)); err != nil {
				logger.Warn("mongo disconnect", slog.String("error", err.Error()))
			}
		}()

		store := mongo.NewStore(client, cfg.Mongo.Database, cfg.Mongo.WriteTimeout)
		if err := store.EnsureIndexes(ctx); err != nil {
			return err
		}
		sink = store
		optional["document_store"] = store
		logger.Info("document store connected", slog.String("database", cfg.Mongo.Database))
	} else {
		logger.Info("document store disabled, analytics are discarded")
	}

	// Stays a nil interface when the cache is disabled.
	var cache courseCache
	if cfg.Redis.Enabled() {
		rc, err := redis.NewCache(ctx, cfg.Redis, logger)
		if err != nil {
			return err
		}
		defer rc.Close()

		cache = rc
		optional["cache"] = rc
		logger.Info("course cache connected", slog.String("addr", cfg.Redis.Addr))
	}

	dispatcher := analytics.NewDispatcher(sink, cfg.Analytics.QueueSize, cfg.Analytics.Workers, logger)

	handler, stopHandler := newHandler(cfg, logger, pool, cache, dispatcher, optional)
	defer stopHandler()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	// Analytics outlive the HTTP server so in-flight requests can still
	// enqueue during shutdown.
	analyticsCtx, stopAnalytics := context.WithCancel(context.WithoutCancel(ctx))
	defer stopAnalytics()
	g.Go(func() error { return dispatcher.Run(analyticsCtx) })

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		defer stopAnalytics()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// newHandler wires repositories, services and the middleware stack over the
// given stores. The returned func releases the rate limiter.
func newHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	cache courseCache,
	dispatcher *analytics.Dispatcher,
	optional map[string]rest.Pinger,
) (http.Handler, func()) {
	factory := uow.NewPoolFactory(pool, cfg.UOW, logger)

	userSvc := user.NewService(logger, pguser.New(pool), dispatcher)
	courseSvc := course.NewService(logger, pgcourse.New(pool), cache, dispatcher)
	enrollmentSvc := enrollment.NewService(logger, factory, pgenrollment.New(pool), cache, dispatcher)
	submissionSvc := submission.NewService(logger, factory, pgsubmission.New(pool), pggrade.New(pool), cache, dispatcher)

	router := rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler(pool, Version, optional),
		Users:       rest.NewUserHandler(userSvc, logger),
		Courses:     rest.NewCourseHandler(courseSvc, logger),
		Enrollments: rest.NewEnrollmentHandler(enrollmentSvc, logger),
		Submissions: rest.NewSubmissionHandler(submissionSvc, logger),
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	stack := middleware.ServerStack{
		Logger:    logger,
		CORS:      cfg.CORS,
		Limiter:   limiter,
		PerMinute: cfg.RateLimit.RequestsPerMinute,
	}
	return stack.Build()(router), limiter.Stop
}
