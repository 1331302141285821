// Package redis caches course read models. Every failure degrades to a miss:
// the relational store stays the source of truth.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/pavlo-petrychenko/labb/internal/config"
	"github.com/pavlo-petrychenko/labb/internal/domain"
)

const (
	keyPrefix   = "labb:course:"
	pingTimeout = 5 * time.Second
)

// Cache stores course details and statistics for a fixed TTL.
type Cache struct {
	rdb *goredis.Client
	ttl time.Duration
	log *slog.Logger
}

// NewCache connects to cfg.Addr and pings it for fail-fast validation.
func NewCache(ctx context.Context, cfg config.RedisConfig, log *slog.Logger) (*Cache, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: pingTimeout,
	})

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Cache{rdb: rdb, ttl: cfg.TTL, log: log.With("service", "CourseCache")}, nil
}

// Close releases the client.
func (c *Cache) Close() error { return c.rdb.Close() }

// Ping reports whether the server answers.
func (c *Cache) Ping(ctx context.Context) error { return c.rdb.Ping(ctx).Err() }

// CourseDetails returns the cached details of a course.
func (c *Cache) CourseDetails(ctx context.Context, courseID int64) (*domain.CourseDetails, bool) {
	var v domain.CourseDetails
	if !c.get(ctx, detailsKey(courseID), &v) {
		return nil, false
	}
	return &v, true
}

// SetCourseDetails caches the details of a course.
func (c *Cache) SetCourseDetails(ctx context.Context, v *domain.CourseDetails) {
	c.set(ctx, detailsKey(v.ID), v)
}

// CourseStatistics returns the cached statistics of a course.
func (c *Cache) CourseStatistics(ctx context.Context, courseID int64) (*domain.CourseStatistics, bool) {
	var v domain.CourseStatistics
	if !c.get(ctx, statisticsKey(courseID), &v) {
		return nil, false
	}
	return &v, true
}

// SetCourseStatistics caches the statistics of a course.
func (c *Cache) SetCourseStatistics(ctx context.Context, v *domain.CourseStatistics) {
	c.set(ctx, statisticsKey(v.CourseID), v)
}

// InvalidateCourse drops every cached entry of a course.
func (c *Cache) InvalidateCourse(ctx context.Context, courseID int64) {
	if err := c.rdb.Del(ctx, detailsKey(courseID), statisticsKey(courseID)).Err(); err != nil {
		c.log.WarnContext(ctx, "cache invalidate failed", slog.Int64("course_id", courseID), slog.String("error", err.Error()))
	}
}

func (c *Cache) get(ctx context.Context, key string, dst any) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return false
	}
	if err != nil {
		c.log.WarnContext(ctx, "cache get failed", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.log.WarnContext(ctx, "cache entry corrupt", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return true
}

func (c *Cache) set(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		c.log.WarnContext(ctx, "cache encode failed", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "cache set failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func detailsKey(courseID int64) string {
	return keyPrefix + strconv.FormatInt(courseID, 10) + ":details"
}

func statisticsKey(courseID int64) string {
	return keyPrefix + strconv.FormatInt(courseID, 10) + ":statistics"
}
