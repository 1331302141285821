package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/pavlo-petrychenko/labb/internal/domain"
)

// Collection names.
const (
	UserActivities       = "user_activities"
	CourseAnalytics      = "course_analytics"
	StudentLearningPaths = "student_learning_paths"
)

// Store writes the analytics collections of one database.
type Store struct {
	db      *mongo.Database
	timeout time.Duration
}

// NewStore creates a Store over database name of client. Every write is
// bounded by timeout.
func NewStore(client *mongo.Client, name string, timeout time.Duration) *Store {
	return &Store{db: client.Database(name), timeout: timeout}
}

// Ping reports whether the primary answers.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

// EnsureIndexes creates the indexes the collections are queried by.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		UserActivities: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "timestamp", Value: -1}}},
			{Keys: bson.D{{Key: "activityType", Value: 1}}},
		},
		CourseAnalytics: {
			{Keys: bson.D{{Key: "courseId", Value: 1}, {Key: "date", Value: -1}}},
		},
		StudentLearningPaths: {
			{
				Keys:    bson.D{{Key: "studentId", Value: 1}, {Key: "courseId", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
	}

	for coll, models := range indexes {
		if _, err := s.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create %s indexes: %w", coll, err)
		}
	}
	return nil
}

// RecordActivity appends one user activity.
func (s *Store) RecordActivity(ctx context.Context, a domain.UserActivity) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if a.Metadata == nil {
		a.Metadata = map[string]any{}
	}
	if _, err := s.db.Collection(UserActivities).InsertOne(ctx, a); err != nil {
		return fmt.Errorf("insert %s: %w", UserActivities, err)
	}
	return nil
}

// RecordCourseAnalytics appends one daily analytics snapshot of a course.
func (s *Store) RecordCourseAnalytics(ctx context.Context, a domain.CourseAnalytics) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if a.Metadata == nil {
		a.Metadata = map[string]any{}
	}
	if _, err := s.db.Collection(CourseAnalytics).InsertOne(ctx, a); err != nil {
		return fmt.Errorf("insert %s: %w", CourseAnalytics, err)
	}
	return nil
}

// RecordLearningPath creates the learning path of a (student, course) pair.
// An existing path is kept as is, so re-enrolling never resets progress.
func (s *Store) RecordLearningPath(ctx context.Context, p domain.StudentLearningPath) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if p.LearningPath == nil {
		p.LearningPath = []domain.LearningPathStep{}
	}
	if p.Preferences == nil {
		p.Preferences = map[string]any{}
	}

	filter := bson.D{{Key: "studentId", Value: p.StudentID}, {Key: "courseId", Value: p.CourseID}}
	update := bson.D{{Key: "$setOnInsert", Value: p}}

	_, err := s.db.Collection(StudentLearningPaths).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert %s: %w", StudentLearningPaths, err)
	}
	return nil
}
