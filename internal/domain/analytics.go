package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity types written to the user_activities collection.
const (
	ActivityUserCreated = "USER_CREATED"
	ActivityUserDeleted = "USER_DELETED"
	ActivityEnrolled    = "ENROLLED"
	ActivitySubmitted   = "SUBMITTED"
)

// UserActivity is a document in user_activities.
type UserActivity struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UserID       int64              `bson:"userId"`
	ActivityType string             `bson:"activityType"`
	Timestamp    time.Time          `bson:"timestamp"`
	Metadata     map[string]any     `bson:"metadata"`
}

// CourseAnalytics is a document in course_analytics.
type CourseAnalytics struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	CourseID       int64              `bson:"courseId"`
	Date           time.Time          `bson:"date"`
	Views          int64              `bson:"views"`
	Interactions   int64              `bson:"interactions"`
	CompletionRate float64            `bson:"completionRate"`
	Metadata       map[string]any     `bson:"metadata"`
}

// LearningPathStep is one lesson visit inside a StudentLearningPath.
type LearningPathStep struct {
	ModuleID     int64     `bson:"moduleId"`
	LessonID     int64     `bson:"lessonId"`
	Completed    bool      `bson:"completed"`
	TimeSpent    int64     `bson:"timeSpent"`
	LastAccessed time.Time `bson:"lastAccessed"`
}

// StudentLearningPath is a document in student_learning_paths.
type StudentLearningPath struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	StudentID    int64              `bson:"studentId"`
	CourseID     int64              `bson:"courseId"`
	LearningPath []LearningPathStep `bson:"learningPath"`
	Preferences  map[string]any     `bson:"preferences"`
}
