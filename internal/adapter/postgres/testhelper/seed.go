package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pavlo-petrychenko/labb/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// CourseTree is a course with one module, one lesson and one assignment.
type CourseTree struct {
	Teacher    domain.User
	Course     domain.Course
	Module     domain.Module
	Lesson     domain.Lesson
	Assignment domain.Assignment
}

// SeedUser creates a live user with a unique email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	name := "Test User " + suffix
	user := domain.User{
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$10$test-hash-" + suffix,
		FullName:     &name,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (email, password_hash, full_name) VALUES ($1, $2, $3) RETURNING id`,
		user.Email, user.PasswordHash, user.FullName,
	).Scan(&user.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedRole grants the named seeded role (student, teacher, admin) to userID.
func SeedRole(t *testing.T, pool *pgxpool.Pool, userID int64, role string) int64 {
	t.Helper()

	var roleID int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO user_roles (user_id, role_id, granted_at)
		 SELECT $1, id, now() FROM roles WHERE name = $2
		 RETURNING role_id`,
		userID, role,
	).Scan(&roleID)
	if err != nil {
		t.Fatalf("testhelper: SeedRole %q: %v", role, err)
	}
	return roleID
}

// SeedCourse creates a live course taught by teacherID.
func SeedCourse(t *testing.T, pool *pgxpool.Pool, teacherID int64) domain.Course {
	t.Helper()

	course := domain.Course{Title: "Course " + uniqueSuffix(), TeacherID: teacherID}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO courses (title, teacher_id) VALUES ($1, $2) RETURNING id`,
		course.Title, course.TeacherID,
	).Scan(&course.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedCourse: %v", err)
	}
	return course
}

// SeedCourseTree creates a teacher and a course with one module, lesson and assignment.
func SeedCourseTree(t *testing.T, pool *pgxpool.Pool) CourseTree {
	t.Helper()
	ctx := context.Background()

	tree := CourseTree{Teacher: SeedUser(t, pool)}
	tree.Course = SeedCourse(t, pool, tree.Teacher.ID)

	order := int32(1)
	tree.Module = domain.Module{CourseID: tree.Course.ID, OrderIndex: &order}
	if err := pool.QueryRow(ctx,
		`INSERT INTO modules (course_id, title, order_index) VALUES ($1, 'Module 1', $2) RETURNING id`,
		tree.Course.ID, order,
	).Scan(&tree.Module.ID); err != nil {
		t.Fatalf("testhelper: SeedCourseTree module: %v", err)
	}

	tree.Lesson = domain.Lesson{ModuleID: tree.Module.ID}
	if err := pool.QueryRow(ctx,
		`INSERT INTO lessons (module_id, title) VALUES ($1, 'Lesson 1') RETURNING id`,
		tree.Module.ID,
	).Scan(&tree.Lesson.ID); err != nil {
		t.Fatalf("testhelper: SeedCourseTree lesson: %v", err)
	}

	tree.Assignment = domain.Assignment{LessonID: tree.Lesson.ID}
	if err := pool.QueryRow(ctx,
		`INSERT INTO assignments (lesson_id, title) VALUES ($1, 'Assignment 1') RETURNING id`,
		tree.Lesson.ID,
	).Scan(&tree.Assignment.ID); err != nil {
		t.Fatalf("testhelper: SeedCourseTree assignment: %v", err)
	}

	return tree
}

// SeedMaterial attaches a material to courseID.
func SeedMaterial(t *testing.T, pool *pgxpool.Pool, courseID int64) domain.CourseMaterial {
	t.Helper()

	url := "https://files.example.com/" + uniqueSuffix() + ".pdf"
	kind := "pdf"
	m := domain.CourseMaterial{CourseID: courseID, FileURL: &url, Type: &kind}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO course_materials (course_id, file_url, type) VALUES ($1, $2, $3) RETURNING id`,
		courseID, url, kind,
	).Scan(&m.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedMaterial: %v", err)
	}
	return m
}

// SeedEnrollment inserts an enrollment directly, bypassing the routine.
func SeedEnrollment(t *testing.T, pool *pgxpool.Pool, studentID, courseID int64, status domain.EnrollmentStatus) domain.Enrollment {
	t.Helper()

	e := domain.Enrollment{StudentID: studentID, CourseID: courseID, Status: status}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO enrollments (student_id, course_id, enrolled_at, status) VALUES ($1, $2, now(), $3) RETURNING id`,
		studentID, courseID, string(status),
	).Scan(&e.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedEnrollment: %v", err)
	}
	return e
}

// SeedAttendance marks studentID present at lessonID.
func SeedAttendance(t *testing.T, pool *pgxpool.Pool, lessonID, studentID int64) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO attendance (lesson_id, student_id, status, recorded_at) VALUES ($1, $2, 'present', now())`,
		lessonID, studentID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAttendance: %v", err)
	}
}

// CountSubmissions counts submissions matching the triple.
func CountSubmissions(t *testing.T, pool *pgxpool.Pool, assignmentID, studentID int64, content string) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM submissions WHERE assignment_id = $1 AND student_id = $2 AND content = $3`,
		assignmentID, studentID, content,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountSubmissions: %v", err)
	}
	return n
}

// CountGrades counts grades given to submissions of assignmentID by studentID.
func CountGrades(t *testing.T, pool *pgxpool.Pool, assignmentID, studentID int64) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM grades g JOIN submissions s ON s.id = g.submission_id
		 WHERE s.assignment_id = $1 AND s.student_id = $2`,
		assignmentID, studentID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountGrades: %v", err)
	}
	return n
}
