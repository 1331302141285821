package rest

import "net/http"

// Handlers bundles every REST handler mounted by NewRouter.
type Handlers struct {
	Health      *HealthHandler
	Users       *UserHandler
	Courses     *CourseHandler
	Enrollments *EnrollmentHandler
	Submissions *SubmissionHandler
}

// NewRouter registers all routes on a new ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/users", h.Users.ListActive)
	mux.HandleFunc("POST /api/users", h.Users.Create)
	mux.HandleFunc("GET /api/users/{id}", h.Users.Get)
	mux.HandleFunc("DELETE /api/users/{id}", h.Users.Delete)
	mux.HandleFunc("GET /api/users/{id}/roles", h.Users.GetWithRoles)
	mux.HandleFunc("POST /api/users/{id}/roles", h.Users.AssignRole)

	mux.HandleFunc("POST /api/courses", h.Courses.Create)
	mux.HandleFunc("GET /api/courses/{id}", h.Courses.Get)
	mux.HandleFunc("DELETE /api/courses/{id}", h.Courses.Delete)
	mux.HandleFunc("GET /api/courses/{id}/{view}", h.Courses.View)
	mux.HandleFunc("GET /api/courses/teacher/{teacherId}", h.Courses.TeacherCourses)

	mux.HandleFunc("POST /api/enrollments", h.Enrollments.Enroll)
	mux.HandleFunc("PATCH /api/enrollments/{id}/status", h.Enrollments.SetStatus)
	mux.HandleFunc("GET /api/enrollments/student/{studentId}", h.Enrollments.StudentEnrollments)
	mux.HandleFunc("GET /api/enrollments/student/{studentId}/course/{courseId}/progress", h.Enrollments.Progress)

	mux.HandleFunc("POST /api/submissions", h.Submissions.Submit)
	mux.HandleFunc("POST /api/submissions/grade", h.Submissions.Grade)
	mux.HandleFunc("GET /api/submissions/assignment/{assignmentId}", h.Submissions.AssignmentSubmissions)

	return mux
}
