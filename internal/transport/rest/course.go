package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pavlo-petrychenko/labb/internal/domain"
	"github.com/pavlo-petrychenko/labb/internal/service/course"
)

type courseService interface {
	GetCourse(ctx context.Context, id int64) (*domain.Course, error)
	GetCourseDetails(ctx context.Context, id int64) (*domain.CourseDetails, error)
	GetCourseStatistics(ctx context.Context, id int64) (*domain.CourseStatistics, error)
	GetTeacherCourses(ctx context.Context, teacherID int64) ([]domain.TeacherCourse, error)
	CreateCourse(ctx context.Context, input course.CreateCourseInput) (*domain.Course, error)
	DeleteCourse(ctx context.Context, input course.DeleteCourseInput) error
}

// CourseHandler serves course endpoints.
type CourseHandler struct {
	svc courseService
	log *slog.Logger
}

// NewCourseHandler creates a CourseHandler.
func NewCourseHandler(svc courseService, logger *slog.Logger) *CourseHandler {
	return &CourseHandler{svc: svc, log: logger.With("handler", "course")}
}

// Get handles GET /api/courses/{id}.
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	c, err := h.svc.GetCourse(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "course not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// View handles GET /api/courses/{id}/{view} for the details and statistics
// read models.
func (h *CourseHandler) View(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var (
		res any
		err error
	)
	switch r.PathValue("view") {
	case "details":
		var d *domain.CourseDetails
		if d, err = h.svc.GetCourseDetails(r.Context(), id); d != nil {
			res = d
		}
	case "statistics":
		var s *domain.CourseStatistics
		if s, err = h.svc.GetCourseStatistics(r.Context(), id); s != nil {
			res = s
		}
	default:
		http.NotFound(w, r)
		return
	}

	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if res == nil {
		writeError(w, http.StatusNotFound, "course not found")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// TeacherCourses handles GET /api/courses/teacher/{teacherId}.
func (h *CourseHandler) TeacherCourses(w http.ResponseWriter, r *http.Request) {
	teacherID, ok := pathID(w, r, "teacherId")
	if !ok {
		return
	}
	courses, err := h.svc.GetTeacherCourses(r.Context(), teacherID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if courses == nil {
		courses = []domain.TeacherCourse{}
	}
	writeJSON(w, http.StatusOK, courses)
}

// Create handles POST /api/courses.
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input course.CreateCourseInput
	if !decodeBody(w, r, &input) {
		return
	}
	c, err := h.svc.CreateCourse(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// Delete handles DELETE /api/courses/{id}.
func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req deleteRequest
	if !decodeOptionalBody(w, r, &req) {
		return
	}
	err := h.svc.DeleteCourse(r.Context(), course.DeleteCourseInput{CourseID: id, DeletedBy: actorID(r, req.DeletedBy)})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
