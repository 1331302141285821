package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pavlo-petrychenko/labb/internal/domain"
	"github.com/pavlo-petrychenko/labb/internal/service/enrollment"
)

type enrollmentService interface {
	Enroll(ctx context.Context, input enrollment.EnrollInput) (*domain.EnrollmentResult, error)
	StudentEnrollments(ctx context.Context, studentID int64) ([]domain.StudentEnrollment, error)
	StudentProgress(ctx context.Context, input enrollment.ProgressInput) (*domain.StudentProgress, error)
	SetStatus(ctx context.Context, input enrollment.SetStatusInput) (*domain.Enrollment, error)
}

// EnrollmentHandler serves enrollment endpoints.
type EnrollmentHandler struct {
	svc enrollmentService
	log *slog.Logger
}

// NewEnrollmentHandler creates an EnrollmentHandler.
func NewEnrollmentHandler(svc enrollmentService, logger *slog.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{svc: svc, log: logger.With("handler", "enrollment")}
}

type setStatusRequest struct {
	Status domain.EnrollmentStatus `json:"status"`
}

// Enroll handles POST /api/enrollments. A student already actively enrolled
// in the course gets 409.
func (h *EnrollmentHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	var input enrollment.EnrollInput
	if !decodeBody(w, r, &input) {
		return
	}
	res, err := h.svc.Enroll(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// StudentEnrollments handles GET /api/enrollments/student/{studentId}.
func (h *EnrollmentHandler) StudentEnrollments(w http.ResponseWriter, r *http.Request) {
	studentID, ok := pathID(w, r, "studentId")
	if !ok {
		return
	}
	list, err := h.svc.StudentEnrollments(r.Context(), studentID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if list == nil {
		list = []domain.StudentEnrollment{}
	}
	writeJSON(w, http.StatusOK, list)
}

// Progress handles GET /api/enrollments/student/{studentId}/course/{courseId}/progress.
func (h *EnrollmentHandler) Progress(w http.ResponseWriter, r *http.Request) {
	studentID, ok := pathID(w, r, "studentId")
	if !ok {
		return
	}
	courseID, ok := pathID(w, r, "courseId")
	if !ok {
		return
	}
	p, err := h.svc.StudentProgress(r.Context(), enrollment.ProgressInput{StudentID: studentID, CourseID: courseID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "progress not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// SetStatus handles PATCH /api/enrollments/{id}/status.
func (h *EnrollmentHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req setStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	e, err := h.svc.SetStatus(r.Context(), enrollment.SetStatusInput{EnrollmentID: id, Status: req.Status})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}
