package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pavlo-petrychenko/labb/internal/domain"
	"github.com/pavlo-petrychenko/labb/internal/service/submission"
)

type submissionService interface {
	Submit(ctx context.Context, input submission.SubmitInput) (*domain.SubmitAndGradeResult, error)
	Grade(ctx context.Context, input submission.GradeInput) (int64, error)
	AssignmentSubmissions(ctx context.Context, assignmentID int64) ([]domain.AssignmentSubmission, error)
}

// SubmissionHandler serves submission and grading endpoints.
type SubmissionHandler struct {
	svc submissionService
	log *slog.Logger
}

// NewSubmissionHandler creates a SubmissionHandler.
func NewSubmissionHandler(svc submissionService, logger *slog.Logger) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, log: logger.With("handler", "submission")}
}

type gradeResponse struct {
	GradeID int64 `json:"gradeId"`
}

// Submit handles POST /api/submissions. With graderId and grade in the body
// the submission and its grade are stored atomically.
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input submission.SubmitInput
	if !decodeBody(w, r, &input) {
		return
	}
	res, err := h.svc.Submit(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// Grade handles POST /api/submissions/grade.
func (h *SubmissionHandler) Grade(w http.ResponseWriter, r *http.Request) {
	var input submission.GradeInput
	if !decodeBody(w, r, &input) {
		return
	}
	id, err := h.svc.Grade(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, gradeResponse{GradeID: id})
}

// AssignmentSubmissions handles GET /api/submissions/assignment/{assignmentId}.
func (h *SubmissionHandler) AssignmentSubmissions(w http.ResponseWriter, r *http.Request) {
	assignmentID, ok := pathID(w, r, "assignmentId")
	if !ok {
		return
	}
	list, err := h.svc.AssignmentSubmissions(r.Context(), assignmentID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if list == nil {
		list = []domain.AssignmentSubmission{}
	}
	writeJSON(w, http.StatusOK, list)
}
