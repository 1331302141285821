package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pavlo-petrychenko/labb/internal/domain"
	"github.com/pavlo-petrychenko/labb/internal/service/user"
)

type userService interface {
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	GetUserWithRoles(ctx context.Context, id int64) (*domain.UserWithRoles, error)
	ListActiveUsers(ctx context.Context) ([]domain.ActiveUser, error)
	CreateUser(ctx context.Context, input user.CreateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, input user.DeleteUserInput) error
	AssignRole(ctx context.Context, input user.AssignRoleInput) (bool, error)
}

// UserHandler serves account endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type deleteRequest struct {
	DeletedBy int64 `json:"deletedBy"`
}

type assignRoleRequest struct {
	RoleID int64 `json:"roleId"`
}

type assignRoleResponse struct {
	Assigned bool `json:"assigned"`
}

// Get handles GET /api/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	u, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if u == nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// GetWithRoles handles GET /api/users/{id}/roles.
func (h *UserHandler) GetWithRoles(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	u, err := h.svc.GetUserWithRoles(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if u == nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// ListActive handles GET /api/users.
func (h *UserHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListActiveUsers(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if users == nil {
		users = []domain.ActiveUser{}
	}
	writeJSON(w, http.StatusOK, users)
}

// Create handles POST /api/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input user.CreateUserInput
	if !decodeBody(w, r, &input) {
		return
	}
	u, err := h.svc.CreateUser(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

// Delete handles DELETE /api/users/{id}. The body is optional; without it
// the deleting actor comes from X-Actor-Id.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req deleteRequest
	if !decodeOptionalBody(w, r, &req) {
		return
	}
	err := h.svc.DeleteUser(r.Context(), user.DeleteUserInput{UserID: id, DeletedBy: actorID(r, req.DeletedBy)})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AssignRole handles POST /api/users/{id}/roles.
func (h *UserHandler) AssignRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req assignRoleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	assigned, err := h.svc.AssignRole(r.Context(), user.AssignRoleInput{UserID: id, RoleID: req.RoleID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, assignRoleResponse{Assigned: assigned})
}
