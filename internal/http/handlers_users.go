package httpx

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/lotview/auction-ui-api/internal/domain/model"
	"github.com/lotview/auction-ui-api/internal/ports"
)

// UsersServiceInterface defines the admin dashboard operations the
// handlers need.
type UsersServiceInterface interface {
	Analysis(ctx context.Context, cred ports.Credential) (model.Analysis, error)
	List(ctx context.Context, cred ports.Credential) ([]model.User, error)
	Get(ctx context.Context, cred ports.Credential, id int) (model.User, error)
	Update(ctx context.Context, cred ports.Credential, id int, in model.UserUpdate) error
	Delete(ctx context.Context, cred ports.Credential, id int) error
}

// UserHandlers serves the admin dashboard's user management.
type UserHandlers struct {
	Svc    UsersServiceInterface
	Errors backendErrorRenderer
}

// Analysis serves the dashboard overview aggregate.
// GET /api/analysis.
func (h *UserHandlers) Analysis(w http.ResponseWriter, r *http.Request) {
	res, err := h.Svc.Analysis(r.Context(), credentialFromContext(r.Context()))
	if err != nil {
		h.Errors.render(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, res)
}

// List serves all user accounts.
// GET /api/users.
func (h *UserHandlers) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.List(r.Context(), credentialFromContext(r.Context()))
	if err != nil {
		h.Errors.render(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string][]model.User{"users": users})
}

// Get serves one user account.
// GET /api/users/{id}.
func (h *UserHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	user, err := h.Svc.Get(r.Context(), credentialFromContext(r.Context()), id)
	if err != nil {
		h.Errors.render(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]model.User{"user": user})
}

// Update edits a user account.
// PUT /api/users/{id}.
func (h *UserHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	var in model.UserUpdate
	if !DecodeJSON(w, r, &in) {
		return
	}
	if err := h.Svc.Update(r.Context(), credentialFromContext(r.Context()), id, in); err != nil {
		h.Errors.render(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// Delete removes a user account.
// DELETE /api/users/{id}.
func (h *UserHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	if err := h.Svc.Delete(r.Context(), credentialFromContext(r.Context()), id); err != nil {
		h.Errors.render(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func userID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_request",
			Err:     errors.New("user id must be a positive integer"),
		})
		return 0, false
	}
	return id, true
}
