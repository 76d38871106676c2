package httpx

import (
	"errors"
	"net/http"

	"github.com/lotview/auction-ui-api/internal/domain/model"
)

// backendErrorRenderer maps backend/service failures onto HTTP responses
// following one rule set for every proxied route: an expired backend
// credential tears the whole session down, anything else leaves the
// caller's state alone.
type backendErrorRenderer struct {
	Sessions     SessionRestorer
	CookieDomain string
}

func (re backendErrorRenderer) render(w http.ResponseWriter, r *http.Request, err error) {
	var verr *model.ValidationError
	switch {
	case errors.Is(err, model.ErrUnauthorized):
		// The backend no longer honors this credential, so the session
		// it belongs to is dead too.
		if sess, ok := SessionFromContext(r.Context()); ok {
			re.Sessions.Logout(r.Context(), sess.ID)
		}
		clearCookie(w, r, re.CookieDomain, sessionCookieName)
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "session_expired",
			Err:     errors.New("session expired, sign in again"),
		})

	case errors.Is(err, model.ErrForbidden):
		WriteError(w, ErrorParams{
			Code:    http.StatusForbidden,
			ErrCode: "insufficient_permissions",
			Err:     errors.New("insufficient permissions"),
		})

	case errors.As(err, &verr):
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_request",
			Err:     verr,
		})

	case errors.Is(err, model.ErrNotFound):
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "not_found",
			Err:     errors.New("not found"),
		})

	case errors.Is(err, model.ErrBackendUnavailable):
		WriteError(w, ErrorParams{
			Code:    http.StatusServiceUnavailable,
			ErrCode: "backend_unreachable",
			Err:     errors.New("auction service is unreachable, try again"),
		})

	default:
		WriteError(w, ErrorParams{
			Code:    http.StatusBadGateway,
			ErrCode: "backend_error",
			Err:     errors.New("auction service returned an unexpected response"),
		})
	}
}
