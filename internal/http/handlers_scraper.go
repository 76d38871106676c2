package httpx

import (
	"context"
	"net/http"

	"github.com/lotview/auction-ui-api/internal/domain/model"
	"github.com/lotview/auction-ui-api/internal/ports"
)

// ScraperServiceInterface defines the scraper control operations the
// handlers need.
type ScraperServiceInterface interface {
	Details(ctx context.Context, cred ports.Credential) (model.ScraperDetails, error)
	Start(ctx context.Context, cred ports.Credential) error
	SetSchedule(ctx context.Context, cred ports.Credential, in model.ScheduleInput) error
	SetNextRunRange(ctx context.Context, cred ports.Credential, rng model.RunRange) error
	SetDailyRunRange(ctx context.Context, cred ports.Credential, rng model.RunRange) error
}

// ScraperHandlers serves scraper inspection and schedule management.
type ScraperHandlers struct {
	Svc    ScraperServiceInterface
	Errors backendErrorRenderer
}

// Details serves the scraper's last run report and current schedule.
// GET /api/scraper/details.
func (h *ScraperHandlers) Details(w http.ResponseWriter, r *http.Request) {
	details, err := h.Svc.Details(r.Context(), credentialFromContext(r.Context()))
	if err != nil {
		h.Errors.render(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, details)
}

// Start triggers an immediate scraper run.
// POST /api/scraper/start.
func (h *ScraperHandlers) Start(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Start(r.Context(), credentialFromContext(r.Context())); err != nil {
		h.Errors.render(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "started"})
}

// Schedule applies a new scraper schedule.
// POST /api/scraper/schedule.
func (h *ScraperHandlers) Schedule(w http.ResponseWriter, r *http.Request) {
	var in model.ScheduleInput
	if !DecodeJSON(w, r, &in) {
		return
	}
	if err := h.Svc.SetSchedule(r.Context(), credentialFromContext(r.Context()), in); err != nil {
		h.Errors.render(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "scheduled"})
}

// NextRunRange restricts the one-off run's auction date window.
// POST /api/scraper/next_run_range.
func (h *ScraperHandlers) NextRunRange(w http.ResponseWriter, r *http.Request) {
	h.setRange(w, r, h.Svc.SetNextRunRange)
}

// DailyRunRange restricts the daily run's auction date window.
// POST /api/scraper/daily_run_range.
func (h *ScraperHandlers) DailyRunRange(w http.ResponseWriter, r *http.Request) {
	h.setRange(w, r, h.Svc.SetDailyRunRange)
}

func (h *ScraperHandlers) setRange(w http.ResponseWriter, r *http.Request, apply func(context.Context, ports.Credential, model.RunRange) error) {
	var rng model.RunRange
	if !DecodeJSON(w, r, &rng) {
		return
	}
	if err := apply(r.Context(), credentialFromContext(r.Context()), rng); err != nil {
		h.Errors.render(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
