package httpx

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/lotview/auction-ui-api/internal/domain/calendar"
	"github.com/lotview/auction-ui-api/internal/domain/model"
	"github.com/lotview/auction-ui-api/internal/ports"
	"github.com/lotview/auction-ui-api/internal/service"
)

// AuctionsServiceInterface defines the auction-view operations the
// handlers need.
type AuctionsServiceInterface interface {
	ListCycle(ctx context.Context, cred ports.Credential, f model.AuctionFilters, page int) (*service.ListView, error)
	MonthView(ctx context.Context, cred ports.Credential, f model.AuctionFilters, m calendar.Month) ([]calendar.Cell, error)
	DayDetail(ctx context.Context, cred ports.Credential, f model.AuctionFilters, date time.Time) ([]model.Auction, error)
	Statuses(ctx context.Context, cred ports.Credential) ([]string, error)
	Counts(ctx context.Context, cred ports.Credential, f model.AuctionFilters) (calendar.Counts, error)
	AuctionsByDate(ctx context.Context, cred ports.Credential, dateKey string) ([]model.Auction, error)
	ExportCSV(ctx context.Context, cred ports.Credential, f model.AuctionFilters) (*ports.CSVExport, error)
}

// AuctionHandlers serves the auction list screen and the CSV export.
type AuctionHandlers struct {
	Svc    AuctionsServiceInterface
	Errors backendErrorRenderer
}

type listResponse struct {
	Auctions   []model.Auction `json:"auctions"`
	Statuses   []string        `json:"statuses"`
	Counts     calendar.Counts `json:"counts"`
	Pagination Pagination      `json:"pagination"`
}

// List serves one cycle of the auction list screen: the filtered page,
// the status dropdown values, and the calendar counts, in one response.
// GET /api/auctions.
func (h *AuctionHandlers) List(w http.ResponseWriter, r *http.Request) {
	filters := parseAuctionFilters(r)
	page := parsePage(r)

	view, err := h.Svc.ListCycle(r.Context(), credentialFromContext(r.Context()), filters, page)
	if err != nil {
		h.Errors.render(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, listResponse{
		Auctions:   view.Auctions,
		Statuses:   view.Statuses,
		Counts:     view.Counts,
		Pagination: newPagination(r, page, view.TotalPages),
	})
}

// Statuses serves the status values for the filter dropdown.
// GET /api/auctions-status.
func (h *AuctionHandlers) Statuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.Svc.Statuses(r.Context(), credentialFromContext(r.Context()))
	if err != nil {
		h.Errors.render(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string][]string{"auction_status": statuses})
}

// Counts serves the per-day auction counts under the active filters,
// keyed MM/DD/YYYY.
// GET /api/auction_counts.
func (h *AuctionHandlers) Counts(w http.ResponseWriter, r *http.Request) {
	filters := parseAuctionFilters(r)
	counts, err := h.Svc.Counts(r.Context(), credentialFromContext(r.Context()), filters)
	if err != nil {
		h.Errors.render(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, counts)
}

// ByDate serves the auctions on one calendar day.
// GET /api/auctions-by-date?date=MM/DD/YYYY.
func (h *AuctionHandlers) ByDate(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	date, err := calendar.ParseDateKey(raw)
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_request",
			Err:     errors.New("date must be formatted as MM/DD/YYYY"),
		})
		return
	}

	auctions, err := h.Svc.AuctionsByDate(r.Context(), credentialFromContext(r.Context()), calendar.DateKey(date))
	if err != nil {
		h.Errors.render(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string][]model.Auction{"auctions": auctions})
}

// Download streams the filtered auction set as CSV with the exact filter
// parameters of the current list query.
// GET /api/auctions/download.
func (h *AuctionHandlers) Download(w http.ResponseWriter, r *http.Request) {
	filters := parseAuctionFilters(r)

	export, err := h.Svc.ExportCSV(r.Context(), credentialFromContext(r.Context()), filters)
	if err != nil {
		h.Errors.render(w, r, err)
		return
	}
	defer func() { _ = export.Body.Close() }()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		mime.FormatMediaType("attachment", map[string]string{"filename": export.Filename}))
	_, _ = io.Copy(w, export.Body)
}
