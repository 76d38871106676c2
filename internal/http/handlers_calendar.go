package httpx

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/lotview/auction-ui-api/internal/domain/calendar"
	"github.com/lotview/auction-ui-api/internal/domain/model"
)

// CalendarHandlers serves the month-grid view and day activation.
type CalendarHandlers struct {
	Svc    AuctionsServiceInterface
	Errors backendErrorRenderer
	Now    func() time.Time // tests
}

func (h *CalendarHandlers) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

type monthResponse struct {
	Month string          `json:"month"`
	Year  int             `json:"year"`
	Cells []calendar.Cell `json:"cells"`
	Prev  string          `json:"prev"`
	Next  string          `json:"next"`
}

// Month serves the calendar grid for one month under the active filters.
// Month and year default to the current month; navigation URLs carry the
// filters along.
// GET /api/calendar?month=<1..12>&year=<yyyy>.
func (h *CalendarHandlers) Month(w http.ResponseWriter, r *http.Request) {
	current := calendar.MonthOf(h.now())
	monthNum := parseIntQuery(r, "month", int(current.Month))
	year := parseIntQuery(r, "year", current.Year)
	if monthNum < 1 || monthNum > 12 {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_request",
			Err:     errors.New("month must be between 1 and 12"),
		})
		return
	}
	m := calendar.Month{Month: time.Month(monthNum), Year: year}

	filters := parseAuctionFilters(r)
	cells, err := h.Svc.MonthView(r.Context(), credentialFromContext(r.Context()), filters, m)
	if err != nil {
		h.Errors.render(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, monthResponse{
		Month: m.Month.String(),
		Year:  m.Year,
		Cells: cells,
		Prev:  monthURL(r, m.Advance(-1)),
		Next:  monthURL(r, m.Advance(1)),
	})
}

type dayResponse struct {
	Date     string          `json:"date"`
	Auctions []model.Auction `json:"auctions,omitempty"`
	Notice   string          `json:"notice,omitempty"`
}

// Day resolves a calendar-cell activation.
// A date with no auctions answers 200 with a notice and no auctions so
// the client shows a message instead of navigating.
// GET /api/calendar/day?date=MM/DD/YYYY.
func (h *CalendarHandlers) Day(w http.ResponseWriter, r *http.Request) {
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

	filters := parseAuctionFilters(r)
	auctions, err := h.Svc.DayDetail(r.Context(), credentialFromContext(r.Context()), filters, date)
	if err != nil {
		if errors.Is(err, calendar.ErrNoAuctions) || errors.Is(err, calendar.ErrPadCell) {
			WriteJSON(w, http.StatusOK, dayResponse{
				Date:   calendar.DateKey(date),
				Notice: "no auctions on this date",
			})
			return
		}
		h.Errors.render(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, dayResponse{
		Date:     calendar.DateKey(date),
		Auctions: auctions,
	})
}

// monthURL rewrites the request URL for another month, keeping filters.
func monthURL(r *http.Request, m calendar.Month) string {
	q := r.URL.Query()
	q.Set("month", strconv.Itoa(int(m.Month)))
	q.Set("year", strconv.Itoa(m.Year))
	u := *r.URL
	u.RawQuery = q.Encode()
	return u.Path + "?" + u.RawQuery
}
