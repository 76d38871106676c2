package httpx

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/lotview/auction-ui-api/internal/domain/model"
)

// parseAuctionFilters extracts list-view filters from query parameters.
// Every route that scopes by filters (list, counts, calendar, CSV export)
// parses them through here so they all see the same view of the data.
func parseAuctionFilters(r *http.Request) model.AuctionFilters {
	q := r.URL.Query()
	return model.AuctionFilters{
		Type:     strings.TrimSpace(q.Get("auction_type")),
		Status:   strings.TrimSpace(q.Get("auction_status")),
		DateFrom: strings.TrimSpace(q.Get("date_from")),
		DateTo:   strings.TrimSpace(q.Get("date_to")),
		Search:   strings.TrimSpace(q.Get("search")),
	}
}

// parseIntQuery returns the integer value of a query param or a default.
// It is tolerant of missing/invalid values.
func parseIntQuery(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// parsePage returns the requested page number, clamped to at least 1.
func parsePage(r *http.Request) int {
	page := parseIntQuery(r, "page", 1)
	if page < 1 {
		page = 1
	}
	return page
}
