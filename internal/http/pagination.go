package httpx

import (
	"net/http"
	"net/url"
	"strconv"
)

// Pagination is the list view's paging block: the current page, the
// total, and ready-made URLs for the neighbors so the client never
// assembles query strings itself.
type Pagination struct {
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	PrevURL    string `json:"prev_url,omitempty"`
	NextURL    string `json:"next_url,omitempty"`
}

// newPagination builds the paging block off the request's own URL, so
// every active filter survives page navigation.
func newPagination(r *http.Request, page, totalPages int) Pagination {
	p := Pagination{Page: page, TotalPages: totalPages}
	if page > 1 {
		p.PrevURL = pageURL(r.URL, page-1)
	}
	if page < totalPages {
		p.NextURL = pageURL(r.URL, page+1)
	}
	return p
}

func pageURL(u *url.URL, page int) string {
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	out := url.URL{Path: u.Path, RawQuery: q.Encode()}
	return out.String()
}
