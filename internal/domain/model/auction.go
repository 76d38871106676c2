package model

// Package model contains domain records exchanged with the auction backend.
// Field shapes mirror the backend's JSON responses; anything the backend
// omits is default-filled at the gateway boundary rather than trusted at
// every call site.

import (
	"net/url"
	"strconv"
)

// Auction is one listed auction. JSON keys follow the backend's column
// naming verbatim.
type Auction struct {
	ID                   int    `json:"id"`
	PropertyAddress      string `json:"PropertyAddress"`
	AuctionType          string `json:"AuctionType"`
	CaseNo               string `json:"CaseNo"`
	FinalJudgementAmount string `json:"FinalJudgementAmount"`
	ParcelID             string `json:"ParcelID"`
	AuctionDate          string `json:"AuctionDate"`
	AuctionStatus        string `json:"AuctionStatus"`
	Link                 string `json:"Link"`
}

// AuctionFilters are the list-view filter controls. Zero values mean
// "no constraint"; they are omitted from the outgoing query entirely.
type AuctionFilters struct {
	Type     string `json:"auction_type"`
	Status   string `json:"auction_status"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
	Search   string `json:"search"`
}

// Query encodes the filters as backend query parameters. The CSV export
// must carry exactly the same parameters as the list query; both call this.
func (f AuctionFilters) Query() url.Values {
	q := url.Values{}
	set := func(key, val string) {
		if val != "" {
			q.Set(key, val)
		}
	}
	set("auction_type", f.Type)
	set("auction_status", f.Status)
	set("date_from", f.DateFrom)
	set("date_to", f.DateTo)
	set("search", f.Search)
	return q
}

// CacheKey is a stable identifier for this filter combination, used to key
// the per-filter auction-counts cache.
func (f AuctionFilters) CacheKey() string {
	return f.Query().Encode()
}

// IsZero reports whether no filter is set.
func (f AuctionFilters) IsZero() bool {
	return f == AuctionFilters{}
}

// AuctionPage is one page of the filtered auction list.
type AuctionPage struct {
	Auctions   []Auction `json:"auctions"`
	TotalPages int       `json:"total_pages"`
}

// PageQuery encodes filters plus a page number.
func PageQuery(f AuctionFilters, page int) url.Values {
	q := f.Query()
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	return q
}
