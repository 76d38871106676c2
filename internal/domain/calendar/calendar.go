package calendar

// Package calendar builds the month-grid view-model for the auction
// calendar. It is pure: a displayed month plus a sparse per-date count
// mapping in, an ordered fixed-layout grid of cells out. The grid is
// rebuilt from scratch on every month change or data refresh; it is at
// most 42 cells and recomputation avoids stale derived state.

import (
	"errors"
	"fmt"
	"time"
)

// DateKeyLayout is the key format of the sparse count mapping supplied by
// the backend: zero-padded month and day, four-digit year.
const DateKeyLayout = "01/02/2006"

// ErrNoAuctions is returned when a day cell with no auctions is activated.
// Callers surface it as a user-facing notice; it never navigates.
var ErrNoAuctions = errors.New("no auctions on this day")

// ErrPadCell is returned when a leading pad cell is activated. Pad cells
// are non-interactive by contract; this guards against callers that do not
// filter them out.
var ErrPadCell = errors.New("pad cells cannot be activated")

// Counts is the sparse date→count mapping keyed by DateKeyLayout strings.
// Any date absent from the mapping has zero auctions.
type Counts map[string]int

// For returns the auction count for the given date, zero when absent.
func (c Counts) For(date time.Time) int {
	return c[DateKey(date)]
}

// DateKey formats a date as the backend's count-mapping key.
func DateKey(date time.Time) string {
	return date.Format(DateKeyLayout)
}

// ParseDateKey parses a count-mapping key back into a calendar date.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(DateKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", key, err)
	}
	return t, nil
}

// Month identifies a displayed month.
type Month struct {
	Month time.Month
	Year  int
}

// MonthOf returns the Month containing the given instant.
func MonthOf(t time.Time) Month {
	return Month{Month: t.Month(), Year: t.Year()}
}

// Advance returns the month shifted by delta whole months, rolling over
// year boundaries in both directions (January − 1 → December of the
// previous year, December + 1 → January of the next).
func (m Month) Advance(delta int) Month {
	t := time.Date(m.Year, m.Month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return Month{Month: t.Month(), Year: t.Year()}
}

// String renders the month as e.g. "March 2025" for headers and logs.
func (m Month) String() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// DaysInMonth returns the number of days in the given month, handling
// variable month lengths and leap years. Day 0 of the following month is
// one-past-the-end normalized back to the last day of this one.
func DaysInMonth(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOffset returns the weekday index (0=Sunday..6=Saturday) of
// day 1, used to left-pad the grid so day 1 aligns under the correct
// weekday column.
func FirstWeekdayOffset(month time.Month, year int) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// Cell is one slot of the month grid. Pad cells carry only IsPad; day
// cells carry the day number, resolved date, auction count, and today
// marker.
type Cell struct {
	Day          int       `json:"day"`
	Date         time.Time `json:"date"`
	AuctionCount int       `json:"auction_count"`
	IsToday      bool      `json:"is_today"`
	IsPad        bool      `json:"is_pad"`
}

// Activation is the navigation event produced by activating a day cell
// that has at least one auction.
type Activation struct {
	Date time.Time
}

// DateKey returns the activation date in count-mapping form, the shape the
// day-detail endpoint expects.
func (a Activation) DateKey() string { return DateKey(a.Date) }

// Activate resolves a click on the cell. Cells with auctions produce a
// navigation event carrying the resolved date; empty day cells produce
// ErrNoAuctions and no navigation; pad cells never activate.
func (c Cell) Activate() (Activation, error) {
	if c.IsPad {
		return Activation{}, ErrPadCell
	}
	if c.AuctionCount <= 0 {
		return Activation{}, ErrNoAuctions
	}
	return Activation{Date: c.Date}, nil
}

// BuildMonthGrid produces the ordered cell sequence for the month:
// FirstWeekdayOffset pad cells followed by one cell per day, each
// annotated with its count lookup and an IsToday flag computed against
// the current wall clock.
func BuildMonthGrid(m Month, counts Counts) []Cell {
	return buildGridAt(m, counts, time.Now())
}

// buildGridAt is BuildMonthGrid with an explicit "now" for deterministic
// today-marking in tests.
func buildGridAt(m Month, counts Counts, now time.Time) []Cell {
	offset := FirstWeekdayOffset(m.Month, m.Year)
	days := DaysInMonth(m.Month, m.Year)

	cells := make([]Cell, 0, offset+days)
	for range offset {
		cells = append(cells, Cell{IsPad: true})
	}

	sameMonth := now.Month() == m.Month && now.Year() == m.Year
	for day := 1; day <= days; day++ {
		date := time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC)
		cells = append(cells, Cell{
			Day:          day,
			Date:         date,
			AuctionCount: counts.For(date),
			IsToday:      sameMonth && day == now.Day(),
		})
	}
	return cells
}
