package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name     string
		month    time.Month
		year     int
		expected int
	}{
		{name: "february leap year", month: time.February, year: 2024, expected: 29},
		{name: "february non-leap", month: time.February, year: 2023, expected: 28},
		{name: "century non-leap", month: time.February, year: 1900, expected: 28},
		{name: "400-year leap", month: time.February, year: 2000, expected: 29},
		{name: "january", month: time.January, year: 2024, expected: 31},
		{name: "april", month: time.April, year: 2024, expected: 30},
		{name: "december", month: time.December, year: 2025, expected: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysInMonth(tt.month, tt.year); got != tt.expected {
				t.Fatalf("DaysInMonth(%v, %d) = %d, want %d", tt.month, tt.year, got, tt.expected)
			}
		})
	}
}

func TestFirstWeekdayOffset(t *testing.T) {
	// 2024-06-01 was a Saturday, 2024-09-01 a Sunday, 2024-01-01 a Monday.
	if got := FirstWeekdayOffset(time.June, 2024); got != 6 {
		t.Fatalf("June 2024 offset = %d, want 6", got)
	}
	if got := FirstWeekdayOffset(time.September, 2024); got != 0 {
		t.Fatalf("September 2024 offset = %d, want 0", got)
	}
	if got := FirstWeekdayOffset(time.January, 2024); got != 1 {
		t.Fatalf("January 2024 offset = %d, want 1", got)
	}
}

func TestMonthAdvance(t *testing.T) {
	tests := []struct {
		name     string
		start    Month
		delta    int
		expected Month
	}{
		{
			name:     "january back rolls into previous december",
			start:    Month{Month: time.January, Year: 2024},
			delta:    -1,
			expected: Month{Month: time.December, Year: 2023},
		},
		{
			name:     "december forward rolls into next january",
			start:    Month{Month: time.December, Year: 2024},
			delta:    1,
			expected: Month{Month: time.January, Year: 2025},
		},
		{
			name:     "plain forward",
			start:    Month{Month: time.March, Year: 2025},
			delta:    1,
			expected: Month{Month: time.April, Year: 2025},
		},
		{
			name:     "multi-month jump across a year",
			start:    Month{Month: time.November, Year: 2024},
			delta:    3,
			expected: Month{Month: time.February, Year: 2025},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.start.Advance(tt.delta); got != tt.expected {
				t.Fatalf("Advance(%d) = %+v, want %+v", tt.delta, got, tt.expected)
			}
		})
	}
}

func TestBuildMonthGrid_Shape(t *testing.T) {
	// Every month of a leap and a non-leap year: exactly offset+days cells,
	// the first offset of them pads, the rest real days in order.
	for _, year := range []int{2023, 2024} {
		for month := time.January; month <= time.December; month++ {
			m := Month{Month: month, Year: year}
			cells := buildGridAt(m, nil, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))

			offset := FirstWeekdayOffset(month, year)
			days := DaysInMonth(month, year)
			if len(cells) != offset+days {
				t.Fatalf("%s: got %d cells, want %d", m, len(cells), offset+days)
			}
			for i := range offset {
				if !cells[i].IsPad {
					t.Fatalf("%s: cell %d should be a pad", m, i)
				}
			}
			for i, cell := range cells[offset:] {
				if cell.IsPad {
					t.Fatalf("%s: day cell %d marked pad", m, i+1)
				}
				if cell.Day != i+1 {
					t.Fatalf("%s: cell %d has day %d", m, i, cell.Day)
				}
			}
		}
	}
}

func TestBuildMonthGrid_CountsAndToday(t *testing.T) {
	now := time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)
	counts := Counts{
		"06/03/2024": 2,
		"06/15/2024": 7,
	}

	cells := buildGridAt(Month{Month: time.June, Year: 2024}, counts, now)
	offset := FirstWeekdayOffset(time.June, 2024)

	day := func(d int) Cell { return cells[offset+d-1] }

	if day(3).AuctionCount != 2 {
		t.Fatalf("day 3 count = %d, want 2", day(3).AuctionCount)
	}
	if day(15).AuctionCount != 7 {
		t.Fatalf("day 15 count = %d, want 7", day(15).AuctionCount)
	}
	if day(4).AuctionCount != 0 {
		t.Fatalf("sparse mapping: absent date should default to 0, got %d", day(4).AuctionCount)
	}
	if !day(15).IsToday {
		t.Fatal("day 15 should be marked today")
	}
	for d := 1; d <= 30; d++ {
		if d != 15 && day(d).IsToday {
			t.Fatalf("day %d wrongly marked today", d)
		}
	}
}

func TestBuildMonthGrid_TodayRequiresExactMonthAndYear(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	for _, m := range []Month{
		{Month: time.July, Year: 2024},
		{Month: time.June, Year: 2023},
	} {
		for _, cell := range buildGridAt(m, nil, now) {
			if cell.IsToday {
				t.Fatalf("%s: no cell should be today when viewing another month", m)
			}
		}
	}
}

func TestCellActivate(t *testing.T) {
	date := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)

	act, err := Cell{Day: 3, Date: date, AuctionCount: 2}.Activate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !act.Date.Equal(date) {
		t.Fatalf("activation date = %v, want %v", act.Date, date)
	}
	if act.DateKey() != "06/03/2024" {
		t.Fatalf("activation key = %q, want 06/03/2024", act.DateKey())
	}

	// Empty day cells signal the notice, never navigation — on any date.
	for _, d := range []time.Time{date, time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)} {
		_, err = Cell{Day: d.Day(), Date: d}.Activate()
		if !errors.Is(err, ErrNoAuctions) {
			t.Fatalf("empty cell: got %v, want ErrNoAuctions", err)
		}
	}

	_, err = Cell{IsPad: true}.Activate()
	if !errors.Is(err, ErrPadCell) {
		t.Fatalf("pad cell: got %v, want ErrPadCell", err)
	}
}

func TestDateKeyRoundTrip(t *testing.T) {
	date := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)
	key := DateKey(date)
	if key != "03/07/2025" {
		t.Fatalf("DateKey = %q, want zero-padded 03/07/2025", key)
	}

	parsed, err := ParseDateKey(key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !parsed.Equal(date) {
		t.Fatalf("round trip: got %v, want %v", parsed, date)
	}

	if _, err = ParseDateKey("2025-03-07"); err == nil {
		t.Fatal("expected error for non-MM/DD/YYYY input")
	}
}
