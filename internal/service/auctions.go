package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lotview/auction-ui-api/internal/domain/calendar"
	"github.com/lotview/auction-ui-api/internal/domain/model"
	"github.com/lotview/auction-ui-api/internal/ports"
)

// CountsCache is the minimal cache behavior AuctionService needs for the
// calendar's per-filter counts. A (nil, false, nil) result is a miss.
type CountsCache interface {
	Get(ctx context.Context, filterKey string) (map[string]int, bool, error)
	Set(ctx context.Context, filterKey string, counts map[string]int) error
}

// AuctionServiceOptions groups dependencies for AuctionService.
type AuctionServiceOptions struct {
	Gateway ports.AuctionGateway
	Counts  CountsCache // optional
	Logger  *slog.Logger
	Now     func() time.Time // optional, tests
}

// AuctionService serves the auction list and calendar views on top of
// the backend gateway.
type AuctionService struct {
	gateway ports.AuctionGateway
	counts  CountsCache
	logger  *slog.Logger
	now     func() time.Time
}

// NewAuctionService constructs a new AuctionService.
func NewAuctionService(opts AuctionServiceOptions) *AuctionService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &AuctionService{
		gateway: opts.Gateway,
		counts:  opts.Counts,
		logger:  logger,
		now:     now,
	}
}

// ListView is everything the auction list screen needs in one response:
// the page, the status values for the filter dropdown, and the calendar
// counts under the same filters.
type ListView struct {
	Auctions   []model.Auction `json:"auctions"`
	TotalPages int             `json:"total_pages"`
	Statuses   []string        `json:"statuses"`
	Counts     calendar.Counts `json:"counts"`
}

// ListCycle runs the three list-screen fetches concurrently and fails as
// a unit: one expired credential must not yield a half-populated screen.
func (s *AuctionService) ListCycle(
	ctx context.Context,
	cred ports.Credential,
	f model.AuctionFilters,
	page int,
) (*ListView, error) {
	if page < 1 {
		page = 1
	}

	var view ListView
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		res, err := s.gateway.ListAuctions(gctx, cred, f, page)
		if err != nil {
			return fmt.Errorf("list auctions: %w", err)
		}
		view.Auctions = res.Auctions
		view.TotalPages = res.TotalPages
		return nil
	})

	g.Go(func() error {
		statuses, err := s.gateway.Statuses(gctx, cred)
		if err != nil {
			return fmt.Errorf("list statuses: %w", err)
		}
		view.Statuses = cleanStatuses(statuses)
		return nil
	})

	g.Go(func() error {
		counts, err := s.countsFor(gctx, cred, f)
		if err != nil {
			return fmt.Errorf("auction counts: %w", err)
		}
		view.Counts = counts
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &view, nil
}

// MonthView builds the calendar grid for one month under the current
// filters. The grid is assembled per request, so a response for a month
// the user already navigated away from simply never renders.
func (s *AuctionService) MonthView(
	ctx context.Context,
	cred ports.Credential,
	f model.AuctionFilters,
	m calendar.Month,
) ([]calendar.Cell, error) {
	counts, err := s.countsFor(ctx, cred, f)
	if err != nil {
		return nil, fmt.Errorf("auction counts: %w", err)
	}
	return calendar.BuildMonthGrid(m, counts), nil
}

// DayDetail resolves a calendar-cell activation and returns that day's
// auctions. A day with no auctions returns calendar.ErrNoAuctions so the
// handler can answer with a notice instead of navigating.
func (s *AuctionService) DayDetail(
	ctx context.Context,
	cred ports.Credential,
	f model.AuctionFilters,
	date time.Time,
) ([]model.Auction, error) {
	counts, err := s.countsFor(ctx, cred, f)
	if err != nil {
		return nil, fmt.Errorf("auction counts: %w", err)
	}

	cell := calendar.Cell{
		Day:          date.Day(),
		Date:         date,
		AuctionCount: counts.For(date),
	}
	activation, err := cell.Activate()
	if err != nil {
		return nil, err
	}

	auctions, err := s.gateway.AuctionsByDate(ctx, cred, activation.DateKey())
	if err != nil {
		return nil, fmt.Errorf("auctions by date: %w", err)
	}
	return auctions, nil
}

// Statuses lists the distinct auction status values for the filter
// dropdown, blank entries removed.
func (s *AuctionService) Statuses(ctx context.Context, cred ports.Credential) ([]string, error) {
	statuses, err := s.gateway.Statuses(ctx, cred)
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	return cleanStatuses(statuses), nil
}

// Counts reports per-day auction counts under the given filters.
func (s *AuctionService) Counts(
	ctx context.Context,
	cred ports.Credential,
	f model.AuctionFilters,
) (calendar.Counts, error) {
	counts, err := s.countsFor(ctx, cred, f)
	if err != nil {
		return nil, fmt.Errorf("auction counts: %w", err)
	}
	return counts, nil
}

// AuctionsByDate lists the auctions on one calendar day, keyed
// MM/DD/YYYY. Unlike DayDetail it does not consult the counts first.
func (s *AuctionService) AuctionsByDate(
	ctx context.Context,
	cred ports.Credential,
	dateKey string,
) ([]model.Auction, error) {
	auctions, err := s.gateway.AuctionsByDate(ctx, cred, dateKey)
	if err != nil {
		return nil, fmt.Errorf("auctions by date: %w", err)
	}
	return auctions, nil
}

// ExportCSV streams the filtered auction set. The filter parameters are
// exactly those of the current list query.
func (s *AuctionService) ExportCSV(
	ctx context.Context,
	cred ports.Credential,
	f model.AuctionFilters,
) (*ports.CSVExport, error) {
	export, err := s.gateway.DownloadCSV(ctx, cred, f)
	if err != nil {
		return nil, fmt.Errorf("download csv: %w", err)
	}
	return export, nil
}

// countsFor reads through the per-filter counts cache. Cache failures
// degrade to a direct fetch; the calendar never breaks over the cache.
func (s *AuctionService) countsFor(
	ctx context.Context,
	cred ports.Credential,
	f model.AuctionFilters,
) (calendar.Counts, error) {
	key := f.CacheKey()

	if s.counts != nil {
		cached, ok, err := s.counts.Get(ctx, key)
		if err != nil {
			s.logger.WarnContext(ctx, "counts cache read failed", "error", err)
		} else if ok {
			return calendar.Counts(cached), nil
		}
	}

	counts, err := s.gateway.Counts(ctx, cred, f)
	if err != nil {
		return nil, err
	}

	if s.counts != nil {
		if err := s.counts.Set(ctx, key, counts); err != nil {
			s.logger.WarnContext(ctx, "counts cache write failed", "error", err)
		}
	}
	return calendar.Counts(counts), nil
}

func cleanStatuses(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
