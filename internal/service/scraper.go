package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lotview/auction-ui-api/internal/domain/model"
	"github.com/lotview/auction-ui-api/internal/ports"
)

const (
	nextRunLayout  = "2006-01-02T15:04"
	dailyRunLayout = "15:04"
	runRangeLayout = "2006-01-02"

	// minRunSpacing is the smallest gap allowed between the one-off run
	// and the daily run clock, so the two never collide on the same day.
	minRunSpacing = 10 * time.Minute
)

// ScraperServiceOptions groups dependencies for ScraperService.
type ScraperServiceOptions struct {
	Gateway ports.AuctionGateway

	// Invalidate is called after operations that change the auction set,
	// to drop stale calendar counts. Optional.
	Invalidate func(ctx context.Context) error
}

// ScraperService controls the backend's scraper job: inspection, manual
// runs, and schedule management. Schedule inputs are validated here at
// the boundary; the backend revalidates but answers with opaque 400s.
type ScraperService struct {
	gateway    ports.AuctionGateway
	invalidate func(ctx context.Context) error
}

// NewScraperService constructs a new ScraperService.
func NewScraperService(opts ScraperServiceOptions) *ScraperService {
	return &ScraperService{
		gateway:    opts.Gateway,
		invalidate: opts.Invalidate,
	}
}

// Details reports the scraper's last run and current schedule.
func (s *ScraperService) Details(ctx context.Context, cred ports.Credential) (model.ScraperDetails, error) {
	details, err := s.gateway.ScraperDetails(ctx, cred)
	if err != nil {
		return model.ScraperDetails{}, fmt.Errorf("scraper details: %w", err)
	}
	return details, nil
}

// Start triggers an immediate scraper run and drops cached counts.
func (s *ScraperService) Start(ctx context.Context, cred ports.Credential) error {
	if err := s.gateway.StartScraper(ctx, cred); err != nil {
		return fmt.Errorf("start scraper: %w", err)
	}
	s.dropCounts(ctx)
	return nil
}

// SetSchedule validates and applies a scraper schedule. At least one of
// the one-off and daily times must be set.
func (s *ScraperService) SetSchedule(ctx context.Context, cred ports.Credential, in model.ScheduleInput) error {
	if in.NextRunTime == "" && in.DailyRunTime == "" {
		return model.Validationf("at least one of next run time and daily run time is required")
	}

	var next time.Time
	if in.NextRunTime != "" {
		parsed, err := time.Parse(nextRunLayout, in.NextRunTime)
		if err != nil {
			return model.Validationf("next run time must be formatted as YYYY-MM-DDTHH:MM")
		}
		next = parsed
	}

	var daily time.Time
	if in.DailyRunTime != "" {
		parsed, err := time.Parse(dailyRunLayout, in.DailyRunTime)
		if err != nil {
			return model.Validationf("daily run time must be formatted as HH:MM")
		}
		daily = parsed
	}

	if in.NextRunTime != "" && in.DailyRunTime != "" {
		if clockGap(next, daily) < minRunSpacing {
			return model.Validationf("next run time and daily run time must be at least 10 minutes apart")
		}
	}

	if err := s.gateway.SetSchedule(ctx, cred, in); err != nil {
		return fmt.Errorf("set schedule: %w", err)
	}
	return nil
}

// SetNextRunRange restricts the one-off run's auction date window.
func (s *ScraperService) SetNextRunRange(ctx context.Context, cred ports.Credential, rng model.RunRange) error {
	if err := validateRunRange(rng); err != nil {
		return err
	}
	if err := s.gateway.SetNextRunRange(ctx, cred, rng); err != nil {
		return fmt.Errorf("set next run range: %w", err)
	}
	return nil
}

// SetDailyRunRange restricts the daily run's auction date window.
func (s *ScraperService) SetDailyRunRange(ctx context.Context, cred ports.Credential, rng model.RunRange) error {
	if err := validateRunRange(rng); err != nil {
		return err
	}
	if err := s.gateway.SetDailyRunRange(ctx, cred, rng); err != nil {
		return fmt.Errorf("set daily run range: %w", err)
	}
	return nil
}

func validateRunRange(rng model.RunRange) error {
	if rng.From == "" || rng.To == "" {
		return model.Validationf("both range bounds are required")
	}
	from, err := time.Parse(runRangeLayout, rng.From)
	if err != nil {
		return model.Validationf("range start must be formatted as YYYY-MM-DD")
	}
	to, err := time.Parse(runRangeLayout, rng.To)
	if err != nil {
		return model.Validationf("range end must be formatted as YYYY-MM-DD")
	}
	if to.Before(from) {
		return model.Validationf("range end must not be before range start")
	}
	return nil
}

// clockGap measures how far apart two times-of-day are, ignoring dates,
// wrapping around midnight.
func clockGap(a, b time.Time) time.Duration {
	am := time.Duration(a.Hour())*time.Hour + time.Duration(a.Minute())*time.Minute
	bm := time.Duration(b.Hour())*time.Hour + time.Duration(b.Minute())*time.Minute
	gap := am - bm
	if gap < 0 {
		gap = -gap
	}
	if wrapped := 24*time.Hour - gap; wrapped < gap {
		gap = wrapped
	}
	return gap
}

func (s *ScraperService) dropCounts(ctx context.Context) {
	if s.invalidate == nil {
		return
	}
	// Stale counts self-heal on TTL anyway.
	_ = s.invalidate(ctx)
}
