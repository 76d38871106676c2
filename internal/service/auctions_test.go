package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lotview/auction-ui-api/internal/domain/calendar"
	"github.com/lotview/auction-ui-api/internal/domain/model"
	"github.com/lotview/auction-ui-api/internal/mocks"
	"github.com/lotview/auction-ui-api/internal/ports"
)

// memCountsCache is a map-backed CountsCache for unit tests.
type memCountsCache struct {
	entries map[string]map[string]int
	getErr  error
	sets    int
}

func newMemCountsCache() *memCountsCache {
	return &memCountsCache{entries: make(map[string]map[string]int)}
}

func (c *memCountsCache) Get(_ context.Context, key string) (map[string]int, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	counts, ok := c.entries[key]
	return counts, ok, nil
}

func (c *memCountsCache) Set(_ context.Context, key string, counts map[string]int) error {
	c.sets++
	c.entries[key] = counts
	return nil
}

func TestAuctionService_ListCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	filters := model.AuctionFilters{Status: "Sold"}
	cred := ports.Credential("tok-1")

	gw := mocks.NewMockAuctionGateway(ctrl)
	gw.EXPECT().ListAuctions(gomock.Any(), cred, filters, 2).
		Return(model.AuctionPage{
			Auctions:   []model.Auction{{ID: 1, PropertyAddress: "1 Main St"}},
			TotalPages: 5,
		}, nil)
	gw.EXPECT().Statuses(gomock.Any(), cred).
		Return([]string{"Sold", "", "  ", "Canceled"}, nil)
	gw.EXPECT().Counts(gomock.Any(), cred, filters).
		Return(map[string]int{"03/05/2024": 4}, nil)

	svc := NewAuctionService(AuctionServiceOptions{Gateway: gw})

	view, err := svc.ListCycle(context.Background(), cred, filters, 2)
	require.NoError(t, err)
	assert.Len(t, view.Auctions, 1)
	assert.Equal(t, 5, view.TotalPages)
	assert.Equal(t, []string{"Sold", "Canceled"}, view.Statuses)
	assert.Equal(t, 4, view.Counts["03/05/2024"])
}

func TestAuctionService_ListCycleDefaultsPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockAuctionGateway(ctrl)
	gw.EXPECT().ListAuctions(gomock.Any(), gomock.Any(), gomock.Any(), 1).
		Return(model.AuctionPage{Auctions: []model.Auction{}, TotalPages: 1}, nil)
	gw.EXPECT().Statuses(gomock.Any(), gomock.Any()).Return([]string{}, nil)
	gw.EXPECT().Counts(gomock.Any(), gomock.Any(), gomock.Any()).Return(map[string]int{}, nil)

	svc := NewAuctionService(AuctionServiceOptions{Gateway: gw})

	_, err := svc.ListCycle(context.Background(), "tok-1", model.AuctionFilters{}, 0)
	require.NoError(t, err)
}

func TestAuctionService_ListCycleFailsAsUnit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockAuctionGateway(ctrl)
	gw.EXPECT().ListAuctions(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(model.AuctionPage{}, model.ErrUnauthorized)
	gw.EXPECT().Statuses(gomock.Any(), gomock.Any()).
		Return([]string{"Sold"}, nil).AnyTimes()
	gw.EXPECT().Counts(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[string]int{}, nil).AnyTimes()

	svc := NewAuctionService(AuctionServiceOptions{Gateway: gw})

	view, err := svc.ListCycle(context.Background(), "tok-1", model.AuctionFilters{}, 1)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestAuctionService_MonthView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockAuctionGateway(ctrl)
	gw.EXPECT().Counts(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[string]int{"03/05/2024": 4}, nil)

	svc := NewAuctionService(AuctionServiceOptions{Gateway: gw})

	m := calendar.Month{Month: time.March, Year: 2024}
	cells, err := svc.MonthView(context.Background(), "tok-1", model.AuctionFilters{}, m)
	require.NoError(t, err)
	require.Len(t, cells, calendar.FirstWeekdayOffset(m.Month, m.Year)+31)

	var found bool
	for _, c := range cells {
		if !c.IsPad && c.Day == 5 {
			assert.Equal(t, 4, c.AuctionCount)
			found = true
		}
	}
	assert.True(t, found)
}

func TestAuctionService_CountsCacheReadThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	filters := model.AuctionFilters{Status: "Sold"}

	gw := mocks.NewMockAuctionGateway(ctrl)
	// Only one backend fetch; the second MonthView hits the cache.
	gw.EXPECT().Counts(gomock.Any(), gomock.Any(), filters).
		Return(map[string]int{"03/05/2024": 4}, nil).Times(1)

	cache := newMemCountsCache()
	svc := NewAuctionService(AuctionServiceOptions{Gateway: gw, Counts: cache})

	m := calendar.Month{Month: time.March, Year: 2024}
	_, err := svc.MonthView(context.Background(), "tok-1", filters, m)
	require.NoError(t, err)
	_, err = svc.MonthView(context.Background(), "tok-1", filters, m)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)
}

func TestAuctionService_CountsCacheFailureDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockAuctionGateway(ctrl)
	gw.EXPECT().Counts(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[string]int{"03/05/2024": 1}, nil)

	cache := newMemCountsCache()
	cache.getErr = errors.New("redis down")
	svc := NewAuctionService(AuctionServiceOptions{Gateway: gw, Counts: cache})

	m := calendar.Month{Month: time.March, Year: 2024}
	cells, err := svc.MonthView(context.Background(), "tok-1", model.AuctionFilters{}, m)
	require.NoError(t, err)
	assert.NotEmpty(t, cells)
}

func TestAuctionService_DayDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	gw := mocks.NewMockAuctionGateway(ctrl)
	gw.EXPECT().Counts(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[string]int{"03/05/2024": 2}, nil)
	gw.EXPECT().AuctionsByDate(gomock.Any(), ports.Credential("tok-1"), "03/05/2024").
		Return([]model.Auction{{ID: 1}, {ID: 2}}, nil)

	svc := NewAuctionService(AuctionServiceOptions{Gateway: gw})

	auctions, err := svc.DayDetail(context.Background(), "tok-1", model.AuctionFilters{}, date)
	require.NoError(t, err)
	assert.Len(t, auctions, 2)
}

func TestAuctionService_DayDetailEmptyDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw := mocks.NewMockAuctionGateway(ctrl)
	gw.EXPECT().Counts(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[string]int{}, nil)

	svc := NewAuctionService(AuctionServiceOptions{Gateway: gw})

	date := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	_, err := svc.DayDetail(context.Background(), "tok-1", model.AuctionFilters{}, date)
	assert.ErrorIs(t, err, calendar.ErrNoAuctions)
}

func TestAuctionService_ExportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	filters := model.AuctionFilters{Type: "foreclosure"}
	export := &ports.CSVExport{
		Body:     io.NopCloser(strings.NewReader("case_no\n1\n")),
		Filename: "auctions_20240305.csv",
	}

	gw := mocks.NewMockAuctionGateway(ctrl)
	gw.EXPECT().DownloadCSV(gomock.Any(), ports.Credential("tok-1"), filters).Return(export, nil)

	svc := NewAuctionService(AuctionServiceOptions{Gateway: gw})

	got, err := svc.ExportCSV(context.Background(), "tok-1", filters)
	require.NoError(t, err)
	assert.Equal(t, "auctions_20240305.csv", got.Filename)
}
