package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotview/auction-ui-api/internal/domain/model"
	"github.com/lotview/auction-ui-api/internal/ports"
)

// mockScraperService is a test double for ScraperServiceInterface.
type mockScraperService struct {
	detailsFunc          func(ctx context.Context, cred ports.Credential) (model.ScraperDetails, error)
	startFunc            func(ctx context.Context, cred ports.Credential) error
	setScheduleFunc      func(ctx context.Context, cred ports.Credential, in model.ScheduleInput) error
	setNextRunRangeFunc  func(ctx context.Context, cred ports.Credential, rng model.RunRange) error
	setDailyRunRangeFunc func(ctx context.Context, cred ports.Credential, rng model.RunRange) error
}

func (m *mockScraperService) Details(ctx context.Context, cred ports.Credential) (model.ScraperDetails, error) {
	if m.detailsFunc != nil {
		return m.detailsFunc(ctx, cred)
	}
	return model.ScraperDetails{LastRunStatus: "success"}, nil
}

func (m *mockScraperService) Start(ctx context.Context, cred ports.Credential) error {
	if m.startFunc != nil {
		return m.startFunc(ctx, cred)
	}
	return nil
}

func (m *mockScraperService) SetSchedule(ctx context.Context, cred ports.Credential, in model.ScheduleInput) error {
	if m.setScheduleFunc != nil {
		return m.setScheduleFunc(ctx, cred, in)
	}
	return nil
}

func (m *mockScraperService) SetNextRunRange(ctx context.Context, cred ports.Credential, rng model.RunRange) error {
	if m.setNextRunRangeFunc != nil {
		return m.setNextRunRangeFunc(ctx, cred, rng)
	}
	return nil
}

func (m *mockScraperService) SetDailyRunRange(ctx context.Context, cred ports.Credential, rng model.RunRange) error {
	if m.setDailyRunRangeFunc != nil {
		return m.setDailyRunRangeFunc(ctx, cred, rng)
	}
	return nil
}

func TestScraperHandlers_Details(t *testing.T) {
	h := &ScraperHandlers{Svc: &mockScraperService{}}

	req := httptest.NewRequest(http.MethodGet, "/api/scraper/details", nil)
	w := httptest.NewRecorder()

	h.Details(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp model.ScraperDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.LastRunStatus)
}

func TestScraperHandlers_Start(t *testing.T) {
	started := false
	svc := &mockScraperService{
		startFunc: func(ctx context.Context, cred ports.Credential) error {
			started = true
			return nil
		},
	}
	h := &ScraperHandlers{Svc: svc}

	req := httptest.NewRequest(http.MethodPost, "/api/scraper/start", nil)
	w := httptest.NewRecorder()

	h.Start(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, started)
}

func TestScraperHandlers_Schedule(t *testing.T) {
	var gotInput model.ScheduleInput
	svc := &mockScraperService{
		setScheduleFunc: func(ctx context.Context, cred ports.Credential, in model.ScheduleInput) error {
			gotInput = in
			return nil
		},
	}
	h := &ScraperHandlers{Svc: svc}

	body := strings.NewReader(`{"next_run_time":"2024-04-01T09:30","daily_run_time":"14:00"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/scraper/schedule", body)
	w := httptest.NewRecorder()

	h.Schedule(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2024-04-01T09:30", gotInput.NextRunTime)
	assert.Equal(t, "14:00", gotInput.DailyRunTime)
}

func TestScraperHandlers_Schedule_ValidationMessageInline(t *testing.T) {
	svc := &mockScraperService{
		setScheduleFunc: func(ctx context.Context, cred ports.Credential, in model.ScheduleInput) error {
			return model.Validationf("next run time and daily run time must be at least 10 minutes apart")
		},
	}
	h := &ScraperHandlers{Svc: svc, Errors: backendErrorRenderer{Sessions: newFakeSessions()}}

	body := strings.NewReader(`{"next_run_time":"2024-04-01T09:30","daily_run_time":"09:35"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/scraper/schedule", body)
	w := httptest.NewRecorder()

	h.Schedule(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_request", resp["error"])
	assert.Equal(t, "next run time and daily run time must be at least 10 minutes apart", resp["message"])
}

func TestScraperHandlers_NextRunRange(t *testing.T) {
	var gotRange model.RunRange
	svc := &mockScraperService{
		setNextRunRangeFunc: func(ctx context.Context, cred ports.Credential, rng model.RunRange) error {
			gotRange = rng
			return nil
		},
	}
	h := &ScraperHandlers{Svc: svc}

	body := strings.NewReader(`{"from":"2024-04-01","to":"2024-04-30"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/scraper/next_run_range", body)
	w := httptest.NewRecorder()

	h.NextRunRange(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.RunRange{From: "2024-04-01", To: "2024-04-30"}, gotRange)
}

func TestScraperHandlers_DailyRunRange(t *testing.T) {
	var gotRange model.RunRange
	svc := &mockScraperService{
		setDailyRunRangeFunc: func(ctx context.Context, cred ports.Credential, rng model.RunRange) error {
			gotRange = rng
			return nil
		},
	}
	h := &ScraperHandlers{Svc: svc}

	body := strings.NewReader(`{"from":"2024-04-01","to":"2024-04-02"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/scraper/daily_run_range", body)
	w := httptest.NewRecorder()

	h.DailyRunRange(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.RunRange{From: "2024-04-01", To: "2024-04-02"}, gotRange)
}
