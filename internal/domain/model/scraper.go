package model

// ScraperDetails is the backend's report on the scraper job: outcome of
// the last run plus the current schedule and its allowed date ranges.
// String fields are empty when the backend has nothing recorded.
type ScraperDetails struct {
	LastRunTime          string `json:"last_run_time"`
	LastAuctionsInserted int    `json:"last_auctions_inserted"`
	LastRunStatus        string `json:"last_run_status"`
	LastErrorMessage     string `json:"last_error_message"`
	NextRunTime          string `json:"next_run_time"`
	DailyRunTime         string `json:"daily_run_time"`
	NextRunFrom          string `json:"next_run_from"`
	NextRunTo            string `json:"next_run_to"`
	DailyRunFrom         string `json:"daily_run_from"`
	DailyRunTo           string `json:"daily_run_to"`
}

// ScheduleInput sets the scraper schedule: an optional one-off run
// ("2006-01-02T15:04" local) and an optional daily run clock ("15:04").
type ScheduleInput struct {
	NextRunTime  string `json:"next_run_time,omitempty"`
	DailyRunTime string `json:"daily_run_time,omitempty"`
}

// RunRange restricts which auction dates a scheduled run scrapes,
// both bounds "2006-01-02".
type RunRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}
