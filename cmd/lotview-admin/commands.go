package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lotview/auction-ui-api/internal/adapters/backend"
	"github.com/lotview/auction-ui-api/internal/domain/model"
	"github.com/lotview/auction-ui-api/internal/ports"
)

// operatorFlags are the credential flags shared by every command. The
// backend requires an admin login for all operations this CLI exposes.
type operatorFlags struct {
	email    string
	password string
}

func registerOperatorFlags(fs *flag.FlagSet) *operatorFlags {
	of := &operatorFlags{}
	fs.StringVar(&of.email, "email", os.Getenv("LOTVIEW_ADMIN_EMAIL"), "operator email (env LOTVIEW_ADMIN_EMAIL)")
	fs.StringVar(&of.password, "password", os.Getenv("LOTVIEW_ADMIN_PASSWORD"), "operator password (env LOTVIEW_ADMIN_PASSWORD)")
	return of
}

// connect builds the backend gateway and signs the operator in.
func connect(ctx *commandContext, of *operatorFlags) (*backend.Client, ports.Credential, error) {
	if of.email == "" || of.password == "" {
		return nil, "", errors.New("operator email and password are required (flags or LOTVIEW_ADMIN_EMAIL/LOTVIEW_ADMIN_PASSWORD)")
	}

	gateway, err := backend.NewClient(backend.Config{
		BaseURL:    ctx.Config.Backend.BaseURL,
		Timeout:    ctx.Config.Backend.Timeout,
		RetryLimit: ctx.Config.Backend.RetryLimit,
		Logger:     ctx.Logger,
	})
	if err != nil {
		return nil, "", fmt.Errorf("create backend client: %w", err)
	}

	profile, cred, err := gateway.Login(ctx.Ctx, of.email, of.password)
	if err != nil {
		return nil, "", fmt.Errorf("login: %w", err)
	}
	if !profile.IsAdmin() {
		return nil, "", fmt.Errorf("account %s does not carry the admin role", profile.Email)
	}
	return gateway, cred, nil
}

func runAnalysis(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("analysis", flag.ContinueOnError)
	of := registerOperatorFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	gateway, cred, err := connect(ctx, of)
	if err != nil {
		return err
	}

	analysis, err := gateway.Analysis(ctx.Ctx, cred)
	if err != nil {
		return fmt.Errorf("fetch analysis: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writef(w, "TOTAL USERS\tTOTAL AUCTIONS\n%d\t%d\n", analysis.TotalUsers, analysis.TotalAuctions); err != nil {
		return err
	}
	return w.Flush()
}

func runUsers(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("users", flag.ContinueOnError)
	of := registerOperatorFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	gateway, cred, err := connect(ctx, of)
	if err != nil {
		return err
	}

	users, err := gateway.ListUsers(ctx.Ctx, cred)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writef(w, "ID\tNAME\tEMAIL\tROLE\n"); err != nil {
		return err
	}
	for _, u := range users {
		if err := writef(w, "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role); err != nil {
			return err
		}
	}
	return w.Flush()
}

func runScraperStatus(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("scraper-status", flag.ContinueOnError)
	of := registerOperatorFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	gateway, cred, err := connect(ctx, of)
	if err != nil {
		return err
	}

	details, err := gateway.ScraperDetails(ctx.Ctx, cred)
	if err != nil {
		return fmt.Errorf("fetch scraper details: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	rows := []struct {
		label string
		value string
	}{
		{"last run", details.LastRunTime},
		{"last status", details.LastRunStatus},
		{"last error", details.LastErrorMessage},
		{"auctions inserted", fmt.Sprintf("%d", details.LastAuctionsInserted)},
		{"next run", details.NextRunTime},
		{"daily run", details.DailyRunTime},
		{"next run range", details.NextRunFrom + " .. " + details.NextRunTo},
		{"daily run range", details.DailyRunFrom + " .. " + details.DailyRunTo},
	}
	for _, row := range rows {
		if err := writef(w, "%s\t%s\n", row.label, row.value); err != nil {
			return err
		}
	}
	return w.Flush()
}

func runScraperStart(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("scraper-start", flag.ContinueOnError)
	of := registerOperatorFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	gateway, cred, err := connect(ctx, of)
	if err != nil {
		return err
	}

	if err := gateway.StartScraper(ctx.Ctx, cred); err != nil {
		return fmt.Errorf("start scraper: %w", err)
	}
	return writef(os.Stdout, "scraper run started\n")
}

func runScraperSchedule(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("scraper-schedule", flag.ContinueOnError)
	of := registerOperatorFlags(fs)
	nextRun := fs.String("next-run", "", "one-off run time, YYYY-MM-DDTHH:MM")
	dailyRun := fs.String("daily-run", "", "daily run clock, HH:MM")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *nextRun == "" && *dailyRun == "" {
		return errors.New("at least one of -next-run and -daily-run is required")
	}

	gateway, cred, err := connect(ctx, of)
	if err != nil {
		return err
	}

	in := model.ScheduleInput{NextRunTime: *nextRun, DailyRunTime: *dailyRun}
	if err := gateway.SetSchedule(ctx.Ctx, cred, in); err != nil {
		return fmt.Errorf("set schedule: %w", err)
	}
	return writef(os.Stdout, "scraper schedule updated\n")
}
