package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/serenity-spa/payout-backend-go/internal/config"
	"github.com/serenity-spa/payout-backend-go/internal/domain/payout"
)

const dateLayout = "2006-01-02"

type PayoutJobs struct {
	payoutSvc payout.PayoutService
	cfg       config.PayoutConfig
}

func NewPayoutJobs(payoutSvc payout.PayoutService, cfg config.PayoutConfig) *PayoutJobs {
	return &PayoutJobs{payoutSvc: payoutSvc, cfg: cfg}
}

func (j *PayoutJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("monthly_consultant_payout", 1*time.Hour, j.RunMonthlyConsultantPayout)
}

// RunMonthlyConsultantPayout writes payouts for the month that just ended.
func (j *PayoutJobs) RunMonthlyConsultantPayout(ctx context.Context) error {
	// Only run on the 1st, during the first hour of the day (UTC).
	now := time.Now().UTC()
	if now.Day() != 1 || now.Hour() != 0 {
		return nil
	}

	monthEnd := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	monthStart := time.Date(monthEnd.Year(), monthEnd.Month(), 1, 0, 0, 0, 0, time.UTC)

	slog.Info("Cron: Starting monthly consultant payout",
		"date_start", monthStart.Format(dateLayout),
		"date_end", monthEnd.Format(dateLayout),
	)

	result, err := j.payoutSvc.Run(ctx, payout.RunRequest{
		StaffID:          payout.StaffAll,
		DateStart:        monthStart.Format(dateLayout),
		DateEnd:          monthEnd.Format(dateLayout),
		IncludeGuarantee: j.cfg.IncludeGuarantee,
		RunBy:            "system",
	})
	if err != nil {
		return fmt.Errorf("monthly consultant payout failed: %w", err)
	}

	slog.Info("Cron: Monthly consultant payout completed", "run_count", result.RunCount)
	return nil
}
