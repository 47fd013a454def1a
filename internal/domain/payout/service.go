package payout

import (
	"context"
	"time"
)

type PayoutService interface {
	// Run executes the persisted consultant payout for one staff member or
	// for all active full-time consultants when req.StaffID == StaffAll.
	Run(ctx context.Context, req RunRequest) (RunResponse, error)
	// GetTherapistPayout republishes the stored active therapist payout row
	// for (staff, date) verbatim; row creation is an external concern.
	GetTherapistPayout(ctx context.Context, staffID string, date time.Time) (PayoutResponse, error)
}
