package payout

import (
	"context"
	"time"
)

type PayoutRepository interface {
	GetActive(ctx context.Context, staffID string, payoutDate time.Time) (Payout, error)
	// DeactivateForDate marks every active row for (staff, payoutDate) as
	// superseded. Run inside the same transaction as the following Insert.
	DeactivateForDate(ctx context.Context, staffID string, payoutDate time.Time, modifiedBy string) error
	Insert(ctx context.Context, p Payout) (Payout, error)
}
