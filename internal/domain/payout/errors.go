package payout

import "errors"

var (
	ErrPayoutNotFound   = errors.New("payout not found")
	ErrInvalidDateRange = errors.New("invalid payout date range")
)
