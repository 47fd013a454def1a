package commission

import "errors"

var (
	// ErrRateConfigMissing is returned when a required option-value key is
	// absent. Unparseable values do NOT produce this error; they fall back
	// to zero.
	ErrRateConfigMissing = errors.New("commission rate configuration missing")
)
