package sales

import (
	"context"
	"time"
)

// SalesRepository supplies sale lines joined with their menu item fields.
// A range with no matching rows returns an empty slice, not an error.
type SalesRepository interface {
	FetchSales(ctx context.Context, staffID string, activeOnly bool, dateStart, dateEnd *time.Time) ([]SaleLine, error)
}
