package commission

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/serenity-spa/payout-backend-go/internal/domain/sales"
)

// Aggregate groups sale lines by (calendar day, menu code), summing minutes,
// commissions and price within each group. Inactive lines are skipped even if
// the repository filter let them through. Output is sorted by date ascending,
// menu code ascending.
func Aggregate(lines []sales.SaleLine) []sales.DailySummary {
	type key struct {
		day  time.Time
		code string
	}

	groups := make(map[key]*sales.DailySummary)
	for _, line := range lines {
		if !line.IsActive {
			continue
		}
		day := truncateToDay(line.SaleDate)
		k := key{day: day, code: line.MenuCode}

		s, ok := groups[k]
		if !ok {
			s = &sales.DailySummary{
				Date:            day,
				MenuCode:        line.MenuCode,
				MenuCategory:    line.MenuCategory,
				StaffCommission: decimal.Zero,
				ExtraCommission: decimal.Zero,
				Price:           decimal.Zero,
			}
			groups[k] = s
		}
		s.FootMinutes += line.FootMinutes
		s.BodyMinutes += line.BodyMinutes
		s.StaffCommission = s.StaffCommission.Add(line.StaffCommission)
		s.ExtraCommission = s.ExtraCommission.Add(line.ExtraCommission)
		s.Price = s.Price.Add(line.Price)
	}

	result := make([]sales.DailySummary, 0, len(groups))
	for _, s := range groups {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].MenuCode < result[j].MenuCode
	})
	return result
}

// ZeroManualOverrides returns a copy of lines with the price zeroed on every
// line that already carries a manual commission override (either commission
// field non-zero). Such a sale must not also count toward the
// percentage-of-price commission base. Applied per line, before grouping.
func ZeroManualOverrides(lines []sales.SaleLine) []sales.SaleLine {
	out := make([]sales.SaleLine, len(lines))
	copy(out, lines)
	for i := range out {
		if !out[i].StaffCommission.IsZero() || !out[i].ExtraCommission.IsZero() {
			out[i].Price = decimal.Zero
		}
	}
	return out
}

// SplitByCategory partitions summaries into treatment and product buckets.
// Every summary lands in exactly one bucket, so the two partitions always
// reconcile with the unsplit total.
func SplitByCategory(summaries []sales.DailySummary) (treatment, product []sales.DailySummary) {
	for _, s := range summaries {
		if s.MenuCategory == sales.CategoryProduct {
			product = append(product, s)
		} else {
			treatment = append(treatment, s)
		}
	}
	return treatment, product
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
