package commission

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/serenity-spa/payout-backend-go/internal/domain/commission"
	"github.com/serenity-spa/payout-backend-go/internal/domain/sales"
	"github.com/serenity-spa/payout-backend-go/internal/domain/staff"
)

// GuaranteeApplies reports whether the guarantee-income reconciliation
// engages for this query. It only triggers for partial-month queries: a query
// starting on the 1st skips it even when the guarantee flag is set. A query
// without a start date cannot be classified, so it does not engage.
func GuaranteeApplies(cfg staff.CompensationConfig, dateStart *time.Time) bool {
	return cfg.IsGuaranteeIncome && dateStart != nil && dateStart.Day() != 1
}

// MonthBounds returns the first and last day of t's calendar month.
func MonthBounds(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}

// Reconcile splits a full-month aggregation at the 15th, runs the primary
// calculator independently on each half, and computes the top-up against the
// guaranteed minimum. First half = dates <= 15th; second half = dates after
// the 15th up to and including the original query's end date.
func Reconcile(
	fullMonth []sales.DailySummary,
	endDate time.Time,
	cfg staff.CompensationConfig,
	role staff.Role,
	rates *commission.ConsultantRates,
) commission.GuaranteeIncomeResult {
	endDay := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, time.UTC)

	var firstHalf, secondHalf []sales.DailySummary
	for _, s := range fullMonth {
		switch {
		case s.Date.Day() <= 15:
			firstHalf = append(firstHalf, s)
		case !s.Date.After(endDay):
			secondHalf = append(secondHalf, s)
		}
	}

	basis := cfg.Basis()
	first := calcPrimary(basis, role, firstHalf, cfg, rates)
	second := calcPrimary(basis, role, secondHalf, cfg, rates)
	total := first.Add(second)

	paid := cfg.GuaranteeIncome.Sub(total)
	if paid.IsNegative() {
		paid = decimal.Zero
	}

	return commission.GuaranteeIncomeResult{
		FirstHalfCommission:  first,
		SecondHalfCommission: second,
		TotalCommission:      total,
		GuaranteeIncomePaid:  paid,
	}
}
