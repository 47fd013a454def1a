package commission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/serenity-spa/payout-backend-go/internal/domain/sales"
	"github.com/serenity-spa/payout-backend-go/internal/domain/staff"
)

func TestGuaranteeApplies(t *testing.T) {
	day1 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	cfg := staff.CompensationConfig{IsGuaranteeIncome: true}

	assert.False(t, GuaranteeApplies(cfg, &day1), "query starting on the 1st skips reconciliation")
	assert.True(t, GuaranteeApplies(cfg, &day2))
	assert.False(t, GuaranteeApplies(cfg, nil), "no start date cannot engage")
	assert.False(t, GuaranteeApplies(staff.CompensationConfig{}, &day2), "flag off never engages")
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(time.Date(2025, 6, 17, 13, 45, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), end)

	// February of a leap year.
	start, end = MonthBounds(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 1, start.Day())
	assert.Equal(t, 29, end.Day())
}

func TestReconcile_TopUpAgainstGuarantee(t *testing.T) {
	// Flat basis: per-half commission is just staffCommission + extraCommission.
	fullMonth := []sales.DailySummary{
		summary(5, "FT01", sales.CategoryTreatment, 0, 0, "0", "100", "0"),
		summary(20, "FT01", sales.CategoryTreatment, 0, 0, "0", "50", "0"),
	}
	cfg := staff.CompensationConfig{
		IsGuaranteeIncome: true,
		GuaranteeIncome:   d("200"),
	}
	endDate := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	got := Reconcile(fullMonth, endDate, cfg, staff.RoleTherapist, nil)

	assert.True(t, got.FirstHalfCommission.Equal(d("100")), "first half %s", got.FirstHalfCommission)
	assert.True(t, got.SecondHalfCommission.Equal(d("50")), "second half %s", got.SecondHalfCommission)
	assert.True(t, got.TotalCommission.Equal(d("150")))
	assert.True(t, got.GuaranteeIncomePaid.Equal(d("50")), "paid %s", got.GuaranteeIncomePaid)
}

func TestReconcile_NoTopUpWhenEarned(t *testing.T) {
	fullMonth := []sales.DailySummary{
		summary(5, "FT01", sales.CategoryTreatment, 0, 0, "0", "150", "0"),
		summary(20, "FT01", sales.CategoryTreatment, 0, 0, "0", "100", "0"),
	}
	cfg := staff.CompensationConfig{
		IsGuaranteeIncome: true,
		GuaranteeIncome:   d("200"),
	}
	endDate := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	got := Reconcile(fullMonth, endDate, cfg, staff.RoleTherapist, nil)
	assert.True(t, got.GuaranteeIncomePaid.IsZero())
}

func TestReconcile_SplitsAtTheFifteenth(t *testing.T) {
	fullMonth := []sales.DailySummary{
		summary(15, "FT01", sales.CategoryTreatment, 0, 0, "0", "10", "0"),
		summary(16, "FT01", sales.CategoryTreatment, 0, 0, "0", "20", "0"),
	}
	cfg := staff.CompensationConfig{IsGuaranteeIncome: true, GuaranteeIncome: d("0")}
	endDate := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	got := Reconcile(fullMonth, endDate, cfg, staff.RoleTherapist, nil)
	assert.True(t, got.FirstHalfCommission.Equal(d("10")), "the 15th belongs to the first half")
	assert.True(t, got.SecondHalfCommission.Equal(d("20")))
}

func TestReconcile_SecondHalfBoundedByEndDate(t *testing.T) {
	fullMonth := []sales.DailySummary{
		summary(20, "FT01", sales.CategoryTreatment, 0, 0, "0", "20", "0"),
		summary(28, "FT01", sales.CategoryTreatment, 0, 0, "0", "40", "0"),
	}
	cfg := staff.CompensationConfig{IsGuaranteeIncome: true, GuaranteeIncome: d("100")}
	// Query ends on the 25th: the sale on the 28th is outside the second half.
	endDate := time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC)

	got := Reconcile(fullMonth, endDate, cfg, staff.RoleTherapist, nil)
	assert.True(t, got.SecondHalfCommission.Equal(d("20")), "second half %s", got.SecondHalfCommission)
	assert.True(t, got.GuaranteeIncomePaid.Equal(d("80")))
}

func TestReconcile_RateBasisPerHalf(t *testing.T) {
	fullMonth := []sales.DailySummary{
		summary(5, "FT01", sales.CategoryTreatment, 60, 0, "0", "0", "0"),
		summary(20, "FT01", sales.CategoryTreatment, 0, 120, "0", "0", "0"),
	}
	cfg := rateConfig("20", "15")
	cfg.IsGuaranteeIncome = true
	cfg.GuaranteeIncome = d("100")
	endDate := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	got := Reconcile(fullMonth, endDate, cfg, staff.RoleTherapist, nil)

	// 1h foot at 20/h; 2h body at 15/h.
	assert.True(t, got.FirstHalfCommission.Equal(d("20.00")))
	assert.True(t, got.SecondHalfCommission.Equal(d("30.00")))
	assert.True(t, got.GuaranteeIncomePaid.Equal(d("50.00")), "paid %s", got.GuaranteeIncomePaid)
}
