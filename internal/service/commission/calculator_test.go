package commission

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/serenity-spa/payout-backend-go/internal/domain/commission"
	"github.com/serenity-spa/payout-backend-go/internal/domain/sales"
	"github.com/serenity-spa/payout-backend-go/internal/domain/staff"
)

func summary(day int, code string, category sales.Category, footMins, bodyMins int, price, staffComm, extraComm string) sales.DailySummary {
	s := line(day, code, category, price, staffComm, extraComm)
	return sales.DailySummary{
		Date:            s.SaleDate,
		MenuCode:        code,
		MenuCategory:    category,
		FootMinutes:     footMins,
		BodyMinutes:     bodyMins,
		StaffCommission: s.StaffCommission,
		ExtraCommission: s.ExtraCommission,
		Price:           s.Price,
	}
}

func rateConfig(footRate, bodyRate string) staff.CompensationConfig {
	return staff.CompensationConfig{
		StaffID:         "staff-1",
		IsRate:          true,
		FootRatePerHour: d(footRate),
		BodyRatePerHour: d(bodyRate),
	}
}

func TestCalcRate_EndToEndScenario(t *testing.T) {
	// Two sales on the same day: 30 foot minutes with a 5.00 staff
	// commission, and 60 body minutes with a 2.00 extra commission.
	summaries := []sales.DailySummary{
		summary(10, "FT01", sales.CategoryTreatment, 30, 0, "0", "5", "0"),
		summary(10, "BD01", sales.CategoryTreatment, 0, 60, "0", "0", "2"),
	}
	cfg := rateConfig("20", "15")

	got := CalcRate(summaries, cfg)

	assert.True(t, got.TotalFootCommission.Equal(d("10.00")), "foot %s", got.TotalFootCommission)
	assert.True(t, got.TotalBodyCommission.Equal(d("15.00")), "body %s", got.TotalBodyCommission)
	assert.True(t, got.TotalCommission.Equal(d("32.00")), "total %s", got.TotalCommission)
	assert.InDelta(t, 1.5, got.SelectedPeriodHours, 0.001)
}

func TestCalcRate_RoundsHalfAwayFromZero(t *testing.T) {
	// 90 foot minutes at 10.005/hour = 15.0075, which rounds to 15.01.
	summaries := []sales.DailySummary{
		summary(10, "FT01", sales.CategoryTreatment, 90, 0, "0", "0", "0"),
	}
	cfg := rateConfig("10.005", "0")

	got := CalcRate(summaries, cfg)
	assert.True(t, got.TotalFootCommission.Equal(d("15.01")), "foot %s", got.TotalFootCommission)
}

func TestCalcRate_MonotonicInMinutes(t *testing.T) {
	cfg := rateConfig("17.5", "12.25")
	prev := decimal.NewFromInt(-1)
	for mins := 0; mins <= 300; mins += 15 {
		summaries := []sales.DailySummary{
			summary(10, "FT01", sales.CategoryTreatment, mins, mins/2, "0", "0", "0"),
		}
		got := CalcRate(summaries, cfg).TotalCommission
		assert.True(t, got.GreaterThanOrEqual(prev), "commission decreased at %d mins: %s < %s", mins, got, prev)
		prev = got
	}
}

func TestCalcRate_EmptyPeriodIsZero(t *testing.T) {
	got := CalcRate(nil, rateConfig("20", "15"))
	assert.True(t, got.TotalCommission.IsZero())
	assert.Zero(t, got.SelectedPeriodHours)
}

func TestCalcTherapistPercentage(t *testing.T) {
	summaries := []sales.DailySummary{
		summary(10, "FT01", sales.CategoryTreatment, 0, 0, "200", "5", "3"),
		summary(11, "FT02", sales.CategoryTreatment, 0, 0, "100", "0", "0"),
	}
	cfg := staff.CompensationConfig{
		IsCommissionPercentage: true,
		CommissionPercent:      d("10"),
	}

	got := CalcTherapistPercentage(summaries, cfg)

	// 300 * 10% + 5 + 3
	assert.True(t, got.TotalCommission.Equal(d("38")), "total %s", got.TotalCommission)
	assert.True(t, got.TotalPrice.Equal(d("300")))
}

func TestCalcFlat(t *testing.T) {
	summaries := []sales.DailySummary{
		summary(10, "FT01", sales.CategoryTreatment, 0, 0, "500", "7", "3"),
	}
	got := CalcFlat(summaries)
	assert.True(t, got.TotalCommission.Equal(d("10")))
}

func consultantRates() commission.ConsultantRates {
	return commission.ConsultantRates{
		TreatmentPercent:    d("5"),
		ProductPercentTier1: d("10"),
		ProductPercentTier2: d("15"),
		ProductTarget:       d("1000"),
	}
}

func TestCalcConsultant_TierBoundary(t *testing.T) {
	cases := []struct {
		name         string
		productPrice string
		wantPercent  string
	}{
		{"below target by one cent", "999.99", "10"},
		{"exactly at target", "1000", "15"},
		{"above target", "1500", "15"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			product := []sales.DailySummary{
				summary(10, "PR01", sales.CategoryProduct, 0, 0, c.productPrice, "0", "0"),
			}
			_, breakdown := CalcConsultant(nil, product, consultantRates())
			assert.True(t, breakdown.AppliedProductPercent.Equal(d(c.wantPercent)),
				"applied %s, want %s", breakdown.AppliedProductPercent, c.wantPercent)
		})
	}
}

func TestCalcConsultant_BucketsRoundedIndependently(t *testing.T) {
	treatment := []sales.DailySummary{
		summary(10, "FT01", sales.CategoryTreatment, 0, 0, "100.09", "0", "0"),
	}
	product := []sales.DailySummary{
		summary(10, "PR01", sales.CategoryProduct, 0, 0, "200.09", "0", "1"),
	}
	got, breakdown := CalcConsultant(treatment, product, consultantRates())

	// treatment: 100.09 * 5% = 5.0045 -> 5.00
	// product: 200.09 * 10% + 1 = 21.009 -> 21.01
	assert.True(t, breakdown.TreatmentCommission.Equal(d("5.00")), "treatment %s", breakdown.TreatmentCommission)
	assert.True(t, breakdown.ProductCommission.Equal(d("21.01")), "product %s", breakdown.ProductCommission)
	assert.True(t, got.TotalCommission.Equal(d("26.01")), "total %s", got.TotalCommission)
}

func TestCalcConsultant_EmptyBuckets(t *testing.T) {
	got, breakdown := CalcConsultant(nil, nil, consultantRates())
	assert.True(t, got.TotalCommission.IsZero())
	assert.True(t, breakdown.AppliedProductPercent.Equal(d("10")), "empty product bucket uses tier 1")
}
