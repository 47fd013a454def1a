package commission

import (
	"github.com/shopspring/decimal"

	"github.com/serenity-spa/payout-backend-go/internal/domain/commission"
	"github.com/serenity-spa/payout-backend-go/internal/domain/sales"
	"github.com/serenity-spa/payout-backend-go/internal/domain/staff"
)

var (
	sixty   = decimal.NewFromInt(60)
	hundred = decimal.NewFromInt(100)
)

// periodTotals sums a period's summaries into the raw inputs every
// calculator works from.
type periodTotals struct {
	FootMinutes     int
	BodyMinutes     int
	StaffCommission decimal.Decimal
	ExtraCommission decimal.Decimal
	Price           decimal.Decimal
}

func sumPeriod(summaries []sales.DailySummary) periodTotals {
	t := periodTotals{
		StaffCommission: decimal.Zero,
		ExtraCommission: decimal.Zero,
		Price:           decimal.Zero,
	}
	for _, s := range summaries {
		t.FootMinutes += s.FootMinutes
		t.BodyMinutes += s.BodyMinutes
		t.StaffCommission = t.StaffCommission.Add(s.StaffCommission)
		t.ExtraCommission = t.ExtraCommission.Add(s.ExtraCommission)
		t.Price = t.Price.Add(s.Price)
	}
	return t
}

// hoursWorked converts total minutes to hours, rounded to 2dp for display.
func hoursWorked(footMins, bodyMins int) float64 {
	mins := decimal.NewFromInt(int64(footMins + bodyMins))
	return mins.Div(sixty).Round(2).InexactFloat64()
}

// CalcRate applies the hourly-rate scheme: foot and body minutes are paid at
// their per-hour rates, each component rounded to 2dp half away from zero,
// then per-line commissions are added on top.
func CalcRate(summaries []sales.DailySummary, cfg staff.CompensationConfig) commission.CommissionResult {
	t := sumPeriod(summaries)

	footCommission := cfg.FootRatePerHour.
		Mul(decimal.NewFromInt(int64(t.FootMinutes)).Div(sixty)).
		Round(2)
	bodyCommission := cfg.BodyRatePerHour.
		Mul(decimal.NewFromInt(int64(t.BodyMinutes)).Div(sixty)).
		Round(2)

	return commission.CommissionResult{
		SelectedPeriodHours:  hoursWorked(t.FootMinutes, t.BodyMinutes),
		TotalFootCommission:  footCommission,
		TotalBodyCommission:  bodyCommission,
		TotalStaffCommission: t.StaffCommission,
		TotalExtraCommission: t.ExtraCommission,
		TotalPrice:           t.Price,
		TotalCommission: footCommission.
			Add(bodyCommission).
			Add(t.StaffCommission).
			Add(t.ExtraCommission),
	}
}

// CalcTherapistPercentage applies the therapist percentage scheme:
// a flat percentage of the period's total price plus per-line commissions.
func CalcTherapistPercentage(summaries []sales.DailySummary, cfg staff.CompensationConfig) commission.CommissionResult {
	t := sumPeriod(summaries)

	total := t.Price.Mul(cfg.CommissionPercent).Div(hundred).
		Add(t.StaffCommission).
		Add(t.ExtraCommission)

	return commission.CommissionResult{
		SelectedPeriodHours:  hoursWorked(t.FootMinutes, t.BodyMinutes),
		TotalFootCommission:  decimal.Zero,
		TotalBodyCommission:  decimal.Zero,
		TotalStaffCommission: t.StaffCommission,
		TotalExtraCommission: t.ExtraCommission,
		TotalPrice:           t.Price,
		TotalCommission:      total,
	}
}

// CalcFlat is the fallback when neither the rate nor the percentage flag is
// set: the commission is just the per-line amounts.
func CalcFlat(summaries []sales.DailySummary) commission.CommissionResult {
	t := sumPeriod(summaries)

	return commission.CommissionResult{
		SelectedPeriodHours:  hoursWorked(t.FootMinutes, t.BodyMinutes),
		TotalFootCommission:  decimal.Zero,
		TotalBodyCommission:  decimal.Zero,
		TotalStaffCommission: t.StaffCommission,
		TotalExtraCommission: t.ExtraCommission,
		TotalPrice:           t.Price,
		TotalCommission:      t.StaffCommission.Add(t.ExtraCommission),
	}
}

// CalcConsultant applies the consultant scheme over the treatment/product
// split. The product percentage is tiered: once product price reaches the
// configured target (inclusive) the higher tier applies. Treatment uses a
// single flat percentage. Each bucket is rounded independently before summing.
func CalcConsultant(treatment, product []sales.DailySummary, rates commission.ConsultantRates) (commission.CommissionResult, commission.ConsultantBreakdown) {
	tt := sumPeriod(treatment)
	pt := sumPeriod(product)

	productPercent := rates.ProductPercentTier1
	if pt.Price.GreaterThanOrEqual(rates.ProductTarget) {
		productPercent = rates.ProductPercentTier2
	}

	productCommission := pt.Price.Mul(productPercent).Div(hundred).
		Add(pt.ExtraCommission).
		Round(2)
	treatmentCommission := tt.Price.Mul(rates.TreatmentPercent).Div(hundred).
		Add(tt.ExtraCommission).
		Round(2)

	breakdown := commission.ConsultantBreakdown{
		TreatmentPrice:           tt.Price,
		TreatmentExtraCommission: tt.ExtraCommission,
		TreatmentCommission:      treatmentCommission,
		ProductPrice:             pt.Price,
		ProductExtraCommission:   pt.ExtraCommission,
		ProductCommission:        productCommission,
		AppliedProductPercent:    productPercent,
	}

	result := commission.CommissionResult{
		SelectedPeriodHours:  hoursWorked(tt.FootMinutes+pt.FootMinutes, tt.BodyMinutes+pt.BodyMinutes),
		TotalFootCommission:  decimal.Zero,
		TotalBodyCommission:  decimal.Zero,
		TotalStaffCommission: tt.StaffCommission.Add(pt.StaffCommission),
		TotalExtraCommission: tt.ExtraCommission.Add(pt.ExtraCommission),
		TotalPrice:           tt.Price.Add(pt.Price),
		TotalCommission:      productCommission.Add(treatmentCommission),
	}
	return result, breakdown
}

// calcPrimary runs whichever primary calculator the basis selects and returns
// its total. Used per half-month window by the guarantee reconciler.
func calcPrimary(basis staff.BasisKind, role staff.Role, summaries []sales.DailySummary, cfg staff.CompensationConfig, rates *commission.ConsultantRates) decimal.Decimal {
	if role == staff.RoleConsultant && rates != nil {
		treatment, product := SplitByCategory(summaries)
		result, _ := CalcConsultant(treatment, product, *rates)
		return result.TotalCommission
	}

	switch basis {
	case staff.BasisRate:
		return CalcRate(summaries, cfg).TotalCommission
	case staff.BasisPercentage:
		return CalcTherapistPercentage(summaries, cfg).TotalCommission
	default:
		return CalcFlat(summaries).TotalCommission
	}
}
