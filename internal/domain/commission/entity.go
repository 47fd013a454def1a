package commission

import (
	"github.com/shopspring/decimal"

	"github.com/serenity-spa/payout-backend-go/internal/domain/sales"
	"github.com/serenity-spa/payout-backend-go/internal/domain/staff"
)

// CommissionResult - totals for one calculation pass. Never mutated after
// construction. Hours are float for display only; money stays decimal.
type CommissionResult struct {
	SelectedPeriodHours  float64         `json:"selected_period_hours"`
	FullMonthHours       float64         `json:"full_month_hours,omitempty"`
	TotalFootCommission  decimal.Decimal `json:"total_foot_commission"`
	TotalBodyCommission  decimal.Decimal `json:"total_body_commission"`
	TotalStaffCommission decimal.Decimal `json:"total_staff_commission"`
	TotalExtraCommission decimal.Decimal `json:"total_extra_commission"`
	TotalPrice           decimal.Decimal `json:"total_price"`
	TotalCommission      decimal.Decimal `json:"total_commission"`
}

// ConsultantBreakdown - treatment/product split detail for the consultant path.
type ConsultantBreakdown struct {
	TreatmentPrice           decimal.Decimal `json:"treatment_price"`
	TreatmentExtraCommission decimal.Decimal `json:"treatment_extra_commission"`
	TreatmentCommission      decimal.Decimal `json:"treatment_commission"`
	ProductPrice             decimal.Decimal `json:"product_price"`
	ProductExtraCommission   decimal.Decimal `json:"product_extra_commission"`
	ProductCommission        decimal.Decimal `json:"product_commission"`
	AppliedProductPercent    decimal.Decimal `json:"applied_product_percent"`
}

// GuaranteeIncomeResult - half-month true-up against the guaranteed minimum.
type GuaranteeIncomeResult struct {
	FirstHalfCommission  decimal.Decimal `json:"first_half_commission"`
	SecondHalfCommission decimal.Decimal `json:"second_half_commission"`
	TotalCommission      decimal.Decimal `json:"total_commission"`
	GuaranteeIncomePaid  decimal.Decimal `json:"guarantee_income_paid"`
}

// ConsultantRates - typed view over the option-value rows the consultant
// calculation needs, replacing string-keyed lookups at the call sites.
type ConsultantRates struct {
	TreatmentPercent    decimal.Decimal
	ProductPercentTier1 decimal.Decimal
	ProductPercentTier2 decimal.Decimal
	ProductTarget       decimal.Decimal
}

// Report is the full commission report for one staff member and period.
type Report struct {
	StaffID    string                 `json:"staff_id"`
	Role       staff.Role             `json:"role"`
	Basis      staff.BasisKind        `json:"basis"`
	DateStart  *string                `json:"date_start,omitempty"`
	DateEnd    *string                `json:"date_end,omitempty"`
	Summaries  []sales.DailySummary   `json:"daily_summaries"`
	Result     CommissionResult       `json:"result"`
	Consultant *ConsultantBreakdown   `json:"consultant,omitempty"`
	Guarantee  *GuaranteeIncomeResult `json:"guarantee,omitempty"`
}

// ZeroResult returns a fully zero-valued result, used when no compensation
// config exists for the staff member.
func ZeroResult() CommissionResult {
	return CommissionResult{
		TotalFootCommission:  decimal.Zero,
		TotalBodyCommission:  decimal.Zero,
		TotalStaffCommission: decimal.Zero,
		TotalExtraCommission: decimal.Zero,
		TotalPrice:           decimal.Zero,
		TotalCommission:      decimal.Zero,
	}
}
