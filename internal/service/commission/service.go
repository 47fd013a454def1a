package commission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/serenity-spa/payout-backend-go/internal/domain/commission"
	"github.com/serenity-spa/payout-backend-go/internal/domain/option"
	"github.com/serenity-spa/payout-backend-go/internal/domain/sales"
	"github.com/serenity-spa/payout-backend-go/internal/domain/staff"
)

type CommissionServiceImpl struct {
	salesRepo  sales.SalesRepository
	staffRepo  staff.StaffRepository
	optionRepo option.Repository
}

func NewCommissionService(
	salesRepo sales.SalesRepository,
	staffRepo staff.StaffRepository,
	optionRepo option.Repository,
) commission.CommissionService {
	return &CommissionServiceImpl{
		salesRepo:  salesRepo,
		staffRepo:  staffRepo,
		optionRepo: optionRepo,
	}
}

func (s *CommissionServiceImpl) Compute(ctx context.Context, req commission.ComputeRequest) (commission.Report, error) {
	if err := req.Validate(); err != nil {
		return commission.Report{}, err
	}

	cfg, err := s.staffRepo.GetCompensationConfig(ctx, req.StaffID)
	if err != nil {
		// Absent compensation config means no calculation applies; the
		// caller gets a zeroed report, not an error.
		if errors.Is(err, staff.ErrCompensationConfigNotFound) {
			return commission.Report{
				StaffID:   req.StaffID,
				Role:      req.Role,
				Basis:     staff.BasisFlat,
				DateStart: commission.FormatDate(req.DateStart),
				DateEnd:   commission.FormatDate(req.DateEnd),
				Summaries: []sales.DailySummary{},
				Result:    commission.ZeroResult(),
			}, nil
		}
		return commission.Report{}, err
	}

	lines, err := s.salesRepo.FetchSales(ctx, req.StaffID, true, req.DateStart, req.DateEnd)
	if err != nil {
		return commission.Report{}, err
	}

	report := commission.Report{
		StaffID:   req.StaffID,
		Role:      req.Role,
		Basis:     cfg.Basis(),
		DateStart: commission.FormatDate(req.DateStart),
		DateEnd:   commission.FormatDate(req.DateEnd),
	}

	var rates *commission.ConsultantRates
	switch req.Role {
	case staff.RoleConsultant:
		r, err := s.ConsultantRates(ctx)
		if err != nil {
			return commission.Report{}, err
		}
		rates = &r

		lines = ZeroManualOverrides(lines)
		summaries := Aggregate(lines)
		treatment, product := SplitByCategory(summaries)
		result, breakdown := CalcConsultant(treatment, product, r)

		report.Summaries = summaries
		report.Result = result
		report.Consultant = &breakdown

	default:
		summaries := Aggregate(lines)
		report.Summaries = summaries

		switch cfg.Basis() {
		case staff.BasisRate:
			report.Result = CalcRate(summaries, cfg)
		case staff.BasisPercentage:
			report.Result = CalcTherapistPercentage(summaries, cfg)
		default:
			report.Result = CalcFlat(summaries)
		}
	}

	if GuaranteeApplies(cfg, req.DateStart) {
		guarantee, fullMonthHours, err := s.reconcileGuarantee(ctx, req, cfg, rates)
		if err != nil {
			return commission.Report{}, err
		}
		report.Guarantee = &guarantee
		report.Result.FullMonthHours = fullMonthHours
	}

	return report, nil
}

// reconcileGuarantee re-fetches the entire calendar month containing the
// query's end date (not the query's own range) and runs the half-month
// true-up over it.
func (s *CommissionServiceImpl) reconcileGuarantee(
	ctx context.Context,
	req commission.ComputeRequest,
	cfg staff.CompensationConfig,
	rates *commission.ConsultantRates,
) (commission.GuaranteeIncomeResult, float64, error) {
	endDate := time.Now().UTC()
	if req.DateEnd != nil {
		endDate = *req.DateEnd
	}
	monthStart, monthEnd := MonthBounds(endDate)

	lines, err := s.salesRepo.FetchSales(ctx, req.StaffID, true, &monthStart, &monthEnd)
	if err != nil {
		return commission.GuaranteeIncomeResult{}, 0, err
	}
	if req.Role == staff.RoleConsultant {
		lines = ZeroManualOverrides(lines)
	}

	fullMonth := Aggregate(lines)
	totals := sumPeriod(fullMonth)

	result := Reconcile(fullMonth, endDate, cfg, req.Role, rates)
	return result, hoursWorked(totals.FootMinutes, totals.BodyMinutes), nil
}

// ConsultantRates loads the consultant percentage configuration. A missing
// key is a typed error; a present but non-numeric value silently falls back
// to zero.
func (s *CommissionServiceImpl) ConsultantRates(ctx context.Context) (commission.ConsultantRates, error) {
	keys := []string{
		option.KeyTreatmentPercent,
		option.KeyProductPercentTier1,
		option.KeyProductPercentTier2,
		option.KeyProductTarget,
	}

	values, err := s.optionRepo.FetchValues(ctx, keys)
	if err != nil {
		return commission.ConsultantRates{}, err
	}

	byKey := make(map[string]string, len(values))
	for _, v := range values {
		byKey[v.Category] = v.Value
	}

	parsed := make(map[string]decimal.Decimal, len(keys))
	for _, key := range keys {
		raw, ok := byKey[key]
		if !ok {
			return commission.ConsultantRates{}, fmt.Errorf("%w: %s", commission.ErrRateConfigMissing, key)
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			d = decimal.Zero
		}
		parsed[key] = d
	}

	return commission.ConsultantRates{
		TreatmentPercent:    parsed[option.KeyTreatmentPercent],
		ProductPercentTier1: parsed[option.KeyProductPercentTier1],
		ProductPercentTier2: parsed[option.KeyProductPercentTier2],
		ProductTarget:       parsed[option.KeyProductTarget],
	}, nil
}
