package commission

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenity-spa/payout-backend-go/internal/domain/commission"
	"github.com/serenity-spa/payout-backend-go/internal/domain/option"
	"github.com/serenity-spa/payout-backend-go/internal/domain/sales"
	"github.com/serenity-spa/payout-backend-go/internal/domain/staff"
)

type fakeSalesRepo struct {
	lines   []sales.SaleLine
	fetches []fetchCall
}

type fetchCall struct {
	dateStart *time.Time
	dateEnd   *time.Time
}

func (f *fakeSalesRepo) FetchSales(_ context.Context, staffID string, activeOnly bool, dateStart, dateEnd *time.Time) ([]sales.SaleLine, error) {
	f.fetches = append(f.fetches, fetchCall{dateStart: dateStart, dateEnd: dateEnd})

	var out []sales.SaleLine
	for _, l := range f.lines {
		if l.StaffID != staffID {
			continue
		}
		if activeOnly && !l.IsActive {
			continue
		}
		if dateStart != nil && l.SaleDate.Before(*dateStart) {
			continue
		}
		if dateEnd != nil && l.SaleDate.After(dateEnd.AddDate(0, 0, 1)) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

type fakeStaffRepo struct {
	staff   map[string]staff.Staff
	configs map[string]staff.CompensationConfig
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id string) (staff.Staff, error) {
	st, ok := f.staff[id]
	if !ok {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return st, nil
}

func (f *fakeStaffRepo) ListActiveFullTime(_ context.Context, role staff.Role) ([]staff.Staff, error) {
	var out []staff.Staff
	for _, st := range f.staff {
		if st.Role == role && st.IsActive && st.EmploymentType == staff.EmploymentFullTime {
			out = append(out, st)
		}
	}
	return out, nil
}

func (f *fakeStaffRepo) GetCompensationConfig(_ context.Context, staffID string) (staff.CompensationConfig, error) {
	cfg, ok := f.configs[staffID]
	if !ok {
		return staff.CompensationConfig{}, staff.ErrCompensationConfigNotFound
	}
	return cfg, nil
}

type fakeOptionRepo struct {
	values map[string]string
}

func (f *fakeOptionRepo) FetchValues(_ context.Context, categories []string) ([]option.Value, error) {
	var out []option.Value
	for _, c := range categories {
		if v, ok := f.values[c]; ok {
			out = append(out, option.Value{Category: c, Value: v})
		}
	}
	return out, nil
}

func defaultOptionValues() map[string]string {
	return map[string]string{
		option.KeyTreatmentPercent:    "5",
		option.KeyProductPercentTier1: "10",
		option.KeyProductPercentTier2: "15",
		option.KeyProductTarget:       "1000",
	}
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func newTestService(salesRepo *fakeSalesRepo, staffRepo *fakeStaffRepo, optionRepo *fakeOptionRepo) commission.CommissionService {
	return NewCommissionService(salesRepo, staffRepo, optionRepo)
}

func TestCompute_MissingConfigYieldsZeroedReport(t *testing.T) {
	svc := newTestService(&fakeSalesRepo{}, &fakeStaffRepo{configs: map[string]staff.CompensationConfig{}}, &fakeOptionRepo{values: defaultOptionValues()})

	got, err := svc.Compute(context.Background(), commission.ComputeRequest{
		StaffID: "staff-1",
		Role:    staff.RoleTherapist,
	})

	require.NoError(t, err, "missing compensation config is not an error")
	assert.True(t, got.Result.TotalCommission.IsZero())
	assert.Empty(t, got.Summaries)
}

func TestCompute_TherapistRateBasis(t *testing.T) {
	l1 := line(10, "FT01", sales.CategoryTreatment, "0", "5", "0")
	l1.FootMinutes = 30
	l2 := line(10, "BD01", sales.CategoryTreatment, "0", "0", "2")
	l2.BodyMinutes = 60

	salesRepo := &fakeSalesRepo{lines: []sales.SaleLine{l1, l2}}
	staffRepo := &fakeStaffRepo{configs: map[string]staff.CompensationConfig{
		"staff-1": rateConfig("20", "15"),
	}}
	svc := newTestService(salesRepo, staffRepo, &fakeOptionRepo{values: defaultOptionValues()})

	got, err := svc.Compute(context.Background(), commission.ComputeRequest{
		StaffID:   "staff-1",
		Role:      staff.RoleTherapist,
		DateStart: datePtr(2025, 6, 1),
		DateEnd:   datePtr(2025, 6, 30),
	})

	require.NoError(t, err)
	assert.Equal(t, staff.BasisRate, got.Basis)
	assert.True(t, got.Result.TotalCommission.Equal(d("32.00")), "total %s", got.Result.TotalCommission)
	assert.Nil(t, got.Guarantee, "guarantee must not engage without the flag")
}

func TestCompute_ConsultantZeroesOverriddenPrices(t *testing.T) {
	overridden := line(10, "PR01", sales.CategoryProduct, "500", "5", "0")
	clean := line(11, "PR02", sales.CategoryProduct, "300", "0", "0")

	salesRepo := &fakeSalesRepo{lines: []sales.SaleLine{overridden, clean}}
	staffRepo := &fakeStaffRepo{configs: map[string]staff.CompensationConfig{
		"staff-1": {StaffID: "staff-1", IsCommissionPercentage: true},
	}}
	svc := newTestService(salesRepo, staffRepo, &fakeOptionRepo{values: defaultOptionValues()})

	got, err := svc.Compute(context.Background(), commission.ComputeRequest{
		StaffID: "staff-1",
		Role:    staff.RoleConsultant,
	})

	require.NoError(t, err)
	require.NotNil(t, got.Consultant)
	assert.True(t, got.Consultant.ProductPrice.Equal(d("300")), "overridden line must not count toward the price base, got %s", got.Consultant.ProductPrice)
	// 300 * 10% rounded.
	assert.True(t, got.Result.TotalCommission.Equal(d("30.00")), "total %s", got.Result.TotalCommission)
}

func TestCompute_ConsultantMissingRateKeyFails(t *testing.T) {
	values := defaultOptionValues()
	delete(values, option.KeyProductTarget)

	svc := newTestService(
		&fakeSalesRepo{},
		&fakeStaffRepo{configs: map[string]staff.CompensationConfig{"staff-1": {StaffID: "staff-1"}}},
		&fakeOptionRepo{values: values},
	)

	_, err := svc.Compute(context.Background(), commission.ComputeRequest{
		StaffID: "staff-1",
		Role:    staff.RoleConsultant,
	})

	assert.ErrorIs(t, err, commission.ErrRateConfigMissing)
	assert.Contains(t, err.Error(), option.KeyProductTarget)
}

func TestCompute_ConsultantUnparseableValueFallsBackToZero(t *testing.T) {
	values := defaultOptionValues()
	values[option.KeyTreatmentPercent] = "not-a-number"

	treatmentSale := line(10, "FT01", sales.CategoryTreatment, "200", "0", "0")
	svc := newTestService(
		&fakeSalesRepo{lines: []sales.SaleLine{treatmentSale}},
		&fakeStaffRepo{configs: map[string]staff.CompensationConfig{"staff-1": {StaffID: "staff-1"}}},
		&fakeOptionRepo{values: values},
	)

	got, err := svc.Compute(context.Background(), commission.ComputeRequest{
		StaffID: "staff-1",
		Role:    staff.RoleConsultant,
	})

	require.NoError(t, err, "parse failure must not propagate")
	assert.True(t, got.Result.TotalCommission.IsZero(), "zero percent yields zero commission, got %s", got.Result.TotalCommission)
}

func TestCompute_GuaranteeRefetchesFullMonth(t *testing.T) {
	firstHalf := line(5, "FT01", sales.CategoryTreatment, "0", "100", "0")
	secondHalf := line(20, "FT01", sales.CategoryTreatment, "0", "50", "0")

	salesRepo := &fakeSalesRepo{lines: []sales.SaleLine{firstHalf, secondHalf}}
	staffRepo := &fakeStaffRepo{configs: map[string]staff.CompensationConfig{
		"staff-1": {
			StaffID:           "staff-1",
			IsGuaranteeIncome: true,
			GuaranteeIncome:   d("200"),
		},
	}}
	svc := newTestService(salesRepo, staffRepo, &fakeOptionRepo{values: defaultOptionValues()})

	got, err := svc.Compute(context.Background(), commission.ComputeRequest{
		StaffID:   "staff-1",
		Role:      staff.RoleTherapist,
		DateStart: datePtr(2025, 6, 16),
		DateEnd:   datePtr(2025, 6, 30),
	})

	require.NoError(t, err)
	require.NotNil(t, got.Guarantee)
	assert.True(t, got.Guarantee.FirstHalfCommission.Equal(d("100")))
	assert.True(t, got.Guarantee.SecondHalfCommission.Equal(d("50")))
	assert.True(t, got.Guarantee.GuaranteeIncomePaid.Equal(d("50")))

	// The reconciler fetched the full calendar month, not the query range.
	require.Len(t, salesRepo.fetches, 2)
	monthFetch := salesRepo.fetches[1]
	require.NotNil(t, monthFetch.dateStart)
	assert.Equal(t, 1, monthFetch.dateStart.Day())
	assert.Equal(t, 30, monthFetch.dateEnd.Day())
}

func TestCompute_GuaranteeSkippedFromFirstOfMonth(t *testing.T) {
	salesRepo := &fakeSalesRepo{lines: []sales.SaleLine{
		line(5, "FT01", sales.CategoryTreatment, "0", "100", "0"),
	}}
	staffRepo := &fakeStaffRepo{configs: map[string]staff.CompensationConfig{
		"staff-1": {
			StaffID:           "staff-1",
			IsGuaranteeIncome: true,
			GuaranteeIncome:   d("200"),
		},
	}}
	svc := newTestService(salesRepo, staffRepo, &fakeOptionRepo{values: defaultOptionValues()})

	got, err := svc.Compute(context.Background(), commission.ComputeRequest{
		StaffID:   "staff-1",
		Role:      staff.RoleTherapist,
		DateStart: datePtr(2025, 6, 1),
		DateEnd:   datePtr(2025, 6, 30),
	})

	require.NoError(t, err)
	assert.Nil(t, got.Guarantee, "full-month query from the 1st skips reconciliation")
}

func TestCompute_InvalidRoleRejected(t *testing.T) {
	svc := newTestService(&fakeSalesRepo{}, &fakeStaffRepo{}, &fakeOptionRepo{})

	_, err := svc.Compute(context.Background(), commission.ComputeRequest{
		StaffID: "staff-1",
		Role:    "manager",
	})
	assert.Error(t, err)
}
