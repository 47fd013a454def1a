package payout

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/serenity-spa/payout-backend-go/internal/domain/commission"
	"github.com/serenity-spa/payout-backend-go/internal/domain/payout"
	"github.com/serenity-spa/payout-backend-go/internal/domain/staff"
	"github.com/serenity-spa/payout-backend-go/internal/pkg/database"
	"github.com/serenity-spa/payout-backend-go/internal/repository/postgresql"
)

type PayoutServiceImpl struct {
	db            *database.DB
	payoutRepo    payout.PayoutRepository
	staffRepo     staff.StaffRepository
	commissionSvc commission.CommissionService

	// runTx is swappable so the calculation flow can be tested without a
	// live pool.
	runTx func(ctx context.Context, db *database.DB, fn func(tx pgx.Tx) error) error
}

func NewPayoutService(
	db *database.DB,
	payoutRepo payout.PayoutRepository,
	staffRepo staff.StaffRepository,
	commissionSvc commission.CommissionService,
) payout.PayoutService {
	return &PayoutServiceImpl{
		db:            db,
		payoutRepo:    payoutRepo,
		staffRepo:     staffRepo,
		commissionSvc: commissionSvc,
		runTx:         postgresql.WithTransaction,
	}
}

func (s *PayoutServiceImpl) Run(ctx context.Context, req payout.RunRequest) (payout.RunResponse, error) {
	if err := req.Validate(); err != nil {
		return payout.RunResponse{}, err
	}
	start, end := req.Window()

	var staffList []staff.Staff
	if req.StaffID == payout.StaffAll {
		list, err := s.staffRepo.ListActiveFullTime(ctx, staff.RoleConsultant)
		if err != nil {
			return payout.RunResponse{}, err
		}
		staffList = list
	} else {
		st, err := s.staffRepo.GetByID(ctx, req.StaffID)
		if err != nil {
			return payout.RunResponse{}, err
		}
		staffList = []staff.Staff{st}
	}

	resp := payout.RunResponse{
		PayoutDate: req.DateEnd,
		Results:    []payout.RunResult{},
	}

	for _, st := range staffList {
		report, err := s.commissionSvc.Compute(ctx, commission.ComputeRequest{
			StaffID:   st.ID,
			Role:      staff.RoleConsultant,
			DateStart: &start,
			DateEnd:   &end,
		})
		if err != nil {
			return resp, err
		}

		// Staff without qualifying sales in the window get no payout row.
		if len(report.Summaries) == 0 {
			continue
		}

		p, err := s.upsert(ctx, st.ID, end, report, req)
		if err != nil {
			return resp, err
		}

		slog.Info("payout written",
			"staff_id", st.ID,
			"payout_date", req.DateEnd,
			"total", p.TotalAmount.String(),
		)
		resp.Results = append(resp.Results, payout.RunResult{
			StaffID:     st.ID,
			PayoutID:    p.ID,
			TotalAmount: p.TotalAmount,
		})
	}

	resp.RunCount = len(resp.Results)
	return resp, nil
}

// upsert deactivates any prior active row for (staff, payoutDate) and inserts
// the new one, inside a single transaction so concurrent runs cannot leave
// zero or multiple active rows.
func (s *PayoutServiceImpl) upsert(
	ctx context.Context,
	staffID string,
	payoutDate time.Time,
	report commission.Report,
	req payout.RunRequest,
) (payout.Payout, error) {
	total := report.Result.TotalCommission
	guaranteeAmount := decimal.Zero
	if req.IncludeGuarantee && report.Guarantee != nil {
		guaranteeAmount = report.Guarantee.GuaranteeIncomePaid
		total = total.Add(guaranteeAmount)
	}

	p := payout.Payout{
		ID:              uuid.NewString(),
		StaffID:         staffID,
		PayoutDate:      payoutDate,
		FootAmount:      decimal.Zero,
		BodyAmount:      decimal.Zero,
		StaffAmount:     report.Result.TotalStaffCommission,
		ExtraAmount:     report.Result.TotalExtraCommission,
		IncentiveAmount: decimal.Zero,
		GuaranteeAmount: guaranteeAmount,
		TotalAmount:     total,
		Status:          payout.StatusActive,
		CreatedBy:       req.RunBy,
	}
	if report.Consultant != nil {
		p.TreatmentAmount = report.Consultant.TreatmentCommission
		p.ProductAmount = report.Consultant.ProductCommission
	} else {
		p.TreatmentAmount = decimal.Zero
		p.ProductAmount = decimal.Zero
	}

	var inserted payout.Payout
	err := s.runTx(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.payoutRepo.DeactivateForDate(txCtx, staffID, payoutDate, req.RunBy); err != nil {
			return err
		}
		var err error
		inserted, err = s.payoutRepo.Insert(txCtx, p)
		return err
	})
	if err != nil {
		return payout.Payout{}, err
	}
	return inserted, nil
}

func (s *PayoutServiceImpl) GetTherapistPayout(ctx context.Context, staffID string, date time.Time) (payout.PayoutResponse, error) {
	p, err := s.payoutRepo.GetActive(ctx, staffID, date)
	if err != nil {
		return payout.PayoutResponse{}, err
	}
	return payout.NewPayoutResponse(p), nil
}
