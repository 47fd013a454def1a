package payout

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/serenity-spa/payout-backend-go/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

// StaffAll runs the payout for every active full-time consultant.
const StaffAll = "all"

type RunRequest struct {
	StaffID          string `json:"staff_id"`
	DateStart        string `json:"date_start"`
	DateEnd          string `json:"date_end"`
	IncludeGuarantee bool   `json:"include_guarantee"`

	// RunBy is filled from the JWT claims, not the request body.
	RunBy string `json:"-"`
}

func (r *RunRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StaffID == "" {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required (staff id or 'all')"})
	}
	if _, err := time.Parse(dateLayout, r.DateStart); err != nil {
		errs = append(errs, validator.ValidationError{Field: "date_start", Message: "must be yyyy-mm-dd"})
	}
	if _, err := time.Parse(dateLayout, r.DateEnd); err != nil {
		errs = append(errs, validator.ValidationError{Field: "date_end", Message: "must be yyyy-mm-dd"})
	}

	if len(errs) > 0 {
		return errs
	}

	start, _ := time.Parse(dateLayout, r.DateStart)
	end, _ := time.Parse(dateLayout, r.DateEnd)
	if start.After(end) {
		return ErrInvalidDateRange
	}
	return nil
}

// Window returns the parsed inclusive date range. Call Validate first.
func (r *RunRequest) Window() (start, end time.Time) {
	start, _ = time.Parse(dateLayout, r.DateStart)
	end, _ = time.Parse(dateLayout, r.DateEnd)
	return start, end
}

type RunResult struct {
	StaffID     string          `json:"staff_id"`
	PayoutID    string          `json:"payout_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type RunResponse struct {
	PayoutDate string      `json:"payout_date"`
	RunCount   int         `json:"run_count"`
	Results    []RunResult `json:"results"`
}

type PayoutResponse struct {
	ID              string          `json:"id"`
	StaffID         string          `json:"staff_id"`
	PayoutDate      string          `json:"payout_date"`
	FootAmount      decimal.Decimal `json:"foot_amount"`
	BodyAmount      decimal.Decimal `json:"body_amount"`
	StaffAmount     decimal.Decimal `json:"staff_amount"`
	ExtraAmount     decimal.Decimal `json:"extra_amount"`
	IncentiveAmount decimal.Decimal `json:"incentive_amount"`
	TreatmentAmount decimal.Decimal `json:"treatment_amount"`
	ProductAmount   decimal.Decimal `json:"product_amount"`
	GuaranteeAmount decimal.Decimal `json:"guarantee_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          Status          `json:"status"`
}

func NewPayoutResponse(p Payout) PayoutResponse {
	return PayoutResponse{
		ID:              p.ID,
		StaffID:         p.StaffID,
		PayoutDate:      p.PayoutDate.Format(dateLayout),
		FootAmount:      p.FootAmount,
		BodyAmount:      p.BodyAmount,
		StaffAmount:     p.StaffAmount,
		ExtraAmount:     p.ExtraAmount,
		IncentiveAmount: p.IncentiveAmount,
		TreatmentAmount: p.TreatmentAmount,
		ProductAmount:   p.ProductAmount,
		GuaranteeAmount: p.GuaranteeAmount,
		TotalAmount:     p.TotalAmount,
		Status:          p.Status,
	}
}
