package payout

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum - 1 active, 0 superseded. At most one row per (staff, payout
// date) may be active.
type Status int

const (
	StatusSuperseded Status = 0
	StatusActive     Status = 1
)

// Payout is one persisted payout row. Therapist rows carry the foot/body/
// staff/extra/incentive components; consultant rows carry product/treatment.
type Payout struct {
	ID              string
	StaffID         string
	PayoutDate      time.Time
	FootAmount      decimal.Decimal
	BodyAmount      decimal.Decimal
	StaffAmount     decimal.Decimal
	ExtraAmount     decimal.Decimal
	IncentiveAmount decimal.Decimal
	TreatmentAmount decimal.Decimal
	ProductAmount   decimal.Decimal
	GuaranteeAmount decimal.Decimal
	TotalAmount     decimal.Decimal
	Status          Status
	CreatedBy       string
	CreatedAt       time.Time
	ModifiedBy      *string
	ModifiedAt      *time.Time
}
