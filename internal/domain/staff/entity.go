package staff

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role enum
type Role string

const (
	RoleTherapist  Role = "therapist"
	RoleConsultant Role = "consultant"
)

func (r Role) Valid() bool {
	return r == RoleTherapist || r == RoleConsultant
}

// EmploymentType enum
type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full_time"
	EmploymentPartTime EmploymentType = "part_time"
)

type Staff struct {
	ID             string
	Code           string
	Name           string
	Role           Role
	EmploymentType EmploymentType
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CompensationConfig - per-staff pay scheme. The three flags are not mutually
// exclusive in the data; Basis() picks the authoritative one.
type CompensationConfig struct {
	ID                     string
	StaffID                string
	IsRate                 bool
	IsCommissionPercentage bool
	IsGuaranteeIncome      bool
	FootRatePerHour        decimal.Decimal
	BodyRatePerHour        decimal.Decimal
	CommissionPercent      decimal.Decimal
	GuaranteeIncome        decimal.Decimal
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// BasisKind enum
type BasisKind string

const (
	BasisRate       BasisKind = "rate"
	BasisPercentage BasisKind = "percentage"
	BasisFlat       BasisKind = "flat"
)

// Basis resolves the primary commission basis once, so callers never re-check
// the raw flags. IsRate wins over IsCommissionPercentage when both are set.
func (c CompensationConfig) Basis() BasisKind {
	switch {
	case c.IsRate:
		return BasisRate
	case c.IsCommissionPercentage:
		return BasisPercentage
	default:
		return BasisFlat
	}
}
