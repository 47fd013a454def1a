package commission

import (
	"time"

	"github.com/serenity-spa/payout-backend-go/internal/domain/staff"
	"github.com/serenity-spa/payout-backend-go/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

// ComputeRequest - parameters for a live commission query.
// DateStart and DateEnd are inclusive and optional.
type ComputeRequest struct {
	StaffID   string
	Role      staff.Role
	DateStart *time.Time
	DateEnd   *time.Time
}

func (r *ComputeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StaffID == "" {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if !r.Role.Valid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be 'therapist' or 'consultant'"})
	}
	if r.DateStart != nil && r.DateEnd != nil && r.DateStart.After(*r.DateEnd) {
		errs = append(errs, validator.ValidationError{Field: "date_start", Message: "must not be after date_end"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParseDate parses a yyyy-mm-dd query parameter; empty input yields nil.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders a date pointer for response payloads.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
