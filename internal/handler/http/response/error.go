package response

import (
	"errors"
	"net/http"

	"github.com/serenity-spa/payout-backend-go/internal/domain/commission"
	"github.com/serenity-spa/payout-backend-go/internal/domain/option"
	"github.com/serenity-spa/payout-backend-go/internal/domain/payout"
	"github.com/serenity-spa/payout-backend-go/internal/domain/staff"
	"github.com/serenity-spa/payout-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff not found")
	case errors.Is(err, staff.ErrCompensationConfigNotFound):
		NotFound(w, "Compensation config not found")

	// Commission domain errors
	case errors.Is(err, commission.ErrRateConfigMissing):
		UnprocessableEntity(w, err.Error())
	case errors.Is(err, option.ErrOptionValueNotFound):
		UnprocessableEntity(w, err.Error())

	// Payout domain errors
	case errors.Is(err, payout.ErrPayoutNotFound):
		NotFound(w, "Payout not found")
	case errors.Is(err, payout.ErrInvalidDateRange):
		BadRequest(w, "date_start must not be after date_end", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
