package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/serenity-spa/payout-backend-go/internal/domain/commission"
	"github.com/serenity-spa/payout-backend-go/internal/domain/staff"
	"github.com/serenity-spa/payout-backend-go/internal/handler/http/response"
)

type CommissionHandler interface {
	GetCommission(w http.ResponseWriter, r *http.Request)
}

type commissionHandlerImpl struct {
	commissionService commission.CommissionService
}

func NewCommissionHandler(commissionService commission.CommissionService) CommissionHandler {
	return &commissionHandlerImpl{commissionService: commissionService}
}

// GetCommission serves the live commission report for one staff member.
// GET /api/v1/commissions/{staff_id}?role=&date_start=&date_end=
func (h *commissionHandlerImpl) GetCommission(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staff_id")
	if staffID == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	dateStart, err := commission.ParseDate(r.URL.Query().Get("date_start"))
	if err != nil {
		response.BadRequest(w, "date_start must be yyyy-mm-dd", nil)
		return
	}
	dateEnd, err := commission.ParseDate(r.URL.Query().Get("date_end"))
	if err != nil {
		response.BadRequest(w, "date_end must be yyyy-mm-dd", nil)
		return
	}

	req := commission.ComputeRequest{
		StaffID:   staffID,
		Role:      staff.Role(r.URL.Query().Get("role")),
		DateStart: dateStart,
		DateEnd:   dateEnd,
	}

	result, err := h.commissionService.Compute(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
