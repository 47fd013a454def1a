package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/serenity-spa/payout-backend-go/internal/domain/payout"
	"github.com/serenity-spa/payout-backend-go/internal/handler/http/response"
)

type PayoutHandler interface {
	RunPayout(w http.ResponseWriter, r *http.Request)
	GetPayout(w http.ResponseWriter, r *http.Request)
}

type payoutHandlerImpl struct {
	payoutService payout.PayoutService
}

func NewPayoutHandler(payoutService payout.PayoutService) PayoutHandler {
	return &payoutHandlerImpl{payoutService: payoutService}
}

// RunPayout executes the persisted consultant payout.
// POST /api/v1/payouts/run
func (h *payoutHandlerImpl) RunPayout(w http.ResponseWriter, r *http.Request) {
	var req payout.RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if _, claims, err := jwtauth.FromContext(r.Context()); err == nil {
		if userID, ok := claims["user_id"].(string); ok {
			req.RunBy = userID
		}
	}

	result, err := h.payoutService.Run(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payout run completed", result)
}

// GetPayout republishes the stored active payout row for (staff, date).
// GET /api/v1/payouts/{staff_id}?date=yyyy-mm-dd
func (h *payoutHandlerImpl) GetPayout(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "staff_id")
	if staffID == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	date, err := time.Parse("2006-01-02", r.URL.Query().Get("date"))
	if err != nil {
		response.BadRequest(w, "date must be yyyy-mm-dd", nil)
		return
	}

	result, err := h.payoutService.GetTherapistPayout(r.Context(), staffID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
