package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftwise/wfm-backend-go/internal/domain/paycalc"
	"github.com/shiftwise/wfm-backend-go/internal/handler/http/response"
)

type PayCalcHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	ListCalculations(w http.ResponseWriter, r *http.Request)
}

type payCalcHandlerImpl struct {
	payCalcService paycalc.PayCalcService
}

func NewPayCalcHandler(payCalcService paycalc.PayCalcService) PayCalcHandler {
	return &payCalcHandlerImpl{payCalcService: payCalcService}
}

func (h *payCalcHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req paycalc.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}
	calculatedBy, _ := claims["user_id"].(string)
	req.CalculatedBy = calculatedBy

	result, err := h.payCalcService.Calculate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payCalcHandlerImpl) ListCalculations(w http.ResponseWriter, r *http.Request) {
	filter := paycalc.CalculationFilter{}

	query := r.URL.Query()
	if v := query.Get("period_start"); v != "" {
		filter.PeriodStart = &v
	}
	if v := query.Get("period_end"); v != "" {
		filter.PeriodEnd = &v
	}
	if v := query.Get("user_id"); v != "" {
		filter.UserID = &v
	}
	if v := query.Get("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil {
			filter.Page = page
		}
	}
	if v := query.Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			filter.Limit = limit
		}
	}

	result, err := h.payCalcService.ListCalculations(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
