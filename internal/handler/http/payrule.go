package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shiftwise/wfm-backend-go/internal/domain/payrule"
	"github.com/shiftwise/wfm-backend-go/internal/handler/http/response"
)

type PayRuleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Test(w http.ResponseWriter, r *http.Request)
}

type payRuleHandlerImpl struct {
	payRuleService payrule.PayRuleService
}

func NewPayRuleHandler(payRuleService payrule.PayRuleService) PayRuleHandler {
	return &payRuleHandlerImpl{payRuleService: payRuleService}
}

func (h *payRuleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payrule.CreatePayRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payRuleService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Pay rule created", result)
}

func (h *payRuleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payRuleService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payRuleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.payRuleService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payRuleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req payrule.UpdatePayRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.payRuleService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payRuleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.payRuleService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}

func (h *payRuleHandlerImpl) Test(w http.ResponseWriter, r *http.Request) {
	var req payrule.TestPayRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	id := chi.URLParam(r, "id")

	result, err := h.payRuleService.Test(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
