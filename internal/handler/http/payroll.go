package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/victorsdou/payroll-backend-go/internal/domain/payroll"
	"github.com/victorsdou/payroll-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	// Periods
	ProcessPeriod(w http.ResponseWriter, r *http.Request)
	ListPeriodPayslips(w http.ResponseWriter, r *http.Request)

	// Payslips
	GetPayslip(w http.ResponseWriter, r *http.Request)
	RecalculatePayslip(w http.ResponseWriter, r *http.Request)
	SetAdjustments(w http.ResponseWriter, r *http.Request)
	ConfirmPayslip(w http.ResponseWriter, r *http.Request)
	UnconfirmPayslip(w http.ResponseWriter, r *http.Request)
	PayPayslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
	periodService  payroll.PeriodService
}

func NewPayrollHandler(payrollService payroll.PayrollService, periodService payroll.PeriodService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
		periodService:  periodService,
	}
}

// ========== PERIODS ==========

func (h *payrollHandlerImpl) ProcessPeriod(w http.ResponseWriter, r *http.Request) {
	year, month, ok := periodParams(w, r)
	if !ok {
		return
	}

	result, err := h.periodService.ProcessPeriod(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListPeriodPayslips(w http.ResponseWriter, r *http.Request) {
	year, month, ok := periodParams(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.ListByPeriod(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== PAYSLIPS ==========

func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payslip ID is required", nil)
		return
	}

	result, err := h.payrollService.GetPayslip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) RecalculatePayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payslip ID is required", nil)
		return
	}

	result, err := h.payrollService.Recalculate(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) SetAdjustments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payslip ID is required", nil)
		return
	}

	var req payroll.SetAdjustmentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.payrollService.SetManualAdjustments(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ConfirmPayslip(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.payrollService.Confirm)
}

func (h *payrollHandlerImpl) UnconfirmPayslip(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.payrollService.Unconfirm)
}

func (h *payrollHandlerImpl) PayPayslip(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.payrollService.Pay)
}

func (h *payrollHandlerImpl) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id string) (payroll.PayslipResponse, error)) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payslip ID is required", nil)
		return
	}

	result, err := fn(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func periodParams(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "Invalid year", nil)
		return 0, 0, false
	}

	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		response.BadRequest(w, "Invalid month", nil)
		return 0, 0, false
	}

	return year, month, true
}
