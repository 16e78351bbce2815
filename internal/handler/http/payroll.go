package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jansou-app/jansou-backend-go/internal/domain/payroll"
	"github.com/jansou-app/jansou-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
	UpsertAdvance(w http.ResponseWriter, r *http.Request)
	DownloadPayslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// GetSummary handles GET /users/{userID}/salary/{month}
func (h *payrollHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	month := chi.URLParam(r, "month")

	result, err := h.payrollService.GetSummary(r.Context(), userID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpsertAdvance handles PUT /users/{userID}/salary/{month}/advance
func (h *payrollHandlerImpl) UpsertAdvance(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpsertAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = chi.URLParam(r, "userID")
	req.Month = chi.URLParam(r, "month")

	result, err := h.payrollService.UpsertAdvance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advance payment saved successfully", result)
}

// DownloadPayslip handles GET /users/{userID}/salary/{month}/payslip
func (h *payrollHandlerImpl) DownloadPayslip(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	month := chi.URLParam(r, "month")

	doc, filename, err := h.payrollService.GeneratePayslip(r.Context(), userID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if _, err := w.Write(doc); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
