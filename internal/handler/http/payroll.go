package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nominamx/payroll-backend-go/internal/domain/payroll"
	"github.com/nominamx/payroll-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	BulkGenerate(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByMonth(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Restore(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll record created", result)
}

func (h *payrollHandlerImpl) BulkGenerate(w http.ResponseWriter, r *http.Request) {
	var req payroll.BulkGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.BulkGenerate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bulk payroll generation finished", result)
}

func (h *payrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	result, err := h.payrollService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter payroll.PayrollFilter

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if month := r.URL.Query().Get("month"); month != "" {
		filter.Month = &month
	}
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(w, "Invalid year", nil)
			return
		}
		filter.Year = &year
	}
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		active := statusStr == "true"
		filter.Active = &active
	}

	result, err := h.payrollService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		response.BadRequest(w, "year is required", nil)
		return
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		response.BadRequest(w, "Invalid year", nil)
		return
	}

	result, err := h.payrollService.ListByMonth(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	var req payroll.UpdatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	if err := h.payrollService.SoftDelete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record deleted successfully", nil)
}

func (h *payrollHandlerImpl) Restore(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Record ID is required", nil)
		return
	}

	result, err := h.payrollService.Restore(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record restored", result)
}
