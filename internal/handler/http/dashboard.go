package http

import (
	"net/http"
	"strconv"

	"github.com/nominamx/payroll-backend-go/internal/domain/dashboard"
	"github.com/nominamx/payroll-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
	GetMonthlyTrend(w http.ResponseWriter, r *http.Request)
	GetExpenseDistribution(w http.ResponseWriter, r *http.Request)
	GetEmployeeDetails(w http.ResponseWriter, r *http.Request)
	GetAvailableYears(w http.ResponseWriter, r *http.Request)
	GetComparative(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// periodQuery reads the month and year parameters every period-scoped
// endpoint takes. The month arrives as its canonical name.
func periodQuery(w http.ResponseWriter, r *http.Request) (string, int, bool) {
	month := r.URL.Query().Get("month")
	yearStr := r.URL.Query().Get("year")
	if month == "" || yearStr == "" {
		response.BadRequest(w, "month and year are required", nil)
		return "", 0, false
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		response.BadRequest(w, "Invalid year", nil)
		return "", 0, false
	}

	return month, year, true
}

func (h *dashboardHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
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
	// month is optional; without it the stats cover the whole year
	month := r.URL.Query().Get("month")

	result, err := h.dashboardService.GetStats(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *dashboardHandlerImpl) GetMonthlyTrend(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.dashboardService.GetMonthlyTrend(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *dashboardHandlerImpl) GetExpenseDistribution(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodQuery(w, r)
	if !ok {
		return
	}

	result, err := h.dashboardService.GetExpenseDistribution(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *dashboardHandlerImpl) GetEmployeeDetails(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodQuery(w, r)
	if !ok {
		return
	}

	result, err := h.dashboardService.GetEmployeeDetails(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *dashboardHandlerImpl) GetAvailableYears(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetAvailableYears(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *dashboardHandlerImpl) GetComparative(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodQuery(w, r)
	if !ok {
		return
	}

	result, err := h.dashboardService.GetComparative(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
