package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nominamx/payroll-backend-go/internal/domain/payroll"
)

// stubPayrollService records the filter List receives. The embedded
// interface panics for everything else, which is fine for these tests.
type stubPayrollService struct {
	payroll.PayrollService
	lastFilter *payroll.PayrollFilter
}

func (s *stubPayrollService) List(_ context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecordResponse, error) {
	s.lastFilter = &filter
	return []payroll.PayrollRecordResponse{}, nil
}

func TestPayrollHandler_List_InvalidYear(t *testing.T) {
	t.Parallel()

	svc := &stubPayrollService{}
	h := NewPayrollHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payrolls?year=abc", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.lastFilter, "a rejected request must not reach the service")
}

func TestPayrollHandler_List_Filters(t *testing.T) {
	t.Parallel()

	svc := &stubPayrollService{}
	h := NewPayrollHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payrolls?year=2025&status=true", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.lastFilter)
	require.NotNil(t, svc.lastFilter.Year)
	assert.Equal(t, 2025, *svc.lastFilter.Year)
	require.NotNil(t, svc.lastFilter.Active)
	assert.True(t, *svc.lastFilter.Active)
	assert.Nil(t, svc.lastFilter.Month)
	assert.Nil(t, svc.lastFilter.EmployeeID)
}
