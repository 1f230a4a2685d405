package payroll

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nominamx/payroll-backend-go/internal/domain/employee"
	"github.com/nominamx/payroll-backend-go/internal/domain/payroll"
	"github.com/nominamx/payroll-backend-go/internal/domain/role"
	"github.com/nominamx/payroll-backend-go/internal/pkg/validator"
)

type fakePayrollRepo struct {
	mu      sync.Mutex
	records map[string]payroll.PayrollRecord
	nextID  int
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{records: make(map[string]payroll.PayrollRecord)}
}

func (f *fakePayrollRepo) activeForPeriod(employeeID, month string, year int, excludeID string) bool {
	for _, rec := range f.records {
		if rec.ID != excludeID && rec.Active &&
			rec.EmployeeID == employeeID && rec.Month == month && rec.Year == year {
			return true
		}
	}
	return false
}

func (f *fakePayrollRepo) Create(_ context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.activeForPeriod(record.EmployeeID, record.Month, record.Year, "") {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
	}

	f.nextID++
	record.ID = fmt.Sprintf("rec-%d", f.nextID)
	record.Active = true
	record.CreatedAt = time.Now()
	f.records[record.ID] = record
	return record, nil
}

func (f *fakePayrollRepo) GetByID(_ context.Context, id string) (payroll.PayrollRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec, ok := f.records[id]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}
	return rec, nil
}

func (f *fakePayrollRepo) List(_ context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]payroll.PayrollRecord, 0)
	for _, rec := range f.records {
		if filter.EmployeeID != nil && rec.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Month != nil && rec.Month != *filter.Month {
			continue
		}
		if filter.Year != nil && rec.Year != *filter.Year {
			continue
		}
		if filter.Active != nil && rec.Active != *filter.Active {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakePayrollRepo) UpdateDerived(_ context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.records[record.ID]
	if !ok || !existing.Active {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}
	now := time.Now()
	record.UpdatedAt = &now
	f.records[record.ID] = record
	return record, nil
}

func (f *fakePayrollRepo) SetActive(_ context.Context, id string, active bool, actor string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec, ok := f.records[id]
	if !ok {
		return payroll.ErrPayrollRecordNotFound
	}
	if active && f.activeForPeriod(rec.EmployeeID, rec.Month, rec.Year, rec.ID) {
		return payroll.ErrPayrollRecordAlreadyExists
	}
	rec.Active = active
	rec.UpdatedBy = &actor
	f.records[id] = rec
	return nil
}

func (f *fakePayrollRepo) Restore(_ context.Context, id, actor string) (payroll.PayrollRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec, ok := f.records[id]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}
	if f.activeForPeriod(rec.EmployeeID, rec.Month, rec.Year, rec.ID) {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordAlreadyExists
	}
	rec.Active = true
	rec.UpdatedBy = &actor
	f.records[id] = rec
	return rec, nil
}

func (f *fakePayrollRepo) MissingEmployeeNumbers(_ context.Context, _ string, _ int) ([]string, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context, _ bool) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0)
	for _, emp := range f.employees {
		if emp.Active {
			out = append(out, emp)
		}
	}
	return out, nil
}

type fakeRoleRepo struct {
	mu    sync.Mutex
	roles map[string]role.Role
}

func (f *fakeRoleRepo) GetActiveByID(_ context.Context, id string) (role.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ro, ok := f.roles[id]
	if !ok || !ro.Active {
		return role.Role{}, role.ErrRoleNotFound
	}
	return ro, nil
}

func (f *fakeRoleRepo) ListActive(_ context.Context) ([]role.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]role.Role, 0)
	for _, ro := range f.roles {
		if ro.Active {
			out = append(out, ro)
		}
	}
	return out, nil
}

type serviceFixture struct {
	svc          payroll.PayrollService
	payrollRepo  *fakePayrollRepo
	employeeRepo *fakeEmployeeRepo
	roleRepo     *fakeRoleRepo
}

func newServiceFixture() *serviceFixture {
	ro := testRole()
	payrollRepo := newFakePayrollRepo()
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"11111111-1111-4111-8111-111111111111": {
			ID:             "11111111-1111-4111-8111-111111111111",
			EmployeeNumber: "EMP-0001",
			Name:           "Ana Torres",
			RoleID:         ro.ID,
			Active:         true,
		},
		"22222222-2222-4222-8222-222222222222": {
			ID:             "22222222-2222-4222-8222-222222222222",
			EmployeeNumber: "EMP-0002",
			Name:           "Luis Mendez",
			RoleID:         ro.ID,
			Active:         true,
		},
		"33333333-3333-4333-8333-333333333333": {
			ID:             "33333333-3333-4333-8333-333333333333",
			EmployeeNumber: "EMP-0003",
			Name:           "Baja Definitiva",
			RoleID:         ro.ID,
			Active:         false,
		},
	}}
	roleRepo := &fakeRoleRepo{roles: map[string]role.Role{ro.ID: ro}}

	return &serviceFixture{
		svc:          NewPayrollService(payrollRepo, employeeRepo, roleRepo, testCalculator()),
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		roleRepo:     roleRepo,
	}
}

const (
	empAna      = "11111111-1111-4111-8111-111111111111"
	empLuis     = "22222222-2222-4222-8222-222222222222"
	empInactive = "33333333-3333-4333-8333-333333333333"
)

func TestService_Create(t *testing.T) {
	t.Parallel()

	fx := newServiceFixture()
	ctx := context.Background()

	resp, err := fx.svc.Create(ctx, payroll.CreatePayrollRequest{
		EmployeeID: empAna,
		Month:      "Enero",
		Year:       2025,
		Deliveries: 100,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Enero", resp.Month)
	assert.Equal(t, 100, resp.Deliveries)
	assert.True(t, resp.GrossSalary.Equal(decimal.RequireFromString("10950.00")), "gross: %s", resp.GrossSalary)
	assert.True(t, resp.NetSalary.Equal(decimal.RequireFromString("9855.00")), "net: %s", resp.NetSalary)
	assert.True(t, resp.Active)
	assert.Equal(t, "system", resp.CreatedBy)
}

func TestService_Create_DuplicatePeriod(t *testing.T) {
	t.Parallel()

	fx := newServiceFixture()
	ctx := context.Background()

	req := payroll.CreatePayrollRequest{
		EmployeeID: empAna,
		Month:      "Enero",
		Year:       2025,
		Deliveries: 50,
	}
	_, err := fx.svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = fx.svc.Create(ctx, req)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordAlreadyExists)

	// a different month is a different period
	req.Month = "Febrero"
	_, err = fx.svc.Create(ctx, req)
	assert.NoError(t, err)
}

func TestService_Create_Validation(t *testing.T) {
	t.Parallel()

	fx := newServiceFixture()
	ctx := context.Background()

	_, err := fx.svc.Create(ctx, payroll.CreatePayrollRequest{
		EmployeeID: empAna,
		Month:      "January",
		Year:       2025,
		Deliveries: -1,
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "month")
	assert.Contains(t, fields, "deliveries")
}

func TestService_Create_UnknownOrInactiveEmployee(t *testing.T) {
	t.Parallel()

	fx := newServiceFixture()
	ctx := context.Background()

	_, err := fx.svc.Create(ctx, payroll.CreatePayrollRequest{
		EmployeeID: "44444444-4444-4444-8444-444444444444",
		Month:      "Enero",
		Year:       2025,
		Deliveries: 10,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = fx.svc.Create(ctx, payroll.CreatePayrollRequest{
		EmployeeID: empInactive,
		Month:      "Enero",
		Year:       2025,
		Deliveries: 10,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestService_BulkGenerate(t *testing.T) {
	t.Parallel()

	fx := newServiceFixture()
	ctx := context.Background()

	// Luis already has a record for the period.
	_, err := fx.svc.Create(ctx, payroll.CreatePayrollRequest{
		EmployeeID: empLuis,
		Month:      "Marzo",
		Year:       2025,
		Deliveries: 30,
	})
	require.NoError(t, err)

	resp, err := fx.svc.BulkGenerate(ctx, payroll.BulkGenerateRequest{
		Month: "Marzo",
		Year:  2025,
		Items: []payroll.BulkItem{
			{EmployeeID: empAna, Deliveries: 120},
			{EmployeeID: empLuis, Deliveries: 45},
			{EmployeeID: empInactive, Deliveries: 10},
			{EmployeeID: empAna, Deliveries: 0},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.CreatedCount)
	assert.Equal(t, 1, resp.ErrorCount)
	assert.Equal(t, 2, resp.SkippedCount)
	require.Len(t, resp.Results, 4)

	assert.Equal(t, payroll.BulkStatusCreated, resp.Results[0].Status)
	require.NotNil(t, resp.Results[0].Record)
	assert.Equal(t, payroll.BulkStatusSkippedExisting, resp.Results[1].Status)
	assert.Equal(t, payroll.BulkStatusError, resp.Results[2].Status)
	require.NotNil(t, resp.Results[2].Error)
	assert.Equal(t, payroll.BulkStatusSkippedNoDeliveries, resp.Results[3].Status)
}

func TestService_BulkGenerate_NoEligibleItems(t *testing.T) {
	t.Parallel()

	fx := newServiceFixture()
	ctx := context.Background()

	_, err := fx.svc.BulkGenerate(ctx, payroll.BulkGenerateRequest{
		Month: "Abril",
		Year:  2025,
		Items: []payroll.BulkItem{
			{EmployeeID: empAna, Deliveries: 0},
			{EmployeeID: empLuis, Deliveries: 0},
		},
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestService_Update_RederivesFromSnapshot(t *testing.T) {
	t.Parallel()

	fx := newServiceFixture()
	ctx := context.Background()

	created, err := fx.svc.Create(ctx, payroll.CreatePayrollRequest{
		EmployeeID: empAna,
		Month:      "Mayo",
		Year:       2025,
		Deliveries: 100,
	})
	require.NoError(t, err)

	// Rate hike after creation must not leak into the existing record.
	fx.roleRepo.mu.Lock()
	ro := fx.roleRepo.roles["role-1"]
	ro.BonusDeliveries = decimal.RequireFromString("99.00")
	fx.roleRepo.roles["role-1"] = ro
	fx.roleRepo.mu.Unlock()

	deliveries := 40
	updated, err := fx.svc.Update(ctx, created.ID, payroll.UpdatePayrollRequest{Deliveries: &deliveries})
	require.NoError(t, err)

	assert.Equal(t, 40, updated.Deliveries)
	// 12.50 * 40, not 99.00 * 40
	assert.True(t, updated.DeliveryBonus.Equal(decimal.RequireFromString("500.00")), "delivery bonus: %s", updated.DeliveryBonus)
	assert.True(t, updated.GrossSalary.Equal(decimal.RequireFromString("10200.00")), "gross: %s", updated.GrossSalary)
	require.NotNil(t, updated.UpdatedBy)
	assert.Equal(t, "system", *updated.UpdatedBy)
}

func TestService_Update_DeletedRecord(t *testing.T) {
	t.Parallel()

	fx := newServiceFixture()
	ctx := context.Background()

	created, err := fx.svc.Create(ctx, payroll.CreatePayrollRequest{
		EmployeeID: empAna,
		Month:      "Junio",
		Year:       2025,
		Deliveries: 10,
	})
	require.NoError(t, err)
	require.NoError(t, fx.svc.SoftDelete(ctx, created.ID))

	deliveries := 20
	_, err = fx.svc.Update(ctx, created.ID, payroll.UpdatePayrollRequest{Deliveries: &deliveries})
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
}

func TestService_SoftDeleteFreesPeriod(t *testing.T) {
	t.Parallel()

	fx := newServiceFixture()
	ctx := context.Background()

	req := payroll.CreatePayrollRequest{
		EmployeeID: empAna,
		Month:      "Julio",
		Year:       2025,
		Deliveries: 10,
	}
	created, err := fx.svc.Create(ctx, req)
	require.NoError(t, err)
	require.NoError(t, fx.svc.SoftDelete(ctx, created.ID))

	replacement, err := fx.svc.Create(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, replacement.ID)

	// the old record cannot come back while the replacement is active
	_, err = fx.svc.Restore(ctx, created.ID)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordAlreadyExists)
}

func TestService_Restore(t *testing.T) {
	t.Parallel()

	fx := newServiceFixture()
	ctx := context.Background()

	created, err := fx.svc.Create(ctx, payroll.CreatePayrollRequest{
		EmployeeID: empAna,
		Month:      "Agosto",
		Year:       2025,
		Deliveries: 10,
	})
	require.NoError(t, err)
	require.NoError(t, fx.svc.SoftDelete(ctx, created.ID))

	restored, err := fx.svc.Restore(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, restored.Active)

	_, err = fx.svc.Restore(ctx, "missing-id")
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
}

func TestService_SoftDelete_NotFound(t *testing.T) {
	t.Parallel()

	fx := newServiceFixture()
	err := fx.svc.SoftDelete(context.Background(), "missing-id")
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
}

func TestService_ListByMonth(t *testing.T) {
	t.Parallel()

	fx := newServiceFixture()
	ctx := context.Background()

	seed := []struct {
		employeeID string
		month      string
	}{
		{empAna, "Enero"},
		{empLuis, "Enero"},
		{empAna, "Marzo"},
	}
	for _, s := range seed {
		_, err := fx.svc.Create(ctx, payroll.CreatePayrollRequest{
			EmployeeID: s.employeeID,
			Month:      s.month,
			Year:       2025,
			Deliveries: 10,
		})
		require.NoError(t, err)
	}
	// a record in another year must not appear
	_, err := fx.svc.Create(ctx, payroll.CreatePayrollRequest{
		EmployeeID: empAna,
		Month:      "Enero",
		Year:       2024,
		Deliveries: 5,
	})
	require.NoError(t, err)

	buckets, err := fx.svc.ListByMonth(ctx, 2025)
	require.NoError(t, err)
	require.Len(t, buckets, 12)

	assert.Equal(t, "Enero", buckets[0].Month)
	assert.Len(t, buckets[0].Payrolls, 2)
	assert.Len(t, buckets[2].Payrolls, 1)
	assert.Len(t, buckets[1].Payrolls, 0)
}
