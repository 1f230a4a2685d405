package payroll

import (
	"context"
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"

	"github.com/nominamx/payroll-backend-go/internal/domain/employee"
	"github.com/nominamx/payroll-backend-go/internal/domain/payroll"
	"github.com/nominamx/payroll-backend-go/internal/domain/role"
	"github.com/nominamx/payroll-backend-go/internal/pkg/period"
	"github.com/nominamx/payroll-backend-go/internal/pkg/validator"
)

// bulkConcurrency caps the parallel record creations of one bulk request.
const bulkConcurrency = 8

type Service struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	roleRepo     role.RoleRepository
	calc         *Calculator
	now          func() time.Time
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	roleRepo role.RoleRepository,
	calc *Calculator,
) payroll.PayrollService {
	return &Service{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		roleRepo:     roleRepo,
		calc:         calc,
		now:          time.Now,
	}
}

// actorFromContext resolves the audit actor from the request token. Jobs and
// other non-request callers fall back to "system".
func actorFromContext(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err == nil {
		if username, ok := claims["username"].(string); ok && username != "" {
			return username
		}
	}
	return "system"
}

func (s *Service) Create(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	rec, err := s.createRecord(ctx, req, actorFromContext(ctx))
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return payroll.ToResponse(rec), nil
}

// createRecord reads the employee's current role rates, derives the money
// and inserts. The period uniqueness is enforced by the database constraint,
// not by a prior lookup, so concurrent creations cannot race past it.
func (s *Service) createRecord(ctx context.Context, req payroll.CreatePayrollRequest, actor string) (payroll.PayrollRecord, error) {
	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	if !emp.Active {
		return payroll.PayrollRecord{}, employee.ErrEmployeeNotFound
	}

	ro, err := s.roleRepo.GetActiveByID(ctx, emp.RoleID)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}

	rec := payroll.PayrollRecord{
		EmployeeID:  emp.ID,
		Month:       req.Month,
		Year:        req.Year,
		Deliveries:  req.Deliveries,
		HoursWorked: req.HoursWorked,
		CreatedBy:   actor,
	}
	rec.Apply(s.calc.Derive(ro, req.Deliveries, req.HoursWorked))

	created, err := s.payrollRepo.Create(ctx, rec)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	created.EmployeeNumber = &emp.EmployeeNumber
	created.EmployeeName = &emp.Name
	created.RoleName = &ro.Name

	return created, nil
}

func (s *Service) BulkGenerate(ctx context.Context, req payroll.BulkGenerateRequest) (payroll.BulkGenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BulkGenerateResponse{}, err
	}

	// Existing active records for the period decide eligibility up front;
	// an employee with a record is skipped no matter the deliveries.
	active := true
	existing, err := s.payrollRepo.List(ctx, payroll.PayrollFilter{
		Month:  &req.Month,
		Year:   &req.Year,
		Active: &active,
	})
	if err != nil {
		return payroll.BulkGenerateResponse{}, err
	}
	hasRecord := make(map[string]bool, len(existing))
	for _, rec := range existing {
		hasRecord[rec.EmployeeID] = true
	}

	results := make([]payroll.BulkItemResult, len(req.Items))
	eligible := 0
	for i, item := range req.Items {
		switch {
		case hasRecord[item.EmployeeID]:
			results[i] = payroll.BulkItemResult{
				EmployeeID: item.EmployeeID,
				Status:     payroll.BulkStatusSkippedExisting,
			}
		case item.Deliveries == 0:
			results[i] = payroll.BulkItemResult{
				EmployeeID: item.EmployeeID,
				Status:     payroll.BulkStatusSkippedNoDeliveries,
			}
		default:
			eligible++
		}
	}
	if eligible == 0 {
		return payroll.BulkGenerateResponse{}, validator.ValidationErrors{{
			Field:   "items",
			Message: "no eligible items to create",
		}}
	}

	actor := actorFromContext(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkConcurrency)
	for i, item := range req.Items {
		i, item := i, item
		if results[i].Status != "" {
			continue
		}
		g.Go(func() error {
			results[i] = s.generateOne(gctx, req.Month, req.Year, item, actor)
			return nil
		})
	}
	// Item failures are reported per item, never as a group error.
	_ = g.Wait()

	resp := payroll.BulkGenerateResponse{
		Month:   req.Month,
		Year:    req.Year,
		Results: results,
	}
	for _, res := range results {
		switch res.Status {
		case payroll.BulkStatusCreated:
			resp.CreatedCount++
		case payroll.BulkStatusError:
			resp.ErrorCount++
		default:
			resp.SkippedCount++
		}
	}

	return resp, nil
}

func (s *Service) generateOne(ctx context.Context, month string, year int, item payroll.BulkItem, actor string) payroll.BulkItemResult {
	result := payroll.BulkItemResult{EmployeeID: item.EmployeeID}

	created, err := s.createRecord(ctx, payroll.CreatePayrollRequest{
		EmployeeID: item.EmployeeID,
		Month:      month,
		Year:       year,
		Deliveries: item.Deliveries,
	}, actor)
	if err != nil {
		// Lost a race with a concurrent creation for the same period.
		if errors.Is(err, payroll.ErrPayrollRecordAlreadyExists) {
			result.Status = payroll.BulkStatusSkippedExisting
			return result
		}
		msg := err.Error()
		result.Status = payroll.BulkStatusError
		result.Error = &msg
		return result
	}

	resp := payroll.ToResponse(created)
	result.Status = payroll.BulkStatusCreated
	result.Record = &resp
	return result
}

func (s *Service) Get(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	rec, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return payroll.ToResponse(rec), nil
}

func (s *Service) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecordResponse, error) {
	records, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, payroll.ToResponse(rec))
	}
	return responses, nil
}

func (s *Service) ListByMonth(ctx context.Context, year int) ([]payroll.MonthBucketResponse, error) {
	active := true
	responses, err := s.List(ctx, payroll.PayrollFilter{Year: &year, Active: &active})
	if err != nil {
		return nil, err
	}
	return GroupPayrollsByMonth(responses), nil
}

func (s *Service) Update(ctx context.Context, id string, req payroll.UpdatePayrollRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	rec, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	// Soft-deleted records are not updatable.
	if !rec.Active {
		return payroll.PayrollRecordResponse{}, payroll.ErrPayrollRecordNotFound
	}

	rec.Deliveries = *req.Deliveries
	rec.Apply(s.calc.Rederive(rec, rec.Deliveries))
	actor := actorFromContext(ctx)
	rec.UpdatedBy = &actor

	updated, err := s.payrollRepo.UpdateDerived(ctx, rec)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	return payroll.ToResponse(updated), nil
}

func (s *Service) SoftDelete(ctx context.Context, id string) error {
	return s.payrollRepo.SetActive(ctx, id, false, actorFromContext(ctx))
}

func (s *Service) Restore(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	rec, err := s.payrollRepo.Restore(ctx, id, actorFromContext(ctx))
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return payroll.ToResponse(rec), nil
}

func (s *Service) MissingForCurrentPeriod(ctx context.Context) ([]string, error) {
	month, year := period.Current(s.now())
	return s.payrollRepo.MissingEmployeeNumbers(ctx, month, year)
}
