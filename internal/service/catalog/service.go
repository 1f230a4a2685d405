// Package catalog serves the read-only role and employee listings the
// payroll screens select from. Catalog administration is out of scope here.
package catalog

import (
	"context"

	"github.com/nominamx/payroll-backend-go/internal/domain/employee"
	"github.com/nominamx/payroll-backend-go/internal/domain/role"
)

type CatalogService interface {
	ListRoles(ctx context.Context) ([]role.RoleResponse, error)
	ListEmployees(ctx context.Context, excludeAdmin bool) ([]employee.EmployeeResponse, error)
}

type Service struct {
	roleRepo     role.RoleRepository
	employeeRepo employee.EmployeeRepository
}

func NewCatalogService(roleRepo role.RoleRepository, employeeRepo employee.EmployeeRepository) CatalogService {
	return &Service{
		roleRepo:     roleRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *Service) ListRoles(ctx context.Context) ([]role.RoleResponse, error) {
	roles, err := s.roleRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]role.RoleResponse, 0, len(roles))
	for _, ro := range roles {
		responses = append(responses, role.RoleResponse{
			ID:              ro.ID,
			Name:            ro.Name,
			SalaryBase:      ro.SalaryBase,
			BonusRole:       ro.BonusRole,
			BonusHours:      ro.BonusHours,
			BonusDeliveries: ro.BonusDeliveries,
			IsAdmin:         ro.IsAdmin,
			Active:          ro.Active,
		})
	}
	return responses, nil
}

func (s *Service) ListEmployees(ctx context.Context, excludeAdmin bool) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.ListActive(ctx, excludeAdmin)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.EmployeeResponse{
			ID:             emp.ID,
			EmployeeNumber: emp.EmployeeNumber,
			Name:           emp.Name,
			RoleID:         emp.RoleID,
			RoleName:       emp.RoleName,
			Active:         emp.Active,
		})
	}
	return responses, nil
}
