package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nominamx/payroll-backend-go/internal/domain/employee"
	"github.com/nominamx/payroll-backend-go/internal/pkg/database"
)

type EmployeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	query := `
		SELECT e.id, e.employee_number, e.name_employee, e.role_id,
		       e.status_employee, e.created_by, e.updated_by, e.created_at, e.updated_at,
		       r.name_role
		FROM employees e
		JOIN roles r ON r.id = e.role_id
		WHERE e.id = $1`

	var emp employee.Employee
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&emp.ID,
		&emp.EmployeeNumber,
		&emp.Name,
		&emp.RoleID,
		&emp.Active,
		&emp.CreatedBy,
		&emp.UpdatedBy,
		&emp.CreatedAt,
		&emp.UpdatedAt,
		&emp.RoleName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

func (r *EmployeeRepository) ListActive(ctx context.Context, excludeAdmin bool) ([]employee.Employee, error) {
	query := `
		SELECT e.id, e.employee_number, e.name_employee, e.role_id,
		       e.status_employee, e.created_by, e.updated_by, e.created_at, e.updated_at,
		       r.name_role
		FROM employees e
		JOIN roles r ON r.id = e.role_id
		WHERE e.status_employee = true`
	if excludeAdmin {
		query += ` AND r.is_admin = false`
	}
	query += ` ORDER BY e.employee_number`

	rows, err := GetQuerier(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID,
			&emp.EmployeeNumber,
			&emp.Name,
			&emp.RoleID,
			&emp.Active,
			&emp.CreatedBy,
			&emp.UpdatedBy,
			&emp.CreatedAt,
			&emp.UpdatedAt,
			&emp.RoleName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}
