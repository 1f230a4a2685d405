package employee

import "context"

// EmployeeRepository is the read-only directory the payroll core consumes.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	// ListActive returns active employees ordered by employee number.
	// excludeAdmin drops employees whose role is administrative; those are
	// never eligible for delivery payroll.
	ListActive(ctx context.Context, excludeAdmin bool) ([]Employee, error)
}
