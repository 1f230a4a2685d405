package payroll

import "context"

type PayrollRepository interface {
	Create(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetByID(ctx context.Context, id string) (PayrollRecord, error)
	List(ctx context.Context, filter PayrollFilter) ([]PayrollRecord, error)
	// UpdateDerived persists deliveries plus every derived monetary field.
	UpdateDerived(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	SetActive(ctx context.Context, id string, active bool, actor string) error
	// Restore reactivates a soft-deleted record and returns it with its
	// joined employee fields, atomically.
	Restore(ctx context.Context, id, actor string) (PayrollRecord, error)
	// MissingEmployeeNumbers returns active non-admin employees with no
	// active record for the period.
	MissingEmployeeNumbers(ctx context.Context, month string, year int) ([]string, error)
}
