package payroll

import "context"

type PayrollService interface {
	Create(ctx context.Context, req CreatePayrollRequest) (PayrollRecordResponse, error)
	BulkGenerate(ctx context.Context, req BulkGenerateRequest) (BulkGenerateResponse, error)
	Get(ctx context.Context, id string) (PayrollRecordResponse, error)
	List(ctx context.Context, filter PayrollFilter) ([]PayrollRecordResponse, error)
	// ListByMonth returns the year's records grouped into the twelve fixed
	// month buckets, in calendar order.
	ListByMonth(ctx context.Context, year int) ([]MonthBucketResponse, error)
	Update(ctx context.Context, id string, req UpdatePayrollRequest) (PayrollRecordResponse, error)
	SoftDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) (PayrollRecordResponse, error)
	// MissingForCurrentPeriod reports employee numbers with no active record
	// for the current month. Used by the coverage job.
	MissingForCurrentPeriod(ctx context.Context) ([]string, error)
}
