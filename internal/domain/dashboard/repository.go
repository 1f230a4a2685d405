package dashboard

import "context"

// DashboardRepository aggregates over active payroll records only.
type DashboardRepository interface {
	GetPeriodStats(ctx context.Context, month string, year int) (PeriodStats, error)
	GetMonthlyTrend(ctx context.Context, year int) ([]MonthlyTrendRow, error)
	GetExpenseDistribution(ctx context.Context, month string, year int) (ExpenseDistribution, error)
	GetEmployeeDetails(ctx context.Context, month string, year int) ([]EmployeeDetail, error)
	// GetAvailableYears returns the distinct years carrying at least one
	// active record, ascending. An empty result is returned as-is.
	GetAvailableYears(ctx context.Context) ([]int, error)
}
