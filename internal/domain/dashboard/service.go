package dashboard

import "context"

type DashboardService interface {
	GetStats(ctx context.Context, month string, year int) (PeriodStats, error)
	GetMonthlyTrend(ctx context.Context, year int) ([]MonthlyTrendRow, error)
	GetExpenseDistribution(ctx context.Context, month string, year int) (ExpenseDistribution, error)
	GetEmployeeDetails(ctx context.Context, month string, year int) ([]EmployeeDetail, error)
	GetAvailableYears(ctx context.Context) ([]int, error)
	// GetComparative compares a period against the same month of the prior
	// year, fetching both sides concurrently.
	GetComparative(ctx context.Context, month string, year int) (ComparativeResponse, error)
}
