package postgresql

import (
	"context"
	"fmt"

	"github.com/nominamx/payroll-backend-go/internal/domain/dashboard"
	"github.com/nominamx/payroll-backend-go/internal/pkg/database"
	"github.com/nominamx/payroll-backend-go/internal/pkg/period"
)

type DashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &DashboardRepository{db: db}
}

// GetPeriodStats sums one month, or the whole year when month is empty.
func (r *DashboardRepository) GetPeriodStats(ctx context.Context, month string, year int) (dashboard.PeriodStats, error) {
	query := `
		SELECT
			COALESCE(SUM(net_salary), 0) AS total_payroll,
			COALESCE(SUM(deliveries), 0) AS total_deliveries,
			COALESCE(SUM(hour_bonus + delivery_bonus), 0) AS total_bonuses,
			COALESCE(SUM(isr), 0) AS total_deductions,
			COALESCE(SUM(base_salary), 0) AS total_base_salary
		FROM payroll_records
		WHERE year = $1 AND status_payroll = true`

	args := []interface{}{year}
	if month != "" {
		query += ` AND month = $2`
		args = append(args, month)
	}

	var stats dashboard.PeriodStats
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, args...).Scan(
		&stats.TotalPayroll,
		&stats.TotalDeliveries,
		&stats.TotalBonuses,
		&stats.TotalDeductions,
		&stats.TotalBaseSalary,
	)
	if err != nil {
		return dashboard.PeriodStats{}, fmt.Errorf("failed to get period stats: %w", err)
	}

	return stats, nil
}

func (r *DashboardRepository) GetMonthlyTrend(ctx context.Context, year int) ([]dashboard.MonthlyTrendRow, error) {
	query := `
		SELECT month,
			COALESCE(SUM(base_salary), 0),
			COALESCE(SUM(delivery_bonus), 0),
			COALESCE(SUM(hour_bonus), 0)
		FROM payroll_records
		WHERE year = $1 AND status_payroll = true
		GROUP BY month
		ORDER BY array_position($2::text[], month)`

	rows, err := GetQuerier(ctx, r.db).Query(ctx, query, year, period.Months[:])
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly trend: %w", err)
	}
	defer rows.Close()

	trend := make([]dashboard.MonthlyTrendRow, 0, len(period.Months))
	for rows.Next() {
		var row dashboard.MonthlyTrendRow
		if err := rows.Scan(&row.Month, &row.BaseSalary, &row.DeliveryBonus, &row.HourBonus); err != nil {
			return nil, fmt.Errorf("failed to scan monthly trend row: %w", err)
		}
		trend = append(trend, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly trend: %w", err)
	}

	return trend, nil
}

func (r *DashboardRepository) GetExpenseDistribution(ctx context.Context, month string, year int) (dashboard.ExpenseDistribution, error) {
	query := `
		SELECT
			COALESCE(SUM(net_salary), 0),
			COALESCE(SUM(isr), 0)
		FROM payroll_records
		WHERE month = $1 AND year = $2 AND status_payroll = true`

	var dist dashboard.ExpenseDistribution
	err := GetQuerier(ctx, r.db).QueryRow(ctx, query, month, year).Scan(
		&dist.NetSalary,
		&dist.Deductions,
	)
	if err != nil {
		return dashboard.ExpenseDistribution{}, fmt.Errorf("failed to get expense distribution: %w", err)
	}

	return dist, nil
}

func (r *DashboardRepository) GetEmployeeDetails(ctx context.Context, month string, year int) ([]dashboard.EmployeeDetail, error) {
	query := `
		SELECT e.employee_number, e.name_employee,
			p.deliveries, p.delivery_bonus, p.isr, p.food_vouchers, p.net_salary
		FROM payroll_records p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.month = $1 AND p.year = $2 AND p.status_payroll = true
		ORDER BY e.employee_number`

	rows, err := GetQuerier(ctx, r.db).Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee details: %w", err)
	}
	defer rows.Close()

	details := make([]dashboard.EmployeeDetail, 0)
	for rows.Next() {
		var d dashboard.EmployeeDetail
		err := rows.Scan(
			&d.EmployeeNumber,
			&d.Name,
			&d.Deliveries,
			&d.DeliveryPayment,
			&d.Deductions,
			&d.FoodVouchers,
			&d.TotalNet,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee detail: %w", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee details: %w", err)
	}

	return details, nil
}

func (r *DashboardRepository) GetAvailableYears(ctx context.Context) ([]int, error) {
	query := `
		SELECT DISTINCT year
		FROM payroll_records
		WHERE status_payroll = true
		ORDER BY year`

	rows, err := GetQuerier(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get available years: %w", err)
	}
	defer rows.Close()

	years := make([]int, 0)
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("failed to scan year: %w", err)
		}
		years = append(years, y)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate years: %w", err)
	}

	return years, nil
}
