package dashboard

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/nominamx/payroll-backend-go/internal/domain/dashboard"
	"github.com/nominamx/payroll-backend-go/internal/pkg/period"
)

// PadMonthlyTrend expands sparse per-month sums to the full twelve-month
// list in calendar order. Charts map rows to month labels positionally, so
// a missing month must appear as a zero row, not a gap.
func PadMonthlyTrend(rows []dashboard.MonthlyTrendRow) []dashboard.MonthlyTrendRow {
	byMonth := make(map[string]dashboard.MonthlyTrendRow, len(rows))
	for _, row := range rows {
		byMonth[row.Month] = row
	}

	out := make([]dashboard.MonthlyTrendRow, 0, len(period.Months))
	for _, name := range period.Months {
		row, ok := byMonth[name]
		if !ok {
			row = dashboard.MonthlyTrendRow{
				Month:         name,
				BaseSalary:    decimal.Zero,
				DeliveryBonus: decimal.Zero,
				HourBonus:     decimal.Zero,
			}
		}
		out = append(out, row)
	}
	return out
}

// PercentageDiff returns the percent change from oldVal to newVal. A zero
// baseline maps to 100 when the new value is positive and to 0 otherwise,
// so a stat appearing out of nothing always reads as full growth.
func PercentageDiff(oldVal, newVal float64) float64 {
	if oldVal == 0 {
		if newVal > 0 {
			return 100
		}
		return 0
	}
	return (newVal - oldVal) / oldVal * 100
}

// CompareStats diffs every stat of two periods, previous as baseline.
func CompareStats(current, previous dashboard.PeriodStats) dashboard.StatsComparison {
	return dashboard.StatsComparison{
		PayrollDiff:    PercentageDiff(previous.TotalPayroll.InexactFloat64(), current.TotalPayroll.InexactFloat64()),
		DeliveriesDiff: PercentageDiff(float64(previous.TotalDeliveries), float64(current.TotalDeliveries)),
		BonusesDiff:    PercentageDiff(previous.TotalBonuses.InexactFloat64(), current.TotalBonuses.InexactFloat64()),
		DeductionsDiff: PercentageDiff(previous.TotalDeductions.InexactFloat64(), current.TotalDeductions.InexactFloat64()),
	}
}

// DiffEmployee diffs one employee's net pay across two periods. The result
// is nil when the employee is absent from either side; a percentage against
// a missing record would be meaningless.
func DiffEmployee(current, previous *dashboard.EmployeeDetail) *float64 {
	if current == nil || previous == nil {
		return nil
	}
	diff := PercentageDiff(previous.TotalNet.InexactFloat64(), current.TotalNet.InexactFloat64())
	return &diff
}

// UnionEmployeeNumbers collects every employee number present on either
// side, sorted, each number once.
func UnionEmployeeNumbers(current, previous []dashboard.EmployeeDetail) []string {
	seen := make(map[string]struct{})
	numbers := make([]string, 0, len(current)+len(previous))
	for _, d := range current {
		if _, ok := seen[d.EmployeeNumber]; !ok {
			seen[d.EmployeeNumber] = struct{}{}
			numbers = append(numbers, d.EmployeeNumber)
		}
	}
	for _, d := range previous {
		if _, ok := seen[d.EmployeeNumber]; !ok {
			seen[d.EmployeeNumber] = struct{}{}
			numbers = append(numbers, d.EmployeeNumber)
		}
	}
	sort.Strings(numbers)
	return numbers
}

// BuildEmployeeComparison pairs the two periods' details per employee over
// the union of employee numbers.
func BuildEmployeeComparison(current, previous []dashboard.EmployeeDetail) []dashboard.EmployeeComparisonRow {
	currentByNumber := make(map[string]*dashboard.EmployeeDetail, len(current))
	for i := range current {
		currentByNumber[current[i].EmployeeNumber] = &current[i]
	}
	previousByNumber := make(map[string]*dashboard.EmployeeDetail, len(previous))
	for i := range previous {
		previousByNumber[previous[i].EmployeeNumber] = &previous[i]
	}

	numbers := UnionEmployeeNumbers(current, previous)
	rows := make([]dashboard.EmployeeComparisonRow, 0, len(numbers))
	for _, number := range numbers {
		cur := currentByNumber[number]
		prev := previousByNumber[number]
		rows = append(rows, dashboard.EmployeeComparisonRow{
			EmployeeNumber: number,
			Current:        cur,
			Previous:       prev,
			Diff:           DiffEmployee(cur, prev),
		})
	}
	return rows
}
