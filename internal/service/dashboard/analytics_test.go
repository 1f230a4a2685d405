package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nominamx/payroll-backend-go/internal/domain/dashboard"
	"github.com/nominamx/payroll-backend-go/internal/pkg/period"
)

func TestPercentageDiff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		oldVal   float64
		newVal   float64
		expected float64
	}{
		{"zero baseline with growth", 0, 50, 100},
		{"zero baseline staying zero", 0, 0, 0},
		{"fifty percent up", 100, 150, 50},
		{"fifty percent down", 100, 50, -50},
		{"no change", 200, 200, 0},
		{"doubled", 75, 150, 100},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.expected, PercentageDiff(tt.oldVal, tt.newVal), 1e-9)
		})
	}
}

func TestCompareStats(t *testing.T) {
	t.Parallel()

	current := dashboard.PeriodStats{
		TotalPayroll:    decimal.NewFromInt(150000),
		TotalDeliveries: 300,
		TotalBonuses:    decimal.NewFromInt(20000),
		TotalDeductions: decimal.NewFromInt(15000),
	}
	previous := dashboard.PeriodStats{
		TotalPayroll:    decimal.NewFromInt(100000),
		TotalDeliveries: 0,
		TotalBonuses:    decimal.NewFromInt(40000),
		TotalDeductions: decimal.NewFromInt(15000),
	}

	cmp := CompareStats(current, previous)

	assert.InDelta(t, 50, cmp.PayrollDiff, 1e-9)
	assert.InDelta(t, 100, cmp.DeliveriesDiff, 1e-9)
	assert.InDelta(t, -50, cmp.BonusesDiff, 1e-9)
	assert.InDelta(t, 0, cmp.DeductionsDiff, 1e-9)
}

func detail(number string, net int64) dashboard.EmployeeDetail {
	return dashboard.EmployeeDetail{
		EmployeeNumber: number,
		TotalNet:       decimal.NewFromInt(net),
	}
}

func TestDiffEmployee(t *testing.T) {
	t.Parallel()

	cur := detail("EMP-0001", 12000)
	prev := detail("EMP-0001", 10000)

	diff := DiffEmployee(&cur, &prev)
	require.NotNil(t, diff)
	assert.InDelta(t, 20, *diff, 1e-9)

	assert.Nil(t, DiffEmployee(&cur, nil))
	assert.Nil(t, DiffEmployee(nil, &prev))
	assert.Nil(t, DiffEmployee(nil, nil))
}

func TestUnionEmployeeNumbers(t *testing.T) {
	t.Parallel()

	current := []dashboard.EmployeeDetail{detail("EMP-0003", 1), detail("EMP-0001", 1)}
	previous := []dashboard.EmployeeDetail{detail("EMP-0002", 1), detail("EMP-0001", 1)}

	numbers := UnionEmployeeNumbers(current, previous)
	assert.Equal(t, []string{"EMP-0001", "EMP-0002", "EMP-0003"}, numbers)
}

func TestBuildEmployeeComparison(t *testing.T) {
	t.Parallel()

	current := []dashboard.EmployeeDetail{
		detail("EMP-0001", 12000),
		detail("EMP-0003", 8000),
	}
	previous := []dashboard.EmployeeDetail{
		detail("EMP-0001", 10000),
		detail("EMP-0002", 9000),
	}

	rows := BuildEmployeeComparison(current, previous)
	require.Len(t, rows, 3)

	// EMP-0001 present on both sides
	assert.Equal(t, "EMP-0001", rows[0].EmployeeNumber)
	require.NotNil(t, rows[0].Current)
	require.NotNil(t, rows[0].Previous)
	require.NotNil(t, rows[0].Diff)
	assert.InDelta(t, 20, *rows[0].Diff, 1e-9)

	// EMP-0002 left
	assert.Equal(t, "EMP-0002", rows[1].EmployeeNumber)
	assert.Nil(t, rows[1].Current)
	require.NotNil(t, rows[1].Previous)
	assert.Nil(t, rows[1].Diff)

	// EMP-0003 joined
	assert.Equal(t, "EMP-0003", rows[2].EmployeeNumber)
	require.NotNil(t, rows[2].Current)
	assert.Nil(t, rows[2].Previous)
	assert.Nil(t, rows[2].Diff)
}

func TestPadMonthlyTrend(t *testing.T) {
	t.Parallel()

	rows := []dashboard.MonthlyTrendRow{
		{Month: "Marzo", BaseSalary: decimal.NewFromInt(8000)},
		{Month: "Enero", BaseSalary: decimal.NewFromInt(5000)},
	}

	padded := PadMonthlyTrend(rows)
	require.Len(t, padded, 12)

	for i, name := range period.Months {
		assert.Equal(t, name, padded[i].Month)
	}
	assert.True(t, padded[0].BaseSalary.Equal(decimal.NewFromInt(5000)))
	assert.True(t, padded[2].BaseSalary.Equal(decimal.NewFromInt(8000)))
	// months without records are zero rows, not gaps
	assert.True(t, padded[1].BaseSalary.IsZero())
	assert.True(t, padded[11].BaseSalary.IsZero())
	assert.True(t, padded[11].DeliveryBonus.IsZero())
	assert.True(t, padded[11].HourBonus.IsZero())
}

func TestPadMonthlyTrend_Empty(t *testing.T) {
	t.Parallel()

	padded := PadMonthlyTrend(nil)
	require.Len(t, padded, 12)
	for _, row := range padded {
		assert.True(t, row.BaseSalary.IsZero())
	}
}

func TestPreviousPeriod(t *testing.T) {
	t.Parallel()

	// baseline is always the same month one year back
	m, y := previousPeriod("Marzo", 2025)
	assert.Equal(t, "Marzo", m)
	assert.Equal(t, 2024, y)

	m, y = previousPeriod("Enero", 2025)
	assert.Equal(t, "Enero", m)
	assert.Equal(t, 2024, y)

	m, y = previousPeriod("Diciembre", 2024)
	assert.Equal(t, "Diciembre", m)
	assert.Equal(t, 2023, y)
}
