package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nominamx/payroll-backend-go/internal/domain/payroll"
	"github.com/nominamx/payroll-backend-go/internal/pkg/period"
)

func TestGroupPayrollsByMonth(t *testing.T) {
	t.Parallel()

	records := []payroll.PayrollRecordResponse{
		{ID: "a", Month: "Enero", NetSalary: decimal.NewFromInt(100)},
		{ID: "b", Month: "Enero", NetSalary: decimal.NewFromInt(250)},
		{ID: "c", Month: "Marzo", NetSalary: decimal.NewFromInt(75)},
		{ID: "d", Month: "Diciembre", NetSalary: decimal.NewFromInt(10)},
	}

	buckets := GroupPayrollsByMonth(records)
	require.Len(t, buckets, 12)

	for i, b := range buckets {
		assert.Equal(t, period.Months[i], b.Month)
		assert.NotNil(t, b.Payrolls)
	}

	assert.Len(t, buckets[0].Payrolls, 2)
	assert.True(t, buckets[0].TotalNet.Equal(decimal.NewFromInt(350)))
	assert.Len(t, buckets[1].Payrolls, 0)
	assert.True(t, buckets[1].TotalNet.IsZero())
	assert.Len(t, buckets[2].Payrolls, 1)
	assert.Len(t, buckets[11].Payrolls, 1)
}

func TestGroupPayrollsByMonth_Conservation(t *testing.T) {
	t.Parallel()

	records := make([]payroll.PayrollRecordResponse, 0, 60)
	for i := 0; i < 60; i++ {
		records = append(records, payroll.PayrollRecordResponse{
			Month:     period.Months[i%12],
			NetSalary: decimal.NewFromInt(int64(i)),
		})
	}

	buckets := GroupPayrollsByMonth(records)

	total := 0
	for _, b := range buckets {
		total += len(b.Payrolls)
	}
	assert.Equal(t, len(records), total)
}

func TestGroupPayrollsByMonth_Empty(t *testing.T) {
	t.Parallel()

	buckets := GroupPayrollsByMonth(nil)
	require.Len(t, buckets, 12)
	for _, b := range buckets {
		assert.Empty(t, b.Payrolls)
		assert.True(t, b.TotalNet.IsZero())
	}
}
