package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/nominamx/payroll-backend-go/internal/domain/payroll"
	"github.com/nominamx/payroll-backend-go/internal/pkg/period"
)

// GroupPayrollsByMonth distributes records into the twelve fixed month
// buckets, in calendar order. Every bucket is present even when empty, and
// every record lands in exactly one bucket.
func GroupPayrollsByMonth(records []payroll.PayrollRecordResponse) []payroll.MonthBucketResponse {
	index := make(map[string]int, len(period.Months))
	buckets := make([]payroll.MonthBucketResponse, len(period.Months))
	for i, name := range period.Months {
		index[name] = i
		buckets[i] = payroll.MonthBucketResponse{
			Month:    name,
			Payrolls: []payroll.PayrollRecordResponse{},
			TotalNet: decimal.Zero,
		}
	}

	for _, rec := range records {
		i, ok := index[rec.Month]
		if !ok {
			continue
		}
		buckets[i].Payrolls = append(buckets[i].Payrolls, rec)
		buckets[i].TotalNet = buckets[i].TotalNet.Add(rec.NetSalary)
	}

	return buckets
}
