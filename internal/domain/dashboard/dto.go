package dashboard

import "github.com/shopspring/decimal"

// PeriodStats are the summed totals over every active record in a
// (month, year) period. A period with no records is all zeros.
type PeriodStats struct {
	TotalPayroll    decimal.Decimal `json:"total_payroll"`
	TotalDeliveries int64           `json:"total_deliveries"`
	TotalBonuses    decimal.Decimal `json:"total_bonuses"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalBaseSalary decimal.Decimal `json:"total_base_salary"`
}

type MonthlyTrendRow struct {
	Month         string          `json:"month"`
	BaseSalary    decimal.Decimal `json:"base_salary"`
	DeliveryBonus decimal.Decimal `json:"delivery_bonus"`
	HourBonus     decimal.Decimal `json:"hour_bonus"`
}

type ExpenseDistribution struct {
	NetSalary  decimal.Decimal `json:"net_salary"`
	Deductions decimal.Decimal `json:"deductions"`
}

type EmployeeDetail struct {
	EmployeeNumber  string          `json:"employee_number"`
	Name            string          `json:"name_employee"`
	Deliveries      int             `json:"deliveries"`
	DeliveryPayment decimal.Decimal `json:"delivery_payment"`
	Deductions      decimal.Decimal `json:"deductions"`
	FoodVouchers    decimal.Decimal `json:"food_vouchers"`
	TotalNet        decimal.Decimal `json:"total_net"`
}

// StatsComparison holds the percentage change of each stat from a previous
// period to a current one. 100 means the stat appeared from a zero baseline;
// 0 from a zero baseline means it stayed at zero.
type StatsComparison struct {
	PayrollDiff    float64 `json:"payroll_diff"`
	DeliveriesDiff float64 `json:"deliveries_diff"`
	BonusesDiff    float64 `json:"bonuses_diff"`
	DeductionsDiff float64 `json:"deductions_diff"`
}

// EmployeeComparisonRow pairs one employee's detail across the two compared
// periods. Either side may be nil when the employee has no record there, and
// Diff is nil whenever a side is missing.
type EmployeeComparisonRow struct {
	EmployeeNumber string          `json:"employee_number"`
	Current        *EmployeeDetail `json:"current"`
	Previous       *EmployeeDetail `json:"previous"`
	Diff           *float64        `json:"diff"`
}

type ComparativeResponse struct {
	CurrentMonth  string                  `json:"current_month"`
	CurrentYear   int                     `json:"current_year"`
	PreviousMonth string                  `json:"previous_month"`
	PreviousYear  int                     `json:"previous_year"`
	Current       PeriodStats             `json:"current"`
	Previous      PeriodStats             `json:"previous"`
	Comparison    StatsComparison         `json:"comparison"`
	Employees     []EmployeeComparisonRow `json:"employees"`
}
