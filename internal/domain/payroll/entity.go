package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRecord is one employee's pay for one (month, year) period.
//
// BaseSalary, RoleBonus and DeliveryRate are snapshots of the employee's
// role rates at creation time. Re-derivation after a deliveries change uses
// the snapshots, never the live role, so a record's money is stable against
// later rate edits.
type PayrollRecord struct {
	ID          string
	EmployeeID  string
	Month       string
	Year        int
	Deliveries  int
	HoursWorked *decimal.Decimal

	BaseSalary    decimal.Decimal
	RoleBonus     decimal.Decimal
	DeliveryRate  decimal.Decimal
	HourBonus     decimal.Decimal
	DeliveryBonus decimal.Decimal
	GrossSalary   decimal.Decimal
	ISR           decimal.Decimal
	FoodVouchers  decimal.Decimal
	NetSalary     decimal.Decimal

	Active    bool
	CreatedBy string
	UpdatedBy *string
	CreatedAt time.Time
	UpdatedAt *time.Time

	// Joined fields
	EmployeeNumber *string
	EmployeeName   *string
	RoleName       *string
}

// Derivation holds every monetary field computed from a rate snapshot and a
// deliveries count. It is produced by the calculator and copied verbatim into
// the record; nothing else writes these fields.
type Derivation struct {
	BaseSalary    decimal.Decimal
	RoleBonus     decimal.Decimal
	DeliveryRate  decimal.Decimal
	HourBonus     decimal.Decimal
	DeliveryBonus decimal.Decimal
	GrossSalary   decimal.Decimal
	ISR           decimal.Decimal
	FoodVouchers  decimal.Decimal
	NetSalary     decimal.Decimal
}

// Apply copies the derived fields onto the record.
func (r *PayrollRecord) Apply(d Derivation) {
	r.BaseSalary = d.BaseSalary
	r.RoleBonus = d.RoleBonus
	r.DeliveryRate = d.DeliveryRate
	r.HourBonus = d.HourBonus
	r.DeliveryBonus = d.DeliveryBonus
	r.GrossSalary = d.GrossSalary
	r.ISR = d.ISR
	r.FoodVouchers = d.FoodVouchers
	r.NetSalary = d.NetSalary
}
