package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/nominamx/payroll-backend-go/internal/config"
	"github.com/nominamx/payroll-backend-go/internal/domain/payroll"
	"github.com/nominamx/payroll-backend-go/internal/domain/role"
)

// Calculator derives every monetary field of a record from a rate snapshot
// and a deliveries count. It holds no state besides configuration, so a
// single instance is shared across requests.
type Calculator struct {
	tax             payroll.TaxPolicy
	monthlyMaxHours decimal.Decimal
	foodVouchers    decimal.Decimal
}

func NewCalculator(tax payroll.TaxPolicy, cfg config.PayrollConfig) *Calculator {
	return &Calculator{
		tax:             tax,
		monthlyMaxHours: cfg.MonthlyMaxHours,
		foodVouchers:    cfg.FoodVouchers,
	}
}

// Derive computes a record's money from live role rates. The role's base
// salary, role bonus and delivery rate land in the derivation as snapshots,
// so later rate edits never reach this record.
//
// The hour bonus is the role's flat amount unless hoursWorked is given, in
// which case it is prorated against the configured monthly hours.
func (c *Calculator) Derive(ro role.Role, deliveries int, hoursWorked *decimal.Decimal) payroll.Derivation {
	hourBonus := ro.BonusHours
	if hoursWorked != nil {
		hourBonus = ro.BonusHours.Mul(*hoursWorked).Div(c.monthlyMaxHours).Round(2)
	}

	return c.assemble(ro.SalaryBase, ro.BonusRole, ro.BonusDeliveries, hourBonus, deliveries)
}

// Rederive recomputes the delivery-dependent fields of an existing record
// from its frozen snapshot. The hour bonus does not depend on deliveries and
// is carried over unchanged.
func (c *Calculator) Rederive(rec payroll.PayrollRecord, deliveries int) payroll.Derivation {
	return c.assemble(rec.BaseSalary, rec.RoleBonus, rec.DeliveryRate, rec.HourBonus, deliveries)
}

func (c *Calculator) assemble(base, roleBonus, deliveryRate, hourBonus decimal.Decimal, deliveries int) payroll.Derivation {
	deliveryBonus := deliveryRate.Mul(decimal.NewFromInt(int64(deliveries))).Round(2)
	gross := base.Add(roleBonus).Add(hourBonus).Add(deliveryBonus).Round(2)
	isr := c.tax.Withholding(gross)

	return payroll.Derivation{
		BaseSalary:    base,
		RoleBonus:     roleBonus,
		DeliveryRate:  deliveryRate,
		HourBonus:     hourBonus,
		DeliveryBonus: deliveryBonus,
		GrossSalary:   gross,
		ISR:           isr,
		// Food vouchers are a fixed benefit reported alongside the salary;
		// they are not part of gross and are not deducted from net.
		FoodVouchers: c.foodVouchers,
		NetSalary:    gross.Sub(isr).Round(2),
	}
}
