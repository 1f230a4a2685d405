package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nominamx/payroll-backend-go/internal/config"
	"github.com/nominamx/payroll-backend-go/internal/domain/payroll"
	"github.com/nominamx/payroll-backend-go/internal/domain/role"
)

// tenPercentTax keeps the derivation arithmetic exact in tests.
type tenPercentTax struct{}

func (tenPercentTax) Withholding(gross decimal.Decimal) decimal.Decimal {
	if !gross.IsPositive() {
		return decimal.Zero
	}
	return gross.Mul(decimal.RequireFromString("0.10")).Round(2)
}

func testCalculator() *Calculator {
	return NewCalculator(tenPercentTax{}, config.PayrollConfig{
		MonthlyMaxHours: decimal.NewFromInt(160),
		FoodVouchers:    decimal.RequireFromString("1038.00"),
	})
}

func testRole() role.Role {
	return role.Role{
		ID:              "role-1",
		Name:            "Repartidor",
		SalaryBase:      decimal.RequireFromString("8000.00"),
		BonusRole:       decimal.RequireFromString("500.00"),
		BonusHours:      decimal.RequireFromString("1200.00"),
		BonusDeliveries: decimal.RequireFromString("12.50"),
		Active:          true,
	}
}

func TestCalculator_Derive(t *testing.T) {
	t.Parallel()

	calc := testCalculator()
	d := calc.Derive(testRole(), 100, nil)

	// delivery bonus 12.50 * 100 = 1250, gross 8000 + 500 + 1200 + 1250 = 10950
	assert.True(t, d.DeliveryBonus.Equal(decimal.RequireFromString("1250.00")), "delivery bonus: %s", d.DeliveryBonus)
	assert.True(t, d.HourBonus.Equal(decimal.RequireFromString("1200.00")), "hour bonus: %s", d.HourBonus)
	assert.True(t, d.GrossSalary.Equal(decimal.RequireFromString("10950.00")), "gross: %s", d.GrossSalary)
	assert.True(t, d.ISR.Equal(decimal.RequireFromString("1095.00")), "isr: %s", d.ISR)
	assert.True(t, d.NetSalary.Equal(decimal.RequireFromString("9855.00")), "net: %s", d.NetSalary)
	assert.True(t, d.FoodVouchers.Equal(decimal.RequireFromString("1038.00")), "vouchers: %s", d.FoodVouchers)

	// snapshot carries the role rates
	assert.True(t, d.BaseSalary.Equal(decimal.RequireFromString("8000.00")))
	assert.True(t, d.RoleBonus.Equal(decimal.RequireFromString("500.00")))
	assert.True(t, d.DeliveryRate.Equal(decimal.RequireFromString("12.50")))
}

func TestCalculator_Derive_ZeroDeliveries(t *testing.T) {
	t.Parallel()

	calc := testCalculator()
	d := calc.Derive(testRole(), 0, nil)

	assert.True(t, d.DeliveryBonus.IsZero())
	assert.True(t, d.GrossSalary.Equal(decimal.RequireFromString("9700.00")))
}

func TestCalculator_Derive_ProratedHours(t *testing.T) {
	t.Parallel()

	calc := testCalculator()
	hours := decimal.NewFromInt(80)
	d := calc.Derive(testRole(), 0, &hours)

	// 1200 * 80 / 160 = 600
	assert.True(t, d.HourBonus.Equal(decimal.RequireFromString("600.00")), "hour bonus: %s", d.HourBonus)
}

func TestCalculator_Derive_VouchersNotDeducted(t *testing.T) {
	t.Parallel()

	calc := testCalculator()
	d := calc.Derive(testRole(), 10, nil)

	require.True(t, d.NetSalary.Equal(d.GrossSalary.Sub(d.ISR)))
}

func TestCalculator_Rederive_UsesSnapshotNotLiveRates(t *testing.T) {
	t.Parallel()

	calc := testCalculator()
	var rec payroll.PayrollRecord
	rec.Deliveries = 100
	rec.Apply(calc.Derive(testRole(), 100, nil))

	d := calc.Rederive(rec, 40)

	// 12.50 * 40 = 500, gross 8000 + 500 + 1200 + 500 = 10200
	assert.True(t, d.DeliveryBonus.Equal(decimal.RequireFromString("500.00")), "delivery bonus: %s", d.DeliveryBonus)
	assert.True(t, d.GrossSalary.Equal(decimal.RequireFromString("10200.00")), "gross: %s", d.GrossSalary)
	assert.True(t, d.NetSalary.Equal(decimal.RequireFromString("9180.00")), "net: %s", d.NetSalary)
	// hour bonus is independent of deliveries
	assert.True(t, d.HourBonus.Equal(rec.HourBonus))
}
