package role

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role is the rate card payroll derivation reads. Rates are read once at
// record creation time and frozen into the record; later rate changes never
// touch existing records.
type Role struct {
	ID              string
	Name            string
	SalaryBase      decimal.Decimal
	BonusRole       decimal.Decimal
	BonusHours      decimal.Decimal
	BonusDeliveries decimal.Decimal
	IsAdmin         bool
	Active          bool
	CreatedBy       string
	UpdatedBy       *string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
