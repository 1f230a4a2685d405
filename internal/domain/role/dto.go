package role

import "github.com/shopspring/decimal"

type RoleResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name_role"`
	SalaryBase      decimal.Decimal `json:"salary_base"`
	BonusRole       decimal.Decimal `json:"bonus_role"`
	BonusHours      decimal.Decimal `json:"bonus_hours"`
	BonusDeliveries decimal.Decimal `json:"bonus_deliveries"`
	IsAdmin         bool            `json:"is_admin"`
	Active          bool            `json:"status_role"`
}
