package payroll

import "github.com/shopspring/decimal"

// TaxPolicy computes the withholding for a monthly gross salary. The result
// is always within [0, gross].
type TaxPolicy interface {
	Withholding(gross decimal.Decimal) decimal.Decimal
}

// TaxBracket is one row of a progressive monthly table: a fixed quota for
// everything below the lower limit plus a rate applied to the excess.
type TaxBracket struct {
	LowerLimit decimal.Decimal
	FixedQuota decimal.Decimal
	Rate       decimal.Decimal
}

// BracketTaxPolicy applies a progressive bracket table. Brackets must be
// sorted by ascending lower limit.
type BracketTaxPolicy struct {
	brackets []TaxBracket
}

func NewBracketTaxPolicy(brackets []TaxBracket) *BracketTaxPolicy {
	return &BracketTaxPolicy{brackets: brackets}
}

// NewDefaultTaxPolicy returns the monthly ISR table used when no custom
// table is configured.
func NewDefaultTaxPolicy() *BracketTaxPolicy {
	row := func(lower, quota, pct string) TaxBracket {
		return TaxBracket{
			LowerLimit: decimal.RequireFromString(lower),
			FixedQuota: decimal.RequireFromString(quota),
			Rate:       decimal.RequireFromString(pct).Div(decimal.NewFromInt(100)),
		}
	}
	return NewBracketTaxPolicy([]TaxBracket{
		row("0.01", "0.00", "1.92"),
		row("746.05", "14.32", "6.40"),
		row("6332.06", "371.83", "10.88"),
		row("11128.02", "893.63", "16.00"),
		row("12935.83", "1182.88", "17.92"),
		row("15487.72", "1640.18", "21.36"),
		row("31236.50", "5004.12", "23.52"),
		row("49233.01", "9236.89", "30.00"),
		row("93993.91", "22665.17", "32.00"),
		row("125325.21", "32691.18", "34.00"),
		row("375975.62", "117912.32", "35.00"),
	})
}

func (p *BracketTaxPolicy) Withholding(gross decimal.Decimal) decimal.Decimal {
	if !gross.IsPositive() || len(p.brackets) == 0 {
		return decimal.Zero
	}

	bracket := p.brackets[0]
	if gross.LessThan(bracket.LowerLimit) {
		return decimal.Zero
	}
	for _, b := range p.brackets[1:] {
		if gross.LessThan(b.LowerLimit) {
			break
		}
		bracket = b
	}

	excess := gross.Sub(bracket.LowerLimit)
	isr := bracket.FixedQuota.Add(excess.Mul(bracket.Rate)).Round(2)

	if isr.IsNegative() {
		return decimal.Zero
	}
	if isr.GreaterThan(gross) {
		return gross
	}
	return isr
}
