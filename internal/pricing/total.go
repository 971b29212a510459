package pricing

import "github.com/shopspring/decimal"

// LineTotal is unit * qty in decimal arithmetic.
func LineTotal(unit float64, qty int) decimal.Decimal {
	return decimal.NewFromFloat(unit).Mul(decimal.NewFromInt(int64(qty)))
}

// Float converts an accumulated amount back to the float64 used on the wire.
func Float(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
