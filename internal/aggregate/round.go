package aggregate

import "github.com/shopspring/decimal"

// roundTo rounds half-to-even, matching how the provider's own tables round.
func roundTo(d decimal.Decimal, places int32) float64 {
	f, _ := d.RoundBank(places).Float64()
	return f
}

// PerGame divides a season total by that row's games played, rounded to one decimal.
// Rows with no games played normalize to zero.
func PerGame(total float64, gp int) float64 {
	if gp <= 0 {
		return 0
	}
	return roundTo(decimal.NewFromFloat(total).Div(decimal.NewFromInt(int64(gp))), 1)
}

// Ratio returns made/attempts rounded to three decimals.
func Ratio(made, attempts int) float64 {
	if attempts <= 0 {
		return 0
	}
	return roundTo(decimal.NewFromInt(int64(made)).Div(decimal.NewFromInt(int64(attempts))), 3)
}
