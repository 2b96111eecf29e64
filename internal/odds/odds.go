package odds

import (
	"github.com/shopspring/decimal"
)

// NoOdds is shown when a side has no probability
const NoOdds = "—"

var hundred = decimal.NewFromInt(100)

// CalculateImpliedOdds converts a percentage probability into decimal odds
// with two decimals: 50 -> "2.00", 100 -> "1.00".
func CalculateImpliedOdds(probability float64) string {
	p := decimal.NewFromFloat(probability)
	if p.IsZero() {
		return NoOdds
	}
	return hundred.Div(p).StringFixed(2)
}

// FormatProbability renders a percentage without decimals, e.g. "58%"
func FormatProbability(probability float64) string {
	return decimal.NewFromFloat(probability).StringFixed(0) + "%"
}
