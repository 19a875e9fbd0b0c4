package deals

import (
	"math"
	"strconv"
	"strings"
)

// Cents is a price in integer minor units. Catalog prices arrive as
// decimal-bearing strings ("$1,234.56", "200") and are converted exactly once
// at this boundary; all ranking math stays on Cents.
type Cents int64

// ParsePrice normalizes a raw price representation into Cents. Anything that
// is not a digit or the decimal separator is stripped before parsing.
// Unparseable input yields 0, never an error, so ranking cannot abort on bad
// catalog data.
func ParsePrice(raw string) Cents {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" {
		return 0
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}

	return Cents(math.Round(value * 100))
}

// Float returns the amount in base currency units.
func (c Cents) Float() float64 {
	return float64(c) / 100
}
