package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ParsePrice extracts the numeric value of a display price such as "$45,000".
// Every character other than digits and '.' is dropped before parsing.
// ok is false for a nil, empty or unparseable price.
func ParsePrice(s *string) (decimal.Decimal, bool) {
	if s == nil {
		return decimal.Zero, false
	}
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, *s)
	if cleaned == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// PriceOrZero is the sort key for a price: missing or unparseable prices count as 0.
func PriceOrZero(s *string) decimal.Decimal {
	d, _ := ParsePrice(s)
	return d
}

// DeriveDiscount returns round(100 * (original - price) / original) when both
// prices parse and original > price. In every other case the supplied
// discount is returned unchanged.
func DeriveDiscount(price, originalPrice *string, supplied int) int {
	p, ok := ParsePrice(price)
	if !ok {
		return supplied
	}
	orig, ok := ParsePrice(originalPrice)
	if !ok || !orig.GreaterThan(p) {
		return supplied
	}
	pct := orig.Sub(p).Mul(hundred).Div(orig).Round(0)
	return int(pct.IntPart())
}
