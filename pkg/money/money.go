// Package money holds the integer arithmetic for amounts in minor units.
package money

import (
	"fmt"
	"strings"
)

const (
	// MaxBasisPoints is 100%.
	MaxBasisPoints = 10000
	// MaxAmount is the largest single charge the payment provider accepts,
	// in minor units.
	MaxAmount int64 = 99_999_999
)

// Fee returns amount * bps / 10000 rounded half up. Negative inputs yield 0.
// The amount is split at 10000 so the product never overflows int64.
func Fee(amount int64, bps int) int64 {
	if amount <= 0 || bps <= 0 {
		return 0
	}
	if bps > MaxBasisPoints {
		bps = MaxBasisPoints
	}

	q, r := amount/MaxBasisPoints, amount%MaxBasisPoints

	return q*int64(bps) + (r*int64(bps)+MaxBasisPoints/2)/MaxBasisPoints
}

// Percent renders basis points as a percentage, 1250 -> 12.5.
func Percent(bps int) float64 {
	return float64(bps) / 100
}

// ToMinor converts a major unit amount (e.g. dollars) to minor units.
func ToMinor(major float64) int64 {
	if major < 0 {
		return -int64(-major*100 + 0.5)
	}

	return int64(major*100 + 0.5)
}

// ToMajor converts minor units to major units.
func ToMajor(minor int64) float64 {
	return float64(minor) / 100
}

//nolint: gochecknoglobals
var symbols = map[string]string{"usd": "$", "eur": "€", "gbp": "£", "cad": "CA$", "aud": "A$"}

// Format renders minor units for humans, e.g. 2500 usd -> "$25.00".
func Format(minor int64, currency string) string {
	sign := ""
	if minor < 0 {
		sign, minor = "-", -minor
	}
	amount := fmt.Sprintf("%d.%02d", minor/100, minor%100)
	if sym, ok := symbols[strings.ToLower(currency)]; ok {
		return sign + sym + amount
	}

	return sign + amount + " " + strings.ToUpper(currency)
}
