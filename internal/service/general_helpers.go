package service

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// finite maps NaN and infinities to zero so formatting never panics on a
// degenerate computation.
func finite(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

// round rounds a value half away from zero to places decimals.
//
// Example:
//
//	round(123.456789, 2)  // returns 123.46
//	round(0.005, 2)       // returns 0.01
func round(value float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(finite(value)).Round(places).Float64()
	return f
}

// fixed renders value with exactly places decimals.
func fixed(value float64, places int32) string {
	return decimal.NewFromFloat(finite(value)).StringFixed(places)
}

// money renders an amount with two decimals, e.g. "1234.50".
func money(value float64) string {
	return fixed(value, 2)
}

// percent renders value, already scaled to percent, with a trailing "%".
func percent(value float64, places int32) string {
	return fixed(value, places) + "%"
}

// fraction renders a ratio in [0, 1] as a percentage, e.g. 0.95 -> "95.0%" with one place.
func fraction(value float64, places int32) string {
	return decimal.NewFromFloat(finite(value)).Shift(2).StringFixed(places) + "%"
}

// today returns the calendar date of now in YYYY-MM-DD.
func today(now func() time.Time) string {
	return now().UTC().Format(time.DateOnly)
}
