// Package units converts raw SI magnitudes into human-scaled values.
//
// The magnitude formatter buckets a scalar to the nearest lower
// multiple-of-3 exponent and tags it with the matching SI prefix.
// Magnitudes beyond the prefix table collapse to its extreme tiers so
// the output stays readable across arbitrary orders of magnitude.
package units

import (
	"fmt"
	"math"
)

// prefixes covers every multiple-of-3 exponent between the collapse
// bounds.
var prefixes = map[int]string{
	-24: "y", -21: "z", -18: "a", -15: "f", -12: "p", -9: "n",
	-6: "u", -3: "m", 0: "", 3: "k", 6: "M", 9: "G",
	12: "T", 15: "P", 18: "E", 21: "Z", 24: "Y",
}

// collapseExp is the exponent beyond which values stop bucketing and
// pin to the extreme prefix.
const collapseExp = 24

// Quantity is a scaled magnitude paired with its SI prefix.
type Quantity struct {
	Value  float64
	Prefix string
}

// Humanize scales a strictly positive SI magnitude into a Quantity.
// Values in [1, 1000) pass through with the empty prefix. Beyond the
// prefix table the value collapses to the extreme tier: divided by 1e9
// under the largest prefix, or multiplied by 1e9 under the smallest.
// Zero passes through unscaled so a cold-start reading renders as "0";
// negative input is a caller error.
func Humanize(si float64) Quantity {
	if si == 0 {
		return Quantity{0, ""}
	}

	exp := int(math.Floor(math.Log10(si)))
	switch {
	case exp >= 0 && exp < 3:
		return Quantity{si, ""}
	case exp >= collapseExp:
		return Quantity{si / 1e9, prefixes[collapseExp]}
	case exp <= -collapseExp:
		return Quantity{si * 1e9, prefixes[-collapseExp]}
	}

	// Nearest lower multiple of 3, rounding toward -inf for negative
	// exponents (-2 buckets to -3, not 0).
	exp3 := exp - ((exp%3)+3)%3
	return Quantity{si * math.Pow(10, float64(-exp3)), prefixes[exp3]}
}

// Format renders the quantity with the given base unit, e.g. "4.21 Gm".
func (q Quantity) Format(unit string) string {
	return fmt.Sprintf("%.2f %s%s", q.Value, q.Prefix, unit)
}

// Calendar thresholds, in seconds. Months are fixed 30-day blocks.
const (
	Minute = 60.0
	Hour   = 60 * Minute
	Day    = 24 * Hour
	Month  = 30 * Day
	Year   = 365 * Day
)

// FormatDuration renders a duration in seconds as a coarse unit plus
// the remainder in the next-finer unit, e.g. "3 m 12 d" or "5 h 40 m".
// Sub-minute durations delegate to Humanize for an SI-prefixed seconds
// string. Exactly one cascade branch fires.
func FormatDuration(seconds float64) string {
	switch {
	case seconds >= Year:
		y := math.Floor(seconds / Year)
		return fmt.Sprintf("%.0f y %.0f m", y, math.Floor((seconds-y*Year)/Month))
	case seconds >= Month:
		m := math.Floor(seconds / Month)
		return fmt.Sprintf("%.0f m %.0f d", m, math.Floor((seconds-m*Month)/Day))
	case seconds >= Day:
		d := math.Floor(seconds / Day)
		return fmt.Sprintf("%.0f d %.0f h", d, math.Floor((seconds-d*Day)/Hour))
	case seconds >= Hour:
		h := math.Floor(seconds / Hour)
		return fmt.Sprintf("%.0f h %.0f m", h, math.Floor((seconds-h*Hour)/Minute))
	case seconds >= Minute:
		m := math.Floor(seconds / Minute)
		return fmt.Sprintf("%.0f min %.1f s", m, seconds-m*Minute)
	}
	return Humanize(seconds).Format("s")
}
