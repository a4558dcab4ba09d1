package chartmath

import "math"

// maxDecimalPlaces caps label precision. Intervals finer than 1e-6 still
// format with six decimals; anything beyond that is floating-point noise
// on an axis label.
const maxDecimalPlaces = 6

// intEps is the tolerance used when deciding whether a scaled value has
// reached an integer during decimal-place counting.
const intEps = 1e-9

// decimalPlacesFor returns the number of decimal places needed to format
// tick labels for the given interval without floating-point noise:
// 0 for integer intervals (anything >= 1 produced by the nice-number
// family is an integer), otherwise the count of significant decimal
// digits, capped at maxDecimalPlaces.
func decimalPlacesFor(interval float64) int {
	if interval <= 0 || math.IsNaN(interval) || math.IsInf(interval, 0) {
		return 0
	}
	places := 0
	v := interval
	for places < maxDecimalPlaces && math.Abs(v-math.Round(v)) > intEps*math.Max(1, math.Abs(v)) {
		v *= 10
		places++
	}
	return places
}

// roundToPrecision rounds v to the decimal precision implied by the
// reference interval. Axis bounds and tick values are multiples of the
// interval, so rounding to the interval's own precision removes artifacts
// like 0.30000000000000004 without disturbing the value itself.
func roundToPrecision(v, referenceInterval float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	shift := math.Pow(10, float64(decimalPlacesFor(referenceInterval)))
	return math.Round(v*shift) / shift
}

// approxEqual returns true if a and b are within epsilon of each other.
func approxEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// pow10Floor returns the power of ten at or below |v|, i.e. 10^floor(log10|v|).
// Returns 0 for v == 0.
func pow10Floor(v float64) float64 {
	v = math.Abs(v)
	if v == 0 {
		return 0
	}
	return math.Pow(10, math.Floor(math.Log10(v)))
}
