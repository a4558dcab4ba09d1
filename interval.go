package chartmath

import "math"

// Range regime thresholds. Each regime gets its own treatment in
// NiceInterval; collapsing them into one code path is how axis engines end
// up emitting zero intervals or NaN ticks.
const (
	// degenerateEps is the width below which a range counts as zero.
	degenerateEps = 1e-10

	// tinyRange is the width below which snapping operates at
	// sub-millesimal magnitudes.
	tinyRange = 0.001

	// hugeRange is the width above which snapping biases toward rounder
	// numbers.
	hugeRange = 1e9
)

// zeroRangeInterval is the fixed interval returned when the whole range
// sits at zero. Yields the pleasant [-1, 1] axis with ticks every 0.2.
const zeroRangeInterval = 0.2

// NiceInterval returns a "nice" tick interval for the range [min, max]
// targeting desiredCount intervals. Nice means a member of the
// {1, 2, 5, 10} × 10^k family, the numbers humans read most easily on
// axis ticks.
//
// The result is always positive, including for degenerate inputs:
// zero-width ranges, equal values, NaN or Inf endpoints. desiredCount
// values below 1 are treated as 1.
func NiceInterval(min, max float64, desiredCount int) float64 {
	if desiredCount < 1 {
		desiredCount = 1
	}
	if badFloat(min) || badFloat(max) {
		return zeroRangeInterval
	}

	r := math.Abs(max - min)
	switch {
	case r < degenerateEps:
		return degenerateInterval(min)
	case r < tinyRange:
		// Sub-millesimal ranges snap at their own magnitude; the guard
		// catches underflow to zero from rounding at the extremes.
		iv := snapInterval(r/float64(desiredCount), 7.0)
		if iv <= 0 {
			return degenerateInterval(min)
		}
		return iv
	case r > hugeRange:
		// Bias the top breakpoint upward so billions-scale axes land on
		// 5×10^k instead of 10×10^k slightly too often.
		return snapInterval(r/float64(desiredCount), 7.5)
	default:
		return snapInterval(r/float64(desiredCount), 7.0)
	}
}

// snapInterval normalizes rough into [1, 10) and snaps it to the
// {1, 2, 5, 10} family at breakpoints 1.5, 3.0 and upperBreak.
func snapInterval(rough, upperBreak float64) float64 {
	magnitude := pow10Floor(rough)
	normalized := rough / magnitude
	switch {
	case normalized < 1.5:
		return magnitude
	case normalized < 3.0:
		return 2 * magnitude
	case normalized < upperBreak:
		return 5 * magnitude
	default:
		return 10 * magnitude
	}
}

// degenerateInterval handles a zero-width range at value v: a fixed small
// interval when v is itself zero, otherwise one derived from the value's
// own magnitude. Never returns zero.
func degenerateInterval(v float64) float64 {
	if badFloat(v) || math.Abs(v) < degenerateEps {
		return zeroRangeInterval
	}
	return math.Pow(10, math.Floor(math.Log10(math.Abs(v)))-1)
}

// NiceCeil snaps v upward to the nearest member of the {1, 2, 5, 10} × 10^k
// family. Zero maps to zero; negative values snap away from zero.
func NiceCeil(v float64) float64 {
	if badFloat(v) || v == 0 {
		return v
	}
	if v < 0 {
		return -NiceFloor(-v)
	}
	magnitude := pow10Floor(v)
	normalized := v / magnitude
	switch {
	case normalized <= 1:
		return magnitude
	case normalized <= 2:
		return 2 * magnitude
	case normalized <= 5:
		return 5 * magnitude
	default:
		return 10 * magnitude
	}
}

// NiceFloor snaps v downward to the nearest member of the
// {1, 2, 5, 10} × 10^k family. Zero maps to zero; negative values snap
// away from zero, mirroring NiceCeil.
func NiceFloor(v float64) float64 {
	if badFloat(v) || v == 0 {
		return v
	}
	if v < 0 {
		return -NiceCeil(-v)
	}
	magnitude := pow10Floor(v)
	normalized := v / magnitude
	switch {
	case normalized >= 5:
		return 5 * magnitude
	case normalized >= 2:
		return 2 * magnitude
	default:
		return magnitude
	}
}

// badFloat reports whether v is unusable for axis arithmetic.
func badFloat(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
