package chartmath

import (
	"log/slog"
	"math"
	"strconv"
)

// PaddingPolicy controls how far axis bounds extend beyond the data range.
type PaddingPolicy int

const (
	// PaddingNone uses the exact data bounds with no rounding.
	PaddingNone PaddingPolicy = iota

	// PaddingNormal rounds the bounds down/up to interval multiples.
	PaddingNormal

	// PaddingRound snaps the bounds further out to the nearest
	// {1, 2, 5, 10} × 10^k value.
	PaddingRound

	// PaddingAdditional is PaddingNormal plus one extra interval of
	// margin on each side.
	PaddingAdditional

	// PaddingAuto picks a policy from the data: PaddingRound for ranges
	// wider than 1000, a zero-anchored lower bound when all data is
	// non-negative, otherwise PaddingNormal.
	PaddingAuto
)

// String returns the policy name.
func (p PaddingPolicy) String() string {
	switch p {
	case PaddingNone:
		return "none"
	case PaddingNormal:
		return "normal"
	case PaddingRound:
		return "round"
	case PaddingAdditional:
		return "additional"
	case PaddingAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// AxisBounds describes a computed axis: its extent, tick spacing, and the
// decimal precision tick labels should be formatted with.
//
// Invariants: Min < Max and Interval > 0, even when the source data range
// was empty or degenerate.
type AxisBounds struct {
	Min, Max      float64
	Interval      float64
	DecimalPlaces int
}

// autoRoundThreshold is the range width above which PaddingAuto prefers
// PaddingRound.
const autoRoundThreshold = 1000

// NiceBounds computes axis bounds for the data range [dataMin, dataMax]
// targeting desiredCount tick intervals under the given padding policy.
//
// explicitInterval overrides the computed nice interval when positive;
// pass 0 (or any non-positive value) to let the interval be computed.
//
// Degenerate ranges (dataMax ≈ dataMin, NaN/Inf endpoints) produce bounds
// centered on the value with a magnitude-scaled half-width, never
// Min == Max. All outputs except PaddingNone's exact bounds are cleaned
// to interval-appropriate precision.
func NiceBounds(dataMin, dataMax float64, desiredCount int, policy PaddingPolicy, explicitInterval float64) AxisBounds {
	if desiredCount < 1 {
		desiredCount = 1
	}
	if badFloat(dataMin) {
		dataMin = 0
	}
	if badFloat(dataMax) {
		dataMax = 0
	}
	if dataMin > dataMax {
		dataMin, dataMax = dataMax, dataMin
	}

	if math.Abs(dataMax-dataMin) < degenerateEps {
		return zeroRangeBounds(dataMin, desiredCount)
	}

	interval := explicitInterval
	if interval <= 0 || badFloat(interval) {
		interval = NiceInterval(dataMin, dataMax, desiredCount)
	}

	zeroAnchor := false
	if policy == PaddingAuto {
		policy, zeroAnchor = resolveAutoPolicy(dataMin, dataMax)
	}

	var min, max float64
	switch policy {
	case PaddingNone:
		// Exact data bounds, deliberately left uncleaned.
		return AxisBounds{
			Min:           dataMin,
			Max:           dataMax,
			Interval:      interval,
			DecimalPlaces: decimalPlacesFor(interval),
		}
	case PaddingRound:
		min = NiceFloor(math.Floor(dataMin/interval) * interval)
		max = NiceCeil(math.Ceil(dataMax/interval) * interval)
	case PaddingAdditional:
		min = (math.Floor(dataMin/interval) - 1) * interval
		max = (math.Ceil(dataMax/interval) + 1) * interval
	default: // PaddingNormal
		min = math.Floor(dataMin/interval) * interval
		max = math.Ceil(dataMax/interval) * interval
	}

	if zeroAnchor {
		min = 0
	}
	if max-min < interval {
		max = min + interval
	}

	return AxisBounds{
		Min:           roundToPrecision(min, interval),
		Max:           roundToPrecision(max, interval),
		Interval:      interval,
		DecimalPlaces: decimalPlacesFor(interval),
	}
}

// resolveAutoPolicy implements PaddingAuto's choice rule: round bounds for
// wide ranges, a zero-anchored floor when all data is non-negative, plain
// normal padding otherwise.
func resolveAutoPolicy(dataMin, dataMax float64) (policy PaddingPolicy, zeroAnchor bool) {
	if dataMax-dataMin > autoRoundThreshold {
		return PaddingRound, false
	}
	if dataMin >= 0 {
		return PaddingNormal, true
	}
	return PaddingNormal, false
}

// zeroRangeBounds produces non-degenerate bounds for a range that collapsed
// to a single value v. The half-width scales with the value's magnitude:
// half the value itself for |v| < 1, a fixed total width of 10 for medium
// magnitudes, and half the value's power of ten beyond that.
func zeroRangeBounds(v float64, desiredCount int) AxisBounds {
	av := math.Abs(v)
	var half float64
	switch {
	case av < degenerateEps:
		half = 1
	case av < 1:
		half = av / 2
	case av < 100:
		half = 5
	default:
		half = pow10Floor(av) / 2
	}

	min, max := v-half, v+half
	interval := NiceInterval(min, max, desiredCount)
	logger().Debug("chartmath: zero-width range fallback",
		slog.Float64("value", v),
		slog.Float64("halfWidth", half),
		slog.Float64("interval", interval))

	return AxisBounds{
		Min:           roundToPrecision(min, interval),
		Max:           roundToPrecision(max, interval),
		Interval:      interval,
		DecimalPlaces: decimalPlacesFor(interval),
	}
}

// Ticks materializes the tick values described by b, from Min to Max
// inclusive, each cleaned to the interval's precision.
func Ticks(b AxisBounds) []float64 {
	if b.Interval <= 0 || badFloat(b.Interval) || b.Max < b.Min {
		return nil
	}
	n := int((b.Max-b.Min)/b.Interval) + 1
	if n < 0 || n > 1<<20 {
		// Caller-constructed bounds with an absurd interval ratio; size
		// the slice lazily instead of trusting the estimate.
		n = 0
	}
	ticks := make([]float64, 0, n)
	for v := b.Min; v <= b.Max+b.Interval*1e-6; v += b.Interval {
		ticks = append(ticks, roundToPrecision(v, b.Interval))
	}
	return ticks
}

// FormatTick formats a tick value with the given number of decimal places.
// Use AxisBounds.DecimalPlaces to keep labels free of floating-point noise.
func FormatTick(v float64, decimalPlaces int) string {
	if decimalPlaces < 0 {
		decimalPlaces = 0
	}
	if decimalPlaces > maxDecimalPlaces {
		decimalPlaces = maxDecimalPlaces
	}
	return strconv.FormatFloat(v, 'f', decimalPlaces, 64)
}
