package chartmath

import (
	"log/slog"
	"math"
)

// defaultDesiredIntervals is the tick interval count used when an
// AxisConfig does not specify one.
const defaultDesiredIntervals = 5

// headroomFraction is the minimum share of one interval that must remain
// between the data maximum and the axis ceiling. A topmost bar or line
// flush against the ceiling reads as clipped, so less headroom than this
// buys the axis one more interval.
const headroomFraction = 0.15

// AxisConfig carries the caller-supplied axis settings. Explicit Min, Max
// and Interval values short-circuit the corresponding computed result;
// leave them nil to compute. The zero value is a usable default
// configuration.
type AxisConfig struct {
	Min      *float64
	Max      *float64
	Interval *float64

	// DesiredIntervals is the target number of tick intervals.
	// Values below 1 mean "use the default".
	DesiredIntervals int

	// Padding selects the bounds padding policy for axes that round
	// their bounds.
	Padding PaddingPolicy
}

func (c AxisConfig) desiredIntervals() int {
	if c.DesiredIntervals < 1 {
		return defaultDesiredIntervals
	}
	return c.DesiredIntervals
}

func (c AxisConfig) explicitInterval() float64 {
	if c.Interval == nil {
		return 0
	}
	return *c.Interval
}

// ValueAxisBounds computes the (min, max) extent of a value (Y) axis.
//
// The floor is zero when startFromZero is requested and the data is
// non-negative, and by default for non-negative data; negative data keeps
// its exact minimum. The ceiling is rounded up to an interval multiple,
// plus one extra interval when the rounded ceiling would leave less than
// 15% of an interval of headroom above the data maximum.
//
// Explicit cfg.Min / cfg.Max short-circuit the computed values.
func ValueAxisBounds(dataMin, dataMax float64, cfg AxisConfig, startFromZero bool) (min, max float64) {
	if badFloat(dataMin) {
		dataMin = 0
	}
	if badFloat(dataMax) {
		dataMax = 0
	}
	if dataMin > dataMax {
		dataMin, dataMax = dataMax, dataMin
	}

	// Non-negative data starts at zero by convention, whether or not the
	// caller asked; startFromZero cannot force a zero floor below
	// negative data.
	min = dataMin
	if dataMin >= 0 {
		min = 0
	} else if startFromZero {
		logger().Debug("chartmath: startFromZero ignored for negative data",
			slog.Float64("dataMin", dataMin))
	}

	interval := cfg.explicitInterval()
	if interval <= 0 || badFloat(interval) {
		interval = NiceInterval(min, dataMax, cfg.desiredIntervals())
	}

	max = math.Ceil(dataMax/interval) * interval
	if max-dataMax < headroomFraction*interval {
		max += interval
	}
	max = roundToPrecision(max, interval)
	if max <= min {
		max = min + interval
	}

	if cfg.Min != nil {
		min = *cfg.Min
	}
	if cfg.Max != nil {
		max = *cfg.Max
	}
	return min, max
}

// DomainAxisBounds computes the (min, max) extent of a continuous domain
// (X) axis. The default is the exact data bounds so the data spans the
// full chart width; pass useNiceBounds to round outward to nice values
// under cfg.Padding instead.
//
// Explicit cfg.Min / cfg.Max short-circuit the computed values.
func DomainAxisBounds(dataMin, dataMax float64, cfg AxisConfig, useNiceBounds bool) (min, max float64) {
	if badFloat(dataMin) {
		dataMin = 0
	}
	if badFloat(dataMax) {
		dataMax = 0
	}
	if dataMin > dataMax {
		dataMin, dataMax = dataMax, dataMin
	}

	min, max = dataMin, dataMax
	if useNiceBounds {
		policy := cfg.Padding
		if policy == PaddingNone {
			policy = PaddingNormal
		}
		b := NiceBounds(dataMin, dataMax, cfg.desiredIntervals(), policy, cfg.explicitInterval())
		min, max = b.Min, b.Max
	}

	if cfg.Min != nil {
		min = *cfg.Min
	}
	if cfg.Max != nil {
		max = *cfg.Max
	}
	return min, max
}

// CategoryAxisBounds computes the extent of an index-based category axis:
// always [-0.5, n-0.5], centering n categories with half a category of
// margin on each end. This is a fixed geometric convention shared by
// bar-style charts, not a numeric estimate.
func CategoryAxisBounds(pointCount int) (min, max float64) {
	if pointCount < 1 {
		pointCount = 1
	}
	return -0.5, float64(pointCount) - 0.5
}
