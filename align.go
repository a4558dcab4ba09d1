package chartmath

import (
	"log/slog"
	"math"
	"sort"
)

// AlignStrategy selects how label indices are distributed across a series.
type AlignStrategy int

const (
	// AlignEven spreads labels evenly across the index space.
	AlignEven AlignStrategy = iota

	// AlignNice walks the index space at a nice integer step
	// (1, 2, 5, 10, 20, 25, 50, 100, ...).
	AlignNice

	// AlignPeriod detects a natural time period (hourly, weekly, monthly,
	// quarterly, yearly) in sequential data and places labels at period
	// boundaries. Non-sequential data falls back to AlignEven.
	AlignPeriod
)

// String returns the strategy name.
func (s AlignStrategy) String() string {
	switch s {
	case AlignEven:
		return "even"
	case AlignNice:
		return "nice"
	case AlignPeriod:
		return "period"
	default:
		return "unknown"
	}
}

// PeriodType is a natural calendar granularity inferred from a series'
// point count and shape, used to choose label spacing for time-like data.
type PeriodType int

const (
	// PeriodNone means no period was detected (or detection was not run).
	PeriodNone PeriodType = iota
	PeriodHourly
	PeriodWeekly
	PeriodMonthly
	PeriodQuarterly
	PeriodYearly

	// PeriodCustom is the fallback when the data matches no common
	// calendar shape; labels use a nice index step instead.
	PeriodCustom
)

// String returns the period name.
func (p PeriodType) String() string {
	switch p {
	case PeriodNone:
		return "none"
	case PeriodHourly:
		return "hourly"
	case PeriodWeekly:
		return "weekly"
	case PeriodMonthly:
		return "monthly"
	case PeriodQuarterly:
		return "quarterly"
	case PeriodYearly:
		return "yearly"
	case PeriodCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// LabelAlignment maps a desired label count onto exact data-point indices.
//
// Indices are strictly increasing and lie within [0, TotalPoints-1].
// Whenever TotalPoints exceeds the desired label count, the first index is
// 0 and the last index is TotalPoints-1.
type LabelAlignment struct {
	// Indices are the selected positions in the source point slice.
	Indices []int

	// Values holds the X value at each selected index.
	Values []float64

	// TotalPoints is the length of the source series.
	TotalPoints int

	// Interval is the index step used for step-based strategies,
	// 0 when the alignment is not step-based.
	Interval int

	// Period is the detected period type for AlignPeriod alignments,
	// PeriodNone otherwise.
	Period PeriodType
}

// Align selects label positions for the series targeting desiredCount
// labels under the given strategy.
//
// Every point gets a label when the series has at most desiredCount
// points. An empty series yields an empty alignment. desiredCount values
// below 2 are treated as 2 (first and last).
func Align(points []Point, desiredCount int, strategy AlignStrategy) LabelAlignment {
	n := len(points)
	if n == 0 {
		return LabelAlignment{}
	}
	if desiredCount < 2 {
		desiredCount = 2
	}
	if n <= desiredCount {
		return identityAlignment(points)
	}

	switch strategy {
	case AlignNice:
		return alignNice(points, desiredCount)
	case AlignPeriod:
		return alignPeriod(points, desiredCount)
	default:
		return alignEven(points, desiredCount)
	}
}

// AlignForValues selects, for each target X value, the index of the point
// whose X is nearest by absolute distance. Duplicate and out-of-order hits
// are dropped so the invariant of strictly increasing indices holds.
func AlignForValues(points []Point, targets []float64) LabelAlignment {
	n := len(points)
	if n == 0 || len(targets) == 0 {
		return LabelAlignment{TotalPoints: n}
	}

	a := LabelAlignment{TotalPoints: n}
	for _, target := range targets {
		if badFloat(target) {
			continue
		}
		idx := nearestIndex(points, target)
		if len(a.Indices) > 0 && idx <= a.Indices[len(a.Indices)-1] {
			continue
		}
		a.Indices = append(a.Indices, idx)
		a.Values = append(a.Values, points[idx].X)
	}
	return a
}

// AlignWithInterval walks the index space at a fixed step, always
// including the last index. Steps below 1 are treated as 1.
func AlignWithInterval(points []Point, step int) LabelAlignment {
	n := len(points)
	if n == 0 {
		return LabelAlignment{}
	}
	if step < 1 {
		step = 1
	}

	a := LabelAlignment{TotalPoints: n, Interval: step}
	for idx := 0; idx < n; idx += step {
		a.append(points, idx)
	}
	a.append(points, n-1)
	return a
}

// append adds idx to the alignment unless it would break the strictly
// increasing invariant.
func (a *LabelAlignment) append(points []Point, idx int) {
	if idx < 0 || idx >= len(points) {
		return
	}
	if len(a.Indices) > 0 && idx <= a.Indices[len(a.Indices)-1] {
		return
	}
	a.Indices = append(a.Indices, idx)
	a.Values = append(a.Values, points[idx].X)
}

func identityAlignment(points []Point) LabelAlignment {
	a := LabelAlignment{TotalPoints: len(points)}
	for i := range points {
		a.Indices = append(a.Indices, i)
		a.Values = append(a.Values, points[i].X)
	}
	return a
}

// alignEven places desiredCount labels evenly across the index space:
// round(i*(n-1)/(k-1)), with the first and last index always included.
func alignEven(points []Point, desiredCount int) LabelAlignment {
	n := len(points)
	a := LabelAlignment{TotalPoints: n}
	a.append(points, 0)
	for i := 1; i <= desiredCount-2; i++ {
		idx := int(math.Round(float64(i) * float64(n-1) / float64(desiredCount-1)))
		if idx >= n-1 {
			break
		}
		a.append(points, idx)
	}
	a.append(points, n-1)
	return a
}

// niceIndexSteps are the preferred label strides for index-based walking.
var niceIndexSteps = []int{1, 2, 5, 10, 20, 25, 50, 100}

// niceIndexStep snaps a rough index stride to the nearest preferred value
// at or above it; strides beyond 100 snap up to the next multiple of ten.
func niceIndexStep(rough float64) int {
	if rough <= 1 {
		return 1
	}
	for _, s := range niceIndexSteps {
		if rough <= float64(s) {
			return s
		}
	}
	return int(math.Ceil(rough/10)) * 10
}

// alignNice walks the index space from 0 at a nice integer step, then
// appends the final index if the walk did not land on it.
func alignNice(points []Point, desiredCount int) LabelAlignment {
	n := len(points)
	step := niceIndexStep(float64(n) / float64(desiredCount))

	a := LabelAlignment{TotalPoints: n, Interval: step}
	for idx := 0; idx < n; idx += step {
		a.append(points, idx)
	}
	a.append(points, n-1)
	return a
}

// sequentialSampleSize bounds how many spacing deltas the sequential check
// inspects; a window is enough to judge uniformity without an O(n) pass on
// every alignment of a huge series.
const sequentialSampleSize = 32

// spacingTolerance is the allowed deviation of each sampled spacing from
// the average, as a fraction of the average.
const spacingTolerance = 0.2

// isSequential reports whether the series' X values look like a uniform
// time axis: strictly increasing, with every sampled spacing within 20%
// of the average spacing.
func isSequential(points []Point) (avgSpacing float64, ok bool) {
	n := len(points)
	if n < 3 {
		return 0, n == 2 && points[1].X > points[0].X
	}

	stride := 1
	if n-1 > sequentialSampleSize {
		stride = (n - 1) / sequentialSampleSize
	}

	var deltas []float64
	var sum float64
	for i := 0; i+stride < n; i += stride {
		d := points[i+stride].X - points[i].X
		if d <= 0 || badFloat(d) {
			return 0, false
		}
		deltas = append(deltas, d)
		sum += d
	}
	if len(deltas) == 0 {
		return 0, false
	}

	avg := sum / float64(len(deltas))
	for _, d := range deltas {
		if math.Abs(d-avg) > spacingTolerance*avg {
			return 0, false
		}
	}
	return avg / float64(stride), true
}

// periodRule pairs a predicate with the period it implies. Rules are
// evaluated in order; the first match wins, so more specific shapes come
// before broader ones.
type periodRule struct {
	match  func(n, desiredCount int, rough float64) bool
	period PeriodType
}

// yearlyRoughThreshold marks a "large" rough index interval: asking for
// few labels over many yearly points.
const yearlyRoughThreshold = 8

var periodRules = []periodRule{
	{func(n, _ int, _ float64) bool { return n >= 12 && n <= 15 }, PeriodQuarterly},
	{func(n, _ int, _ float64) bool { return n >= 48 && n <= 56 }, PeriodQuarterly},
	{func(n, _ int, _ float64) bool { return n >= 28 && n <= 31 }, PeriodWeekly},
	{func(n, _ int, rough float64) bool { return n >= 10 && n <= 100 && rough > yearlyRoughThreshold }, PeriodYearly},
	{func(n, _ int, _ float64) bool { return n <= 24 }, PeriodHourly},
	{func(n, _ int, _ float64) bool { return n >= 90 && n <= 366 }, PeriodMonthly},
}

// classifyPeriod infers a period type from the series shape. The rule
// table is heuristic: counts that match no common calendar (45 points,
// say) deliberately fall through to PeriodCustom.
func classifyPeriod(n, desiredCount int) PeriodType {
	rough := float64(n) / float64(desiredCount)
	for _, r := range periodRules {
		if r.match(n, desiredCount, rough) {
			return r.period
		}
	}
	return PeriodCustom
}

// periodStep maps a period type to a target index stride.
func periodStep(p PeriodType, n, desiredCount int) int {
	var step int
	switch p {
	case PeriodQuarterly:
		step = n / 4
	case PeriodMonthly:
		step = n / 12
	case PeriodWeekly:
		step = 7
	case PeriodYearly, PeriodHourly:
		step = int(math.Round(float64(n) / float64(desiredCount)))
	default:
		step = niceIndexStep(float64(n) / float64(desiredCount))
	}
	if step < 1 {
		step = 1
	}
	return step
}

// alignPeriod implements time-aware alignment: classify a period from the
// series shape, walk the index space at the period's stride, and nudge
// each ideal position to the nearest actual point, since period
// boundaries rarely land on an exact index.
func alignPeriod(points []Point, desiredCount int) LabelAlignment {
	n := len(points)
	avgSpacing, ok := isSequential(points)
	if !ok {
		logger().Debug("chartmath: non-sequential data, falling back to even alignment",
			slog.Int("points", n))
		return alignEven(points, desiredCount)
	}

	period := classifyPeriod(n, desiredCount)
	step := periodStep(period, n, desiredCount)
	logger().Debug("chartmath: period alignment",
		slog.String("period", period.String()),
		slog.Int("step", step),
		slog.Int("points", n))

	window := int(float64(step) * 0.2)
	if window < 1 {
		window = 1
	}
	if window > 10 {
		window = 10
	}

	a := LabelAlignment{TotalPoints: n, Interval: step, Period: period}
	a.append(points, 0)
	x0 := points[0].X
	for ideal := step; ideal < n-1; ideal += step {
		target := x0 + float64(ideal)*avgSpacing
		a.append(points, nearestIndexWindow(points, ideal, window, target))
	}
	a.append(points, n-1)
	return a
}

// nearestIndexWindow searches [ideal-window, ideal+window] for the point
// whose X is closest to target. Ties keep the earlier index.
func nearestIndexWindow(points []Point, ideal, window int, target float64) int {
	lo := ideal - window
	if lo < 0 {
		lo = 0
	}
	hi := ideal + window
	if hi > len(points)-1 {
		hi = len(points) - 1
	}

	best := lo
	bestDist := math.Abs(points[lo].X - target)
	for i := lo + 1; i <= hi; i++ {
		if d := math.Abs(points[i].X - target); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// nearestIndex finds the index whose X is nearest to target by absolute
// distance, using binary search over the (conventionally sorted) series.
func nearestIndex(points []Point, target float64) int {
	n := len(points)
	i := sort.Search(n, func(i int) bool { return points[i].X >= target })
	if i == 0 {
		return 0
	}
	if i == n {
		return n - 1
	}
	if math.Abs(points[i].X-target) < math.Abs(points[i-1].X-target) {
		return i
	}
	return i - 1
}
