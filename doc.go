// Package chartmath provides the numeric core shared by chart renderers:
// axis bounds calculation, nice tick intervals, label-to-data alignment,
// and LTTB series downsampling.
//
// # Overview
//
// chartmath sits between raw data and the drawing layer. Given a series of
// points it answers three questions every chart type asks before a single
// pixel is drawn: which subset of a huge series is worth plotting
// (Downsample), where the axis should start and stop and how far apart its
// ticks go (NiceBounds, ValueAxisBounds, DomainAxisBounds,
// CategoryAxisBounds), and which exact data points deserve a label
// (Align and friends).
//
// # Quick Start
//
//	import "github.com/gogpu/chartmath"
//
//	// Reduce 100k points to something drawable.
//	reduced := chartmath.Downsample(series, 500)
//
//	// Compute a readable Y axis for the data range.
//	b := chartmath.NiceBounds(yMin, yMax, 5, chartmath.PaddingNormal, 0)
//	for _, tick := range chartmath.Ticks(b) {
//	    label := chartmath.FormatTick(tick, b.DecimalPlaces)
//	    // hand tick position + label to the renderer
//	}
//
//	// Pick 6 label positions aligned to actual data points.
//	la := chartmath.Align(series, 6, chartmath.AlignPeriod)
//
// # Design
//
// Everything in this package is a pure function over immutable inputs.
// There is no shared state, no I/O, and no goroutines; every function is
// safe to call concurrently from independent chart instances. Outputs are
// fresh values that hold no references back into caller data.
//
// The package is organized by responsibility:
//   - interval.go: nice-number tick interval arithmetic
//   - bounds.go: axis bounds with padding policies
//   - chart.go: per-chart-family bounds rules (value, domain, category axes)
//   - align.go: label-to-data-point alignment, including period detection
//   - lttb.go: Largest-Triangle-Three-Buckets downsampling
//
// # Numeric Robustness
//
// Degenerate inputs (zero-width ranges, NaN/Inf, empty series) never
// produce NaN, Inf, or zero intervals. Each component degrades to a
// documented fallback instead of failing: the design favors always
// producing a usable axis over rejecting awkward data.
package chartmath
