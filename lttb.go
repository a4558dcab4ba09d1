package chartmath

import (
	"log/slog"
	"math"
)

// Downsample reduces an ordered series to at most target points using the
// Largest-Triangle-Three-Buckets algorithm, preserving the series' visual
// shape (peaks and valleys) far better than decimation.
//
// The first and last point are always retained verbatim. Series already
// at or under target (or a non-positive target) are returned unchanged;
// a target below 3 returns just the first and last point, since the
// triangle construction needs three vertices.
//
// The algorithm is described in Sveinn Steinarsson's thesis "Downsampling
// Time Series for Visual Representation":
// https://skemman.is/bitstream/1946/15343/3/SS_MSthesis.pdf
func Downsample(points []Point, target int) []Point {
	n := len(points)
	if target <= 0 || n <= target {
		return points
	}
	if target < 3 {
		return []Point{points[0], points[n-1]}
	}

	sampled := make([]Point, 0, target)
	sampled = append(sampled, points[0])

	// Bucket size over the interior points; first and last live outside
	// the buckets. Boundaries are recomputed from the bucket number each
	// iteration rather than accumulated, so float error cannot drift.
	every := float64(n-2) / float64(target-2)

	a := 0 // index of the previously selected point
	for i := 0; i < target-2; i++ {
		lo := int(float64(i)*every) + 1
		hi := int(float64(i+1)*every) + 1
		if hi > n-1 {
			hi = n - 1
		}
		if lo >= hi {
			// Bucket rounded down to nothing; skip it.
			continue
		}

		apex := nextBucketAverage(points, i, target, every)

		// Pick the bucket point forming the largest triangle with the
		// previous selection and the apex. Strict > keeps the first
		// point reaching the maximum, so selection is deterministic.
		best := lo
		maxArea := -1.0
		for j := lo; j < hi; j++ {
			area := triangleArea(points[a], points[j], apex)
			if area > maxArea {
				maxArea = area
				best = j
			}
		}

		sampled = append(sampled, points[best])
		a = best
	}

	sampled = append(sampled, points[n-1])
	return sampled
}

// nextBucketAverage returns the triangle apex for bucket i: the average
// point of bucket i+1, or the true last point when bucket i is the final
// interior bucket (or the next bucket rounded to nothing).
func nextBucketAverage(points []Point, i, target int, every float64) Point {
	n := len(points)
	if i == target-3 {
		return points[n-1]
	}

	lo := int(float64(i+1)*every) + 1
	hi := int(float64(i+2)*every) + 1
	if hi > n-1 {
		hi = n - 1
	}
	if lo >= hi {
		return points[n-1]
	}

	var avg Point
	for j := lo; j < hi; j++ {
		avg.X += points[j].X
		avg.Y += points[j].Y
	}
	count := float64(hi - lo)
	avg.X /= count
	avg.Y /= count
	return avg
}

// triangleArea returns the area of the triangle (a, b, c) via the 2D
// cross-product half-area formula.
func triangleArea(a, b, c Point) float64 {
	return math.Abs((a.X-c.X)*(b.Y-a.Y)-(a.X-b.X)*(c.Y-a.Y)) * 0.5
}

// Adaptive target bounds for DownsampleToWidth. Fewer than minWidthTarget
// points loses real shape even on narrow charts; more than maxWidthTarget
// is invisible at any plausible pixel width.
const (
	minWidthTarget = 50
	maxWidthTarget = 2000
)

// DownsampleOption configures DownsampleToWidth.
type DownsampleOption func(*downsampleOptions)

type downsampleOptions struct {
	density float64
}

// WithDensity sets the target point density in points per pixel.
// The default is 1. Non-positive values reset to the default.
func WithDensity(density float64) DownsampleOption {
	return func(o *downsampleOptions) {
		o.density = density
	}
}

// DownsampleToWidth downsamples for a chart of the given pixel width,
// choosing the target count as pixelWidth × density clamped to
// [50, 2000].
func DownsampleToWidth(points []Point, pixelWidth float64, opts ...DownsampleOption) []Point {
	o := downsampleOptions{density: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.density <= 0 || badFloat(o.density) {
		o.density = 1
	}
	if badFloat(pixelWidth) || pixelWidth < 0 {
		pixelWidth = 0
	}

	target := int(pixelWidth * o.density)
	if target < minWidthTarget {
		target = minWidthTarget
	}
	if target > maxWidthTarget {
		target = maxWidthTarget
	}
	logger().Debug("chartmath: adaptive downsample target",
		slog.Float64("pixelWidth", pixelWidth),
		slog.Float64("density", o.density),
		slog.Int("target", target))

	return Downsample(points, target)
}

// DownsampleError estimates the visual error introduced by downsampling:
// the mean distance from each original point to the downsampled polyline,
// normalized by the original series' Y range. Returns 0 when the sampled
// series cannot form segments, covers the original, or the original is
// flat.
//
// Intended for regression-testing downsampling quality, not for runtime
// decisions.
func DownsampleError(original, sampled []Point) float64 {
	if len(sampled) < 2 || len(original) <= len(sampled) {
		return 0
	}
	yMin, yMax := YRange(original)
	yRange := yMax - yMin
	if yRange < degenerateEps {
		return 0
	}

	var sum float64
	count := 0
	seg := 0
	for _, p := range original {
		// Advance to the segment whose X span contains the point; both
		// series share the original's X ordering.
		for seg < len(sampled)-2 && sampled[seg+1].X < p.X {
			seg++
		}
		sum += pointSegmentDistance(p, sampled[seg], sampled[seg+1])
		count++
	}
	if count == 0 {
		return 0
	}
	return (sum / float64(count)) / yRange
}

// pointSegmentDistance returns the distance from p to the segment (a, b).
func pointSegmentDistance(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}
