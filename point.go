package chartmath

import "math"

// Point is a single datum in a series: an (X, Y) pair plus an optional
// display label and free-form metadata.
//
// Points within one series are conventionally sorted by X ascending. The
// algorithms in this package assume that ordering but do not sort; input
// validation is the caller's concern.
type Point struct {
	X, Y  float64
	Label string
	Meta  map[string]any
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// WithLabel returns a copy of the point carrying the given display label.
func (p Point) WithLabel(label string) Point {
	p.Label = label
	return p
}

// XRange returns the minimum and maximum X value in the series.
// Returns (0, 0) for an empty series. NaN and Inf values are skipped.
func XRange(points []Point) (min, max float64) {
	return seriesRange(points, func(p Point) float64 { return p.X })
}

// YRange returns the minimum and maximum Y value in the series.
// Returns (0, 0) for an empty series. NaN and Inf values are skipped.
func YRange(points []Point) (min, max float64) {
	return seriesRange(points, func(p Point) float64 { return p.Y })
}

func seriesRange(points []Point, get func(Point) float64) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	found := false
	for _, p := range points {
		v := get(p)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		found = true
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if !found {
		return 0, 0
	}
	return min, max
}
