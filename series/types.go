package series

import (
	"time"
)

// Point is one observation of the source series.
type Point struct {
	Time  time.Time
	Value float64
}

// Series is an ordered sequence of points with strictly increasing times.
type Series []Point

// Validate checks that timestamps are strictly increasing.
func (s Series) Validate() error {
	for i := 1; i < len(s); i++ {
		if !s[i].Time.After(s[i-1].Time) {
			return rowErrorf(i+1, ErrNotIncreasing)
		}
	}

	return nil
}

// Values returns a copy of the value column.
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Value
	}

	return out
}

// FromValues builds a regular series starting at start with a fixed step.
func FromValues(start time.Time, step time.Duration, values []float64) Series {
	out := make(Series, len(values))
	for i, v := range values {
		out[i] = Point{Time: start.Add(time.Duration(i) * step), Value: v}
	}

	return out
}

// Sample is an immutable, contiguous, fixed-length slice of a Series.
// It is identified by the time of its first point.
type Sample struct {
	index  int
	points []Point
}

// NewSample copies points into a new Sample with the given ordinal index.
func NewSample(index int, points []Point) Sample {
	cp := make([]Point, len(points))
	copy(cp, points)

	return Sample{index: index, points: cp}
}

// Index returns the ordinal position of the sample in its source series.
func (s Sample) Index() int { return s.index }

// Name returns the timestamp of the first point (zero time for an empty sample).
func (s Sample) Name() time.Time {
	if len(s.points) == 0 {
		return time.Time{}
	}

	return s.points[0].Time
}

// Len returns the number of points.
func (s Sample) Len() int { return len(s.points) }

// At returns the i-th point.
func (s Sample) At(i int) Point { return s.points[i] }

// Values returns a copy of the sample values.
func (s Sample) Values() []float64 {
	return Series(s.points).Values()
}

// Points returns a copy of the sample points.
func (s Sample) Points() []Point {
	cp := make([]Point, len(s.points))
	copy(cp, s.points)

	return cp
}
