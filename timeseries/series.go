// Package timeseries provides the core series data structure and transforms.
package timeseries

import (
	"math"
	"sort"
)

// Series represents a univariate, 0-indexed time series.
//
// A Series is fixed once constructed: transforms return freshly allocated
// series and never mutate the receiver or caller-owned slices.
type Series struct {
	Values []float64
	Name   string
}

// New creates a new series from a copy of values.
func New(values []float64) *Series {
	v := make([]float64, len(values))
	copy(v, values)
	return &Series{Values: v}
}

// NewNamed creates a new named series from a copy of values.
func NewNamed(name string, values []float64) *Series {
	s := New(values)
	s.Name = name
	return s
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(len(s.Values))
}

// Variance calculates the sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, v := range s.Values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(s.Values)-1)
}

// Std calculates the standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	min := s.Values[0]
	for _, v := range s.Values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	max := s.Values[0]
	for _, v := range s.Values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Median returns the median value of the series.
func (s *Series) Median() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Log returns the natural logarithm of the series. Non-positive values map
// to NaN.
func (s *Series) Log() *Series {
	result := make([]float64, len(s.Values))
	for i, v := range s.Values {
		if v > 0 {
			result[i] = math.Log(v)
		} else {
			result[i] = math.NaN()
		}
	}
	return &Series{Values: result, Name: s.Name + "_log"}
}

// MovingAverage returns the simple moving average with the given window
// size. The result has window-1 fewer entries than the receiver.
func (s *Series) MovingAverage(window int) *Series {
	if window <= 0 || window > len(s.Values) {
		return &Series{Values: []float64{}, Name: s.Name}
	}

	result := make([]float64, len(s.Values)-window+1)
	sum := 0.0
	for i := 0; i < window; i++ {
		sum += s.Values[i]
	}
	result[0] = sum / float64(window)

	for i := window; i < len(s.Values); i++ {
		sum = sum - s.Values[i-window] + s.Values[i]
		result[i-window+1] = sum / float64(window)
	}

	return &Series{Values: result, Name: s.Name + "_ma"}
}

// Normalize standardizes the series to zero mean and unit standard
// deviation. A zero-variance series is returned unchanged.
func (s *Series) Normalize() *Series {
	mean := s.Mean()
	std := s.Std()
	if std == 0 {
		return s.Copy()
	}

	result := make([]float64, len(s.Values))
	for i, v := range s.Values {
		result[i] = (v - mean) / std
	}
	return &Series{Values: result, Name: s.Name + "_normalized"}
}

// Diff calculates the first difference of the series.
func (s *Series) Diff() *Series {
	return s.DiffN(1)
}

// DiffN applies first differencing d times. The result is d entries shorter
// than the receiver; the leading observations are consumed by the transform.
func (s *Series) DiffN(d int) *Series {
	if d <= 0 {
		return s.Copy()
	}
	if len(s.Values) <= d {
		return &Series{Values: []float64{}, Name: s.Name}
	}

	cur := s.Values
	for k := 0; k < d; k++ {
		next := make([]float64, len(cur)-1)
		for i := 1; i < len(cur); i++ {
			next[i-1] = cur[i] - cur[i-1]
		}
		cur = next
	}

	return &Series{Values: cur, Name: s.Name + "_diff"}
}

// InverseDiffN reverses d rounds of first differencing, where d = len(seed).
// seed[k] must hold the first value of the k-times differenced series that
// DiffN consumed, seed[0] being the first value of the original series.
// Given matching seeds it is the exact left inverse of DiffN.
func (s *Series) InverseDiffN(seed []float64) *Series {
	cur := make([]float64, len(s.Values))
	copy(cur, s.Values)

	for k := len(seed) - 1; k >= 0; k-- {
		next := make([]float64, len(cur)+1)
		next[0] = seed[k]
		for i, v := range cur {
			next[i+1] = next[i] + v
		}
		cur = next
	}

	return &Series{Values: cur, Name: s.Name}
}

// DiffSeeds returns the seed values consumed by DiffN(d): the first value of
// the series at each differencing level from 0 to d-1. The returned slice is
// suitable for InverseDiffN.
func (s *Series) DiffSeeds(d int) []float64 {
	seeds := make([]float64, 0, d)
	cur := s
	for k := 0; k < d && cur.Len() > 0; k++ {
		seeds = append(seeds, cur.Values[0])
		cur = cur.Diff()
	}
	return seeds
}

// Lag returns the series lagged by k positions: entry i of the result is
// the receiver's entry i, truncated so the result aligns with index i+k.
func (s *Series) Lag(k int) *Series {
	if k <= 0 || k >= len(s.Values) {
		return &Series{Values: []float64{}, Name: s.Name}
	}

	result := make([]float64, len(s.Values)-k)
	copy(result, s.Values[:len(s.Values)-k])
	return &Series{Values: result, Name: s.Name + "_lag"}
}

// Slice returns a copy of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Values: []float64{}, Name: s.Name}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])
	return &Series{Values: values, Name: s.Name}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)
	return &Series{Values: values, Name: s.Name}
}
