package chart

import "math"

// logAxis maps values on a base-10 logarithmic scale to pixel positions.
// from and to are the pixel positions of min and max; to < from for an
// upward-pointing y axis.
type logAxis struct {
	min, max float64
	from, to float64
}

// pos returns the pixel position of v.
func (a logAxis) pos(v float64) float64 {
	lo, hi := math.Log10(a.min), math.Log10(a.max)
	return a.from + (math.Log10(v)-lo)/(hi-lo)*(a.to-a.from)
}

// clamp limits v to the axis range.
func (a logAxis) clamp(v float64) float64 {
	return math.Max(a.min, math.Min(a.max, v))
}

// contains reports whether v lies within the axis range.
func (a logAxis) contains(v float64) bool {
	return v >= a.min && v <= a.max
}

// ticks returns the major (decade) and minor (2..9 × decade) tick values within
// the axis range. The axis minimum is always a major tick so the first
// gridline is labelled even when it is not a power of ten.
func (a logAxis) ticks() (major, minor []float64) {
	major = append(major, a.min)
	for e := math.Floor(math.Log10(a.min)); e <= math.Ceil(math.Log10(a.max)); e++ {
		decade := math.Pow(10, e)
		for k := 1; k <= 9; k++ {
			v := float64(k) * decade
			if v <= a.min || v > a.max*(1+1e-9) {
				continue
			}
			if k == 1 {
				major = append(major, v)
			} else {
				minor = append(minor, v)
			}
		}
	}
	return major, minor
}

// logspace returns n values spaced evenly on a log scale from lo to hi inclusive.
func logspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo, hi}
	}
	out := make([]float64, n)
	step := (math.Log10(hi) - math.Log10(lo)) / float64(n-1)
	for i := range out {
		out[i] = math.Pow(10, math.Log10(lo)+step*float64(i))
	}
	out[n-1] = hi
	return out
}
