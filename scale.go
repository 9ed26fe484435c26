package dotplot

import (
	"math"
	"strconv"
)

// Scale is the x-axis of a dotplot: ticks sit exactly at the stack keys
// and the visible range extends a bit beyond the outermost keys so the
// dots of the first and last stack are not cut.
type Scale struct {
	Min, Max float64 // visible range

	Breaks []float64 // tick positions
	Labels []string  // tick labels, same length as Breaks
}

// NewScale sets up the x scale for the given sorted keys. The range is
// expanded by 5% on both sides, or by 1 if all keys are equal.
func NewScale(keys []float64) Scale {
	s := Scale{
		Breaks: make([]float64, len(keys)),
		Labels: make([]string, len(keys)),
	}
	copy(s.Breaks, keys)
	for i, x := range keys {
		s.Labels[i] = FormatKey(x)
	}
	if len(keys) == 0 {
		s.Min, s.Max = -1, 1
		return s
	}

	min, max := keys[0], keys[len(keys)-1]
	if min == max {
		s.Min, s.Max = min-1, max+1
		return s
	}
	expand := max*0.05 - min*0.05 // max-min may overflow
	s.Min = math.Max(min-expand, -math.MaxFloat64)
	s.Max = math.Min(max+expand, math.MaxFloat64)
	return s
}

// FormatKey formats a key as tick label with up to 6 significant digits.
func FormatKey(x float64) string {
	return strconv.FormatFloat(x, 'g', 6, 64)
}
