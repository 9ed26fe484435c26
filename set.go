package dotplot

import "sort"

// FloatSet is a set of float64 values.
type FloatSet map[float64]struct{}

// NewFloatSet returns a set containing xs.
func NewFloatSet(xs ...float64) FloatSet {
	s := make(FloatSet, len(xs))
	for _, x := range xs {
		s.Add(x)
	}
	return s
}

// Add adds x to s.
func (s FloatSet) Add(x float64) {
	s[x] = struct{}{}
}

// Elements returns the elements of s in increasing order.
func (s FloatSet) Elements() []float64 {
	elems := make([]float64, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Float64s(elems)
	return elems
}
