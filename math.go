package dotplot

import "sort"

// stackIndex returns the index of the largest key k with k <= x.
// Values at or above the last key map to the last index; values below
// the first key yield -1. Keys must be sorted.
func stackIndex(keys []float64, x float64) int {
	return sort.Search(len(keys), func(i int) bool { return keys[i] > x }) - 1
}

// sorted reports whether s is non-decreasing.
func sorted(s []float64) bool {
	return sort.Float64sAreSorted(s)
}
