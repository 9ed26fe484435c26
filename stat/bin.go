// Package stat summarizes the stacks of a dotplot.
package stat

import (
	"github.com/vdobler/dotplot"
)

// Summary describes one stack.
type Summary struct {
	X        float64 // key of the stack
	Count    int     // number of observations
	NCount   float64 // Count scaled to the largest stack (in [0,1])
	Frac     float64 // Count relative to all observations
	Distinct int     // number of different observation values
}

// Summarize returns one Summary per stack, in stack order.
// Empty stacks report zero everywhere except X.
func Summarize(st dotplot.Stacks) []Summary {
	total, maxCount := 0, 0
	for _, s := range st {
		total += len(s.Obs)
		if len(s.Obs) > maxCount {
			maxCount = len(s.Obs)
		}
	}

	result := make([]Summary, len(st))
	for i, s := range st {
		count := len(s.Obs)
		result[i] = Summary{
			X:        s.Key,
			Count:    count,
			Distinct: len(dotplot.NewFloatSet(s.Obs...)),
		}
		if maxCount > 0 {
			result[i].NCount = float64(count) / float64(maxCount)
		}
		if total > 0 {
			result[i].Frac = float64(count) / float64(total)
		}
	}
	return result
}
