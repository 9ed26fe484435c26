package dotplot

import (
	"math"

	"github.com/hyp3rd/ewrap"
)

// Keys returns n evenly spaced stack keys ranging from the minimum to the
// maximum of data, both inclusive. Key i is min + i*(max-min)/(n-1);
// if all observations are equal so are all keys.
//
// An empty dataset is reported before n is looked at.
func Keys(data Dataset, n int) ([]float64, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, ewrap.Wrapf(ErrInvalidStackCount, "got %d", n)
	}

	lower, upper := data.MinMax()
	span, m := upper-lower, float64(n-1)
	keys := make([]float64, n)
	keys[0], keys[n-1] = lower, upper // no rounding at the ends
	for i := 1; i < n-1; i++ {
		k := lower + float64(i)*span/m
		if math.IsInf(float64(i)*span, 0) {
			// max-min overflows: interpolate without forming it.
			t := float64(i) / m
			k = lower*(1-t) + upper*t
		}
		keys[i] = math.Min(math.Max(k, keys[i-1]), upper)
	}
	return keys, nil
}
