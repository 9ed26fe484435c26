package dotplot

import (
	"math"

	"github.com/hyp3rd/ewrap"
	"gonum.org/v1/gonum/floats"
)

// Stack is the group of observations drawn at the same x-position.
type Stack struct {
	Key float64   // position on the x-axis
	Obs []float64 // observations in dataset order
}

// Stacks maps keys to their observations. The order of Stacks is the
// order of the keys; keys are distinct.
type Stacks []Stack

// Bin assigns each observation in data to one stack.
//
// If keys is nil, n evenly spaced keys are generated by Keys. Otherwise
// keys must be non-decreasing and n is ignored. Equal keys collapse into
// one stack. Every key gets a stack, even an empty one.
//
// An observation x goes to the stack of key[i] if key[i] <= x < key[i+1].
// Observations at or above the last key go to the last stack, so the
// maximum of the data always ends up on top of the last key. An
// observation below the first key fails with ErrBelowFirstKey.
func Bin(data Dataset, n int, keys []float64) (Stacks, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	if keys == nil {
		var err error
		keys, err = Keys(data, n)
		if err != nil {
			return nil, err
		}
	} else {
		if len(keys) == 0 {
			return nil, ErrNoKeys
		}
		if floats.HasNaN(keys) || math.IsInf(floats.Min(keys), -1) || math.IsInf(floats.Max(keys), 1) {
			return nil, ewrap.Wrapf(ErrInvalidValue, "keys %v", keys)
		}
		if !sorted(keys) {
			return nil, ewrap.Wrapf(ErrUnsortedKeys, "%v", keys)
		}
	}

	distinct := NewFloatSet(keys...).Elements()
	stacks := make(Stacks, len(distinct))
	for i, k := range distinct {
		stacks[i] = Stack{Key: k, Obs: []float64{}}
	}

	for _, x := range data {
		i := stackIndex(distinct, x)
		if i < 0 {
			return nil, ewrap.Wrapf(ErrBelowFirstKey, "%g < %g", x, distinct[0])
		}
		stacks[i].Obs = append(stacks[i].Obs, x)
	}

	return stacks, nil
}

// Keys returns the stack keys in order.
func (st Stacks) Keys() []float64 {
	keys := make([]float64, len(st))
	for i, s := range st {
		keys[i] = s.Key
	}
	return keys
}

// N is the total number of observations in all stacks.
func (st Stacks) N() int {
	n := 0
	for _, s := range st {
		n += len(s.Obs)
	}
	return n
}
