package dotplot

import "github.com/hyp3rd/ewrap"

var (
	// ErrEmptyInput is returned when the dataset has no observations.
	ErrEmptyInput = ewrap.New("empty dataset")

	// ErrInvalidStackCount is returned when fewer than two stacks are
	// requested for generated keys.
	ErrInvalidStackCount = ewrap.New("number of stacks must be at least 2")

	// ErrInvalidValue is returned for NaN or infinite observations.
	ErrInvalidValue = ewrap.New("observation is not a finite number")

	// ErrNoKeys is returned when an explicit but empty key list is given.
	ErrNoKeys = ewrap.New("no stack keys")

	// ErrUnsortedKeys is returned when explicit keys decrease somewhere.
	ErrUnsortedKeys = ewrap.New("stack keys are not sorted")

	// ErrBelowFirstKey is returned when an observation is smaller than the
	// first of the explicit keys and thus belongs to no stack.
	ErrBelowFirstKey = ewrap.New("observation below first stack key")

	// ErrNotNumeric is returned by NewDataset for data which cannot be
	// converted to float64 observations.
	ErrNotNumeric = ewrap.New("data is not numeric")

	// ErrInvalidStyle is returned for unknown colors or point shapes.
	ErrInvalidStyle = ewrap.New("invalid style")
)
