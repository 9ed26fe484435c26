package dotplot

// Layout is everything needed to draw a dotplot of one dataset.
// It is computed once by Compute and not changed afterwards.
type Layout struct {
	Options Options

	Keys   []float64 // distinct keys in increasing order
	Stacks Stacks
	Points []Point

	X Scale
}

// Compute bins data according to opts and projects the stacks to dot
// positions. Unset options get their defaults.
//
// The dataset is checked before the options, so an empty dataset is
// reported as ErrEmptyInput whatever NumStacks is.
func Compute(data Dataset, opts Options) (*Layout, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}
	opts.ApplyDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	stacks, err := Bin(data, opts.NumStacks, opts.Keys)
	if err != nil {
		return nil, err
	}
	keys := stacks.Keys()

	return &Layout{
		Options: opts,
		Keys:    keys,
		Stacks:  stacks,
		Points:  Points(stacks),
		X:       NewScale(keys),
	}, nil
}

// MaxHeight is the height of the highest stack.
func (l *Layout) MaxHeight() int {
	h := 0
	for _, p := range l.Points {
		if p.Y > h {
			h = p.Y
		}
	}
	return h
}
