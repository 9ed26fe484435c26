package dotplot

import "github.com/hyp3rd/ewrap"

const (
	// DefaultNumStacks is the number of stacks if none is requested.
	DefaultNumStacks = 5

	// DefaultFilename is where the image is written if no file is given.
	DefaultFilename = "image.png"
)

// Options controls how a dataset is binned and drawn.
// The zero value is usable after ApplyDefaults.
type Options struct {
	// NumStacks is the number of generated keys (default 5, at least 2).
	// With explicit Keys it only scales fonts.
	NumStacks int `mapstructure:"num_stacks"`

	// Keys are explicit stack positions; nil means generate NumStacks
	// evenly spaced keys between min and max of the data.
	Keys []float64 `mapstructure:"keys"`

	// Rotation of the x tick labels in degrees, counterclockwise.
	Rotation float64 `mapstructure:"rotation"`

	// Optional annotations; empty strings are not drawn.
	Title  string `mapstructure:"title"`
	XLabel string `mapstructure:"xlabel"`
	YLabel string `mapstructure:"ylabel"`

	// Filename of the image. The extension selects the format
	// (png, svg, pdf, eps, jpg, tif). Default image.png.
	Filename string `mapstructure:"filename"`

	// Show opens the saved image in the system viewer.
	Show bool `mapstructure:"show"`
}

// DefaultOptions returns the options with all defaults set.
func DefaultOptions() Options {
	return Options{
		NumStacks: DefaultNumStacks,
		Filename:  DefaultFilename,
	}
}

// ApplyDefaults sets unset (zero) fields to their defaults.
func (o *Options) ApplyDefaults() {
	if o.NumStacks == 0 {
		o.NumStacks = DefaultNumStacks
	}
	if o.Filename == "" {
		o.Filename = DefaultFilename
	}
}

// Validate checks o after defaults have been applied.
func (o Options) Validate() error {
	if o.Keys == nil && o.NumStacks < 2 {
		return ewrap.Wrapf(ErrInvalidStackCount, "got %d", o.NumStacks)
	}
	if o.NumStacks < 1 {
		return ewrap.Wrapf(ErrInvalidStackCount, "got %d", o.NumStacks)
	}
	if o.Keys != nil && len(o.Keys) == 0 {
		return ErrNoKeys
	}
	return nil
}
