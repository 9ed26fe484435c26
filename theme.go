package dotplot

import "math"

// Theme contains the cosmetic constants of a dotplot. Font sizes are
// divided by the number of stacks, dot area by the number of keys.
type Theme struct {
	Width, Height float64 // figure size in inches

	PointArea float64 // total dot area in pt²

	TickFont, TitleFont, LabelFont float64

	Headroom float64 // y range is [0, Headroom*highest stack]

	Color string // see ParseColor
	Shape string // see ParseShape
}

var DefaultTheme = Theme{
	Width:     15,
	Height:    7,
	PointArea: 4000,
	TickFont:  200,
	TitleFont: 220,
	LabelFont: 180,
	Headroom:  1.1,
	Color:     "#1f77b4",
	Shape:     "circle",
}

// PointRadius is the dot radius in points if nkeys stacks are drawn.
// The dot area is inversely proportional to nkeys.
func (t Theme) PointRadius(nkeys int) float64 {
	if nkeys < 1 {
		nkeys = 1
	}
	return math.Sqrt(t.PointArea/float64(nkeys)) / 2
}

// FontSize scales size (one of TickFont, TitleFont or LabelFont) by the
// number of stacks.
func (t Theme) FontSize(size float64, numStacks int) float64 {
	if numStacks < 1 {
		numStacks = 1
	}
	return size / float64(numStacks)
}
