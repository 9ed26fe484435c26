package dotplot

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/hyp3rd/ewrap"
)

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.NRGBA{
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray20":  {0x33, 0x33, 0x33, 0xff},
	"gray40":  {0x66, 0x66, 0x66, 0xff},
	"gray":    {0x7f, 0x7f, 0x7f, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},
}

// ParseColor parses "#rrggbb", "#rrggbbaa" or one of the BuiltinColors.
func ParseColor(s string) (color.Color, error) {
	if strings.HasPrefix(s, "#") && (len(s) == 7 || len(s) == 9) {
		var c [4]uint8
		c[3] = 0xff
		for i := 0; 1+2*i < len(s); i++ {
			v, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
			if err != nil {
				return nil, ewrap.Wrapf(ErrInvalidStyle, "color %q", s)
			}
			c[i] = uint8(v)
		}
		return color.NRGBA{c[0], c[1], c[2], c[3]}, nil
	}
	if col, ok := BuiltinColors[s]; ok {
		return col, nil
	}
	return nil, ewrap.Wrapf(ErrInvalidStyle, "color %q", s)
}

// -------------------------------------------------------------------------
// Points

type PointShape int

const (
	CirclePoint PointShape = iota // filled
	RingPoint
	SquarePoint
	BoxPoint // filled
	TrianglePoint
	PyramidPoint // filled
	PlusPoint
	CrossPoint
)

var shapeNames = map[string]PointShape{
	"circle":   CirclePoint,
	"ring":     RingPoint,
	"square":   SquarePoint,
	"box":      BoxPoint,
	"triangle": TrianglePoint,
	"pyramid":  PyramidPoint,
	"plus":     PlusPoint,
	"cross":    CrossPoint,
}

// ParseShape maps a shape name like "circle" or "cross" to a PointShape.
func ParseShape(s string) (PointShape, error) {
	if shape, ok := shapeNames[s]; ok {
		return shape, nil
	}
	return CirclePoint, ewrap.Wrapf(ErrInvalidStyle, "shape %q", s)
}
