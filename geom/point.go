package geom

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/dotplot"
)

// Dots draws the dots of a dotplot, one glyph per point, all in the
// same style.
type Dots struct {
	plotter.XYs
	Style draw.GlyphStyle
}

var (
	_ plot.Plotter    = (*Dots)(nil)
	_ plot.DataRanger = (*Dots)(nil)
	_ plot.GlyphBoxer = (*Dots)(nil)
)

// NewDots converts points to plotter coordinates.
func NewDots(points []dotplot.Point, style draw.GlyphStyle) *Dots {
	xys := make(plotter.XYs, len(points))
	for i, p := range points {
		xys[i].X = p.X
		xys[i].Y = float64(p.Y)
	}
	return &Dots{XYs: xys, Style: style}
}

// Plot implements plot.Plotter.
func (d *Dots) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, p := range d.XYs {
		c.DrawGlyph(d.Style, vg.Point{X: trX(p.X), Y: trY(p.Y)})
	}
}

// DataRange implements plot.DataRanger. The y range always starts at 0,
// the ground of the stacks.
func (d *Dots) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax, _, ymax = plotter.XYRange(d.XYs)
	return xmin, xmax, 0, ymax
}

// GlyphBoxes implements plot.GlyphBoxer.
func (d *Dots) GlyphBoxes(plt *plot.Plot) []plot.GlyphBox {
	r := d.Style.Radius
	bs := make([]plot.GlyphBox, len(d.XYs))
	for i, p := range d.XYs {
		bs[i].X = plt.X.Norm(p.X)
		bs[i].Y = plt.Y.Norm(p.Y)
		bs[i].Rectangle = vg.Rectangle{
			Min: vg.Point{X: -r, Y: -r},
			Max: vg.Point{X: +r, Y: +r},
		}
	}
	return bs
}

// Glyph returns the glyph drawer for shape.
func Glyph(shape dotplot.PointShape) draw.GlyphDrawer {
	switch shape {
	case dotplot.RingPoint:
		return draw.RingGlyph{}
	case dotplot.SquarePoint:
		return draw.SquareGlyph{}
	case dotplot.BoxPoint:
		return draw.BoxGlyph{}
	case dotplot.TrianglePoint:
		return draw.TriangleGlyph{}
	case dotplot.PyramidPoint:
		return draw.PyramidGlyph{}
	case dotplot.PlusPoint:
		return draw.PlusGlyph{}
	case dotplot.CrossPoint:
		return draw.CrossGlyph{}
	}
	return draw.CircleGlyph{}
}
