// Package geom draws dotplots with gonum/plot.
package geom

import (
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/hyp3rd/ewrap"
	"github.com/rs/zerolog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	// Image formats for Save.
	_ "gonum.org/v1/plot/vg/vgeps"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"

	"github.com/vdobler/dotplot"
)

// Renderer turns a computed layout into an image file.
type Renderer struct {
	Theme  dotplot.Theme
	Logger zerolog.Logger

	// open displays a saved file; nil disables Show.
	open func(file string) error
}

// NewRenderer returns a renderer using the DefaultTheme.
func NewRenderer(logger zerolog.Logger) *Renderer {
	return &Renderer{
		Theme:  dotplot.DefaultTheme,
		Logger: logger,
		open:   openFile,
	}
}

// Draw computes the layout of data and saves the dotplot to
// opts.Filename. Nothing is written if data or opts are invalid.
func Draw(data dotplot.Dataset, opts dotplot.Options) error {
	layout, err := dotplot.Compute(data, opts)
	if err != nil {
		return err
	}
	return NewRenderer(zerolog.Nop()).Render(layout)
}

// Plot sets up the gonum plot for l without drawing it.
func (r *Renderer) Plot(l *dotplot.Layout) (*plot.Plot, error) {
	col, err := dotplot.ParseColor(r.Theme.Color)
	if err != nil {
		return nil, err
	}
	shape, err := dotplot.ParseShape(r.Theme.Shape)
	if err != nil {
		return nil, err
	}
	opts := l.Options
	fontSize := func(size float64) vg.Length {
		return vg.Points(r.Theme.FontSize(size, opts.NumStacks))
	}

	p := plot.New()
	p.Add(NewDots(l.Points, draw.GlyphStyle{
		Color:  col,
		Radius: vg.Points(r.Theme.PointRadius(len(l.Keys))),
		Shape:  Glyph(shape),
	}))

	// x axis: one tick per stack.
	ticks := make([]plot.Tick, len(l.X.Breaks))
	for i, x := range l.X.Breaks {
		ticks[i] = plot.Tick{Value: x, Label: l.X.Labels[i]}
	}
	p.X.Min, p.X.Max = l.X.Min, l.X.Max
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Tick.Label.Font.Size = fontSize(r.Theme.TickFont)
	if opts.Rotation != 0 {
		p.X.Tick.Label.Rotation = opts.Rotation * math.Pi / 180
		p.X.Tick.Label.XAlign = draw.XRight
	}

	// y axis: stack heights carry no information.
	p.Y.Min, p.Y.Max = 0, r.Theme.Headroom*float64(l.MaxHeight())
	if opts.YLabel != "" {
		p.Y.Label.Text = opts.YLabel
		p.Y.Label.TextStyle.Font.Size = fontSize(r.Theme.LabelFont)
		p.Y.Tick.Marker = plot.ConstantTicks(nil)
		p.Y.Tick.Length = 0
		p.Y.Width = 0
	} else {
		p.HideY()
	}

	if opts.Title != "" {
		p.Title.Text = opts.Title
		p.Title.TextStyle.Font.Size = fontSize(r.Theme.TitleFont)
	}
	if opts.XLabel != "" {
		p.X.Label.Text = opts.XLabel
		p.X.Label.TextStyle.Font.Size = fontSize(r.Theme.LabelFont)
	}

	return p, nil
}

// Render draws l and saves it to l.Options.Filename. The file format is
// determined by the extension. If Show is set the file is opened in the
// system viewer afterwards.
func (r *Renderer) Render(l *dotplot.Layout) error {
	p, err := r.Plot(l)
	if err != nil {
		return err
	}

	file := l.Options.Filename
	w := vg.Length(r.Theme.Width) * vg.Inch
	h := vg.Length(r.Theme.Height) * vg.Inch
	if err := save(p, w, h, file); err != nil {
		return err
	}
	r.Logger.Debug().
		Str("file", file).
		Int("stacks", len(l.Keys)).
		Int("points", len(l.Points)).
		Msg("dotplot saved")

	if l.Options.Show && r.open != nil {
		if err := r.open(file); err != nil {
			r.Logger.Warn().Err(err).Str("file", file).Msg("cannot show dotplot")
			return ewrap.Wrapf(err, "show %s", file)
		}
	}
	return nil
}

// save is like plot.Save but renders before the file is created, so an
// unsupported format leaves no empty file behind.
func save(p *plot.Plot, w, h vg.Length, file string) (err error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(file), "."))
	c, err := p.WriterTo(w, h, format)
	if err != nil {
		return ewrap.Wrapf(err, "render %s", file)
	}

	f, err := os.Create(file)
	if err != nil {
		return ewrap.Wrap(err, "create image")
	}
	defer func() {
		if e := f.Close(); err == nil {
			err = e
		}
		if err != nil {
			os.Remove(file)
		}
	}()

	_, err = c.WriteTo(f)
	return err
}

func openFile(file string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", file)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", file)
	default:
		cmd = exec.Command("xdg-open", file)
	}
	return cmd.Start()
}
