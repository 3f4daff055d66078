package canvas

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

const glyphRadius = 2 // points

// Figure is a Canvas backed by gonum/plot. All subplots of a Figure share
// one grid geometry, fixed by the first Subplot call.
type Figure struct {
	rows, cols int
	panels     map[int]*Panel
	current    *Panel
}

// NewFigure returns an empty figure.
func NewFigure() *Figure {
	return &Figure{panels: make(map[int]*Panel)}
}

// Panel is one gonum plot inside a Figure.
type Panel struct {
	fig   *Figure
	plot  *plot.Plot
	share *Panel
	notes []annotation
}

type annotation struct {
	fx, fy float64
	text   string
	style  TextStyle
}

// Subplot implements Canvas.
func (f *Figure) Subplot(nrows, ncols, index int, share Axes) (Axes, error) {
	if nrows < 1 || ncols < 1 || index < 1 || index > nrows*ncols {
		return nil, fmt.Errorf("%w: index %d in %dx%d grid", ErrBadSubplot, index, nrows, ncols)
	}
	if f.rows == 0 {
		f.rows, f.cols = nrows, ncols
	} else if f.rows != nrows || f.cols != ncols {
		return nil, fmt.Errorf("%w: %dx%d grid on a %dx%d figure", ErrBadSubplot, nrows, ncols, f.rows, f.cols)
	}
	var sharePanel *Panel
	if share != nil {
		sp, ok := share.(*Panel)
		if !ok || sp.fig != f {
			return nil, ErrForeignAxes
		}
		sharePanel = sp
	}
	p, ok := f.panels[index]
	if !ok {
		p = &Panel{fig: f, plot: plot.New()}
		f.panels[index] = p
	}
	if sharePanel != nil && sharePanel != p {
		p.share = sharePanel
	}
	f.current = p
	return p, nil
}

// CurrentAxes implements Canvas.
func (f *Figure) CurrentAxes() Axes {
	if f.current == nil {
		ax, _ := f.Subplot(1, 1, 1, nil)
		return ax
	}
	return f.current
}

// Plot implements Axes.
func (p *Panel) Plot(xs, ys []float64, style Style) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("plot: %d x values, %d y values", len(xs), len(ys))
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	if style.Line {
		l, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("plot line: %w", err)
		}
		if style.Color != nil {
			l.LineStyle.Color = style.Color
		}
		if style.LineWidth > 0 {
			l.LineStyle.Width = style.LineWidth
		}
		p.plot.Add(l)
	}
	if style.Marker != MarkerNone {
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("plot scatter: %w", err)
		}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = vg.Points(glyphRadius)
		if style.Color != nil {
			s.GlyphStyle.Color = style.Color
		}
		p.plot.Add(s)
	}
	return nil
}

// Text implements Axes.
func (p *Panel) Text(fx, fy float64, s string, style TextStyle) {
	p.notes = append(p.notes, annotation{fx: fx, fy: fy, text: s, style: style})
}

// SetXLabel implements Axes.
func (p *Panel) SetXLabel(label string) { p.plot.X.Label.Text = label }

// SetYLabel implements Axes.
func (p *Panel) SetYLabel(label string) { p.plot.Y.Label.Text = label }

// HideYTickLabels implements Axes.
func (p *Panel) HideYTickLabels() { p.plot.Y.Tick.Marker = unlabeledTicks{} }

type unlabeledTicks struct{}

func (unlabeledTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		ticks[i].Label = ""
	}
	return ticks
}

func (p *Panel) root() *Panel {
	r := p
	for r.share != nil {
		r = r.share
	}
	return r
}

// shareLimits gives every panel of a share group the union of the group's
// data limits.
func (f *Figure) shareLimits() {
	type limits struct{ xmin, xmax, ymin, ymax float64 }
	groups := make(map[*Panel]*limits)
	for _, p := range f.panels {
		r := p.root()
		l, ok := groups[r]
		if !ok {
			l = &limits{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
			groups[r] = l
		}
		l.xmin = math.Min(l.xmin, p.plot.X.Min)
		l.xmax = math.Max(l.xmax, p.plot.X.Max)
		l.ymin = math.Min(l.ymin, p.plot.Y.Min)
		l.ymax = math.Max(l.ymax, p.plot.Y.Max)
	}
	for _, p := range f.panels {
		l := groups[p.root()]
		p.plot.X.Min, p.plot.X.Max = l.xmin, l.xmax
		p.plot.Y.Min, p.plot.Y.Max = l.ymin, l.ymax
	}
}

// Draw renders every panel onto dc.
func (f *Figure) Draw(dc draw.Canvas) {
	if f.rows == 0 {
		return
	}
	f.shareLimits()
	grid := make([][]*plot.Plot, f.rows)
	for j := range grid {
		grid[j] = make([]*plot.Plot, f.cols)
		for i := range grid[j] {
			if p, ok := f.panels[j*f.cols+i+1]; ok {
				grid[j][i] = p.plot
				continue
			}
			blank := plot.New()
			blank.HideAxes()
			grid[j][i] = blank
		}
	}
	tiles := draw.Tiles{
		Rows:      f.rows,
		Cols:      f.cols,
		PadX:      vg.Millimeter,
		PadY:      vg.Millimeter,
		PadTop:    vg.Points(4),
		PadBottom: vg.Points(4),
		PadLeft:   vg.Points(4),
		PadRight:  vg.Points(4),
	}
	canvases := plot.Align(grid, tiles, dc)
	for j := range grid {
		for i := range grid[j] {
			grid[j][i].Draw(canvases[j][i])
			if p, ok := f.panels[j*f.cols+i+1]; ok {
				p.drawNotes(canvases[j][i])
			}
		}
	}
}

func (p *Panel) drawNotes(c draw.Canvas) {
	if len(p.notes) == 0 {
		return
	}
	da := p.plot.DataCanvas(c)
	for _, n := range p.notes {
		sty := p.plot.X.Tick.Label
		sty.XAlign = n.style.XAlign
		sty.YAlign = n.style.YAlign
		if n.style.Color != nil {
			sty.Color = n.style.Color
		}
		da.FillText(sty, vg.Point{X: da.X(n.fx), Y: da.Y(n.fy)}, n.text)
	}
}

// WriteTo renders the figure in format ("png", "svg" or "pdf") to w.
func (f *Figure) WriteTo(w io.Writer, width, height vg.Length, format string) (int64, error) {
	c, err := newCanvas(width, height, format)
	if err != nil {
		return 0, err
	}
	f.Draw(draw.New(c))
	return c.WriteTo(w)
}

var formats = map[string]bool{"png": true, "svg": true, "pdf": true}

func newCanvas(width, height vg.Length, format string) (vg.CanvasWriterTo, error) {
	switch strings.ToLower(format) {
	case "png":
		return vgimg.PngCanvas{Canvas: vgimg.New(width, height)}, nil
	case "svg":
		return vgsvg.New(width, height), nil
	case "pdf":
		return vgpdf.New(width, height), nil
	}
	return nil, fmt.Errorf("unsupported figure format %q", format)
}

// Save writes the figure to path, choosing the format from its extension.
func (f *Figure) Save(path string, width, height vg.Length) (err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if !formats[strings.ToLower(format)] {
		return fmt.Errorf("unsupported figure format %q", format)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create figure %q: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close figure %q: %w", path, cerr)
		}
	}()
	if _, err = f.WriteTo(out, width, height, format); err != nil {
		return fmt.Errorf("write figure %q: %w", path, err)
	}
	logrus.Debugf("Wrote figure to '%s'", path)
	return nil
}
