// Package canvas defines the drawing surfaces the diagnostic plotters draw on
// and a gonum/plot implementation of them.
//
// Plotters never reach for global figure state: they receive a Canvas and
// ask it for subplots or for the current axes. Figure renders the result to
// PNG, SVG or PDF; tests substitute a recording Canvas.
package canvas

import (
	"errors"
	"image/color"

	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

var (
	// ErrBadSubplot is returned for subplot positions outside the grid or a
	// grid geometry that differs from the figure's.
	ErrBadSubplot = errors.New("bad subplot")
	// ErrForeignAxes is returned when a share target does not belong to the canvas.
	ErrForeignAxes = errors.New("axes belong to another canvas")
)

// Marker selects the glyph drawn at each data point.
type Marker int

const (
	MarkerNone Marker = iota
	MarkerCircle
)

// Style controls how a data series is drawn.
type Style struct {
	Color     color.Color
	Marker    Marker
	Line      bool // connect consecutive points
	LineWidth vg.Length
}

// TextStyle controls an axes-relative annotation.
type TextStyle struct {
	Color  color.Color
	XAlign text.XAlignment
	YAlign text.YAlignment
}

// Axes is a single panel.
type Axes interface {
	// Plot adds one series.
	Plot(xs, ys []float64, style Style) error
	// Text places s at (fx, fy) in axes coordinates, where (0,0) is the lower
	// left and (1,1) the upper right corner of the data area.
	Text(fx, fy float64, s string, style TextStyle)
	SetXLabel(label string)
	SetYLabel(label string)
	// HideYTickLabels keeps the y ticks but drops their labels.
	HideYTickLabels()
}

// Canvas is a page of panels laid out on a grid.
type Canvas interface {
	// Subplot returns the panel at the 1-based index of an nrows x ncols grid,
	// creating it if needed. A non-nil share makes the new panel use the same
	// x and y limits as share. The returned panel becomes current.
	Subplot(nrows, ncols, index int, share Axes) (Axes, error)
	// CurrentAxes returns the most recently used panel, creating a single
	// full-page panel if there is none.
	CurrentAxes() Axes
}
