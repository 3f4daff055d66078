// Package testutil provides shared test infrastructure for the medband
// simulation packages: a recording canvas, a deterministic simulation table
// and float assertions.
package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/medband-sim/medband-sim/sim/canvas"
)

// Series is one recorded Plot call.
type Series struct {
	X, Y  []float64
	Style canvas.Style
}

// Note is one recorded Text call.
type Note struct {
	FX, FY float64
	Text   string
	Style  canvas.TextStyle
}

// RecordedAxes captures everything drawn on a panel.
type RecordedAxes struct {
	Index             int
	Share             *RecordedAxes
	Series            []Series
	Notes             []Note
	XLabel, YLabel    string
	YTickLabelsHidden bool
}

// Recorder is a canvas.Canvas that records calls instead of drawing.
type Recorder struct {
	Rows, Cols int
	Panels     map[int]*RecordedAxes
	Current    *RecordedAxes
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{Panels: make(map[int]*RecordedAxes)}
}

// Subplot implements canvas.Canvas.
func (r *Recorder) Subplot(nrows, ncols, index int, share canvas.Axes) (canvas.Axes, error) {
	if index < 1 || index > nrows*ncols {
		return nil, fmt.Errorf("%w: index %d in %dx%d grid", canvas.ErrBadSubplot, index, nrows, ncols)
	}
	r.Rows, r.Cols = nrows, ncols
	ax, ok := r.Panels[index]
	if !ok {
		ax = &RecordedAxes{Index: index}
		r.Panels[index] = ax
	}
	if share != nil {
		sa, ok := share.(*RecordedAxes)
		if !ok {
			return nil, canvas.ErrForeignAxes
		}
		ax.Share = sa
	}
	r.Current = ax
	return ax, nil
}

// CurrentAxes implements canvas.Canvas.
func (r *Recorder) CurrentAxes() canvas.Axes {
	if r.Current == nil {
		ax, _ := r.Subplot(1, 1, 1, nil)
		return ax
	}
	return r.Current
}

// Plot implements canvas.Axes.
func (a *RecordedAxes) Plot(xs, ys []float64, style canvas.Style) error {
	a.Series = append(a.Series, Series{
		X:     append([]float64(nil), xs...),
		Y:     append([]float64(nil), ys...),
		Style: style,
	})
	return nil
}

// Text implements canvas.Axes.
func (a *RecordedAxes) Text(fx, fy float64, s string, style canvas.TextStyle) {
	a.Notes = append(a.Notes, Note{FX: fx, FY: fy, Text: s, Style: style})
}

// SetXLabel implements canvas.Axes.
func (a *RecordedAxes) SetXLabel(label string) { a.XLabel = label }

// SetYLabel implements canvas.Axes.
func (a *RecordedAxes) SetYLabel(label string) { a.YLabel = label }

// HideYTickLabels implements canvas.Axes.
func (a *RecordedAxes) HideYTickLabels() { a.YTickLabelsHidden = true }

// NoteTexts returns the text of every note on the panel, in order.
func (a *RecordedAxes) NoteTexts() []string {
	out := make([]string, len(a.Notes))
	for i, n := range a.Notes {
		out[i] = n.Text
	}
	return out
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
