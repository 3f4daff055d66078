// Package diagnostic renders medium-band diagnostics from a simulated grid:
// pseudo-color vs redshift panels and color-color circle trajectories.
package diagnostic

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot/text"

	"github.com/medband-sim/medband-sim/sim"
	"github.com/medband-sim/medband-sim/sim/canvas"
)

// ErrBandPairMismatch is returned when medium and broad band lists differ in length.
var ErrBandPairMismatch = errors.New("medium and broad band lists differ in length")

const gridzCols = 3

// sweep describes one panel of a PlotGridZ row: which axis varies and the
// labels annotating it.
type sweep struct {
	axis  sim.Axis
	name  string // range label prefix
	fixed string // label for the parameters held at zero
}

var gridzSweeps = [gridzCols]sweep{
	{axis: sim.AxisLumiPar, name: "x1", fixed: "c=0,age=0"},
	{axis: sim.AxisColorPar, name: "c", fixed: "x1=0,age=0"},
	{axis: sim.AxisTRest, name: "age", fixed: "x1=0,c=0"},
}

// PlotGridZ draws medium-broad pseudo-colors against redshift. Each
// (medbands[i], broadbands[i]) pair gets one row of three panels that vary
// stretch, color and phase in turn while the other two are held at the grid
// point nearest zero. Panels 2 and 3 share limits with panel 1.
func PlotGridZ(c canvas.Canvas, t *sim.Table, medbands, broadbands string) error {
	if len(medbands) != len(broadbands) {
		return fmt.Errorf("%w: %q vs %q", ErrBandPairMismatch, medbands, broadbands)
	}
	scale := canvas.NewScale()
	nrows := len(broadbands)
	zero := t.Fixed(0, 0, 0)

	for irow := 0; irow < nrows; irow++ {
		col := sim.Color{Medium: medbands[irow], Broad: broadbands[irow]}
		label, err := col.Label()
		if err != nil {
			return err
		}
		iM, iB, err := t.ResolveColor(col)
		if err != nil {
			return err
		}

		var panels [gridzCols]canvas.Axes
		for k := range panels {
			var share canvas.Axes
			if k > 0 {
				share = panels[0]
			}
			if panels[k], err = c.Subplot(nrows, gridzCols, 1+k+irow*gridzCols, share); err != nil {
				return err
			}
		}

		for k, sw := range gridzSweeps {
			grid := t.Values(sw.axis)
			for rank, v := range grid {
				s := zero
				idx := t.Nearest(sw.axis, v)
				switch sw.axis {
				case sim.AxisLumiPar:
					s.LumiPar = idx
				case sim.AxisColorPar:
					s.ColorPar = idx
				case sim.AxisTRest:
					s.TRest = idx
				}
				err := panels[k].Plot(t.Z, t.ColorVsRedshift(s, iM, iB), canvas.Style{
					Color:  scale.Rank(rank, len(grid)),
					Marker: canvas.MarkerCircle,
				})
				if err != nil {
					return err
				}
			}
			if irow == 0 {
				annotateSweep(panels[k], sw, grid, scale)
			}
			if irow == nrows-1 {
				panels[k].SetXLabel("redshift")
			}
		}
		panels[0].SetYLabel(label)
		panels[1].HideYTickLabels()
	}
	return nil
}

func annotateSweep(ax canvas.Axes, sw sweep, grid []float64, scale canvas.Scale) {
	ax.Text(0.15, 0.05, fmt.Sprintf("%s : %.1f", sw.name, grid[0]), canvas.TextStyle{Color: scale.At(0), XAlign: text.XLeft})
	ax.Text(0.4, 0.05, fmt.Sprintf(".. %.1f", grid[len(grid)-1]), canvas.TextStyle{Color: scale.At(1), XAlign: text.XLeft})
	ax.Text(0.05, 0.95, sw.fixed, canvas.TextStyle{
		Color:  color.Black,
		XAlign: text.XLeft,
		YAlign: text.YTop,
	})
}
