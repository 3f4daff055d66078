package diagnostic

import (
	"gonum.org/v1/plot/vg"

	"github.com/medband-sim/medband-sim/sim"
	"github.com/medband-sim/medband-sim/sim/canvas"
)

const circleLineWidth = 2 // points

// Fixed holds the parameter values a circle diagram is cut at. They snap to
// the nearest grid points, so out-of-range values use the grid edge.
type Fixed struct {
	X1  float64
	C   float64
	Age float64
}

// PlotGridCircle draws color1 against color2 (each "<medium>-<broad>") over
// the full redshift grid as a connected trajectory on the current axes. Each
// segment from point iz to iz+1 is colored by the redshift rank of iz.
func PlotGridCircle(c canvas.Canvas, t *sim.Table, color1, color2 string, at Fixed) error {
	col1, err := sim.ParseColor(color1)
	if err != nil {
		return err
	}
	iM1, iB1, err := t.ResolveColor(col1)
	if err != nil {
		return err
	}
	col2, err := sim.ParseColor(color2)
	if err != nil {
		return err
	}
	iM2, iB2, err := t.ResolveColor(col2)
	if err != nil {
		return err
	}

	s := t.Fixed(at.X1, at.C, at.Age)
	c1 := t.ColorVsRedshift(s, iM1, iB1)
	c2 := t.ColorVsRedshift(s, iM2, iB2)

	scale := canvas.NewScale()
	ax := c.CurrentAxes()
	nz := len(t.Z)
	for iz := 0; iz < nz; iz++ {
		end := min(iz+2, nz)
		err := ax.Plot(c1[iz:end], c2[iz:end], canvas.Style{
			Color:     scale.Rank(iz, nz),
			Marker:    canvas.MarkerNone,
			Line:      true,
			LineWidth: vg.Points(circleLineWidth),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
