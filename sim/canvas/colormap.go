package canvas

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// Scale maps the unit interval onto a continuous blue-to-red color map.
type Scale struct {
	cm palette.ColorMap
}

// NewScale returns the scale used for parameter-rank coloring.
func NewScale() Scale {
	cm := moreland.SmoothBlueRed()
	cm.SetMax(1)
	cm.SetMin(0)
	return Scale{cm: cm}
}

// At returns the color for v, clamped to [0, 1].
func (s Scale) At(v float64) color.Color {
	if v < 0 || math.IsNaN(v) {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	c, err := s.cm.At(v)
	if err != nil {
		return color.Black
	}
	return c
}

// Rank returns the color of element k out of n, so that the first element
// maps to one end of the scale and the last to the other.
func (s Scale) Rank(k, n int) color.Color {
	if n <= 1 {
		return s.At(0)
	}
	return s.At(float64(k) / float64(n-1))
}
