package sim

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ErrMalformedColor is returned for color specs not of the form "<medium>-<broad>".
var ErrMalformedColor = errors.New("malformed color spec")

// Color is a medium/broad band pair whose difference is a pseudo-color.
type Color struct {
	Medium byte
	Broad  byte
}

// ParseColor parses a spec such as "O-J" into its two band codes.
// The spec must contain exactly one '-' between two single-character codes.
func ParseColor(spec string) (Color, error) {
	parts := strings.Split(spec, "-")
	if len(parts) != 2 {
		return Color{}, fmt.Errorf("%w: %q needs exactly one '-'", ErrMalformedColor, spec)
	}
	if len(parts[0]) != 1 || len(parts[1]) != 1 {
		return Color{}, fmt.Errorf("%w: %q needs single-character band codes", ErrMalformedColor, spec)
	}
	return Color{Medium: parts[0][0], Broad: parts[1][0]}, nil
}

func (c Color) String() string {
	return string([]byte{c.Medium, '-', c.Broad})
}

// Label returns the filter-name form of the color, e.g. "F127M-F125W".
func (c Color) Label() (string, error) {
	med, err := FilterName(c.Medium)
	if err != nil {
		return "", err
	}
	broad, err := FilterName(c.Broad)
	if err != nil {
		return "", err
	}
	return med + "-" + broad, nil
}

// PseudoColor returns medium - broad element-wise. It panics if the slices
// differ in length.
func PseudoColor(medium, broad []float64) []float64 {
	return floats.SubTo(make([]float64, len(medium)), medium, broad)
}

// Slice holds the fixed non-redshift indices used to cut a Table along z.
type Slice struct {
	LumiPar  int
	ColorLaw int
	ColorPar int
	TRest    int
}

// Fixed snaps physical parameter values to the nearest grid indices.
// The color-law index is always 0.
func (t *Table) Fixed(x1, c, age float64) Slice {
	return Slice{
		LumiPar:  t.Nearest(AxisLumiPar, x1),
		ColorPar: t.Nearest(AxisColorPar, c),
		TRest:    t.Nearest(AxisTRest, age),
	}
}

// ColorVsRedshift returns the pseudo-color of bands iMed and iBroad across
// the full redshift grid at the given slice.
func (t *Table) ColorVsRedshift(s Slice, iMed, iBroad int) []float64 {
	m := t.RedshiftSlice(s.LumiPar, s.ColorLaw, s.ColorPar, iMed, s.TRest)
	b := t.RedshiftSlice(s.LumiPar, s.ColorLaw, s.ColorPar, iBroad, s.TRest)
	return PseudoColor(m, b)
}

// ResolveColor returns the band indices of c in the table.
func (t *Table) ResolveColor(c Color) (iMed, iBroad int, err error) {
	if iBroad, err = t.BandIndex(c.Broad); err != nil {
		return -1, -1, err
	}
	if iMed, err = t.BandIndex(c.Medium); err != nil {
		return -1, -1, err
	}
	return iMed, iBroad, nil
}
