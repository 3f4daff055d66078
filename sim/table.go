package sim

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrUnknownBand is returned when a band code is not one of the table's bands.
	ErrUnknownBand = errors.New("band not in simulation table")
	// ErrInvalidTable is returned by NewTable for inconsistent axes or matrix sizes.
	ErrInvalidTable = errors.New("invalid simulation table")
)

// Axis identifies one of the six LCMatrix dimensions.
type Axis int

const (
	AxisLumiPar Axis = iota
	AxisColorLaw
	AxisColorPar
	AxisRedshift
	AxisBand
	AxisTRest
	numAxes
)

var axisNames = [numAxes]string{"LUMIPAR", "COLORLAW", "COLORPAR", "REDSHIFT", "BANDS", "TREST"}

func (a Axis) String() string {
	if a < 0 || a >= numAxes {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return axisNames[a]
}

// Table is a simulated light-curve grid as produced by the external simulator.
// LCMatrix is stored flat in row-major order over
// [lumipar, colorlaw, colorpar, z, band, trest].
// A Table is read-only once built and must come from NewTable.
type Table struct {
	Name     string
	Bands    []byte
	Z        []float64
	LumiPar  []float64
	ColorLaw []float64
	ColorPar []float64
	TRest    []float64
	LCMatrix []float64

	strides [numAxes]int
}

// NewTable validates the axes and matrix size and returns a ready Table.
// Every numeric axis must be non-empty and finite, and the matrix must hold
// exactly one value per grid point.
func NewTable(name string, bands []byte, lumiPar, colorLaw, colorPar, z, tRest, lcMatrix []float64) (*Table, error) {
	t := &Table{
		Name:     name,
		Bands:    bands,
		Z:        z,
		LumiPar:  lumiPar,
		ColorLaw: colorLaw,
		ColorPar: colorPar,
		TRest:    tRest,
		LCMatrix: lcMatrix,
	}
	if len(bands) == 0 {
		return nil, fmt.Errorf("%w: no bands", ErrInvalidTable)
	}
	for _, ax := range []Axis{AxisLumiPar, AxisColorLaw, AxisColorPar, AxisRedshift, AxisTRest} {
		vals := t.Values(ax)
		if len(vals) == 0 {
			return nil, fmt.Errorf("%w: %s axis is empty", ErrInvalidTable, ax)
		}
		for i, v := range vals {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: %s[%d] is not finite", ErrInvalidTable, ax, i)
			}
		}
	}
	shape := t.Shape()
	want := 1
	for _, n := range shape {
		want *= n
	}
	if len(lcMatrix) != want {
		return nil, fmt.Errorf("%w: LCMATRIX has %d values, shape %v needs %d",
			ErrInvalidTable, len(lcMatrix), shape, want)
	}
	stride := 1
	for ax := numAxes - 1; ax >= 0; ax-- {
		t.strides[ax] = stride
		stride *= shape[ax]
	}
	return t, nil
}

// Values returns the grid values of a numeric axis, or nil for AxisBand.
func (t *Table) Values(a Axis) []float64 {
	switch a {
	case AxisLumiPar:
		return t.LumiPar
	case AxisColorLaw:
		return t.ColorLaw
	case AxisColorPar:
		return t.ColorPar
	case AxisRedshift:
		return t.Z
	case AxisTRest:
		return t.TRest
	}
	return nil
}

// Shape returns the LCMatrix dimensions.
func (t *Table) Shape() [6]int {
	return [6]int{len(t.LumiPar), len(t.ColorLaw), len(t.ColorPar), len(t.Z), len(t.Bands), len(t.TRest)}
}

// BandIndex returns the position of band in Bands.
func (t *Table) BandIndex(band byte) (int, error) {
	i := bytes.IndexByte(t.Bands, band)
	if i < 0 {
		return -1, fmt.Errorf("%w: %q (bands %q)", ErrUnknownBand, band, t.Bands)
	}
	return i, nil
}

// At returns a single LCMatrix value. It panics on out-of-range indices,
// like a slice access.
func (t *Table) At(iLumi, iLaw, iColor, iz, iBand, iAge int) float64 {
	idx := [numAxes]int{iLumi, iLaw, iColor, iz, iBand, iAge}
	shape := t.Shape()
	off := 0
	for ax, i := range idx {
		if i < 0 || i >= shape[ax] {
			panic(fmt.Sprintf("sim: %s index %d out of range [0,%d)", Axis(ax), i, shape[ax]))
		}
		off += i * t.strides[ax]
	}
	return t.LCMatrix[off]
}

// RedshiftSlice returns a copy of the values along the redshift axis at fixed
// values of the other five indices.
func (t *Table) RedshiftSlice(iLumi, iLaw, iColor, iBand, iAge int) []float64 {
	out := make([]float64, len(t.Z))
	for iz := range out {
		out[iz] = t.At(iLumi, iLaw, iColor, iz, iBand, iAge)
	}
	return out
}

// Nearest returns the index of the grid point on axis a closest to target.
func (t *Table) Nearest(a Axis, target float64) int {
	return NearestIndex(t.Values(a), target)
}

// NearestIndex returns the index minimizing |grid[i] - target|. Ties go to
// the lowest index. Values outside the grid snap to the nearest end.
// It returns -1 for an empty grid.
func NearestIndex(grid []float64, target float64) int {
	if len(grid) == 0 {
		return -1
	}
	diff := make([]float64, len(grid))
	copy(diff, grid)
	floats.AddConst(-target, diff)
	for i, d := range diff {
		diff[i] = math.Abs(d)
	}
	return floats.MinIdx(diff)
}
