package sim_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medband-sim/medband-sim/sim"
	"github.com/medband-sim/medband-sim/sim/internal/testutil"
)

func TestNewTable_ShapeAndRowMajorLayout(t *testing.T) {
	// GIVEN the index table, whose values encode their own indices
	tbl := testutil.IndexTable(t)

	// THEN the shape follows [lumipar, colorlaw, colorpar, z, band, trest]
	assert.Equal(t, [6]int{3, 1, 3, 3, 3, 3}, tbl.Shape())

	// AND every element is found at its encoded position
	for l := 0; l < 3; l++ {
		for c := 0; c < 3; c++ {
			for iz := 0; iz < 3; iz++ {
				for b := 0; b < 3; b++ {
					for a := 0; a < 3; a++ {
						want := testutil.IndexValue(l, 0, c, iz, b, a)
						if got := tbl.At(l, 0, c, iz, b, a); got != want {
							t.Fatalf("At(%d,0,%d,%d,%d,%d) = %v, want %v", l, c, iz, b, a, got, want)
						}
					}
				}
			}
		}
	}
}

func TestNewTable_RejectsInconsistentInput(t *testing.T) {
	one := []float64{0}
	tests := []struct {
		name   string
		bands  []byte
		z      []float64
		matrix []float64
	}{
		{"no bands", nil, one, one},
		{"empty redshift axis", []byte("O"), nil, nil},
		{"NaN redshift", []byte("O"), []float64{math.NaN()}, one},
		{"infinite redshift", []byte("O"), []float64{math.Inf(1)}, one},
		{"matrix too short", []byte("OJ"), one, one},
		{"matrix too long", []byte("O"), one, []float64{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sim.NewTable("bad", tt.bands, one, one, one, tt.z, one, tt.matrix)
			if !errors.Is(err, sim.ErrInvalidTable) {
				t.Errorf("err = %v, want ErrInvalidTable", err)
			}
		})
	}
}

func TestTable_At_OutOfRangePanics(t *testing.T) {
	tbl := testutil.IndexTable(t)
	assert.Panics(t, func() { tbl.At(0, 1, 0, 0, 0, 0) })
	assert.Panics(t, func() { tbl.At(0, 0, 0, -1, 0, 0) })
}

func TestTable_BandIndex(t *testing.T) {
	tbl := testutil.IndexTable(t)

	i, err := tbl.BandIndex('J')
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = tbl.BandIndex('H')
	assert.ErrorIs(t, err, sim.ErrUnknownBand)
}

func TestTable_RedshiftSlice_ReturnsCopyAlongZ(t *testing.T) {
	tbl := testutil.IndexTable(t)
	got := tbl.RedshiftSlice(1, 0, 2, 1, 0)
	want := []float64{
		testutil.IndexValue(1, 0, 2, 0, 1, 0),
		testutil.IndexValue(1, 0, 2, 1, 1, 0),
		testutil.IndexValue(1, 0, 2, 2, 1, 0),
	}
	assert.Equal(t, want, got)

	got[0] = -1
	assert.Equal(t, want[0], tbl.At(1, 0, 2, 0, 1, 0), "slice must not alias the matrix")
}

func TestTable_Values(t *testing.T) {
	tbl := testutil.IndexTable(t)
	assert.Equal(t, []float64{0, 0.5, 1}, tbl.Values(sim.AxisRedshift))
	assert.Equal(t, []float64{3.1}, tbl.Values(sim.AxisColorLaw))
	assert.Nil(t, tbl.Values(sim.AxisBand))
}

func TestAxis_String(t *testing.T) {
	assert.Equal(t, "REDSHIFT", sim.AxisRedshift.String())
	assert.Equal(t, "TREST", sim.AxisTRest.String())
	assert.Equal(t, "Axis(42)", sim.Axis(42).String())
}

func TestNearestIndex(t *testing.T) {
	grid := []float64{-5, -3, -1, 1, 3, 5}
	tests := []struct {
		name   string
		target float64
		want   int
	}{
		{"far below snaps to first", -100, 0},
		{"far above snaps to last", 100, 5},
		{"exact interior point", 3, 4},
		{"closer to upper neighbor", -1.9, 2},
		{"tie picks lowest index", 0, 2},
		{"tie between -5 and -3", -4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sim.NearestIndex(grid, tt.target))
		})
	}
}

func TestNearestIndex_Idempotent(t *testing.T) {
	// GIVEN any grid and target
	grid := []float64{-2, -0.5, 0.25, 0.3, 4}
	for _, target := range []float64{-10, -1, 0, 0.27, 0.3, 2, 10} {
		// WHEN the nearest grid value is looked up again
		i := sim.NearestIndex(grid, target)
		j := sim.NearestIndex(grid, grid[i])

		// THEN it resolves to the same index
		assert.Equal(t, i, j, "target %v", target)
	}
}

func TestNearestIndex_EmptyGrid(t *testing.T) {
	assert.Equal(t, -1, sim.NearestIndex(nil, 1))
}

func TestNearestIndex_DoesNotModifyGrid(t *testing.T) {
	grid := []float64{1, 2, 3}
	sim.NearestIndex(grid, 2.2)
	assert.Equal(t, []float64{1, 2, 3}, grid)
}

func TestTable_Nearest_UsesAxisGrid(t *testing.T) {
	tbl := testutil.IndexTable(t)
	assert.Equal(t, 1, tbl.Nearest(sim.AxisLumiPar, 0.4))
	assert.Equal(t, 2, tbl.Nearest(sim.AxisColorPar, 3))
	assert.Equal(t, 0, tbl.Nearest(sim.AxisTRest, -50))
}
