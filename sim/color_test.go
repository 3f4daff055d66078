package sim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medband-sim/medband-sim/sim"
	"github.com/medband-sim/medband-sim/sim/internal/testutil"
)

func TestParseColor_Valid(t *testing.T) {
	c, err := sim.ParseColor("O-J")
	require.NoError(t, err)
	assert.Equal(t, sim.Color{Medium: 'O', Broad: 'J'}, c)
	assert.Equal(t, "O-J", c.String())
}

func TestParseColor_Malformed(t *testing.T) {
	for _, spec := range []string{"", "OJ", "O-J-H", "OP-J", "O-", "-J", "O--J"} {
		t.Run(spec, func(t *testing.T) {
			_, err := sim.ParseColor(spec)
			assert.ErrorIs(t, err, sim.ErrMalformedColor)
		})
	}
}

func TestColor_Label(t *testing.T) {
	label, err := sim.Color{Medium: 'O', Broad: 'J'}.Label()
	require.NoError(t, err)
	assert.Equal(t, "F127M-F125W", label)

	_, err = sim.Color{Medium: 'L', Broad: 'J'}.Label()
	assert.ErrorIs(t, err, sim.ErrUnknownFilter)
}

func TestPseudoColor_Antisymmetric(t *testing.T) {
	// GIVEN two magnitude vectors
	a := []float64{21.5, 22.0, 23.25}
	b := []float64{21.0, 22.5, 23.0}

	// WHEN the pseudo-color is taken in both orders
	ab := sim.PseudoColor(a, b)
	ba := sim.PseudoColor(b, a)

	// THEN the results are negatives of each other
	assert.Equal(t, []float64{0.5, -0.5, 0.25}, ab)
	for i := range ab {
		assert.Equal(t, -ab[i], ba[i])
	}
	// AND a color of a band with itself is zero
	assert.Equal(t, []float64{0, 0, 0}, sim.PseudoColor(a, a))
}

func TestPseudoColor_LengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { sim.PseudoColor([]float64{1, 2}, []float64{1}) })
}

func TestTable_Fixed_SnapsAndPinsColorLaw(t *testing.T) {
	tbl := testutil.IndexTable(t)
	assert.Equal(t, sim.Slice{LumiPar: 1, ColorLaw: 0, ColorPar: 1, TRest: 1}, tbl.Fixed(0, 0, 0))
	assert.Equal(t, sim.Slice{LumiPar: 2, ColorLaw: 0, ColorPar: 2, TRest: 0}, tbl.Fixed(9, 9, -9))
}

func TestTable_ColorVsRedshift(t *testing.T) {
	// GIVEN bands X (index 0) and J (index 2)
	tbl := testutil.IndexTable(t)
	s := tbl.Fixed(0, 0, 0)

	// WHEN the J-X color is taken along z
	got := tbl.ColorVsRedshift(s, 2, 0)

	// THEN every entry is the band offset of the index encoding
	assert.Equal(t, []float64{20000, 20000, 20000}, got)
}

func TestTable_ResolveColor(t *testing.T) {
	tbl := testutil.IndexTable(t)

	iMed, iBroad, err := tbl.ResolveColor(sim.Color{Medium: 'O', Broad: 'J'})
	require.NoError(t, err)
	assert.Equal(t, 1, iMed)
	assert.Equal(t, 2, iBroad)

	_, _, err = tbl.ResolveColor(sim.Color{Medium: 'Q', Broad: 'J'})
	assert.ErrorIs(t, err, sim.ErrUnknownBand)
}
