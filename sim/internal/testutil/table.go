package testutil

import (
	"testing"

	"github.com/medband-sim/medband-sim/sim"
)

// IndexValue is the value IndexTable stores at each grid point, so any
// slice can be checked by hand.
func IndexValue(iLumi, iLaw, iColor, iz, iBand, iAge int) float64 {
	return float64(iLumi*100 + iLaw*10 + iColor + iz*1000 + iBand*10000 + iAge*100000)
}

// IndexTable builds the 3x1x3x3x3x3 table with bands "XOJ",
// z=[0,0.5,1], LUMIPAR=[-2,0,2], COLORPAR=[-0.2,0,0.5], TREST=[-5,0,5]
// and LCMATRIX filled by IndexValue.
func IndexTable(t testing.TB) *sim.Table {
	t.Helper()
	lumi := []float64{-2, 0, 2}
	law := []float64{3.1}
	color := []float64{-0.2, 0, 0.5}
	z := []float64{0.0, 0.5, 1.0}
	bands := []byte("XOJ")
	trest := []float64{-5, 0, 5}

	m := make([]float64, 0, len(lumi)*len(law)*len(color)*len(z)*len(bands)*len(trest))
	for l := range lumi {
		for cl := range law {
			for c := range color {
				for iz := range z {
					for b := range bands {
						for a := range trest {
							m = append(m, IndexValue(l, cl, c, iz, b, a))
						}
					}
				}
			}
		}
	}
	tbl, err := sim.NewTable("index", bands, lumi, law, color, z, trest, m)
	if err != nil {
		t.Fatalf("IndexTable: %v", err)
	}
	return tbl
}
