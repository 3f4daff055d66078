package snana

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/medband-sim/medband-sim/sim"
)

const (
	simlibMJD     = 55000.0
	simlibPixSize = 0.13 // WFC3/IR arcsec per pixel
	simlibZPT     = 25.0
	noMag         = 99.0
)

// genTypes maps transient classes to SNANA GENTYPE codes. Only Ia grids are generated.
var genTypes = map[string]int{"Ia": 1}

func renderSimlib(spec sim.SimlibSpec) ([]byte, error) {
	if spec.Bands == "" {
		return nil, fmt.Errorf("simlib %s: no bands", spec.File)
	}
	var b bytes.Buffer
	fmt.Fprintf(&b, "SURVEY: %s    FILTERS: %s\n", spec.Survey, spec.Bands)
	fmt.Fprintf(&b, "USER: medband-sim\n")
	fmt.Fprintf(&b, "COMMENT: 'grid simlib %s'\n", spec.File)
	fmt.Fprintf(&b, "BEGIN LIBGEN\n\n")
	fmt.Fprintf(&b, "# --------------------------------------------\n")
	fmt.Fprintf(&b, "LIBID: 1\n")
	fmt.Fprintf(&b, "RA: 0.0   DECL: 0.0   NOBS: %d   MWEBV: 0.0   PIXSIZE: %.2f\n", len(spec.Bands), simlibPixSize)
	fmt.Fprintf(&b, "FIELD: %s\n", spec.Field)
	fmt.Fprintf(&b, "#                           CCD  CCD         PSF1 PSF2 PSF2/1\n")
	fmt.Fprintf(&b, "#     MJD      IDEXPT  FLT GAIN NOISE SKYSIG (pixels)  RATIO  ZPTAVG ZPTERR  MAG\n")
	for i := 0; i < len(spec.Bands); i++ {
		fmt.Fprintf(&b, "S: %9.3f %6d %4c  1.00  0.00  0.00  1.00 0.00 0.000  %5.2f  0.000  %6.3f\n",
			simlibMJD, i+1, spec.Bands[i], simlibZPT, noMag)
	}
	fmt.Fprintf(&b, "END_LIBID: 1\n\nEND_OF_SIMLIB:\n")
	return b.Bytes(), nil
}

func renderGridInput(spec sim.GridInputSpec, model string) ([]byte, error) {
	genType, ok := genTypes[spec.SimType]
	if !ok {
		return nil, fmt.Errorf("grid input %s: unknown sim type %q", spec.InputFile, spec.SimType)
	}
	var b bytes.Buffer
	kv := func(key, val string) { fmt.Fprintf(&b, "%-20s %s\n", key+":", val) }
	axis := func(nKey, rangeKey string, a sim.GridAxis) {
		kv(nKey, strconv.Itoa(a.N))
		kv(rangeKey, formatFloat(a.Range.Min())+" "+formatFloat(a.Range.Max()))
	}

	fmt.Fprintf(&b, "# grid-mode input for %s\n", spec.Name)
	kv("GENVERSION", spec.Name)
	kv("GENSOURCE", "GRID")
	kv("GENMODEL", model)
	kv("SIMLIB_FILE", spec.SimlibFile)
	kv("GENTYPE", strconv.Itoa(genType))
	kv("GENFILTERS", spec.Bands)
	axis("NGRID_TREST", "GENRANGE_TREST", spec.TRest)
	axis("NGRID_LOGZ", "GENRANGE_REDSHIFT", spec.Redshift)
	axis("NGRID_LUMIPAR", "GENRANGE_SALT2X1", spec.LumiPar)
	axis("NGRID_COLORPAR", "GENRANGE_SALT2C", spec.ColorPar)
	axis("NGRID_COLORLAW", "GENRANGE_RV", spec.ColorLaw)
	kv("GRIDGEN_FORMAT", "TEXT")
	return b.Bytes(), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
