package sim

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidGrid is returned by GridRequest.Validate.
	ErrInvalidGrid = errors.New("invalid grid request")
	// ErrInvalidSupernova is returned by Supernova.Validate.
	ErrInvalidSupernova = errors.New("invalid supernova")
)

// Supernova identifies the transient a grid is built around.
type Supernova struct {
	Nickname string  `yaml:"nickname"`
	Z        float64 `yaml:"z"`
	ZErr     float64 `yaml:"zerr"`
}

// Validate checks that z and zerr are finite, zerr is non-negative and the
// redshift range starts above zero.
func (sn Supernova) Validate() error {
	if !finite(sn.Z) || !finite(sn.ZErr) {
		return fmt.Errorf("%w: %s z=%g zerr=%g not finite", ErrInvalidSupernova, sn.Nickname, sn.Z, sn.ZErr)
	}
	if sn.ZErr < 0 {
		return fmt.Errorf("%w: %s zerr %g < 0", ErrInvalidSupernova, sn.Nickname, sn.ZErr)
	}
	if zmin := RedshiftRange(sn).Min(); zmin <= 0 {
		return fmt.Errorf("%w: %s redshift range starts at %g, must be > 0", ErrInvalidSupernova, sn.Nickname, zmin)
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Range is a closed [Min, Max] parameter range. In YAML it is a two-element list.
type Range [2]float64

func (r Range) Min() float64 { return r[0] }
func (r Range) Max() float64 { return r[1] }

// RedshiftRange returns [z - zerr, z + zerr].
func RedshiftRange(sn Supernova) Range {
	return Range{sn.Z - sn.ZErr, sn.Z + sn.ZErr}
}

// GridRequest groups the parameters of one grid simulation.
type GridRequest struct {
	NGridZ     int    `yaml:"ngridz"`      // redshift grid points (must be > 0)
	Bands      string `yaml:"bands"`       // band codes passed as GENFILTERS
	X1Range    Range  `yaml:"x1_range"`    // SALT2 stretch range
	CRange     Range  `yaml:"c_range"`     // SALT2 color range
	AvRange    Range  `yaml:"av_range"`    // host extinction; unused by the Ia grid
	TRestRange Range  `yaml:"trest_range"` // rest-frame phase range (days)
	Clobber    bool   `yaml:"clobber"`     // overwrite existing simlib/input artifacts
	Verbose    bool   `yaml:"verbose"`     // stream simulator output
}

// DefaultGridRequest returns the standard medium-band grid settings.
func DefaultGridRequest() GridRequest {
	return GridRequest{
		NGridZ:     50,
		Bands:      "X7I8LYOJPNQH",
		X1Range:    Range{-2, 2},
		CRange:     Range{-0.2, 0.5},
		AvRange:    Range{0, 0.7},
		TRestRange: Range{-5, 5},
		Verbose:    true,
	}
}

// Validate checks the request for values the simulator cannot grid.
func (r GridRequest) Validate() error {
	if r.NGridZ < 1 {
		return fmt.Errorf("%w: ngridz must be > 0, got %d", ErrInvalidGrid, r.NGridZ)
	}
	if r.Bands == "" {
		return fmt.Errorf("%w: no bands", ErrInvalidGrid)
	}
	ranges := []struct {
		name string
		rg   Range
	}{
		{"x1_range", r.X1Range},
		{"c_range", r.CRange},
		{"av_range", r.AvRange},
		{"trest_range", r.TRestRange},
	}
	for _, nr := range ranges {
		if !finite(nr.rg.Min()) || !finite(nr.rg.Max()) {
			return fmt.Errorf("%w: %s %v not finite", ErrInvalidGrid, nr.name, nr.rg)
		}
		if nr.rg.Min() > nr.rg.Max() {
			return fmt.Errorf("%w: %s min %g > max %g", ErrInvalidGrid, nr.name, nr.rg.Min(), nr.rg.Max())
		}
	}
	return nil
}
