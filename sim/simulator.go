package sim

import "context"

// Simulator is the external light-curve simulation toolkit.
// Implementations own artifact formats and the overwrite policy; callers
// only describe what to generate.
type Simulator interface {
	// MakeSimlib writes a survey library file. An existing file is left
	// untouched unless spec.Clobber is set.
	MakeSimlib(ctx context.Context, spec SimlibSpec) error

	// MakeGridInput writes a grid-mode simulation input file. An existing file
	// is left untouched unless spec.Clobber is set.
	MakeGridInput(ctx context.Context, spec GridInputSpec) error

	// Run executes the simulation described by an input file and blocks until
	// it exits.
	Run(ctx context.Context, spec RunSpec) error

	// LoadTable reads the grid table produced for the named simulation.
	LoadTable(ctx context.Context, name string) (*Table, error)
}

// SimlibSpec describes a survey library artifact.
type SimlibSpec struct {
	File    string
	Survey  string
	Field   string
	Bands   string
	Clobber bool
}

// GridAxis is one NGRID_*/GENRANGE_* pair of a grid input.
type GridAxis struct {
	N     int
	Range Range
}

// GridInputSpec describes a grid-mode simulation input artifact.
type GridInputSpec struct {
	Name       string // GENVERSION; also the table name
	InputFile  string
	SimlibFile string
	SimType    string
	Bands      string
	TRest      GridAxis
	Redshift   GridAxis
	LumiPar    GridAxis // SALT2 x1
	ColorPar   GridAxis // SALT2 c
	ColorLaw   GridAxis // RV
	Clobber    bool
}

// RunSpec describes one simulator invocation.
type RunSpec struct {
	InputFile string
	Verbose   bool
	Perfect   bool
}
