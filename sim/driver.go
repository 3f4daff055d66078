package sim

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	gridSurvey    = "HST"
	gridField     = "default"
	gridSimType   = "Ia"
	gridAxisN     = 10
	gridColorLawN = 1
	// standardRV is the Milky Way-like dust law normalization; fixed for the Ia grid.
	standardRV = 3.1
)

// GridArtifacts names the files of one supernova's medium-band grid run.
type GridArtifacts struct {
	SimName    string `yaml:"sim_name"` // sim_<nickname>_medbandGrid
	SimlibFile string `yaml:"simlib_file"`
	IaName     string `yaml:"ia_name"`
	IaInput    string `yaml:"ia_input"`
}

// ArtifactsFor returns the fixed artifact names for sn.
func ArtifactsFor(sn Supernova) GridArtifacts {
	simName := "sim_" + sn.Nickname + "_medbandGrid"
	return GridArtifacts{
		SimName:    simName,
		SimlibFile: simName + ".simlib",
		IaName:     simName + "_Ia",
		IaInput:    simName + "_Ia.input",
	}
}

// GridInputFor builds the Ia grid input for sn. The redshift axis spans
// RedshiftRange(sn) with req.NGridZ points; phase, stretch and color use ten
// points each; the color law is pinned at RV=3.1.
func GridInputFor(sn Supernova, req GridRequest) GridInputSpec {
	a := ArtifactsFor(sn)
	return GridInputSpec{
		Name:       a.IaName,
		InputFile:  a.IaInput,
		SimlibFile: a.SimlibFile,
		SimType:    gridSimType,
		Bands:      req.Bands,
		TRest:      GridAxis{N: gridAxisN, Range: req.TRestRange},
		Redshift:   GridAxis{N: req.NGridZ, Range: RedshiftRange(sn)},
		LumiPar:    GridAxis{N: gridAxisN, Range: req.X1Range},
		ColorPar:   GridAxis{N: gridAxisN, Range: req.CRange},
		ColorLaw:   GridAxis{N: gridColorLawN, Range: Range{standardRV, standardRV}},
		Clobber:    req.Clobber,
	}
}

// SimulateGrid sets up and runs a grid simulation around sn and returns the
// resulting table. Steps run in order: simlib, Ia grid input, simulation,
// table load. The first failure is returned; nothing is retried.
func SimulateGrid(ctx context.Context, s Simulator, sn Supernova, req GridRequest) (*Table, error) {
	if err := sn.Validate(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	a := ArtifactsFor(sn)
	input := GridInputFor(sn, req)
	logrus.Infof("Grid simulation %s: z=[%.4f, %.4f] ngridz=%d bands=%s",
		a.SimName, input.Redshift.Range.Min(), input.Redshift.Range.Max(), req.NGridZ, req.Bands)

	if err := s.MakeSimlib(ctx, SimlibSpec{
		File:    a.SimlibFile,
		Survey:  gridSurvey,
		Field:   gridField,
		Bands:   req.Bands,
		Clobber: req.Clobber,
	}); err != nil {
		return nil, fmt.Errorf("make simlib %s: %w", a.SimlibFile, err)
	}
	if err := s.MakeGridInput(ctx, input); err != nil {
		return nil, fmt.Errorf("make grid input %s: %w", input.InputFile, err)
	}
	if err := s.Run(ctx, RunSpec{InputFile: input.InputFile, Verbose: req.Verbose}); err != nil {
		return nil, fmt.Errorf("run simulation %s: %w", input.InputFile, err)
	}
	table, err := s.LoadTable(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("load table %s: %w", input.Name, err)
	}
	return table, nil
}
