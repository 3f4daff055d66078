// Package snana implements sim.Simulator on top of SNANA's snlc_sim.exe.
//
// Artifacts (simlib and grid input) are written into Config.WorkDir, the
// simulator runs there, and grid tables are read back from TEXT-format GRID
// dumps under Config.GridDir.
package snana

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/medband-sim/medband-sim/sim"
)

const (
	// DefaultExecutable is the SNANA light-curve simulator binary.
	DefaultExecutable = "snlc_sim.exe"
	// DefaultModel is the SALT2 model used for Ia grids.
	DefaultModel = "SALT2.Guy10_UV2IR"
)

// Config locates the simulator and its files.
type Config struct {
	Executable string `yaml:"executable"` // binary name on $PATH or a path
	WorkDir    string `yaml:"work_dir"`   // artifacts are written and the simulator runs here
	GridDir    string `yaml:"grid_dir"`   // root of <name>/<name>.GRID tables
	Model      string `yaml:"model"`      // GENMODEL for Ia grids
}

// WithDefaults fills unset fields. GridDir falls back to $SNDATA_ROOT/SIM,
// then to WorkDir.
func (c Config) WithDefaults() Config {
	if c.Executable == "" {
		c.Executable = DefaultExecutable
	}
	if c.WorkDir == "" {
		c.WorkDir = "."
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.GridDir == "" {
		if root := os.Getenv("SNDATA_ROOT"); root != "" {
			c.GridDir = filepath.Join(root, "SIM")
		} else {
			c.GridDir = c.WorkDir
		}
	}
	return c
}

// Simulator drives SNANA. It satisfies sim.Simulator.
type Simulator struct {
	cfg Config
}

var _ sim.Simulator = (*Simulator)(nil)

// New returns a Simulator using cfg with defaults applied.
func New(cfg Config) *Simulator {
	return &Simulator{cfg: cfg.WithDefaults()}
}

// Config returns the effective configuration.
func (s *Simulator) Config() Config { return s.cfg }

// MakeSimlib implements sim.Simulator.
func (s *Simulator) MakeSimlib(ctx context.Context, spec sim.SimlibSpec) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := renderSimlib(spec)
	if err != nil {
		return err
	}
	return writeArtifact(s.path(spec.File), data, spec.Clobber)
}

// MakeGridInput implements sim.Simulator.
func (s *Simulator) MakeGridInput(ctx context.Context, spec sim.GridInputSpec) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := renderGridInput(spec, s.cfg.Model)
	if err != nil {
		return err
	}
	return writeArtifact(s.path(spec.InputFile), data, spec.Clobber)
}

// LoadTable implements sim.Simulator.
func (s *Simulator) LoadTable(ctx context.Context, name string) (*sim.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadGridFile(s.TablePath(name))
}

// TablePath returns where the GRID dump for a simulation is read from.
func (s *Simulator) TablePath(name string) string {
	return filepath.Join(s.cfg.GridDir, name, name+".GRID")
}

func (s *Simulator) path(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(s.cfg.WorkDir, file)
}

// writeArtifact writes data to path. An existing file is kept unless
// clobber is set, which makes repeated calls idempotent.
func writeArtifact(path string, data []byte, clobber bool) error {
	if _, err := os.Stat(path); err == nil {
		if !clobber {
			logrus.Infof("%s exists, not clobbering", path)
			return nil
		}
		logrus.Warnf("clobbering existing %s", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %q: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	logrus.Debugf("Successfully wrote to '%s'", path)
	return nil
}
