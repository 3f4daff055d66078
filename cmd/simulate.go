package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/medband-sim/medband-sim/sim"
	"github.com/medband-sim/medband-sim/sim/snana"
)

var (
	configPath string // YAML config file
	snNickname string // supernova to simulate
	ngridz     int    // redshift grid points
	bands      string // band codes for GENFILTERS
	clobber    bool   // overwrite existing artifacts
	verbose    bool   // stream simulator output
	dumpReq    bool   // print the effective request and exit
)

// simulateCmd runs one medium-band grid simulation around a configured supernova
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Generate and run a SNANA grid simulation for a supernova",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := LoadConfig(configPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		sn, err := cfg.Supernova(snNickname)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		req := applyGridFlags(cmd, cfg.Grid)
		if dumpReq {
			if err := writeRequest(cmd.OutOrStdout(), sn, req); err != nil {
				logrus.Fatalf("%v", err)
			}
			return
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		table, err := sim.SimulateGrid(ctx, snana.New(cfg.Simulator), sn, req)
		if err != nil {
			logrus.Fatalf("Grid simulation failed: %v", err)
		}
		if err := writeTableSummary(cmd.OutOrStdout(), table); err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// applyGridFlags overrides config values only for flags the user set.
func applyGridFlags(cmd *cobra.Command, req sim.GridRequest) sim.GridRequest {
	if cmd.Flags().Changed("ngridz") {
		req.NGridZ = ngridz
	}
	if cmd.Flags().Changed("bands") {
		req.Bands = bands
	}
	if cmd.Flags().Changed("clobber") {
		req.Clobber = clobber
	}
	if cmd.Flags().Changed("verbose") {
		req.Verbose = verbose
	}
	return req
}

// RequestDump is the YAML form of a grid request before it is run.
type RequestDump struct {
	Supernova sim.Supernova     `yaml:"supernova"`
	Request   sim.GridRequest   `yaml:"request"`
	Artifacts sim.GridArtifacts `yaml:"artifacts"`
	Redshift  sim.Range         `yaml:"redshift"`
}

func writeRequest(w io.Writer, sn sim.Supernova, req sim.GridRequest) error {
	if err := sn.Validate(); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(RequestDump{
		Supernova: sn,
		Request:   req,
		Artifacts: sim.ArtifactsFor(sn),
		Redshift:  sim.RedshiftRange(sn),
	})
	if err != nil {
		return fmt.Errorf("YAML marshal failed: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// TableSummary is the YAML description printed after a simulation.
type TableSummary struct {
	Name     string     `yaml:"name"`
	Bands    string     `yaml:"bands"`
	Shape    []int      `yaml:"shape"`
	Redshift [2]float64 `yaml:"redshift"`
	LumiPar  [2]float64 `yaml:"lumipar"`
	ColorPar [2]float64 `yaml:"colorpar"`
	ColorLaw [2]float64 `yaml:"colorlaw"`
	TRest    [2]float64 `yaml:"trest"`
}

func summarize(t *sim.Table) TableSummary {
	span := func(v []float64) [2]float64 { return [2]float64{v[0], v[len(v)-1]} }
	shape := t.Shape()
	return TableSummary{
		Name:     t.Name,
		Bands:    string(t.Bands),
		Shape:    shape[:],
		Redshift: span(t.Z),
		LumiPar:  span(t.LumiPar),
		ColorPar: span(t.ColorPar),
		ColorLaw: span(t.ColorLaw),
		TRest:    span(t.TRest),
	}
}

func writeTableSummary(w io.Writer, t *sim.Table) error {
	data, err := yaml.Marshal(summarize(t))
	if err != nil {
		return fmt.Errorf("YAML marshal failed: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func init() {
	simulateCmd.Flags().StringVar(&configPath, "config", "medband.yaml", "YAML config with simulator settings and supernovae")
	simulateCmd.Flags().StringVar(&snNickname, "sn", "", "Nickname of the supernova to simulate")
	simulateCmd.Flags().IntVar(&ngridz, "ngridz", 50, "Number of redshift grid points")
	simulateCmd.Flags().StringVar(&bands, "bands", "X7I8LYOJPNQH", "Band codes to simulate")
	simulateCmd.Flags().BoolVar(&clobber, "clobber", false, "Overwrite existing simlib and input files")
	simulateCmd.Flags().BoolVar(&verbose, "verbose", true, "Stream simulator output to the log")
	simulateCmd.Flags().BoolVar(&dumpReq, "dump-request", false, "Print the effective grid request as YAML without running the simulator")
	_ = simulateCmd.MarkFlagRequired("sn")

	rootCmd.AddCommand(simulateCmd)
}
