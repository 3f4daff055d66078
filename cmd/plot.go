package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/medband-sim/medband-sim/sim"
	"github.com/medband-sim/medband-sim/sim/canvas"
	"github.com/medband-sim/medband-sim/sim/diagnostic"
	"github.com/medband-sim/medband-sim/sim/snana"
)

var (
	gridPath   string  // TEXT grid dump to plot
	outPath    string  // figure output path (.png, .svg, .pdf)
	widthInch  float64 // figure width; 0 picks a size for the plot type
	heightInch float64 // figure height; 0 picks a size for the plot type
	medbands   string  // medium band codes, paired with broadbands
	broadbands string  // broad band codes
	color1     string  // first circle color, "<medium>-<broad>"
	color2     string  // second circle color
	fixedX1    float64 // circle stretch cut
	fixedC     float64 // circle color cut
	fixedAge   float64 // circle phase cut
	plotConfig string  // optional config to locate the grid by supernova
	plotSN     string  // supernova nickname used with plotConfig
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render diagnostic plots from a simulated grid",
}

var plotGridZCmd = &cobra.Command{
	Use:   "gridz",
	Short: "Plot medium-broad pseudo-colors against redshift",
	Run: func(cmd *cobra.Command, args []string) {
		rows, err := gridzRows(medbands, broadbands)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		table := loadPlotTable()
		fig := canvas.NewFigure()
		if err := diagnostic.PlotGridZ(fig, table, medbands, broadbands); err != nil {
			logrus.Fatalf("gridz plot failed: %v", err)
		}
		w, h := figureSize(4*3, 3*float64(rows))
		saveFigure(fig, w, h)
	},
}

var plotCircleCmd = &cobra.Command{
	Use:   "circle",
	Short: "Plot a color-color circle diagram across the redshift grid",
	Run: func(cmd *cobra.Command, args []string) {
		table := loadPlotTable()
		fig := canvas.NewFigure()
		at := diagnostic.Fixed{X1: fixedX1, C: fixedC, Age: fixedAge}
		if err := diagnostic.PlotGridCircle(fig, table, color1, color2, at); err != nil {
			logrus.Fatalf("circle plot failed: %v", err)
		}
		fig.CurrentAxes().SetXLabel(color1)
		fig.CurrentAxes().SetYLabel(color2)
		w, h := figureSize(6, 6)
		saveFigure(fig, w, h)
	},
}

// gridzRows returns the number of panel rows for the band pairs. Both lists
// must be non-empty and of equal length.
func gridzRows(med, broad string) (int, error) {
	if med == "" || broad == "" {
		return 0, fmt.Errorf("--med and --broad need at least one band each")
	}
	if len(med) != len(broad) {
		return 0, fmt.Errorf("%w: --med %q vs --broad %q", diagnostic.ErrBandPairMismatch, med, broad)
	}
	return len(broad), nil
}

// loadPlotTable reads the grid from --grid, or from the simulator's table
// path for --sn when --grid is not given.
func loadPlotTable() *sim.Table {
	path, err := resolveGridPath()
	if err != nil {
		logrus.Fatalf("%v", err)
	}
	table, err := snana.LoadGridFile(path)
	if err != nil {
		logrus.Fatalf("%v", err)
	}
	logrus.Infof("Loaded grid %s with shape %v", table.Name, table.Shape())
	return table
}

func resolveGridPath() (string, error) {
	if gridPath != "" {
		return gridPath, nil
	}
	if plotSN == "" {
		return "", fmt.Errorf("either --grid or --sn is required")
	}
	cfg, err := LoadConfig(plotConfig)
	if err != nil {
		return "", err
	}
	sn, err := cfg.Supernova(plotSN)
	if err != nil {
		return "", err
	}
	return snana.New(cfg.Simulator).TablePath(sim.ArtifactsFor(sn).IaName), nil
}

func figureSize(defaultW, defaultH float64) (vg.Length, vg.Length) {
	w, h := widthInch, heightInch
	if w <= 0 {
		w = defaultW
	}
	if h <= 0 {
		h = defaultH
	}
	return vg.Length(w) * vg.Inch, vg.Length(h) * vg.Inch
}

func saveFigure(fig *canvas.Figure, w, h vg.Length) {
	if err := fig.Save(outPath, w, h); err != nil {
		logrus.Fatalf("%v", err)
	}
	logrus.Infof("Figure written to %s", outPath)
}

func init() {
	for _, c := range []*cobra.Command{plotGridZCmd, plotCircleCmd} {
		c.Flags().StringVar(&gridPath, "grid", "", "TEXT grid dump to plot")
		c.Flags().StringVar(&plotConfig, "config", "medband.yaml", "Config used to locate the grid with --sn")
		c.Flags().StringVar(&plotSN, "sn", "", "Supernova whose simulated grid to plot")
		c.Flags().StringVar(&outPath, "out", "", "Output figure (.png, .svg or .pdf)")
		c.Flags().Float64Var(&widthInch, "width", 0, "Figure width in inches (0 = automatic)")
		c.Flags().Float64Var(&heightInch, "height", 0, "Figure height in inches (0 = automatic)")
		_ = c.MarkFlagRequired("out")
	}

	plotGridZCmd.Flags().StringVar(&medbands, "med", "OPQ", "Medium band codes")
	plotGridZCmd.Flags().StringVar(&broadbands, "broad", "JNH", "Broad band codes, paired positionally with --med")

	plotCircleCmd.Flags().StringVar(&color1, "color1", "O-J", "First color as <medium>-<broad>")
	plotCircleCmd.Flags().StringVar(&color2, "color2", "P-N", "Second color as <medium>-<broad>")
	plotCircleCmd.Flags().Float64Var(&fixedX1, "x1", 0, "Stretch value to cut the grid at")
	plotCircleCmd.Flags().Float64Var(&fixedC, "c", 0, "Color value to cut the grid at")
	plotCircleCmd.Flags().Float64Var(&fixedAge, "age", 0, "Rest-frame phase to cut the grid at")

	plotCmd.AddCommand(plotGridZCmd, plotCircleCmd)
	rootCmd.AddCommand(plotCmd)
}
