package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/golam/internal/diagram"
	"github.com/alexiusacademia/golam/internal/mech"
	"github.com/alexiusacademia/golam/internal/report"
	"github.com/alexiusacademia/golam/internal/section"
	"github.com/alexiusacademia/golam/internal/sweep"
)

var (
	// Study grid
	sweepInner     string
	sweepOuter     string
	sweepFractions string
	sweepAngles    string
	sweepHalfPlies int
	sweepPlyThick  float64

	// Blade geometry (mm)
	sweepLength   float64
	sweepDiameter float64
	sweepWall     float64

	// Evaluation
	sweepCase    string
	sweepWorkers int

	// Output options
	sweepMetric string
	sweepPNG    string
	sweepXLSX   string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Hybrid layup trade study over skin fraction and angle",
	Long: `Evaluate a grid of hybrid layups: the outer share of the half-stack
uses the skin material at ±angle, the rest uses the core material on
axis. Every (fraction, angle) point is built and evaluated in
parallel, producing the curves of a carpet plot.

Metrics for the chart: ex, f1, damping, mass, cost.

Examples:
  # Flax-core / carbon-skin study, first frequency against fraction
  golam sweep --inner flax-epoxy --outer carbon-t300

  # Coarser grid, stiffness metric, exports
  golam sweep --fractions 0,0.5,1 --angles 0,45 --metric ex \
    --png sweep.png --xlsx sweep.xlsx`,
	Run: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().StringVar(&sweepInner, "inner", "flax-epoxy", "Core material, laid on axis")
	sweepCmd.Flags().StringVar(&sweepOuter, "outer", "carbon-t300", "Skin material, laid at ±angle")
	sweepCmd.Flags().StringVar(&sweepFractions, "fractions", "0,0.25,0.5,0.75,1", "Skin fractions of the half-stack")
	sweepCmd.Flags().StringVar(&sweepAngles, "angles", "0,15,30,45", "Skin angles to sweep (degrees)")
	sweepCmd.Flags().IntVar(&sweepHalfPlies, "half-plies", 8, "Plies per half-stack")
	sweepCmd.Flags().Float64VarP(&sweepPlyThick, "ply-thickness", "t", 0.125, "Ply thickness (mm)")

	sweepCmd.Flags().Float64VarP(&sweepLength, "length", "l", 400, "Blade length (mm)")
	sweepCmd.Flags().Float64VarP(&sweepDiameter, "diameter", "d", 25, "Tube outer diameter (mm)")
	sweepCmd.Flags().Float64VarP(&sweepWall, "wall", "w", 2, "Tube wall thickness (mm)")

	sweepCmd.Flags().StringVar(&sweepCase, "case", "braking", "Named riding load case")
	sweepCmd.Flags().IntVar(&sweepWorkers, "workers", 0, "Parallel evaluations (0 means NumCPU)")

	sweepCmd.Flags().StringVar(&sweepMetric, "metric", "f1", "Chart metric: ex, f1, damping, mass or cost")
	sweepCmd.Flags().StringVar(&sweepPNG, "png", "", "Write the carpet plot to this image file")
	sweepCmd.Flags().StringVar(&sweepXLSX, "xlsx", "", "Write the point table to this XLSX file")
}

func parseSweepMetric(s string) (diagram.SweepMetric, error) {
	switch s {
	case "ex":
		return diagram.MetricEx, nil
	case "f1":
		return diagram.MetricF1, nil
	case "damping":
		return diagram.MetricDamping, nil
	case "mass":
		return diagram.MetricMass, nil
	case "cost":
		return diagram.MetricCost, nil
	}
	return 0, fmt.Errorf("unknown metric %q (ex, f1, damping, mass or cost)", s)
}

func runSweep(cmd *cobra.Command, args []string) {
	metric, err := parseSweepMetric(sweepMetric)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	lib, err := loadLibrary()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	inner, err := lib.Get(sweepInner)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	outer, err := lib.Get(sweepOuter)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fractions, err := parseFloatList(sweepFractions)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	angles, err := parseFloatList(sweepAngles)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	tube, err := section.NewTube(sweepLength*1e-3, sweepDiameter*1e-3, sweepWall*1e-3)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	lc, err := mech.Case(sweepCase)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	cfg := sweep.Config{
		Inner:        inner,
		Outer:        outer,
		Fractions:    fractions,
		Angles:       angles,
		HalfPlies:    sweepHalfPlies,
		PlyThickness: sweepPlyThick * 1e-3,
		Profile:      tube,
		Load:         lc,
		LossFactors:  lib.LossFactors(),
		Workers:      sweepWorkers,
	}
	points, err := sweep.Run(cmd.Context(), cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     HYBRID LAYUP SWEEP")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Core material:\t%s (0°)\n", sweepInner)
	fmt.Fprintf(w, "  Skin material:\t%s (±angle)\n", sweepOuter)
	fmt.Fprintf(w, "  Grid:\t%d fractions × %d angles, %d plies per half\n",
		len(fractions), len(angles), sweepHalfPlies)
	fmt.Fprintf(w, "  Geometry:\t%s\n", section.Describe(tube))
	fmt.Fprintf(w, "  Load case:\t%s\n", lc.Name)
	w.Flush()
	fmt.Println()

	fmt.Println("SWEEP POINTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Fraction\tAngle\tEx\tf₁\tζ\tMass\tCost\tσ_max")
	fmt.Fprintln(w, "  \t°\tGPa\tHz\t\tg\t\tMPa")
	for _, pt := range points {
		fmt.Fprintf(w, "  %.2f\t%+.0f\t%.1f\t%.1f\t%.4f\t%.1f\t%.2f\t%.1f\n",
			pt.Fraction, pt.Angle, pt.Ex/1e9, pt.F1, pt.Damping,
			pt.Mass*1e3, pt.Cost, pt.MaxStress/1e6)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("CARPET PLOT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Println(diagram.SweepChart(points, angles, metric, 58, 14))
	fmt.Println()

	if sweepPNG != "" {
		if err := diagram.ExportSweepImage(points, angles, metric, sweepPNG); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("  Carpet plot written to %s\n", sweepPNG)
	}
	if sweepXLSX != "" {
		if err := report.WriteSweepXLSX(points, sweepXLSX); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("  Point table written to %s\n", sweepXLSX)
	}
	if sweepPNG != "" || sweepXLSX != "" {
		fmt.Println()
	}
}
