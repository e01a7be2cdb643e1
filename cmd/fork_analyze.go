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
)

var (
	// Load case selection
	analyzeCase       string
	analyzeAxial      float64
	analyzeTransverse float64
	analyzeAt         float64

	// Output options
	analyzeSamples int
	analyzePNG     string
	analyzeXLSX    string
)

var forkAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Stress profile of the blade under a riding load case",
	Long: `Calculate the combined axial and bending stress along the blade for
one riding load case. The axial force spreads uniformly over the tube
wall; the transverse dropout force bends the blade about the clamped
crown, growing linearly from its application point.

Named cases: static, braking, sprint, impact. Any component can be
overridden with the force flags.

Examples:
  # Hard braking on the default carbon blade
  golam fork analyze --case braking

  # Custom loads, finer profile, PNG chart
  golam fork analyze --axial 800 --transverse 600 --samples 200 \
    --png stress.png`,
	Run: runForkAnalyze,
}

func init() {
	forkCmd.AddCommand(forkAnalyzeCmd)

	forkAnalyzeCmd.Flags().StringVar(&analyzeCase, "case", "static", "Named riding load case")
	forkAnalyzeCmd.Flags().Float64Var(&analyzeAxial, "axial", 0, "Override axial force (N)")
	forkAnalyzeCmd.Flags().Float64Var(&analyzeTransverse, "transverse", 0, "Override transverse force (N)")
	forkAnalyzeCmd.Flags().Float64Var(&analyzeAt, "at", 0, "Transverse force position from the dropout (mm)")

	forkAnalyzeCmd.Flags().IntVar(&analyzeSamples, "samples", 50, "Stations along the blade")
	forkAnalyzeCmd.Flags().StringVar(&analyzePNG, "png", "", "Write the profile chart to this image file")
	forkAnalyzeCmd.Flags().StringVar(&analyzeXLSX, "xlsx", "", "Write the profile table to this XLSX file")
}

func runForkAnalyze(cmd *cobra.Command, args []string) {
	lib, lam, tube, label, err := forkBlade()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	lc, err := resolveCase(cmd, analyzeCase, analyzeAxial, analyzeTransverse, analyzeAt)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	res, err := mech.Evaluate(lam, tube, lc, mech.Options{
		Samples:     analyzeSamples,
		LossFactors: lib.LossFactors(),
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     FORK BLADE STRESS ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Layup:\t%s\n", label)
	fmt.Fprintf(w, "  Geometry:\t%s\n", section.Describe(tube))
	fmt.Fprintf(w, "  Load case:\t%s\n", lc.Name)
	fmt.Fprintf(w, "  Axial force:\t%.0f N\n", lc.Axial)
	fmt.Fprintf(w, "  Transverse force:\t%.0f N\n", lc.Transverse)
	if lc.Application > 0 {
		fmt.Fprintf(w, "  Applied at:\t%.0f mm from dropout\n", lc.Application*1e3)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("STRESS PROFILE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Println(diagram.ProfileChart(res.Profile, 58, 14))
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Max combined stress:\t%.2f MPa\n", res.MaxStress/1e6)
	fmt.Fprintf(w, "  Location:\t%.0f mm from dropout\n", res.MaxStressAt*1e3)
	fmt.Fprintf(w, "  Axial strain:\t%.4e\n", res.Strain)
	fmt.Fprintf(w, "  Blade mass:\t%.1f g\n", res.Mass*1e3)
	fmt.Fprintf(w, "  Material cost:\t%.2f\n", res.Cost)
	w.Flush()
	fmt.Println()

	if analyzePNG != "" {
		if err := diagram.ExportProfileImage(res.Profile, analyzePNG); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("  Profile chart written to %s\n", analyzePNG)
	}
	if analyzeXLSX != "" {
		if err := report.WriteProfileXLSX(res.Profile, analyzeXLSX); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("  Profile table written to %s\n", analyzeXLSX)
	}
	if analyzePNG != "" || analyzeXLSX != "" {
		fmt.Println()
	}
}
