package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/golam/internal/diagram"
	"github.com/alexiusacademia/golam/internal/mech"
)

var (
	// Vibration inputs
	vibSupport string
	vibModes   int

	// Dynamic response options
	vibResponse string
	vibForce    float64
	vibZeta     float64
	vibFMin     float64
	vibFMax     float64
	vibDuration float64
	vibDrive    float64
	vibSamples  int
	vibPNG      string
)

var forkVibrateCmd = &cobra.Command{
	Use:   "vibrate",
	Short: "Natural frequencies, damping and dynamic response",
	Long: `Calculate the bending natural frequencies of the blade from
Euler-Bernoulli beam theory, the modal damping ratio from the ply
loss factors, and optionally a dynamic tip response series.

Supports: fixed-free (default), pinned-pinned, fixed-fixed,
fixed-pinned. Response kinds: frf (frequency sweep), step (suddenly
applied force), steady (harmonic drive, default at f1).

Examples:
  # First three modes of the default carbon blade
  golam fork vibrate

  # Flax-damped blade, step response chart as PNG
  golam fork vibrate --material flax-epoxy --response step \
    --force 150 --png step.png`,
	Run: runForkVibrate,
}

func init() {
	forkCmd.AddCommand(forkVibrateCmd)

	forkVibrateCmd.Flags().StringVar(&vibSupport, "support", "fixed-free", "Support condition")
	forkVibrateCmd.Flags().IntVar(&vibModes, "modes", 3, "Number of modes (1..3)")

	forkVibrateCmd.Flags().StringVar(&vibResponse, "response", "", "Response series: frf, step or steady")
	forkVibrateCmd.Flags().Float64Var(&vibForce, "force", 100, "Transverse tip force amplitude (N)")
	forkVibrateCmd.Flags().Float64Var(&vibZeta, "zeta", 0, "Override the damping ratio for the response")
	forkVibrateCmd.Flags().Float64Var(&vibFMin, "fmin", 50, "Sweep start (Hz, frf)")
	forkVibrateCmd.Flags().Float64Var(&vibFMax, "fmax", 500, "Sweep end (Hz, frf)")
	forkVibrateCmd.Flags().Float64Var(&vibDuration, "duration", 0.1, "History length (s, step and steady)")
	forkVibrateCmd.Flags().Float64Var(&vibDrive, "drive", 0, "Drive frequency (Hz, steady; 0 means f1)")
	forkVibrateCmd.Flags().IntVar(&vibSamples, "samples", 200, "Points in the response series")
	forkVibrateCmd.Flags().StringVar(&vibPNG, "png", "", "Write the response chart to this image file")
}

func runForkVibrate(cmd *cobra.Command, args []string) {
	lib, lam, tube, label, err := forkBlade()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	bc, err := mech.ParseBoundary(vibSupport)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	res, err := mech.Evaluate(lam, tube, mech.LoadCase{}, mech.Options{
		Modes:       vibModes,
		Boundary:    bc,
		LossFactors: lib.LossFactors(),
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     FORK BLADE VIBRATION ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Layup:\t%s\n", label)
	fmt.Fprintf(w, "  Support:\t%s\n", bc)
	fmt.Fprintf(w, "  Ex:\t%.2f GPa\n", lam.Ex/1e9)
	fmt.Fprintf(w, "  Laminate density:\t%.0f kg/m³\n", lam.Density)
	w.Flush()
	fmt.Println()

	fmt.Println("NATURAL FREQUENCIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Mode\tFrequency\tf/f₁")
	for i, f := range res.Frequencies {
		fmt.Fprintf(w, "  %d\t%.1f Hz\t%.3f\n", i+1, f, f/res.Frequencies[0])
	}
	w.Flush()
	fmt.Println()

	if res.Damping > 0 {
		fmt.Printf("  Modal damping ratio ζ = %.4f (from ply loss factors)\n", res.Damping)
		fmt.Println()
	}

	if vibResponse == "" {
		return
	}

	zeta := res.Damping
	if cmd.Flags().Changed("zeta") {
		zeta = vibZeta
	}

	var (
		pts     []mech.ResponsePoint
		caption string
		xLabel  string
	)
	switch vibResponse {
	case "frf":
		pts, err = mech.FrequencyResponse(lam, tube, zeta, vibForce, vibFMin, vibFMax, vibSamples)
		caption = fmt.Sprintf("tip amplitude, mm (%.0f to %.0f Hz, ζ=%.4f)", vibFMin, vibFMax, zeta)
		xLabel = "Frequency (Hz)"
	case "step":
		pts, err = mech.StepResponse(lam, tube, zeta, vibForce, vibDuration, vibSamples)
		caption = fmt.Sprintf("step response, mm (%.0f N, ζ=%.4f)", vibForce, zeta)
		xLabel = "Time (s)"
	case "steady":
		drive := vibDrive
		if drive <= 0 {
			drive = res.Frequencies[0]
		}
		pts, err = mech.SteadyState(lam, tube, zeta, vibForce, drive, vibDuration, vibSamples)
		caption = fmt.Sprintf("steady state at %.1f Hz, mm (ζ=%.4f)", drive, zeta)
		xLabel = "Time (s)"
	default:
		fmt.Printf("Error: unknown response kind %q (frf, step or steady)\n", vibResponse)
		return
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println("DYNAMIC RESPONSE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Println(diagram.ResponseChart(pts, caption, 58, 14))
	fmt.Println()

	if vibPNG != "" {
		title := "Fork Blade Dynamic Response"
		if err := diagram.ExportResponseImage(pts, title, xLabel, vibPNG); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("  Response chart written to %s\n", vibPNG)
		fmt.Println()
	}
}
