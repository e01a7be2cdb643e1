package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/golam/internal/laminate"
)

var (
	// Unit-width load resultants
	stressNx  float64
	stressNy  float64
	stressNxy float64
	stressMx  float64
	stressMy  float64
	stressMxy float64
)

var laminateStressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Per-ply stresses under membrane and bending resultants",
	Long: `Recover the stress state at each ply's mid-thickness for a laminate
under unit-width load resultants: solve ABD·{ε⁰,κ} = {N,M}, walk the
strain through the thickness and rotate into each ply's material axes.

Membrane forces are N per unit width (N/m), plate moments N·m/m.

Examples:
  # 1 kN/m membrane tension on a cross-ply stack
  golam laminate stress --angles 0,90 --nx 1000

  # Combined tension and bending from a stack file
  golam laminate stress --file layup.yaml --nx 500 --mx 2.5`,
	Run: runLaminateStress,
}

func init() {
	laminateCmd.AddCommand(laminateStressCmd)

	laminateStressCmd.Flags().Float64Var(&stressNx, "nx", 0, "Membrane force Nx (N/m)")
	laminateStressCmd.Flags().Float64Var(&stressNy, "ny", 0, "Membrane force Ny (N/m)")
	laminateStressCmd.Flags().Float64Var(&stressNxy, "nxy", 0, "Membrane shear Nxy (N/m)")
	laminateStressCmd.Flags().Float64Var(&stressMx, "mx", 0, "Plate moment Mx (N·m/m)")
	laminateStressCmd.Flags().Float64Var(&stressMy, "my", 0, "Plate moment My (N·m/m)")
	laminateStressCmd.Flags().Float64Var(&stressMxy, "mxy", 0, "Twisting moment Mxy (N·m/m)")
}

func runLaminateStress(cmd *cobra.Command, args []string) {
	lib, err := loadLibrary()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	lam, label, err := buildStack(lib, lamFile, lamMaterial, lamAngles, lamPlyThick)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	loads := laminate.Resultants{
		Nx: stressNx, Ny: stressNy, Nxy: stressNxy,
		Mx: stressMx, My: stressMy, Mxy: stressMxy,
	}
	stresses, err := lam.PlyStresses(loads)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PER-PLY STRESS RECOVERY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Layup:\t%s\n", label)
	fmt.Fprintf(w, "  Thickness:\t%.3f mm\n", lam.Thickness*1e3)
	fmt.Fprintf(w, "  Nx, Ny, Nxy:\t%.1f, %.1f, %.1f N/m\n", loads.Nx, loads.Ny, loads.Nxy)
	fmt.Fprintf(w, "  Mx, My, Mxy:\t%.2f, %.2f, %.2f N·m/m\n", loads.Mx, loads.My, loads.Mxy)
	w.Flush()
	fmt.Println()

	fmt.Println("MID-PLY STRESSES (MPa):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	plies := lam.Plies()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  #\tMaterial\tθ\tz (mm)\tσx\tσy\tτxy\tσ1\tσ2\tτ12")
	for _, ps := range stresses {
		p := plies[ps.Ply-1]
		fmt.Fprintf(w, "  %d\t%s\t%+.0f°\t%+.3f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			ps.Ply, p.Name, p.Theta, ps.Z*1e3,
			ps.SigmaX/1e6, ps.SigmaY/1e6, ps.TauXY/1e6,
			ps.Sigma1/1e6, ps.Sigma2/1e6, ps.Tau12/1e6)
	}
	w.Flush()
	fmt.Println()
	fmt.Println("  Plies count from the bottom surface; z is the mid-ply offset")
	fmt.Println("  from the laminate mid-plane.")
	fmt.Println()
}
