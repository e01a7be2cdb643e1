package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/golam/internal/diagram"
)

var propsShowABD bool

var laminatePropsCmd = &cobra.Command{
	Use:   "props",
	Short: "Effective engineering constants of a laminate",
	Long: `Compute the effective in-plane engineering constants of a laminate
by classical laminate theory: assemble the ABD stiffness matrix over
the stack and read Ex, Ey, Gxy and νxy from its inverse.

Examples:
  # Quasi-isotropic carbon stack
  golam laminate props --material carbon-t300 --angles 0,45,-45,90

  # Arbitrary stack from a file, with the ABD matrix
  golam laminate props --file layup.yaml --abd`,
	Run: runLaminateProps,
}

func init() {
	laminateCmd.AddCommand(laminatePropsCmd)

	laminatePropsCmd.Flags().BoolVar(&propsShowABD, "abd", false, "Print the assembled ABD matrix")
}

func runLaminateProps(cmd *cobra.Command, args []string) {
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

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     LAMINATE ENGINEERING CONSTANTS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Layup: %s\n", label)
	fmt.Println()

	fmt.Print(diagram.DrawStack(lam))
	fmt.Println()

	fmt.Println("EFFECTIVE CONSTANTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ex:\t%.2f GPa\n", lam.Ex/1e9)
	fmt.Fprintf(w, "  Ey:\t%.2f GPa\n", lam.Ey/1e9)
	fmt.Fprintf(w, "  Gxy:\t%.2f GPa\n", lam.Gxy/1e9)
	fmt.Fprintf(w, "  νxy:\t%.4f\n", lam.NuXY)
	fmt.Fprintf(w, "  Thickness:\t%.3f mm\n", lam.Thickness*1e3)
	fmt.Fprintf(w, "  Density:\t%.0f kg/m³\n", lam.Density)
	fmt.Fprintf(w, "  Areal density:\t%.3f kg/m²\n", lam.ArealDensity)
	fmt.Fprintf(w, "  Material cost:\t%.2f /kg\n", lam.CostPerKg)
	w.Flush()
	fmt.Println()

	if !lam.IsSymmetric() {
		fmt.Println("  ⚠ Stack is not symmetric; extension-bending coupling (B ≠ 0)")
		fmt.Println("    makes the effective constants nominal values only.")
		fmt.Println()
	}

	if propsShowABD {
		fmt.Println("ABD MATRIX (A in N/m, B in N, D in N·m):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		abd := lam.ABD()
		for i := 0; i < 6; i++ {
			fmt.Print("  ")
			for j := 0; j < 6; j++ {
				fmt.Printf("%12.4e", abd.At(i, j))
				if j == 2 {
					fmt.Print("  │")
				}
			}
			fmt.Println()
			if i == 2 {
				fmt.Println("  ──────────────────────────────────────┼────────────────────────────────────")
			}
		}
		fmt.Println()
	}
}
