package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/golam/internal/material"
)

var (
	// Constituent inputs (datasheet units)
	estFiberE    float64
	estFiberNu   float64
	estFiberRho  float64
	estFiberCost float64
	estFiberLoss float64

	estMatrixE    float64
	estMatrixNu   float64
	estMatrixRho  float64
	estMatrixCost float64
	estMatrixLoss float64

	estVf     float64
	estMethod string
	estName   string
)

var materialEstimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate ply constants from fiber and matrix constituents",
	Long: `Derive unidirectional ply constants from isotropic fiber and matrix
properties at a given fiber volume fraction.

Two micromechanics models are available:
  rom         - rule of mixtures (Voigt E1, inverse rule for E2 and G12)
  halpin-tsai - Halpin-Tsai for E2 (ξ=2) and G12 (ξ=1), Voigt elsewhere

The defaults describe a T300-class carbon fiber in epoxy.

Examples:
  # Carbon/epoxy at 60% fibers, Halpin-Tsai
  golam material estimate --vf 0.6

  # A glass/epoxy estimate with the plain rule of mixtures
  golam material estimate --method rom --name glass-est \
    --fiber-e 72 --fiber-nu 0.22 --fiber-rho 2550 --fiber-cost 3`,
	Run: runMaterialEstimate,
}

func init() {
	materialCmd.AddCommand(materialEstimateCmd)

	// Fiber phase
	materialEstimateCmd.Flags().Float64Var(&estFiberE, "fiber-e", 230, "Fiber Young's modulus (GPa)")
	materialEstimateCmd.Flags().Float64Var(&estFiberNu, "fiber-nu", 0.20, "Fiber Poisson's ratio")
	materialEstimateCmd.Flags().Float64Var(&estFiberRho, "fiber-rho", 1760, "Fiber density (kg/m³)")
	materialEstimateCmd.Flags().Float64Var(&estFiberCost, "fiber-cost", 70, "Fiber cost per kg")
	materialEstimateCmd.Flags().Float64Var(&estFiberLoss, "fiber-loss", 0.002, "Fiber loss factor")

	// Matrix phase
	materialEstimateCmd.Flags().Float64Var(&estMatrixE, "matrix-e", 3.5, "Matrix Young's modulus (GPa)")
	materialEstimateCmd.Flags().Float64Var(&estMatrixNu, "matrix-nu", 0.35, "Matrix Poisson's ratio")
	materialEstimateCmd.Flags().Float64Var(&estMatrixRho, "matrix-rho", 1200, "Matrix density (kg/m³)")
	materialEstimateCmd.Flags().Float64Var(&estMatrixCost, "matrix-cost", 10, "Matrix cost per kg")
	materialEstimateCmd.Flags().Float64Var(&estMatrixLoss, "matrix-loss", 0.030, "Matrix loss factor")

	materialEstimateCmd.Flags().Float64Var(&estVf, "vf", 0.6, "Fiber volume fraction (0..1 exclusive)")
	materialEstimateCmd.Flags().StringVar(&estMethod, "method", "halpin-tsai", "Micromechanics model: rom or halpin-tsai")
	materialEstimateCmd.Flags().StringVar(&estName, "name", "estimated", "Name for the estimated material")
}

func runMaterialEstimate(cmd *cobra.Command, args []string) {
	fiber := material.Constituent{E: estFiberE, Nu: estFiberNu, Rho: estFiberRho, CostPerKg: estFiberCost, LossFactor: estFiberLoss}
	matrix := material.Constituent{E: estMatrixE, Nu: estMatrixNu, Rho: estMatrixRho, CostPerKg: estMatrixCost, LossFactor: estMatrixLoss}

	var estimate material.Estimator
	switch estMethod {
	case "rom":
		estimate = material.RuleOfMixtures
	case "halpin-tsai":
		estimate = material.HalpinTsai
	default:
		fmt.Printf("Error: unknown method %q (rom or halpin-tsai)\n", estMethod)
		return
	}

	props, err := estimate(fiber, matrix, estVf)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	props.Name = estName
	props.Source = fmt.Sprintf("%s estimate at vf=%.2f", estMethod, estVf)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     MICROMECHANICS ESTIMATE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT CONSTITUENTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Fiber:\tE = %.1f GPa\tν = %.2f\tρ = %.0f kg/m³\n", fiber.E, fiber.Nu, fiber.Rho)
	fmt.Fprintf(w, "  Matrix:\tE = %.2f GPa\tν = %.2f\tρ = %.0f kg/m³\n", matrix.E, matrix.Nu, matrix.Rho)
	fmt.Fprintf(w, "  Volume fraction:\tvf = %.2f\n", estVf)
	fmt.Fprintf(w, "  Model:\t%s\n", estMethod)
	w.Flush()
	fmt.Println()

	fmt.Println("ESTIMATED PLY CONSTANTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  E1:\t%.2f GPa\n", props.E1)
	fmt.Fprintf(w, "  E2:\t%.2f GPa\n", props.E2)
	fmt.Fprintf(w, "  G12:\t%.2f GPa\n", props.G12)
	fmt.Fprintf(w, "  ν12:\t%.3f\n", props.Nu12)
	fmt.Fprintf(w, "  Density:\t%.0f kg/m³\n", props.Rho)
	fmt.Fprintf(w, "  Cost:\t%.2f /kg\n", props.CostPerKg)
	fmt.Fprintf(w, "  Loss factor:\t%.4f\n", props.LossFactor)
	w.Flush()
	fmt.Println()

	// Ready to paste into a --materials library file.
	data, err := yaml.Marshal([]material.Properties{props})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println("LIBRARY YAML:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Print(string(data))
	fmt.Println()
}
