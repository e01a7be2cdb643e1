package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var materialListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the materials available to layup commands",
	Long: `Print every material in the library with its unidirectional ply
constants, in the units composite datasheets use.

Examples:
  # Built-in materials only
  golam material list

  # Include a user library
  golam material list --materials my_materials.yaml`,
	Run: runMaterialList,
}

func init() {
	materialCmd.AddCommand(materialListCmd)
}

func runMaterialList(cmd *cobra.Command, args []string) {
	lib, err := loadLibrary()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     MATERIAL LIBRARY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Name\tE1\tE2\tG12\tν12\tρ\tCost\tη")
	fmt.Fprintln(w, "  \tGPa\tGPa\tGPa\t\tkg/m³\t/kg\t")
	for _, name := range lib.Names() {
		p, err := lib.Get(name)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Fprintf(w, "  %s\t%.1f\t%.1f\t%.1f\t%.2f\t%.0f\t%.0f\t%.3f\n",
			p.Name, p.E1, p.E2, p.G12, p.Nu12, p.Rho, p.CostPerKg, p.LossFactor)
	}
	w.Flush()
	fmt.Println()

	fmt.Printf("  %d materials. Layup commands take these names via --material.\n", len(lib.Names()))
	fmt.Println()
}
