package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/golam/internal/material"
)

var (
	// Import inputs
	importFrom string
	importOut  string
)

var materialImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Convert an XLSX material table to a library YAML file",
	Long: `Read material records from the first sheet of an XLSX workbook and
write them as a library YAML file that --materials can load.

The sheet needs a header row naming at least:
  name, e1_gpa, e2_gpa, g12_gpa, nu12, density_kgm3, cost_per_kg
with optional loss_factor and source columns, one material per row.

Examples:
  golam material import --from vendor_data.xlsx --out materials.yaml
  golam material list --materials materials.yaml`,
	Run: runMaterialImport,
}

func init() {
	materialCmd.AddCommand(materialImportCmd)

	materialImportCmd.Flags().StringVar(&importFrom, "from", "", "XLSX workbook to read [required]")
	materialImportCmd.Flags().StringVar(&importOut, "out", "", "YAML file to write [required]")

	materialImportCmd.MarkFlagRequired("from")
	materialImportCmd.MarkFlagRequired("out")
}

func runMaterialImport(cmd *cobra.Command, args []string) {
	records, err := material.ReadXLSX(importFrom)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if err := os.WriteFile(importOut, data, 0644); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Imported %d materials from %s into %s\n", len(records), importFrom, importOut)
	for _, r := range records {
		fmt.Printf("  - %s\n", r.Name)
	}
}
