package cmd

import (
	"github.com/spf13/cobra"
)

var materialCmd = &cobra.Command{
	Use:   "material",
	Short: "Ply material library management",
	Long: `Inspect and extend the ply material library.

The built-in library ships a few well-characterized unidirectional
materials (carbon, glass, kevlar, flax). User materials merge in from
a YAML file given with --materials or the GOLAM_MATERIALS variable.

Subcommands:
  list      - Show every material with its ply constants
  import    - Convert an XLSX material table to a library YAML file
  estimate  - Derive ply constants from fiber and matrix constituents`,
}

func init() {
	rootCmd.AddCommand(materialCmd)
}
