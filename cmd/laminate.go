package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Stack definition shared by the laminate subcommands
	lamMaterial string
	lamAngles   string
	lamPlyThick float64
	lamFile     string
)

var laminateCmd = &cobra.Command{
	Use:   "laminate",
	Short: "Classical laminate analysis of a ply stack",
	Long: `Analyze a laminate defined either as a symmetric layup of one
library material (--material, --angles, --ply-thickness) or as an
arbitrary stack read from a YAML file (--file).

Angles list the upper half of the stack in degrees and are mirrored,
so "0,45,-45,0" means the 8-ply stack [0/45/-45/0]s.

Subcommands:
  props   - Effective engineering constants and the ABD matrix
  stress  - Per-ply stresses under membrane and bending resultants`,
}

func init() {
	rootCmd.AddCommand(laminateCmd)

	laminateCmd.PersistentFlags().StringVarP(&lamMaterial, "material", "m", "carbon-t300", "Library material for every ply")
	laminateCmd.PersistentFlags().StringVarP(&lamAngles, "angles", "a", "0,45,-45,0", "Half-stack ply angles (degrees, mirrored)")
	laminateCmd.PersistentFlags().Float64VarP(&lamPlyThick, "ply-thickness", "t", 0.25, "Ply thickness (mm)")
	laminateCmd.PersistentFlags().StringVarP(&lamFile, "file", "f", "", "Layup YAML file (overrides material/angles)")
}
