package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Beam cross-section geometry",
	Long: `Derived properties of the supported beam cross-sections.

Three shapes cover the members this tool analyzes:
  tube  - hollow circular (fork blades, seat stays)
  rod   - solid circular, the zero-bore limit of the tube
  rect  - solid rectangle (flat test coupons)

All dimensions are given in millimetres.

Subcommands:
  props  - Area, second moment, volume and extreme fiber distance`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
