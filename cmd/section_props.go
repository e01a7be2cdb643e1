package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/golam/internal/section"
)

var (
	// Section geometry (mm)
	secShape    string
	secLength   float64
	secDiameter float64
	secWall     float64
	secWidth    float64
	secHeight   float64
)

var sectionPropsCmd = &cobra.Command{
	Use:   "props",
	Short: "Derived properties of a cross-section",
	Long: `Calculate the area, second moment of area, volume and extreme
fiber distance of a beam cross-section.

Examples:
  # Standard fork blade tube
  golam section props --shape tube --length 400 --diameter 25 --wall 2

  # Solid rod of the same diameter
  golam section props --shape rod --length 400 --diameter 25

  # Flat coupon
  golam section props --shape rect --length 250 --width 25 --height 2`,
	Run: runSectionProps,
}

func init() {
	sectionCmd.AddCommand(sectionPropsCmd)

	sectionPropsCmd.Flags().StringVar(&secShape, "shape", "tube", "Cross-section shape: tube, rod or rect")
	sectionPropsCmd.Flags().Float64VarP(&secLength, "length", "l", 400, "Member length (mm)")
	sectionPropsCmd.Flags().Float64VarP(&secDiameter, "diameter", "d", 25, "Outer diameter (mm, tube and rod)")
	sectionPropsCmd.Flags().Float64VarP(&secWall, "wall", "w", 2, "Wall thickness (mm, tube)")
	sectionPropsCmd.Flags().Float64Var(&secWidth, "width", 25, "Section width (mm, rect)")
	sectionPropsCmd.Flags().Float64Var(&secHeight, "height", 2, "Section height (mm, rect)")
}

// sectionFromFlags converts the millimetre flag values into a profile.
func sectionFromFlags() (section.Profile, error) {
	switch secShape {
	case "tube":
		return section.NewTube(secLength*1e-3, secDiameter*1e-3, secWall*1e-3)
	case "rod":
		return section.NewRod(secLength*1e-3, secDiameter*1e-3)
	case "rect":
		return section.NewRect(secLength*1e-3, secWidth*1e-3, secHeight*1e-3)
	}
	return nil, fmt.Errorf("unknown shape %q (tube, rod or rect)", secShape)
}

func runSectionProps(cmd *cobra.Command, args []string) {
	p, err := sectionFromFlags()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CROSS-SECTION PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  %s\n", section.Describe(p))
	fmt.Println()

	fmt.Println("DERIVED PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area (A):\t%.4f mm²\n", p.Area()*1e6)
	fmt.Fprintf(w, "  Second moment (I):\t%.1f mm⁴\n", p.SecondMoment()*1e12)
	fmt.Fprintf(w, "  Volume (V):\t%.0f mm³\n", p.Volume()*1e9)
	fmt.Fprintf(w, "  Extreme fiber (c):\t%.2f mm\n", p.HalfDepth()*1e3)
	w.Flush()
	fmt.Println()
}
