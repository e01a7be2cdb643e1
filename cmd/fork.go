package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/golam/internal/laminate"
	"github.com/alexiusacademia/golam/internal/material"
	"github.com/alexiusacademia/golam/internal/section"
)

var (
	// Blade layup shared by the fork subcommands
	forkMaterial string
	forkAngles   string
	forkPlyThick float64
	forkFile     string

	// Blade geometry (mm)
	forkLength   float64
	forkDiameter float64
	forkWall     float64
)

var forkCmd = &cobra.Command{
	Use:   "fork",
	Short: "Fork blade analysis under riding loads",
	Long: `Analyze a composite fork blade modeled as a laminated tube clamped
at the crown and loaded at the dropout.

The blade is described by its layup (--material/--angles or --file)
and tube geometry (--length, --diameter, --wall, in millimetres).
Stations along the blade measure from the free dropout end.

Subcommands:
  analyze  - Stress profile under a riding load case
  vibrate  - Natural frequencies, damping and dynamic response
  report   - Full evaluation written as a PDF report`,
}

func init() {
	rootCmd.AddCommand(forkCmd)

	forkCmd.PersistentFlags().StringVarP(&forkMaterial, "material", "m", "carbon-t300", "Library material for every ply")
	forkCmd.PersistentFlags().StringVarP(&forkAngles, "angles", "a", "0,45,-45,0", "Half-stack ply angles (degrees, mirrored)")
	forkCmd.PersistentFlags().Float64VarP(&forkPlyThick, "ply-thickness", "t", 0.25, "Ply thickness (mm)")
	forkCmd.PersistentFlags().StringVarP(&forkFile, "file", "f", "", "Layup YAML file (overrides material/angles)")

	forkCmd.PersistentFlags().Float64VarP(&forkLength, "length", "l", 400, "Blade length (mm)")
	forkCmd.PersistentFlags().Float64VarP(&forkDiameter, "diameter", "d", 25, "Tube outer diameter (mm)")
	forkCmd.PersistentFlags().Float64VarP(&forkWall, "wall", "w", 2, "Tube wall thickness (mm)")
}

// forkBlade assembles the library, laminate and tube the fork subcommands
// all start from.
func forkBlade() (material.Library, *laminate.Laminate, section.Tube, string, error) {
	lib, err := loadLibrary()
	if err != nil {
		return nil, nil, section.Tube{}, "", err
	}
	lam, label, err := buildStack(lib, forkFile, forkMaterial, forkAngles, forkPlyThick)
	if err != nil {
		return nil, nil, section.Tube{}, "", err
	}
	tube, err := section.NewTube(forkLength*1e-3, forkDiameter*1e-3, forkWall*1e-3)
	if err != nil {
		return nil, nil, section.Tube{}, "", err
	}
	return lib, lam, tube, label, nil
}
