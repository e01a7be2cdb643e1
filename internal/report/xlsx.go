package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/golam/internal/mech"
	"github.com/alexiusacademia/golam/internal/sweep"
)

// WriteSweepXLSX writes one sweep point per row, stresses in MPa and
// moduli in GPa so the sheet reads without scientific notation.
func WriteSweepXLSX(points []sweep.Point, filename string) error {
	if len(points) == 0 {
		return fmt.Errorf("sweep has no points")
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sweep"
	f.SetSheetName("Sheet1", sheet)

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}
	sw.SetRow("A1", []interface{}{
		"fraction", "angle_deg", "ex_gpa", "f1_hz", "damping", "mass_kg", "cost", "max_stress_mpa",
	})
	for i, p := range points {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, []interface{}{
			p.Fraction, p.Angle, p.Ex / 1e9, p.F1, p.Damping, p.Mass, p.Cost, p.MaxStress / 1e6,
		}); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}

	ensureDir(filename)
	return f.SaveAs(filename)
}

// WriteProfileXLSX writes the stress profile, one station per row.
func WriteProfileXLSX(profile []mech.StressSample, filename string) error {
	if len(profile) == 0 {
		return fmt.Errorf("stress profile is empty")
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "StressProfile"
	f.SetSheetName("Sheet1", sheet)

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}
	sw.SetRow("A1", []interface{}{"x_m", "axial_mpa", "bending_mpa", "combined_mpa"})
	for i, s := range profile {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, []interface{}{s.X, s.Axial / 1e6, s.Bending / 1e6, s.Total / 1e6}); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}

	ensureDir(filename)
	return f.SaveAs(filename)
}
