// Package report renders evaluation results as PDF and XLSX documents.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/golam/internal/laminate"
	"github.com/alexiusacademia/golam/internal/mech"
)

// Summary collects everything a report page shows about one evaluation.
type Summary struct {
	Title    string
	Layup    string // stack notation, e.g. "[0/45/-45/0]s carbon-t300"
	Section  string // geometry description
	Case     mech.LoadCase
	Boundary mech.Boundary
	Laminate *laminate.Laminate
	Result   *mech.Result
}

// WritePDF renders the summary as a single-page A4 report. Core PDF fonts
// are Latin-1 only, so labels stick to ASCII (nu_xy, deg, kg/m3).
func WritePDF(s Summary, filename string) error {
	if s.Laminate == nil || s.Result == nil {
		return fmt.Errorf("report needs both a laminate and a result")
	}
	if s.Title == "" {
		s.Title = "Composite Member Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, s.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	heading(pdf, "Laminate")
	if s.Layup != "" {
		kv(pdf, "Layup", s.Layup)
	}
	kv(pdf, "Thickness", fmt.Sprintf("%.3f mm", s.Laminate.Thickness*1e3))
	kv(pdf, "Ex", fmt.Sprintf("%.2f GPa", s.Laminate.Ex/1e9))
	kv(pdf, "Ey", fmt.Sprintf("%.2f GPa", s.Laminate.Ey/1e9))
	kv(pdf, "Gxy", fmt.Sprintf("%.2f GPa", s.Laminate.Gxy/1e9))
	kv(pdf, "nu_xy", fmt.Sprintf("%.4f", s.Laminate.NuXY))
	kv(pdf, "Density", fmt.Sprintf("%.0f kg/m3", s.Laminate.Density))
	pdf.Ln(2)
	pdf.SetFont("Courier", "", 9)
	for i, p := range s.Laminate.Plies() {
		pdf.Cell(0, 5, fmt.Sprintf("  %2d  %-16s theta=%+4.0f deg  t=%.3f mm", i+1, p.Name, p.Theta, p.Thickness*1e3))
		pdf.Ln(5)
	}
	pdf.SetFont("Helvetica", "", 11)
	pdf.Ln(4)

	heading(pdf, "Section")
	kv(pdf, "Geometry", s.Section)
	pdf.Ln(4)

	heading(pdf, "Load Case")
	name := s.Case.Name
	if name == "" {
		name = "custom"
	}
	kv(pdf, "Case", name)
	kv(pdf, "Axial force", fmt.Sprintf("%.0f N", s.Case.Axial))
	kv(pdf, "Transverse force", fmt.Sprintf("%.0f N", s.Case.Transverse))
	if s.Case.Application > 0 {
		kv(pdf, "Applied at", fmt.Sprintf("%.3f m from free end", s.Case.Application))
	}
	kv(pdf, "Support", s.Boundary.String())
	pdf.Ln(4)

	heading(pdf, "Results")
	kv(pdf, "Max stress", fmt.Sprintf("%.2f MPa at x = %.3f m", s.Result.MaxStress/1e6, s.Result.MaxStressAt))
	kv(pdf, "Axial strain", fmt.Sprintf("%.4e", s.Result.Strain))
	for i, f := range s.Result.Frequencies {
		kv(pdf, fmt.Sprintf("Mode %d", i+1), fmt.Sprintf("%.1f Hz", f))
	}
	if s.Result.Damping > 0 {
		kv(pdf, "Damping ratio", fmt.Sprintf("%.4f", s.Result.Damping))
	}
	kv(pdf, "Mass", fmt.Sprintf("%.4f kg", s.Result.Mass))
	kv(pdf, "Material cost", fmt.Sprintf("%.2f", s.Result.Cost))

	ensureDir(filename)
	return pdf.OutputFileAndClose(filename)
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, text)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
}

func kv(pdf *gofpdf.Fpdf, label, value string) {
	pdf.Cell(50, 6, label)
	pdf.Cell(0, 6, value)
	pdf.Ln(6)
}

func ensureDir(filename string) {
	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}
}
