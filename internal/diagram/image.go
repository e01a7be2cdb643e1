package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/golam/internal/mech"
	"github.com/alexiusacademia/golam/internal/sweep"
)

var seriesColors = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
}

// ExportProfileImage writes the combined stress profile as a line chart.
// The format follows the file extension (.png, .svg or .pdf, default .png).
func ExportProfileImage(profile []mech.StressSample, filename string) error {
	if len(profile) == 0 {
		return fmt.Errorf("stress profile is empty")
	}

	p := plot.New()
	p.Title.Text = "Combined Stress Along Blade"
	p.X.Label.Text = "Distance from dropout (m)"
	p.Y.Label.Text = "Stress (MPa)"
	p.Legend.Top = true
	p.Legend.Left = true

	series := []struct {
		name   string
		pick   func(mech.StressSample) float64
		dashes []vg.Length
	}{
		{"axial", func(s mech.StressSample) float64 { return s.Axial }, []vg.Length{vg.Points(4), vg.Points(3)}},
		{"bending", func(s mech.StressSample) float64 { return s.Bending }, []vg.Length{vg.Points(1), vg.Points(2)}},
		{"combined", func(s mech.StressSample) float64 { return s.Total }, nil},
	}
	for i, sr := range series {
		xys := make(plotter.XYs, len(profile))
		for j, s := range profile {
			xys[j] = plotter.XY{X: s.X, Y: sr.pick(s) / 1e6}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = seriesColors[i%len(seriesColors)]
		line.LineStyle.Dashes = sr.dashes
		p.Add(line)
		p.Legend.Add(sr.name, line)
	}

	return save(p, filename)
}

// ExportSweepImage writes one sweep metric against the hybrid fraction, one
// line per swept angle.
func ExportSweepImage(points []sweep.Point, angles []float64, metric SweepMetric, filename string) error {
	if len(angles) == 0 || len(points) == 0 || len(points)%len(angles) != 0 {
		return fmt.Errorf("sweep points do not form a grid over %d angles", len(angles))
	}

	p := plot.New()
	p.Title.Text = "Hybrid Layup Sweep"
	p.X.Label.Text = "Outer material fraction"
	p.Y.Label.Text = metric.label()
	p.Legend.Top = true

	rows := len(points) / len(angles)
	for j, angle := range angles {
		xys := make(plotter.XYs, rows)
		for i := 0; i < rows; i++ {
			pt := points[i*len(angles)+j]
			xys[i] = plotter.XY{X: pt.Fraction, Y: metric.value(pt)}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = seriesColors[j%len(seriesColors)]
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("±%g°", angle), line)
	}

	return save(p, filename)
}

// ExportResponseImage writes a dynamic response series (spectrum or
// history) with displacement converted to millimetres.
func ExportResponseImage(points []mech.ResponsePoint, title, xLabel, filename string) error {
	if len(points) == 0 {
		return fmt.Errorf("response series is empty")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Tip displacement (mm)"

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i] = plotter.XY{X: pt.At, Y: pt.Value * 1e3}
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = seriesColors[0]
	p.Add(line)

	return save(p, filename)
}

// save writes the plot with the format chosen by the file extension.
func save(p *plot.Plot, filename string) error {
	width := 8 * vg.Inch
	height := 6 * vg.Inch

	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
