// Package diagram renders laminate stacks and analysis results for the
// terminal and for image export.
package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/golam/internal/laminate"
	"github.com/alexiusacademia/golam/internal/mech"
	"github.com/alexiusacademia/golam/internal/sweep"
)

const stackWidth = 42

// ply shading cycles per material so hybrid stacks read at a glance.
var shades = []rune{'░', '▒', '▓'}

// DrawStack renders the through-thickness layup as a boxed diagram, top ply
// first, thicker plies taller, with the mid-plane marked when a ply
// boundary falls on it.
func DrawStack(lam *laminate.Laminate) string {
	plies := lam.Plies()

	// Assign a shade per distinct material, in order of first appearance.
	shadeOf := map[string]rune{}
	for _, p := range plies {
		if _, ok := shadeOf[p.Name]; !ok {
			shadeOf[p.Name] = shades[len(shadeOf)%len(shades)]
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("  LAMINATE STACK  %d plies, %.3f mm", len(plies), lam.Thickness*1e3))
	if lam.IsSymmetric() {
		sb.WriteString("  (symmetric)")
	}
	sb.WriteString("\n")
	sb.WriteString("  ┌" + strings.Repeat("─", stackWidth) + "┐\n")

	// Walk from the top ply down so the drawing matches the physical stack.
	half := len(plies) / 2
	for i := len(plies) - 1; i >= 0; i-- {
		p := plies[i]
		label := fmt.Sprintf(" %2d  %-14s θ=%+4.0f°  %6.3f mm ", i+1, p.Name, p.Theta, p.Thickness*1e3)
		if len([]rune(label)) > stackWidth {
			label = string([]rune(label)[:stackWidth])
		}
		sb.WriteString("  │" + pad(label, stackWidth) + "│\n")

		// Extra shaded rows for plies well above the mean thickness.
		extra := int(p.Thickness/lam.Thickness*float64(2*len(plies))) - 1
		for r := 0; r < extra; r++ {
			fill := strings.Repeat(string(shadeOf[p.Name]), stackWidth-10)
			sb.WriteString("  │" + pad("     "+fill, stackWidth) + "│\n")
		}

		switch {
		case len(plies)%2 == 0 && i == half:
			sb.WriteString("  ├─── mid-plane " + strings.Repeat("─", stackWidth-14) + "┤\n")
		case i > 0:
			sb.WriteString("  ├" + strings.Repeat("┄", stackWidth) + "┤\n")
		}
	}
	sb.WriteString("  └" + strings.Repeat("─", stackWidth) + "┘\n")
	return sb.String()
}

func pad(s string, width int) string {
	if n := width - len([]rune(s)); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// ProfileChart plots the axial, bending and combined stress along the blade
// as an ASCII line chart in MPa.
func ProfileChart(profile []mech.StressSample, width, height int) string {
	series := make([][]float64, 3)
	for i := range series {
		series[i] = make([]float64, len(profile))
	}
	for i, s := range profile {
		series[0][i] = s.Axial / 1e6
		series[1][i] = s.Bending / 1e6
		series[2][i] = s.Total / 1e6
	}
	return asciigraph.PlotMany(series,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption("stress along blade, MPa (axial / bending / combined), dropout → crown"),
	)
}

// ResponseChart plots a dynamic response series (spectrum or history) with
// displacements in mm.
func ResponseChart(points []mech.ResponsePoint, caption string, width, height int) string {
	data := make([]float64, len(points))
	for i, pt := range points {
		data[i] = pt.Value * 1e3
	}
	return asciigraph.Plot(data,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	)
}

// SweepMetric selects which Point output a sweep chart shows.
type SweepMetric int

const (
	MetricEx SweepMetric = iota
	MetricF1
	MetricDamping
	MetricMass
	MetricCost
)

func (m SweepMetric) label() string {
	switch m {
	case MetricEx:
		return "Ex, GPa"
	case MetricF1:
		return "f1, Hz"
	case MetricDamping:
		return "damping ratio"
	case MetricMass:
		return "mass, kg"
	case MetricCost:
		return "cost"
	}
	return "?"
}

func (m SweepMetric) value(p sweep.Point) float64 {
	switch m {
	case MetricEx:
		return p.Ex / 1e9
	case MetricF1:
		return p.F1
	case MetricDamping:
		return p.Damping
	case MetricMass:
		return p.Mass
	case MetricCost:
		return p.Cost
	}
	return 0
}

// SweepChart plots one metric against the hybrid fraction, one series per
// swept angle. Points must be in grid order as Run returns them.
func SweepChart(points []sweep.Point, angles []float64, metric SweepMetric, width, height int) string {
	if len(points) == 0 || len(angles) == 0 || len(points)%len(angles) != 0 {
		return ""
	}
	series := make([][]float64, len(angles))
	rows := len(points) / len(angles)
	for j := range angles {
		series[j] = make([]float64, rows)
		for i := 0; i < rows; i++ {
			series[j][i] = metric.value(points[i*len(angles)+j])
		}
	}

	labels := make([]string, len(angles))
	for i, a := range angles {
		labels[i] = fmt.Sprintf("±%g°", a)
	}
	return asciigraph.PlotMany(series,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(fmt.Sprintf("%s vs outer fraction (series: %s)", metric.label(), strings.Join(labels, ", "))),
	)
}
