package diagram_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/alexiusacademia/golam/internal/diagram"
	"github.com/alexiusacademia/golam/internal/laminate"
	"github.com/alexiusacademia/golam/internal/material"
	"github.com/alexiusacademia/golam/internal/mech"
	"github.com/alexiusacademia/golam/internal/section"
	"github.com/alexiusacademia/golam/internal/sweep"
)

func testLaminate(t *testing.T) *laminate.Laminate {
	t.Helper()
	rec, err := material.Builtin().Get("carbon-t300")
	if err != nil {
		t.Fatal(err)
	}
	lam, err := laminate.SymmetricLayup(rec, []float64{0, 45}, 0.125e-3)
	if err != nil {
		t.Fatal(err)
	}
	return lam
}

func testProfile(t *testing.T) []mech.StressSample {
	t.Helper()
	tube, err := section.NewTube(0.4, 0.025, 0.002)
	if err != nil {
		t.Fatal(err)
	}
	seq, err := mech.StressProfile(tube, mech.LoadCase{Axial: 400, Transverse: 500}, 30)
	if err != nil {
		t.Fatal(err)
	}
	return slices.Collect(seq)
}

func TestDrawStack(t *testing.T) {
	out := diagram.DrawStack(testLaminate(t))

	if !strings.Contains(out, "4 plies") {
		t.Errorf("missing ply count:\n%s", out)
	}
	if !strings.Contains(out, "(symmetric)") {
		t.Errorf("missing symmetry marker:\n%s", out)
	}
	if !strings.Contains(out, "mid-plane") {
		t.Errorf("missing mid-plane marker:\n%s", out)
	}
	if got := strings.Count(out, "carbon-t300"); got != 4 {
		t.Errorf("found %d ply labels, want 4:\n%s", got, out)
	}
	// Every body line shares the box width.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	want := len([]rune(lines[1]))
	for i, line := range lines[1:] {
		if n := len([]rune(line)); n != want {
			t.Errorf("line %d width %d, want %d: %q", i+1, n, want, line)
		}
	}
}

func TestDrawStackSkipsMidPlaneForOddCounts(t *testing.T) {
	rec, err := material.Builtin().Get("glass-e")
	if err != nil {
		t.Fatal(err)
	}
	p, err := rec.Ply(0, 1e-3)
	if err != nil {
		t.Fatal(err)
	}
	lam, err := laminate.Build([]material.Ply{p, p, p})
	if err != nil {
		t.Fatal(err)
	}
	out := diagram.DrawStack(lam)
	if strings.Contains(out, "mid-plane") {
		t.Errorf("odd stack should not mark a mid-plane boundary:\n%s", out)
	}
}

func TestProfileChart(t *testing.T) {
	out := diagram.ProfileChart(testProfile(t), 60, 12)
	if !strings.Contains(out, "stress along blade") {
		t.Errorf("missing caption:\n%s", out)
	}
	if len(strings.Split(out, "\n")) < 12 {
		t.Errorf("chart shorter than requested height:\n%s", out)
	}
}

func TestResponseChart(t *testing.T) {
	pts := []mech.ResponsePoint{{At: 0, Value: 0}, {At: 0.01, Value: 1e-3}, {At: 0.02, Value: 0.5e-3}}
	out := diagram.ResponseChart(pts, "step response, mm", 40, 8)
	if !strings.Contains(out, "step response") {
		t.Errorf("missing caption:\n%s", out)
	}
}

func TestSweepChart(t *testing.T) {
	angles := []float64{0, 45}
	points := []sweep.Point{
		{Fraction: 0, Angle: 0, Ex: 27e9},
		{Fraction: 0, Angle: 45, Ex: 27e9},
		{Fraction: 1, Angle: 0, Ex: 138e9},
		{Fraction: 1, Angle: 45, Ex: 23e9},
	}
	out := diagram.SweepChart(points, angles, diagram.MetricEx, 40, 8)
	if !strings.Contains(out, "Ex, GPa") {
		t.Errorf("missing metric label:\n%s", out)
	}
	if diagram.SweepChart(points[:3], angles, diagram.MetricEx, 40, 8) != "" {
		t.Error("ragged grid should render nothing")
	}
}
