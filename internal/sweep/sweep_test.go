package sweep_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alexiusacademia/golam/internal/material"
	"github.com/alexiusacademia/golam/internal/mech"
	"github.com/alexiusacademia/golam/internal/section"
	"github.com/alexiusacademia/golam/internal/sweep"
)

func studyConfig(t *testing.T) sweep.Config {
	t.Helper()
	lib := material.Builtin()
	flax, err := lib.Get("flax-epoxy")
	if err != nil {
		t.Fatal(err)
	}
	carbon, err := lib.Get("carbon-t300")
	if err != nil {
		t.Fatal(err)
	}
	tube, err := section.NewTube(0.4, 0.025, 0.002)
	if err != nil {
		t.Fatal(err)
	}
	return sweep.Config{
		Inner:       flax,
		Outer:       carbon,
		Fractions:   []float64{0, 0.25, 0.5, 0.75, 1},
		Angles:      []float64{0, 30, 45},
		HalfPlies:   8,
		Profile:     tube,
		Load:        mech.LoadCase{Axial: 400, Transverse: 500},
		LossFactors: lib.LossFactors(),
	}
}

func TestRunCoversGridInOrder(t *testing.T) {
	cfg := studyConfig(t)
	points, err := sweep.Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != len(cfg.Fractions)*len(cfg.Angles) {
		t.Fatalf("got %d points, want %d", len(points), len(cfg.Fractions)*len(cfg.Angles))
	}

	idx := 0
	for _, frac := range cfg.Fractions {
		for _, angle := range cfg.Angles {
			pt := points[idx]
			if pt.Fraction != frac || pt.Angle != angle {
				t.Errorf("point %d = (%g, %g), want (%g, %g)", idx, pt.Fraction, pt.Angle, frac, angle)
			}
			if pt.F1 <= 0 || pt.Mass <= 0 {
				t.Errorf("point %d has non-physical outputs: %+v", idx, pt)
			}
			idx++
		}
	}
}

func TestRunParallelMatchesSerial(t *testing.T) {
	cfg := studyConfig(t)

	cfg.Workers = 1
	serial, err := sweep.Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	cfg.Workers = 8
	parallel, err := sweep.Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(serial, parallel); diff != "" {
		t.Errorf("parallel run differs from serial (-serial +parallel):\n%s", diff)
	}
}

func TestHybridTrendsAcrossFraction(t *testing.T) {
	cfg := studyConfig(t)
	cfg.Angles = []float64{0}
	points, err := sweep.Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	allFlax, allCarbon := points[0], points[len(points)-1]
	if allCarbon.Ex <= allFlax.Ex {
		t.Errorf("carbon skins should stiffen the stack: Ex %g vs %g", allCarbon.Ex, allFlax.Ex)
	}
	if allCarbon.Damping >= allFlax.Damping {
		t.Errorf("flax core should damp more: ζ %g vs %g", allCarbon.Damping, allFlax.Damping)
	}
	if allCarbon.Cost <= allFlax.Cost {
		t.Errorf("carbon should cost more: %g vs %g", allCarbon.Cost, allFlax.Cost)
	}

	// Stiffness climbs monotonically with the carbon share at 0°.
	for i := 1; i < len(points); i++ {
		if points[i].Ex < points[i-1].Ex {
			t.Errorf("Ex fell between fractions %g and %g", points[i-1].Fraction, points[i].Fraction)
		}
	}
}

func TestRunValidatesConfig(t *testing.T) {
	ctx := context.Background()

	cfg := studyConfig(t)
	cfg.Fractions = nil
	if _, err := sweep.Run(ctx, cfg); err == nil {
		t.Error("empty fractions accepted")
	}

	cfg = studyConfig(t)
	cfg.Angles = nil
	if _, err := sweep.Run(ctx, cfg); err == nil {
		t.Error("empty angles accepted")
	}

	cfg = studyConfig(t)
	cfg.Fractions = []float64{1.5}
	if _, err := sweep.Run(ctx, cfg); err == nil {
		t.Error("fraction above 1 accepted")
	}

	cfg = studyConfig(t)
	cfg.Profile = nil
	if _, err := sweep.Run(ctx, cfg); err == nil {
		t.Error("missing profile accepted")
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := studyConfig(t)
	cfg.Workers = 1
	if _, err := sweep.Run(ctx, cfg); err == nil {
		t.Error("cancelled context still produced a full sweep")
	}
}
