package mech_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alexiusacademia/golam/internal/material"
	"github.com/alexiusacademia/golam/internal/mech"
)

func TestEvaluateBaselineFork(t *testing.T) {
	lam := carbonLaminate(t)
	tube := forkBlade(t)
	lc := mech.LoadCase{Name: "braking", Axial: 400, Transverse: 500}

	res, err := mech.Evaluate(lam, tube, lc, mech.Options{
		LossFactors: material.Builtin().LossFactors(),
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Profile) != 50 {
		t.Errorf("default profile has %d stations, want 50", len(res.Profile))
	}
	if len(res.Frequencies) != 3 {
		t.Errorf("default modes = %d, want 3", len(res.Frequencies))
	}

	// Independent reference values for this laminate and tube.
	relCheck(t, "f1", res.Frequencies[0], 265.12, 1e-3)
	relCheck(t, "mass", res.Mass, 0.092489, 1e-4)
	relCheck(t, "cost", res.Cost, 4.6244, 1e-4)
	relCheck(t, "damping", res.Damping, 0.003, 1e-9)
	relCheck(t, "axial strain", res.Strain, 400/(138e9*tube.Area()), 1e-9)

	// The critical station of a cantilever is the clamped crown.
	relCheck(t, "worst position", res.MaxStressAt, 0.4, 1e-12)
	wantBending, err := mech.BendingStress(tube, 500*0.4, tube.HalfDepth())
	if err != nil {
		t.Fatal(err)
	}
	relCheck(t, "worst stress", res.MaxStress, mech.AxialStress(tube, 400)+wantBending, 1e-9)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	lam := carbonLaminate(t)
	tube := forkBlade(t)
	lc, err := mech.Case("impact")
	if err != nil {
		t.Fatal(err)
	}

	a, err := mech.Evaluate(lam, tube, lc, mech.Options{Samples: 33})
	if err != nil {
		t.Fatal(err)
	}
	b, err := mech.Evaluate(lam, tube, lc, mech.Options{Samples: 33})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("repeated evaluation differs (-first +second):\n%s", diff)
	}
}

func TestEvaluatePropagatesFailures(t *testing.T) {
	lam := carbonLaminate(t)
	tube := forkBlade(t)

	if _, err := mech.Evaluate(lam, tube, mech.LoadCase{}, mech.Options{Samples: 1}); err == nil {
		t.Error("bad sample count not propagated")
	}
	if _, err := mech.Evaluate(lam, tube, mech.LoadCase{}, mech.Options{Modes: 7}); err == nil {
		t.Error("bad mode count not propagated")
	}
	if _, err := mech.Evaluate(lam, tube, mech.LoadCase{}, mech.Options{
		LossFactors: map[string]float64{"pvc": 0.1},
	}); err == nil {
		t.Error("missing loss factor not propagated")
	}
}

func TestEvaluateNoDampingByDefault(t *testing.T) {
	lam := carbonLaminate(t)
	tube := forkBlade(t)

	res, err := mech.Evaluate(lam, tube, mech.LoadCase{Axial: 100}, mech.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Damping != 0 {
		t.Errorf("Damping = %g without loss factors, want 0", res.Damping)
	}
}

func TestEvaluatePureAxialHasFlatProfile(t *testing.T) {
	lam := carbonLaminate(t)
	tube := forkBlade(t)

	res, err := mech.Evaluate(lam, tube, mech.LoadCase{Axial: 500}, mech.Options{Samples: 10})
	if err != nil {
		t.Fatal(err)
	}
	want := mech.AxialStress(tube, 500)
	for _, s := range res.Profile {
		if s.Bending != 0 {
			t.Fatalf("bending %g at x=%g under pure axial load", s.Bending, s.X)
		}
		if math.Abs(s.Total-want) > 1e-9*want {
			t.Fatalf("total %g at x=%g, want uniform %g", s.Total, s.X, want)
		}
	}
	relCheck(t, "MaxStress", res.MaxStress, want, 1e-12)
}
