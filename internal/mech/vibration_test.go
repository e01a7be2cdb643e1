package mech_test

import (
	"errors"
	"testing"

	"github.com/alexiusacademia/golam/internal/laminate"
	"github.com/alexiusacademia/golam/internal/material"
	"github.com/alexiusacademia/golam/internal/mech"
	"github.com/alexiusacademia/golam/internal/section"
)

func TestCantileverFrequencies(t *testing.T) {
	lam := carbonLaminate(t) // unidirectional, Ex = 138 GPa, ρ = 1600
	tube := forkBlade(t)

	freqs, err := mech.NaturalFrequencies(lam, tube, mech.FixedFree, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(freqs) != 3 {
		t.Fatalf("got %d modes, want 3", len(freqs))
	}

	// Reference values computed independently for this tube.
	relCheck(t, "f1", freqs[0], 265.12, 1e-3)
	relCheck(t, "f2", freqs[1], 1661.5, 1e-3)
	relCheck(t, "f3", freqs[2], 4652.3, 1e-3)

	// Mode ratios are fixed by the roots alone: (β₂/β₁)², (β₃/β₁)².
	relCheck(t, "f2/f1", freqs[1]/freqs[0], 6.2669, 1e-4)
	relCheck(t, "f3/f1", freqs[2]/freqs[0], 17.547, 1e-4)
}

func TestFrequencyScalesInverseSquareOfLength(t *testing.T) {
	lam := carbonLaminate(t)

	short, err := section.NewTube(0.4, 0.025, 0.002)
	if err != nil {
		t.Fatal(err)
	}
	long, err := section.NewTube(0.8, 0.025, 0.002)
	if err != nil {
		t.Fatal(err)
	}

	fShort, err := mech.NaturalFrequencies(lam, short, mech.FixedFree, 1)
	if err != nil {
		t.Fatal(err)
	}
	fLong, err := mech.NaturalFrequencies(lam, long, mech.FixedFree, 1)
	if err != nil {
		t.Fatal(err)
	}
	relCheck(t, "f1 ratio for doubled length", fShort[0]/fLong[0], 4, 1e-9)
}

func TestStifferLaminateRingsHigher(t *testing.T) {
	tube := forkBlade(t)
	onAxis := carbonLaminate(t, 0, 0)
	offAxis := carbonLaminate(t, 45, -45)

	fOn, err := mech.NaturalFrequencies(onAxis, tube, mech.FixedFree, 1)
	if err != nil {
		t.Fatal(err)
	}
	fOff, err := mech.NaturalFrequencies(offAxis, tube, mech.FixedFree, 1)
	if err != nil {
		t.Fatal(err)
	}
	if fOn[0] <= fOff[0] {
		t.Errorf("on-axis f1 = %g should exceed ±45 f1 = %g", fOn[0], fOff[0])
	}
}

func TestBoundaryConditionsOrder(t *testing.T) {
	lam := carbonLaminate(t)
	tube := forkBlade(t)

	f1 := func(bc mech.Boundary) float64 {
		f, err := mech.NaturalFrequencies(lam, tube, bc, 1)
		if err != nil {
			t.Fatal(err)
		}
		return f[0]
	}

	// Stiffer supports raise the fundamental: free < pinned < fixed ends.
	ff := f1(mech.FixedFree)
	pp := f1(mech.PinnedPinned)
	fp := f1(mech.FixedPinned)
	xx := f1(mech.FixedFixed)
	if !(ff < pp && pp < fp && fp < xx) {
		t.Errorf("support ordering broken: fixed-free %g, pinned-pinned %g, fixed-pinned %g, fixed-fixed %g", ff, pp, fp, xx)
	}
}

func TestModeCountLimits(t *testing.T) {
	lam := carbonLaminate(t)
	tube := forkBlade(t)

	for _, modes := range []int{0, -1, 4, 10} {
		_, err := mech.NaturalFrequencies(lam, tube, mech.FixedFree, modes)
		var modeErr *mech.UnsupportedModeCountError
		if !errors.As(err, &modeErr) {
			t.Fatalf("modes=%d: error = %v, want *UnsupportedModeCountError", modes, err)
		}
		if modeErr.Requested != modes {
			t.Errorf("Requested = %d, want %d", modeErr.Requested, modes)
		}
	}

	for modes := 1; modes <= 3; modes++ {
		freqs, err := mech.NaturalFrequencies(lam, tube, mech.FixedFree, modes)
		if err != nil {
			t.Fatalf("modes=%d: %v", modes, err)
		}
		if len(freqs) != modes {
			t.Errorf("modes=%d returned %d frequencies", modes, len(freqs))
		}
	}
}

func TestParseBoundary(t *testing.T) {
	for _, bc := range []mech.Boundary{mech.FixedFree, mech.PinnedPinned, mech.FixedFixed, mech.FixedPinned} {
		got, err := mech.ParseBoundary(bc.String())
		if err != nil {
			t.Fatalf("ParseBoundary(%q) error = %v", bc.String(), err)
		}
		if got != bc {
			t.Errorf("round-trip %v → %v", bc, got)
		}
	}
	if _, err := mech.ParseBoundary("simply-wrong"); err == nil {
		t.Error("ParseBoundary accepted an unknown name")
	}
}

func TestDampingRatioThicknessWeighting(t *testing.T) {
	lib := material.Builtin()
	carbonRec, _ := lib.Get("carbon-t300")
	flaxRec, _ := lib.Get("flax-epoxy")

	cp, err := carbonRec.Ply(0, 1e-3)
	if err != nil {
		t.Fatal(err)
	}
	fp, err := flaxRec.Ply(0, 3e-3)
	if err != nil {
		t.Fatal(err)
	}
	lam, err := laminate.Build([]material.Ply{cp, fp})
	if err != nil {
		t.Fatal(err)
	}

	zeta, err := mech.DampingRatio(lam, lib.LossFactors())
	if err != nil {
		t.Fatal(err)
	}
	// (0.006·1 + 0.040·3) / (2·4) by hand.
	relCheck(t, "zeta", zeta, 0.01575, 1e-9)

	// More flax, more damping.
	allCarbon, err := laminate.Build([]material.Ply{cp})
	if err != nil {
		t.Fatal(err)
	}
	zc, err := mech.DampingRatio(allCarbon, lib.LossFactors())
	if err != nil {
		t.Fatal(err)
	}
	if zeta <= zc {
		t.Errorf("hybrid ζ = %g should exceed all-carbon ζ = %g", zeta, zc)
	}
}

func TestDampingRatioUnknownMaterial(t *testing.T) {
	lam := carbonLaminate(t)
	_, err := mech.DampingRatio(lam, map[string]float64{"someone-else": 0.01})
	if err == nil {
		t.Error("DampingRatio succeeded without a loss factor for the ply material")
	}
}
