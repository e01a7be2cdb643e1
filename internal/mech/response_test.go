package mech_test

import (
	"math"
	"testing"

	"github.com/alexiusacademia/golam/internal/mech"
)

func TestFrequencyResponseStaticLimit(t *testing.T) {
	lam := carbonLaminate(t)
	tube := forkBlade(t)
	force := 100.0

	pts, err := mech.FrequencyResponse(lam, tube, 0.02, force, 0, 600, 601)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 601 {
		t.Fatalf("got %d points, want 601", len(pts))
	}

	// At 0 Hz the transfer function collapses to the static deflection
	// F·L³/(3EI) of a tip-loaded cantilever.
	static := force * math.Pow(0.4, 3) / (3 * lam.Ex * tube.SecondMoment())
	relCheck(t, "static deflection", pts[0].Value, static, 1e-9)
}

func TestFrequencyResponsePeaksAtResonance(t *testing.T) {
	lam := carbonLaminate(t)
	tube := forkBlade(t)

	pts, err := mech.FrequencyResponse(lam, tube, 0.02, 100, 50, 500, 901)
	if err != nil {
		t.Fatal(err)
	}

	peak := 0
	for i, pt := range pts {
		if pt.Value > pts[peak].Value {
			peak = i
		}
	}
	if peak == 0 || peak == len(pts)-1 {
		t.Fatalf("resonance peak sits on the band edge at %g Hz", pts[peak].At)
	}
	// The tip-mass model of this blade resonates near 269 Hz.
	if math.Abs(pts[peak].At-269) > 10 {
		t.Errorf("peak at %g Hz, want ≈269 Hz", pts[peak].At)
	}
	if pts[peak].Value < 10*pts[0].Value {
		t.Errorf("lightly damped peak %g should tower over the static response %g", pts[peak].Value, pts[0].Value)
	}
}

func TestMoreDampingFlattensThePeak(t *testing.T) {
	lam := carbonLaminate(t)
	tube := forkBlade(t)

	peak := func(zeta float64) float64 {
		pts, err := mech.FrequencyResponse(lam, tube, zeta, 100, 50, 500, 901)
		if err != nil {
			t.Fatal(err)
		}
		max := 0.0
		for _, pt := range pts {
			max = math.Max(max, pt.Value)
		}
		return max
	}

	light := peak(0.01)
	heavy := peak(0.10)
	if heavy >= light {
		t.Errorf("ζ=0.10 peak %g should sit below ζ=0.01 peak %g", heavy, light)
	}
}

func TestStepResponseSettlesToStatic(t *testing.T) {
	lam := carbonLaminate(t)
	tube := forkBlade(t)
	force := 100.0

	pts, err := mech.StepResponse(lam, tube, 0.3, force, 0.1, 201)
	if err != nil {
		t.Fatal(err)
	}

	if pts[0].At != 0 || pts[0].Value != 0 {
		t.Errorf("history must start at rest, got (%g, %g)", pts[0].At, pts[0].Value)
	}

	static := force * math.Pow(0.4, 3) / (3 * lam.Ex * tube.SecondMoment())
	last := pts[len(pts)-1]
	relCheck(t, "settled displacement", last.Value, static, 1e-6)

	// Underdamped: some overshoot, but bounded well under double.
	var max float64
	for _, pt := range pts {
		max = math.Max(max, pt.Value)
	}
	if max <= static {
		t.Error("underdamped step shows no overshoot")
	}
	if max > 1.5*static {
		t.Errorf("overshoot %g too large for ζ=0.3 (static %g)", max, static)
	}
}

func TestStepResponseOverdampedIsMonotonic(t *testing.T) {
	lam := carbonLaminate(t)
	tube := forkBlade(t)

	pts, err := mech.StepResponse(lam, tube, 1.5, 100, 0.05, 101)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(pts); i++ {
		if pts[i].Value < pts[i-1].Value-1e-15 {
			t.Fatalf("overdamped response fell between samples %d and %d", i-1, i)
		}
	}
}

func TestSteadyStateAmplitude(t *testing.T) {
	lam := carbonLaminate(t)
	tube := forkBlade(t)

	pts, err := mech.SteadyState(lam, tube, 0.05, 100, 100, 0.05, 501)
	if err != nil {
		t.Fatal(err)
	}

	var max float64
	for _, pt := range pts {
		max = math.Max(max, math.Abs(pt.Value))
	}
	// Five full drive periods are sampled, so the extreme of the sine is
	// visible; it must match the transfer-function amplitude.
	spectrum, err := mech.FrequencyResponse(lam, tube, 0.05, 100, 100, 101, 2)
	if err != nil {
		t.Fatal(err)
	}
	amp := spectrum[0].Value
	if max > amp*(1+1e-9) {
		t.Errorf("response %g exceeds the steady amplitude %g", max, amp)
	}
	if max < 0.95*amp {
		t.Errorf("sampled extreme %g too far below the amplitude %g", max, amp)
	}
}

func TestResponseValidation(t *testing.T) {
	lam := carbonLaminate(t)
	tube := forkBlade(t)

	if _, err := mech.FrequencyResponse(lam, tube, -0.1, 100, 0, 100, 10); err == nil {
		t.Error("negative damping accepted")
	}
	if _, err := mech.FrequencyResponse(lam, tube, 0.1, 100, 200, 100, 10); err == nil {
		t.Error("inverted frequency band accepted")
	}
	if _, err := mech.FrequencyResponse(lam, tube, 0.1, 100, 0, 100, 1); err == nil {
		t.Error("single-sample spectrum accepted")
	}
	if _, err := mech.StepResponse(lam, tube, 0.1, 100, 0, 10); err == nil {
		t.Error("zero duration accepted")
	}
	if _, err := mech.SteadyState(lam, tube, 0.1, 100, 0, 1, 10); err == nil {
		t.Error("zero drive frequency accepted")
	}
}
