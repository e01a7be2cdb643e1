package mech

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/golam/internal/laminate"
	"github.com/alexiusacademia/golam/internal/section"
)

// sdof reduces the laminated cantilever to its tip-mass equivalent: static
// tip stiffness k = 3EI/L³ and the Rayleigh effective mass 33m/140.
func sdof(lam *laminate.Laminate, p section.Profile) (k, m float64) {
	length := p.Length()
	k = 3 * lam.Ex * p.SecondMoment() / (length * length * length)
	m = 33.0 / 140.0 * lam.Density * p.Area() * length
	return k, m
}

// ResponsePoint is one sample of a dynamic response series.
type ResponsePoint struct {
	At    float64 // frequency (Hz) for spectra, time (s) for histories
	Value float64 // tip displacement (m)
}

func checkResponseArgs(zeta float64, samples int) error {
	if zeta < 0 || math.IsNaN(zeta) {
		return fmt.Errorf("damping ratio %g must be non-negative", zeta)
	}
	if samples < 2 {
		return fmt.Errorf("need at least 2 samples, got %d", samples)
	}
	return nil
}

// FrequencyResponse sweeps the steady-state tip amplitude of the clamped
// blade under a transverse tip force of constant amplitude across
// [fMin, fMax] Hz. The magnitude follows the SDOF transfer function
// |H(ω)| = 1/√((k-mω²)² + (cω)²) with c = 2ζ√(km).
func FrequencyResponse(lam *laminate.Laminate, p section.Profile, zeta, force, fMin, fMax float64, samples int) ([]ResponsePoint, error) {
	if err := checkResponseArgs(zeta, samples); err != nil {
		return nil, fmt.Errorf("frequency response: %w", err)
	}
	if fMin < 0 || fMax <= fMin {
		return nil, fmt.Errorf("frequency response: bad band [%g, %g] Hz", fMin, fMax)
	}

	k, m := sdof(lam, p)
	c := 2 * zeta * math.Sqrt(k*m)
	out := make([]ResponsePoint, samples)
	for i := range out {
		f := fMin + (fMax-fMin)*float64(i)/float64(samples-1)
		w := 2 * math.Pi * f
		re := k - m*w*w
		im := c * w
		out[i] = ResponsePoint{At: f, Value: force / math.Hypot(re, im)}
	}
	return out, nil
}

// StepResponse returns the tip displacement history after a transverse tip
// force is applied suddenly at t = 0 and held. Underdamped systems ring
// toward the static deflection F/k; at or above critical damping the
// approach is monotonic.
func StepResponse(lam *laminate.Laminate, p section.Profile, zeta, force, duration float64, samples int) ([]ResponsePoint, error) {
	if err := checkResponseArgs(zeta, samples); err != nil {
		return nil, fmt.Errorf("step response: %w", err)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("step response: duration %g s must be positive", duration)
	}

	k, m := sdof(lam, p)
	wn := math.Sqrt(k / m)
	static := force / k
	out := make([]ResponsePoint, samples)
	for i := range out {
		t := duration * float64(i) / float64(samples-1)
		var x float64
		if zeta < 1 {
			wd := wn * math.Sqrt(1-zeta*zeta)
			decay := math.Exp(-zeta * wn * t)
			x = static * (1 - decay*(math.Cos(wd*t)+zeta*wn/wd*math.Sin(wd*t)))
		} else {
			// critically damped closed form, a close stand-in for ζ ≥ 1
			x = static * (1 - math.Exp(-wn*t)*(1+wn*t))
		}
		out[i] = ResponsePoint{At: t, Value: x}
	}
	return out, nil
}

// SteadyState returns the fully developed response to a sinusoidal tip
// force F·sin(2πf·t): a sine at the drive frequency, scaled by |H| and
// lagging by the phase angle.
func SteadyState(lam *laminate.Laminate, p section.Profile, zeta, force, driveHz, duration float64, samples int) ([]ResponsePoint, error) {
	if err := checkResponseArgs(zeta, samples); err != nil {
		return nil, fmt.Errorf("steady state: %w", err)
	}
	if driveHz <= 0 || duration <= 0 {
		return nil, fmt.Errorf("steady state: drive %g Hz and duration %g s must be positive", driveHz, duration)
	}

	k, m := sdof(lam, p)
	c := 2 * zeta * math.Sqrt(k*m)
	w := 2 * math.Pi * driveHz
	re := k - m*w*w
	im := c * w
	amp := force / math.Hypot(re, im)
	phase := math.Atan2(im, re)

	out := make([]ResponsePoint, samples)
	for i := range out {
		t := duration * float64(i) / float64(samples-1)
		out[i] = ResponsePoint{At: t, Value: amp * math.Sin(w*t-phase)}
	}
	return out, nil
}
