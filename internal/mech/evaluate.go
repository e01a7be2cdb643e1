package mech

import (
	"math"
	"slices"

	"github.com/alexiusacademia/golam/internal/laminate"
	"github.com/alexiusacademia/golam/internal/section"
)

// Options tunes an Evaluate call. The zero value asks for the defaults:
// 50 profile stations, all table modes, cantilever support, no damping.
type Options struct {
	Samples     int                // stress profile resolution (≥ 2)
	Modes       int                // natural frequencies to report, 1..MaxModes
	Boundary    Boundary           // support condition
	LossFactors map[string]float64 // per-material loss factors; nil skips damping
}

// Result is the outcome of one full evaluation. It is plain data owned by
// the caller; the evaluator keeps nothing between calls.
type Result struct {
	Profile     []StressSample
	MaxStress   float64   // combined stress of largest magnitude (Pa)
	MaxStressAt float64   // its position from the free end (m)
	Strain      float64   // axial strain under the case's axial force
	Frequencies []float64 // bending natural frequencies (Hz)
	Damping     float64   // modal damping ratio, 0 when no loss factors given
	Mass        float64   // member mass (kg)
	Cost        float64   // member material cost
}

// Evaluate runs the complete static and modal analysis for one laminate,
// geometry and load case. Every output is recomputed from the inputs, so
// equal inputs always produce equal results.
func Evaluate(lam *laminate.Laminate, p section.Profile, lc LoadCase, opts Options) (*Result, error) {
	if opts.Samples == 0 {
		opts.Samples = 50
	}
	if opts.Modes == 0 {
		opts.Modes = MaxModes
	}

	seq, err := StressProfile(p, lc, opts.Samples)
	if err != nil {
		return nil, err
	}
	res := &Result{Profile: slices.Collect(seq)}
	for _, s := range res.Profile {
		if math.Abs(s.Total) > math.Abs(res.MaxStress) {
			res.MaxStress = s.Total
			res.MaxStressAt = s.X
		}
	}
	res.Strain = AxialStrain(lam, p, lc.Axial)

	res.Frequencies, err = NaturalFrequencies(lam, p, opts.Boundary, opts.Modes)
	if err != nil {
		return nil, err
	}
	if opts.LossFactors != nil {
		res.Damping, err = DampingRatio(lam, opts.LossFactors)
		if err != nil {
			return nil, err
		}
	}

	res.Mass = lam.Density * p.Volume()
	res.Cost = res.Mass * lam.CostPerKg
	return res, nil
}
