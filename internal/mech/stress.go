package mech

import (
	"fmt"
	"iter"
	"math"

	"github.com/alexiusacademia/golam/internal/laminate"
	"github.com/alexiusacademia/golam/internal/section"
)

// AxialStress returns the uniform normal stress F/A of a prismatic member
// under a pure axial force. Stress under axial load is a geometry effect
// only; the laminate modulus enters through strain, not stress.
func AxialStress(p section.Profile, axialForce float64) float64 {
	return axialForce / p.Area()
}

// AxialStrain returns the axial strain F/(Ex·A), where the effective
// laminate modulus does matter.
func AxialStrain(lam *laminate.Laminate, p section.Profile, axialForce float64) float64 {
	return axialForce / (lam.Ex * p.Area())
}

// BendingStress returns the flexure stress σ = M·y/I at a through-depth
// position y from the neutral axis. |y| may not exceed the section's
// half-depth.
func BendingStress(p section.Profile, moment, y float64) (float64, error) {
	if c := p.HalfDepth(); math.Abs(y) > c {
		return 0, fmt.Errorf("bending stress: fiber position %g m outside section (±%g m)", y, c)
	}
	return moment * y / p.SecondMoment(), nil
}

// StressSample is one station of a combined stress profile.
type StressSample struct {
	X       float64 // position along the beam, from the free end (m)
	Axial   float64 // uniform axial component (Pa)
	Bending float64 // outer-fiber bending component (Pa)
	Total   float64 // superposed stress at the outer fiber (Pa)
}

// StressProfile superposes the axial stress and the outer-fiber bending
// stress along the member. The blade is clamped at x = L, so a transverse
// force applied at x = a bends every section between the application point
// and the crown with moment F·(x - a); sections outboard of the load carry
// none.
//
// The returned sequence is lazy and restartable: ranging over it twice
// replays identical samples. samples fixes the resolution and must be at
// least 2 so both ends of the beam appear.
func StressProfile(p section.Profile, lc LoadCase, samples int) (iter.Seq[StressSample], error) {
	if samples < 2 {
		return nil, fmt.Errorf("stress profile: need at least 2 samples, got %d", samples)
	}
	length := p.Length()
	if a := lc.Application; a < 0 || a > length {
		return nil, fmt.Errorf("stress profile: application point %g m outside beam [0, %g]", a, length)
	}

	axial := AxialStress(p, lc.Axial)
	c := p.HalfDepth()
	inertia := p.SecondMoment()
	return func(yield func(StressSample) bool) {
		for i := 0; i < samples; i++ {
			x := length * float64(i) / float64(samples-1)
			var m float64
			if x > lc.Application {
				m = lc.Transverse * (x - lc.Application)
			}
			b := m * c / inertia
			if !yield(StressSample{X: x, Axial: axial, Bending: b, Total: axial + b}) {
				return
			}
		}
	}, nil
}
