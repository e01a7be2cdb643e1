package mech

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/golam/internal/laminate"
	"github.com/alexiusacademia/golam/internal/section"
)

// Boundary selects the support condition for modal analysis.
type Boundary int

const (
	// FixedFree is the fork blade case: clamped crown, free dropout.
	FixedFree Boundary = iota
	PinnedPinned
	FixedFixed
	FixedPinned
)

var boundaryNames = map[Boundary]string{
	FixedFree:    "fixed-free",
	PinnedPinned: "pinned-pinned",
	FixedFixed:   "fixed-fixed",
	FixedPinned:  "fixed-pinned",
}

func (b Boundary) String() string {
	if name, ok := boundaryNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Boundary(%d)", int(b))
}

// ParseBoundary maps a CLI name like "fixed-free" to a support condition.
func ParseBoundary(s string) (Boundary, error) {
	for b, name := range boundaryNames {
		if s == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown boundary condition %q (have: fixed-free, pinned-pinned, fixed-fixed, fixed-pinned)", s)
}

// MaxModes is the highest bending mode the closed-form root table covers.
const MaxModes = 3

// betaL holds the first three roots βₙL of the Euler-Bernoulli frequency
// equation per support condition.
var betaL = map[Boundary][MaxModes]float64{
	FixedFree:    {1.8751040687, 4.6940911330, 7.8547574382},
	PinnedPinned: {math.Pi, 2 * math.Pi, 3 * math.Pi},
	FixedFixed:   {4.7300407449, 7.8532046241, 10.9956078380},
	FixedPinned:  {3.9266023120, 7.0685827450, 10.2101761240},
}

// UnsupportedModeCountError is returned when more bending modes are
// requested than the root table provides.
type UnsupportedModeCountError struct {
	Requested int
}

func (e *UnsupportedModeCountError) Error() string {
	return fmt.Sprintf("unsupported mode count %d: closed-form roots cover modes 1..%d", e.Requested, MaxModes)
}

// NaturalFrequencies returns the first modes bending natural frequencies
// (Hz) of the laminated member from the Euler-Bernoulli relation
//
//	fₙ = (βₙL)² / (2πL²) · √(Ex·I / (ρ·A))
//
// with the laminate supplying the modulus and density and the profile the
// geometry. modes must lie in 1..MaxModes.
func NaturalFrequencies(lam *laminate.Laminate, p section.Profile, bc Boundary, modes int) ([]float64, error) {
	if modes < 1 || modes > MaxModes {
		return nil, &UnsupportedModeCountError{Requested: modes}
	}
	roots, ok := betaL[bc]
	if !ok {
		return nil, fmt.Errorf("unknown boundary condition %v", bc)
	}

	length := p.Length()
	mu := lam.Density * p.Area() // mass per unit length (kg/m)
	stiffness := lam.Ex * p.SecondMoment()

	out := make([]float64, modes)
	for i := range out {
		bl := roots[i]
		out[i] = bl * bl / (2 * math.Pi * length * length) * math.Sqrt(stiffness/mu)
	}
	return out, nil
}

// DampingRatio estimates the modal damping ratio of the stack as the
// thickness-weighted average of the per-material loss factors, ζ ≈ η/2.
// Every ply must find its material name in lossFactors.
func DampingRatio(lam *laminate.Laminate, lossFactors map[string]float64) (float64, error) {
	var weighted, h float64
	for i, p := range lam.Plies() {
		eta, ok := lossFactors[p.Name]
		if !ok {
			return 0, fmt.Errorf("no loss factor for ply %d material %q", i+1, p.Name)
		}
		weighted += eta * p.Thickness
		h += p.Thickness
	}
	return weighted / (2 * h), nil
}
