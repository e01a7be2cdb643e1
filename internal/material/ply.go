// Package material models unidirectional composite plies: their orthotropic
// engineering constants, a built-in library of literature values, and
// micromechanics estimators that derive ply constants from fiber and matrix
// constituents.
package material

import (
	"fmt"
	"math"
)

// Ply holds the orthotropic in-plane constants of one unidirectional lamina
// together with its orientation and thickness in a stack.
//
// All quantities are SI: moduli in Pa, density in kg/m³, thickness in m.
// Theta is the fiber angle in degrees measured from the beam axis and is
// kept normalised to (-90°, 90°].
type Ply struct {
	Name      string  // material identifier, used for loss-factor lookups
	E1        float64 // longitudinal (fiber direction) modulus (Pa)
	E2        float64 // transverse modulus (Pa)
	G12       float64 // in-plane shear modulus (Pa)
	Nu12      float64 // major Poisson's ratio
	Rho       float64 // density (kg/m³)
	CostPerKg float64 // raw material cost per kilogram
	Theta     float64 // fiber angle from the beam axis (degrees)
	Thickness float64 // cured ply thickness (m)
}

// InvalidMaterialError reports a non-physical material constant.
type InvalidMaterialError struct {
	Param string
	Value float64
}

func (e *InvalidMaterialError) Error() string {
	return fmt.Sprintf("non-physical material property %s=%g", e.Param, e.Value)
}

// New validates p and returns it with Theta folded into (-90°, 90°].
// Moduli, density and thickness must be positive and finite; the Poisson's
// ratio must satisfy the orthotropic stability bound ν12²·E2/E1 < 1, which
// keeps the plane-stress stiffness matrix positive definite.
func New(p Ply) (Ply, error) {
	checks := []struct {
		name string
		v    float64
	}{
		{"E1", p.E1},
		{"E2", p.E2},
		{"G12", p.G12},
		{"rho", p.Rho},
		{"thickness", p.Thickness},
	}
	for _, c := range checks {
		// !(v > 0) also rejects NaN
		if !(c.v > 0) || math.IsInf(c.v, 0) {
			return Ply{}, &InvalidMaterialError{Param: c.name, Value: c.v}
		}
	}
	if math.IsNaN(p.Nu12) || math.IsInf(p.Nu12, 0) {
		return Ply{}, &InvalidMaterialError{Param: "nu12", Value: p.Nu12}
	}
	if 1-p.Nu12*p.Nu12*p.E2/p.E1 <= 0 {
		return Ply{}, &InvalidMaterialError{Param: "nu12", Value: p.Nu12}
	}
	if p.CostPerKg < 0 || math.IsNaN(p.CostPerKg) || math.IsInf(p.CostPerKg, 0) {
		return Ply{}, &InvalidMaterialError{Param: "cost", Value: p.CostPerKg}
	}
	if math.IsNaN(p.Theta) || math.IsInf(p.Theta, 0) {
		return Ply{}, &InvalidMaterialError{Param: "theta", Value: p.Theta}
	}

	p.Theta = FoldAngle(p.Theta)
	return p, nil
}

// Nu21 returns the minor Poisson's ratio implied by the reciprocity
// relation ν21 = ν12·E2/E1.
func (p Ply) Nu21() float64 {
	return p.Nu12 * p.E2 / p.E1
}

// FoldAngle normalises an orientation angle in degrees into (-90°, 90°].
// Fibers are unsigned lines, so θ and θ±180° describe the same ply.
func FoldAngle(deg float64) float64 {
	a := math.Mod(deg, 180)
	switch {
	case a > 90:
		a -= 180
	case a <= -90:
		a += 180
	}
	return a
}
