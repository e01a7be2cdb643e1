// Package laminate homogenises ordered composite ply stacks with classical
// lamination theory: ABD stiffness assembly, effective engineering constants
// and per-ply stress recovery.
package laminate

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/golam/internal/material"
)

// reducedStiffness returns the plane-stress reduced stiffness matrix Q of a
// ply in its own material axes (Pa).
func reducedStiffness(p material.Ply) *mat.Dense {
	den := 1 - p.Nu12*p.Nu21()
	q11 := p.E1 / den
	q22 := p.E2 / den
	q12 := p.Nu12 * p.E2 / den
	return mat.NewDense(3, 3, []float64{
		q11, q12, 0,
		q12, q22, 0,
		0, 0, p.G12,
	})
}

// stressTransform returns the stress transformation matrix T(θ) taking
// beam-axis components to material-axis components. Its inverse is T(-θ).
func stressTransform(thetaDeg float64) *mat.Dense {
	r := thetaDeg * math.Pi / 180
	c, s := math.Cos(r), math.Sin(r)
	return mat.NewDense(3, 3, []float64{
		c * c, s * s, 2 * c * s,
		s * s, c * c, -2 * c * s,
		-c * s, c * s, c*c - s*s,
	})
}

// transformedStiffness rotates Q into beam axes. With engineering shear
// strain the congruence form Q̄ = T⁻¹·Q·T⁻ᵀ carries the Reuter correction
// and keeps Q̄ symmetric for every θ.
func transformedStiffness(p material.Ply) *mat.Dense {
	tinv := stressTransform(-p.Theta)
	var qt, qbar mat.Dense
	qt.Mul(reducedStiffness(p), tinv.T())
	qbar.Mul(tinv, &qt)
	return &qbar
}

// toMaterialStrain rotates an engineering strain vector from beam axes into
// the ply's material axes: ε₁₂ = T⁻ᵀ·ε_xy.
func toMaterialStrain(p material.Ply, eps *mat.VecDense) *mat.VecDense {
	tinv := stressTransform(-p.Theta)
	var out mat.VecDense
	out.MulVec(tinv.T(), eps)
	return &out
}
