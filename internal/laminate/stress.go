package laminate

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Resultants are the in-plane loads on a unit width of laminate: membrane
// forces in N/m, plate moments in N·m/m.
type Resultants struct {
	Nx, Ny, Nxy float64
	Mx, My, Mxy float64
}

// PlyStress is the recovered stress state at the mid-thickness of one ply,
// reported in both beam axes and material axes (Pa).
type PlyStress struct {
	Ply int     // 1-based position in the stack, bottom ply first
	Z   float64 // mid-ply offset from the laminate mid-plane (m)

	// Beam-axis components.
	SigmaX, SigmaY, TauXY float64

	// Material-axis components, the ones failure criteria want.
	Sigma1, Sigma2, Tau12 float64
}

// PlyStresses solves the constitutive relation ABD·{ε⁰,κ} = {N,M} for the
// mid-plane strains and curvatures, then recovers the stress at every ply's
// mid-thickness. The laminate itself is not modified.
func (l *Laminate) PlyStresses(r Resultants) ([]PlyStress, error) {
	load := mat.NewVecDense(6, []float64{r.Nx, r.Ny, r.Nxy, r.Mx, r.My, r.Mxy})
	var x mat.VecDense
	if err := x.SolveVec(l.abd, load); err != nil {
		return nil, fmt.Errorf("mid-plane strain solve: %w", err)
	}

	out := make([]PlyStress, 0, len(l.plies))
	z := -l.Thickness / 2
	for i, p := range l.plies {
		zMid := z + p.Thickness/2

		// Plate kinematics: ε(z) = ε⁰ + z·κ, in beam axes.
		eps := mat.NewVecDense(3, []float64{
			x.AtVec(0) + zMid*x.AtVec(3),
			x.AtVec(1) + zMid*x.AtVec(4),
			x.AtVec(2) + zMid*x.AtVec(5),
		})

		em := toMaterialStrain(p, eps)
		var sm, sg mat.VecDense
		sm.MulVec(reducedStiffness(p), em)
		sg.MulVec(stressTransform(-p.Theta), &sm)

		out = append(out, PlyStress{
			Ply:    i + 1,
			Z:      zMid,
			SigmaX: sg.AtVec(0),
			SigmaY: sg.AtVec(1),
			TauXY:  sg.AtVec(2),
			Sigma1: sm.AtVec(0),
			Sigma2: sm.AtVec(1),
			Tau12:  sm.AtVec(2),
		})
		z += p.Thickness
	}
	return out, nil
}
