package laminate

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/golam/internal/material"
)

// ErrEmptyLaminate is returned by Build when the stack has no plies.
var ErrEmptyLaminate = errors.New("laminate: stack needs at least one ply")

// Laminate is an ordered ply stack homogenised at build time. The exported
// fields are derived results; treat a built Laminate as read-only.
type Laminate struct {
	// Effective in-plane engineering constants (Pa).
	Ex   float64 // axial modulus along the beam axis
	Ey   float64 // transverse modulus
	Gxy  float64 // in-plane shear modulus
	NuXY float64 // in-plane Poisson's ratio

	Thickness    float64 // total stack thickness (m)
	Density      float64 // thickness-weighted density (kg/m³)
	ArealDensity float64 // mass per unit laminate area (kg/m²)
	CostPerKg    float64 // mass-weighted material cost

	plies []material.Ply
	abd   *mat.Dense // 6×6 stiffness, kept for ply-stress recovery
}

// Build homogenises an ordered ply stack. Stacking order is preserved: it
// fixes the through-thickness position of every ply and with it the coupling
// and bending blocks of the ABD matrix. Each ply is validated on the way in,
// so hand-assembled stacks get the same checks as library ones.
func Build(plies []material.Ply) (*Laminate, error) {
	if len(plies) == 0 {
		return nil, ErrEmptyLaminate
	}

	lam := &Laminate{plies: slices.Clone(plies)}
	for i, p := range lam.plies {
		valid, err := material.New(p)
		if err != nil {
			return nil, fmt.Errorf("ply %d: %w", i+1, err)
		}
		lam.plies[i] = valid
		lam.Thickness += valid.Thickness
	}

	// Assemble A, B, D by walking the stack bottom-up from z = -h/2.
	a := mat.NewDense(3, 3, nil)
	b := mat.NewDense(3, 3, nil)
	d := mat.NewDense(3, 3, nil)
	z := -lam.Thickness / 2
	var arealMass, arealCost float64
	for _, p := range lam.plies {
		qbar := transformedStiffness(p)
		zTop := z + p.Thickness
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				q := qbar.At(i, j)
				a.Set(i, j, a.At(i, j)+q*(zTop-z))
				b.Set(i, j, b.At(i, j)+q*(zTop*zTop-z*z)/2)
				d.Set(i, j, d.At(i, j)+q*(zTop*zTop*zTop-z*z*z)/3)
			}
		}
		arealMass += p.Rho * p.Thickness
		arealCost += p.Rho * p.Thickness * p.CostPerKg
		z = zTop
	}
	lam.ArealDensity = arealMass
	lam.Density = arealMass / lam.Thickness
	lam.CostPerKg = arealCost / arealMass

	lam.abd = mat.NewDense(6, 6, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			lam.abd.Set(i, j, a.At(i, j))
			lam.abd.Set(i, j+3, b.At(i, j))
			lam.abd.Set(i+3, j, b.At(i, j))
			lam.abd.Set(i+3, j+3, d.At(i, j))
		}
	}

	// Effective constants come from the compliance, not from A directly,
	// so bending-extension coupling of unsymmetric stacks is accounted for.
	var s mat.Dense
	if err := s.Inverse(lam.abd); err != nil {
		return nil, fmt.Errorf("laminate stiffness is singular: %w", err)
	}
	h := lam.Thickness
	lam.Ex = 1 / (h * s.At(0, 0))
	lam.Ey = 1 / (h * s.At(1, 1))
	lam.Gxy = 1 / (h * s.At(2, 2))
	lam.NuXY = -s.At(0, 1) / s.At(0, 0)

	return lam, nil
}

// SymmetricLayup builds the [θ₁/θ₂/…/θₙ]s stack: the given orientations
// followed by their mirror image, every ply cut from the same material at
// the same thickness (m).
func SymmetricLayup(props material.Properties, thetas []float64, thickness float64) (*Laminate, error) {
	if len(thetas) == 0 {
		return nil, ErrEmptyLaminate
	}
	plies := make([]material.Ply, 0, 2*len(thetas))
	for _, th := range thetas {
		p, err := props.Ply(th, thickness)
		if err != nil {
			return nil, err
		}
		plies = append(plies, p)
	}
	for i := len(thetas) - 1; i >= 0; i-- {
		plies = append(plies, plies[i])
	}
	return Build(plies)
}

// Plies returns a copy of the stack in order, bottom ply first.
func (l *Laminate) Plies() []material.Ply {
	return slices.Clone(l.plies)
}

// ABD returns a copy of the assembled 6×6 stiffness matrix.
func (l *Laminate) ABD() *mat.Dense {
	return mat.DenseCopyOf(l.abd)
}

// IsSymmetric reports whether the stack mirrors about its mid-plane: ply i
// matches ply n-1-i in constants, orientation and thickness. Symmetric
// stacks have no bending-extension coupling, the geometry the tubular beam
// model assumes.
func (l *Laminate) IsSymmetric() bool {
	n := len(l.plies)
	for i := 0; i < n/2; i++ {
		p, q := l.plies[i], l.plies[n-1-i]
		if p.E1 != q.E1 || p.E2 != q.E2 || p.G12 != q.G12 || p.Nu12 != q.Nu12 ||
			p.Rho != q.Rho || p.Theta != q.Theta || p.Thickness != q.Thickness {
			return false
		}
	}
	return true
}
