// Package section provides the prismatic cross-section geometries the beam
// evaluator works on: hollow tubes, solid rods and rectangular blades.
package section

import (
	"fmt"
	"math"
)

// InvalidGeometryError reports a non-physical cross-section dimension.
type InvalidGeometryError struct {
	Param string
	Value float64
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("non-physical geometry %s=%g", e.Param, e.Value)
}

// Profile describes a prismatic beam cross-section. The shape set is closed:
// Tube, Rod and Rect cover the fork geometries the evaluator handles, and
// every shape validates its dimensions at construction.
type Profile interface {
	// Length is the beam length (m).
	Length() float64
	// Area is the cross-sectional area (m²).
	Area() float64
	// SecondMoment is the second moment of area about the bending axis (m⁴).
	SecondMoment() float64
	// Volume is the material volume of the member (m³).
	Volume() float64
	// HalfDepth is the distance from the neutral axis to the outer fiber (m).
	HalfDepth() float64
}

func checkDim(name string, v float64) error {
	// !(v > 0) also rejects NaN
	if !(v > 0) || math.IsInf(v, 0) {
		return &InvalidGeometryError{Param: name, Value: v}
	}
	return nil
}

// Tube is a hollow circular section, the usual fork blade geometry.
type Tube struct {
	L  float64 // length (m)
	D  float64 // outer diameter (m)
	Tw float64 // wall thickness (m)
}

// NewTube validates the dimensions. The wall must leave an open bore
// (D > 2·Tw); a solid member is a Rod, not a zero-bore tube.
func NewTube(length, outerDiameter, wall float64) (Tube, error) {
	if err := checkDim("length", length); err != nil {
		return Tube{}, err
	}
	if err := checkDim("diameter", outerDiameter); err != nil {
		return Tube{}, err
	}
	if err := checkDim("wall", wall); err != nil {
		return Tube{}, err
	}
	if outerDiameter <= 2*wall {
		return Tube{}, &InvalidGeometryError{Param: "wall", Value: wall}
	}
	return Tube{L: length, D: outerDiameter, Tw: wall}, nil
}

// InnerDiameter is the bore diameter D - 2·Tw (m).
func (t Tube) InnerDiameter() float64 { return t.D - 2*t.Tw }

func (t Tube) Length() float64 { return t.L }

func (t Tube) Area() float64 {
	d := t.InnerDiameter()
	return math.Pi * (t.D*t.D - d*d) / 4
}

func (t Tube) SecondMoment() float64 {
	d := t.InnerDiameter()
	d2, D2 := d*d, t.D*t.D
	return math.Pi * (D2*D2 - d2*d2) / 64
}

func (t Tube) Volume() float64 { return t.Area() * t.L }

func (t Tube) HalfDepth() float64 { return t.D / 2 }

// Rod is a solid circular section, the t_wall → D/2 limit of a tube.
type Rod struct {
	L float64 // length (m)
	D float64 // diameter (m)
}

// NewRod validates the dimensions of a solid circular member.
func NewRod(length, diameter float64) (Rod, error) {
	if err := checkDim("length", length); err != nil {
		return Rod{}, err
	}
	if err := checkDim("diameter", diameter); err != nil {
		return Rod{}, err
	}
	return Rod{L: length, D: diameter}, nil
}

func (r Rod) Length() float64 { return r.L }

func (r Rod) Area() float64 { return math.Pi * r.D * r.D / 4 }

func (r Rod) SecondMoment() float64 {
	d2 := r.D * r.D
	return math.Pi * d2 * d2 / 64
}

func (r Rod) Volume() float64 { return r.Area() * r.L }

func (r Rod) HalfDepth() float64 { return r.D / 2 }

// Rect is a solid rectangular blade bending about its horizontal axis.
type Rect struct {
	L float64 // length (m)
	W float64 // width, perpendicular to the load (m)
	H float64 // depth in the bending plane (m)
}

// NewRect validates the dimensions of a rectangular blade.
func NewRect(length, width, depth float64) (Rect, error) {
	if err := checkDim("length", length); err != nil {
		return Rect{}, err
	}
	if err := checkDim("width", width); err != nil {
		return Rect{}, err
	}
	if err := checkDim("depth", depth); err != nil {
		return Rect{}, err
	}
	return Rect{L: length, W: width, H: depth}, nil
}

func (r Rect) Length() float64 { return r.L }

func (r Rect) Area() float64 { return r.W * r.H }

func (r Rect) SecondMoment() float64 { return r.W * r.H * r.H * r.H / 12 }

func (r Rect) Volume() float64 { return r.Area() * r.L }

func (r Rect) HalfDepth() float64 { return r.H / 2 }

// Describe returns a one-line human summary of a profile for reports.
func Describe(p Profile) string {
	switch s := p.(type) {
	case Tube:
		return fmt.Sprintf("tube L=%g m, D=%g mm, wall=%g mm", s.L, s.D*1e3, s.Tw*1e3)
	case Rod:
		return fmt.Sprintf("rod L=%g m, D=%g mm", s.L, s.D*1e3)
	case Rect:
		return fmt.Sprintf("rect L=%g m, %g×%g mm", s.L, s.W*1e3, s.H*1e3)
	default:
		return fmt.Sprintf("%T", p)
	}
}
