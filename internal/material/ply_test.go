package material_test

import (
	"errors"
	"math"
	"testing"

	"github.com/alexiusacademia/golam/internal/material"
)

func validPly() material.Ply {
	return material.Ply{
		Name:      "carbon-t300",
		E1:        138e9,
		E2:        9e9,
		G12:       6.9e9,
		Nu12:      0.3,
		Rho:       1600,
		CostPerKg: 50,
		Theta:     45,
		Thickness: 0.125e-3,
	}
}

func TestNewAcceptsValidPly(t *testing.T) {
	p, err := material.New(validPly())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if p.Theta != 45 {
		t.Errorf("Theta = %g, want 45", p.Theta)
	}
}

func TestNewRejectsNonPhysicalConstants(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*material.Ply)
		param  string
	}{
		{"zero E1", func(p *material.Ply) { p.E1 = 0 }, "E1"},
		{"negative E2", func(p *material.Ply) { p.E2 = -9e9 }, "E2"},
		{"NaN G12", func(p *material.Ply) { p.G12 = math.NaN() }, "G12"},
		{"infinite E1", func(p *material.Ply) { p.E1 = math.Inf(1) }, "E1"},
		{"zero density", func(p *material.Ply) { p.Rho = 0 }, "rho"},
		{"zero thickness", func(p *material.Ply) { p.Thickness = 0 }, "thickness"},
		{"negative thickness", func(p *material.Ply) { p.Thickness = -1e-4 }, "thickness"},
		{"NaN nu12", func(p *material.Ply) { p.Nu12 = math.NaN() }, "nu12"},
		{"unstable nu12", func(p *material.Ply) { p.Nu12 = 4.5 }, "nu12"},
		{"negative cost", func(p *material.Ply) { p.CostPerKg = -1 }, "cost"},
		{"NaN theta", func(p *material.Ply) { p.Theta = math.NaN() }, "theta"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPly()
			tc.mutate(&p)
			_, err := material.New(p)
			var invErr *material.InvalidMaterialError
			if !errors.As(err, &invErr) {
				t.Fatalf("New() error = %v, want *InvalidMaterialError", err)
			}
			if invErr.Param != tc.param {
				t.Errorf("Param = %q, want %q", invErr.Param, tc.param)
			}
		})
	}
}

func TestNewFoldsTheta(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{45, 45},
		{90, 90},
		{-90, 90},
		{135, -45},
		{-135, 45},
		{180, 0},
		{270, 90},
		{360, 0},
		{450, 90},
		{-45, -45},
	}
	for _, tc := range cases {
		p := validPly()
		p.Theta = tc.in
		got, err := material.New(p)
		if err != nil {
			t.Fatalf("New(theta=%g) error = %v", tc.in, err)
		}
		if math.Abs(got.Theta-tc.want) > 1e-12 {
			t.Errorf("FoldAngle(%g) = %g, want %g", tc.in, got.Theta, tc.want)
		}
	}
}

func TestNu21Reciprocity(t *testing.T) {
	p, err := material.New(validPly())
	if err != nil {
		t.Fatal(err)
	}
	want := p.Nu12 * p.E2 / p.E1
	if got := p.Nu21(); math.Abs(got-want) > 1e-15 {
		t.Errorf("Nu21() = %g, want %g", got, want)
	}
	if p.Nu21() >= p.Nu12 {
		t.Errorf("Nu21 = %g should be below Nu12 = %g when E2 < E1", p.Nu21(), p.Nu12)
	}
}
