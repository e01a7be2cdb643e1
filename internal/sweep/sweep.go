// Package sweep runs hybrid-laminate design studies: a grid of stacking
// variants is built and evaluated in parallel, producing the points of a
// carpet plot.
package sweep

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/alexiusacademia/golam/internal/laminate"
	"github.com/alexiusacademia/golam/internal/logging"
	"github.com/alexiusacademia/golam/internal/material"
	"github.com/alexiusacademia/golam/internal/mech"
	"github.com/alexiusacademia/golam/internal/section"
)

// Config describes the study grid. For every (fraction, angle) pair a
// symmetric hybrid stack is built: the outer share of the half-stack uses
// Outer material at ±angle, the remainder uses Inner material on axis.
type Config struct {
	Inner material.Properties // core material, laid at 0°
	Outer material.Properties // skin material, laid at ±angle

	Fractions []float64 // outer-material share of the half-stack, each in [0, 1]
	Angles    []float64 // skin orientations to sweep (degrees)

	HalfPlies    int     // plies per half-stack (default 8)
	PlyThickness float64 // per-ply thickness (m, default 0.125 mm)

	Profile section.Profile
	Load    mech.LoadCase

	Boundary    mech.Boundary
	LossFactors map[string]float64 // nil skips damping

	Workers int // parallel evaluations; default NumCPU
}

// Point is one carpet-plot sample: the grid coordinates plus the outputs a
// designer trades against each other.
type Point struct {
	Fraction  float64
	Angle     float64 // degrees
	Ex        float64 // Pa
	F1        float64 // Hz
	Damping   float64
	Mass      float64 // kg
	Cost      float64
	MaxStress float64 // Pa
}

func (c *Config) validate() error {
	if len(c.Fractions) == 0 {
		return fmt.Errorf("sweep: no fractions given")
	}
	if len(c.Angles) == 0 {
		return fmt.Errorf("sweep: no angles given")
	}
	for _, f := range c.Fractions {
		if f < 0 || f > 1 || math.IsNaN(f) {
			return fmt.Errorf("sweep: fraction %g outside [0, 1]", f)
		}
	}
	if c.Profile == nil {
		return fmt.Errorf("sweep: no section profile given")
	}
	return nil
}

// Run evaluates the whole grid. Results come back in grid order (fractions
// outer, angles inner) regardless of scheduling; the first failing point
// cancels the rest.
func Run(ctx context.Context, cfg Config) ([]Point, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.HalfPlies == 0 {
		cfg.HalfPlies = 8
	}
	if cfg.PlyThickness == 0 {
		cfg.PlyThickness = 0.125e-3
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	log := logging.New("sweep")
	log.Debug("starting sweep",
		"fractions", len(cfg.Fractions), "angles", len(cfg.Angles), "workers", workers)

	points := make([]Point, len(cfg.Fractions)*len(cfg.Angles))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, frac := range cfg.Fractions {
		for j, angle := range cfg.Angles {
			idx := i*len(cfg.Angles) + j
			frac, angle := frac, angle
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				pt, err := evalPoint(&cfg, frac, angle)
				if err != nil {
					return fmt.Errorf("fraction %.2f angle %.0f°: %w", frac, angle, err)
				}
				points[idx] = pt
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Debug("sweep finished", "points", len(points))
	return points, nil
}

// evalPoint builds the hybrid stack for one grid coordinate and runs the
// full evaluation on it.
func evalPoint(cfg *Config, frac, angle float64) (Point, error) {
	plies, err := hybridHalf(cfg, frac, angle)
	if err != nil {
		return Point{}, err
	}
	// Mirror for symmetry.
	for i := len(plies) - 1; i >= 0; i-- {
		plies = append(plies, plies[i])
	}

	lam, err := laminate.Build(plies)
	if err != nil {
		return Point{}, err
	}
	res, err := mech.Evaluate(lam, cfg.Profile, cfg.Load, mech.Options{
		Samples:     16,
		Modes:       1,
		Boundary:    cfg.Boundary,
		LossFactors: cfg.LossFactors,
	})
	if err != nil {
		return Point{}, err
	}

	return Point{
		Fraction:  frac,
		Angle:     angle,
		Ex:        lam.Ex,
		F1:        res.Frequencies[0],
		Damping:   res.Damping,
		Mass:      res.Mass,
		Cost:      res.Cost,
		MaxStress: res.MaxStress,
	}, nil
}

// hybridHalf lays the outer skins first (they sit furthest from the
// mid-plane after mirroring), alternating +angle/-angle so the stack stays
// balanced, then fills the core with on-axis inner material.
func hybridHalf(cfg *Config, frac, angle float64) ([]material.Ply, error) {
	n := cfg.HalfPlies
	outer := int(math.Round(frac * float64(n)))
	plies := make([]material.Ply, 0, 2*n)
	for i := 0; i < n; i++ {
		props, theta := cfg.Inner, 0.0
		if i < outer {
			props = cfg.Outer
			theta = angle
			if i%2 == 1 {
				theta = -angle
			}
		}
		p, err := props.Ply(theta, cfg.PlyThickness)
		if err != nil {
			return nil, err
		}
		plies = append(plies, p)
	}
	return plies, nil
}
