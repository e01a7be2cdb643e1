package material

// Constituent holds the isotropic constants of a fiber or matrix phase,
// in the units composite datasheets use: modulus in GPa, density in kg/m³.
type Constituent struct {
	E          float64 // Young's modulus (GPa)
	Nu         float64 // Poisson's ratio
	Rho        float64 // density (kg/m³)
	CostPerKg  float64
	LossFactor float64 // material loss factor η
}

func (c Constituent) shearModulus() float64 {
	return c.E / (2 * (1 + c.Nu))
}

// Estimator derives the constants of a unidirectional ply from its fiber and
// matrix constituents at fiber volume fraction vf. Implementations are plain
// functions so a caller can swap micromechanics models freely.
type Estimator func(fiber, matrix Constituent, vf float64) (Properties, error)

func checkConstituents(fiber, matrix Constituent, vf float64) error {
	if !(vf > 0) || vf >= 1 {
		return &InvalidMaterialError{Param: "vf", Value: vf}
	}
	for _, c := range []struct {
		param string
		v     float64
	}{
		{"fiber E", fiber.E}, {"fiber rho", fiber.Rho},
		{"matrix E", matrix.E}, {"matrix rho", matrix.Rho},
	} {
		if !(c.v > 0) {
			return &InvalidMaterialError{Param: c.param, Value: c.v}
		}
	}
	return nil
}

// voigtReuss carries the shared parts of both estimators: E1, ν12, density,
// cost and loss factor all follow the linear rule of mixtures.
func voigtReuss(name string, fiber, matrix Constituent, vf float64) Properties {
	vm := 1 - vf
	rho := vf*fiber.Rho + vm*matrix.Rho
	return Properties{
		Name:       name,
		E1:         vf*fiber.E + vm*matrix.E,
		Nu12:       vf*fiber.Nu + vm*matrix.Nu,
		Rho:        rho,
		CostPerKg:  (vf*fiber.Rho*fiber.CostPerKg + vm*matrix.Rho*matrix.CostPerKg) / rho,
		LossFactor: vf*fiber.LossFactor + vm*matrix.LossFactor,
	}
}

// RuleOfMixtures estimates ply constants with the Voigt bound for E1 and the
// Reuss (inverse) bound for E2 and G12. It underestimates the transverse
// stiffness of real laminae but is the standard first pass.
func RuleOfMixtures(fiber, matrix Constituent, vf float64) (Properties, error) {
	if err := checkConstituents(fiber, matrix, vf); err != nil {
		return Properties{}, err
	}
	vm := 1 - vf
	p := voigtReuss("rule-of-mixtures", fiber, matrix, vf)
	p.E2 = 1 / (vf/fiber.E + vm/matrix.E)
	p.G12 = 1 / (vf/fiber.shearModulus() + vm/matrix.shearModulus())
	return p, nil
}

// HalpinTsai estimates ply constants with the semi-empirical Halpin-Tsai
// relations for E2 (ξ=2) and G12 (ξ=1); E1 and ν12 keep the rule of
// mixtures. It tracks measured transverse moduli much closer than the
// Reuss bound.
func HalpinTsai(fiber, matrix Constituent, vf float64) (Properties, error) {
	if err := checkConstituents(fiber, matrix, vf); err != nil {
		return Properties{}, err
	}
	p := voigtReuss("halpin-tsai", fiber, matrix, vf)
	p.E2 = halpinTsai(fiber.E, matrix.E, vf, 2)
	p.G12 = halpinTsai(fiber.shearModulus(), matrix.shearModulus(), vf, 1)
	return p, nil
}

func halpinTsai(pf, pm, vf, xi float64) float64 {
	eta := (pf/pm - 1) / (pf/pm + xi)
	return pm * (1 + xi*eta*vf) / (1 - eta*vf)
}
