package material

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed library.yaml
var builtinFS embed.FS

// Properties is a material record in the units composite datasheets use:
// moduli in GPa, density in kg/m³. Records come from the embedded library,
// user YAML files or spreadsheet imports, and convert to SI plies via Ply.
type Properties struct {
	Name       string  `yaml:"name"`
	E1         float64 `yaml:"e1_gpa"`
	E2         float64 `yaml:"e2_gpa"`
	G12        float64 `yaml:"g12_gpa"`
	Nu12       float64 `yaml:"nu12"`
	Rho        float64 `yaml:"density_kgm3"`
	CostPerKg  float64 `yaml:"cost_per_kg"`
	LossFactor float64 `yaml:"loss_factor"`
	Source     string  `yaml:"source,omitempty"`
}

// Ply converts the record to an SI ply cut at the given orientation
// (degrees) and thickness (m).
func (p Properties) Ply(thetaDeg, thickness float64) (Ply, error) {
	return New(Ply{
		Name:      p.Name,
		E1:        p.E1 * 1e9,
		E2:        p.E2 * 1e9,
		G12:       p.G12 * 1e9,
		Nu12:      p.Nu12,
		Rho:       p.Rho,
		CostPerKg: p.CostPerKg,
		Theta:     thetaDeg,
		Thickness: thickness,
	})
}

// Library maps material names to property records. It is plain data: every
// caller owns its own copy and nothing in this package holds shared state.
type Library map[string]Properties

// Builtin parses the embedded literature library into a fresh Library.
func Builtin() Library {
	data, err := builtinFS.ReadFile("library.yaml")
	if err != nil {
		panic("material: embedded library missing: " + err.Error())
	}
	lib, err := Parse(data)
	if err != nil {
		panic("material: embedded library corrupt: " + err.Error())
	}
	return lib
}

// Parse reads a YAML list of material records into a Library. Records must
// carry unique, non-empty names and physically valid constants.
func Parse(data []byte) (Library, error) {
	var records []Properties
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse material library: %w", err)
	}

	lib := make(Library, len(records))
	for i, rec := range records {
		if rec.Name == "" {
			return nil, fmt.Errorf("material record %d has no name", i+1)
		}
		if _, dup := lib[rec.Name]; dup {
			return nil, fmt.Errorf("duplicate material %q", rec.Name)
		}
		// a trial conversion catches non-physical constants up front
		if _, err := rec.Ply(0, 1e-4); err != nil {
			return nil, fmt.Errorf("material %q: %w", rec.Name, err)
		}
		lib[rec.Name] = rec
	}
	return lib, nil
}

// LoadFile reads a user material library from a YAML file.
func LoadFile(path string) (Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lib, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

// Merge copies the records of other into l. Records in other win on name
// clashes, so user libraries override the built-in table.
func (l Library) Merge(other Library) {
	for name, rec := range other {
		l[name] = rec
	}
}

// Names lists the library's material names in sorted order.
func (l Library) Names() []string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get looks a material up by name.
func (l Library) Get(name string) (Properties, error) {
	rec, ok := l[name]
	if !ok {
		return Properties{}, fmt.Errorf("unknown material %q (have: %s)", name, strings.Join(l.Names(), ", "))
	}
	return rec, nil
}

// LossFactors extracts the per-material loss factor table the damping
// estimate consumes.
func (l Library) LossFactors() map[string]float64 {
	out := make(map[string]float64, len(l))
	for name, rec := range l {
		out[name] = rec.LossFactor
	}
	return out
}
