package material

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LayupEntry is one line of a stack definition file: a material name from
// the library plus orientation and thickness in layup-table units.
type LayupEntry struct {
	Material    string  `yaml:"material"`
	ThetaDeg    float64 `yaml:"theta_deg"`
	ThicknessMM float64 `yaml:"thickness_mm"`
}

type layupFile struct {
	Name      string       `yaml:"name,omitempty"`
	Symmetric bool         `yaml:"symmetric,omitempty"`
	Plies     []LayupEntry `yaml:"plies"`
}

// ReadLayupFile parses a YAML stack definition. When the file sets
// `symmetric: true` the listed plies are the upper half and the returned
// entries include their mirror image.
func ReadLayupFile(path string) ([]LayupEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f layupFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse layup file %s: %w", path, err)
	}
	if len(f.Plies) == 0 {
		return nil, fmt.Errorf("layup file %s lists no plies", path)
	}
	entries := f.Plies
	if f.Symmetric {
		mirrored := make([]LayupEntry, 0, 2*len(entries))
		mirrored = append(mirrored, entries...)
		for i := len(entries) - 1; i >= 0; i-- {
			mirrored = append(mirrored, entries[i])
		}
		entries = mirrored
	}
	return entries, nil
}

// ResolveStack turns layup entries into validated plies using l for the
// material lookups.
func (l Library) ResolveStack(entries []LayupEntry) ([]Ply, error) {
	plies := make([]Ply, 0, len(entries))
	for i, e := range entries {
		rec, err := l.Get(e.Material)
		if err != nil {
			return nil, fmt.Errorf("layup entry %d: %w", i+1, err)
		}
		p, err := rec.Ply(e.ThetaDeg, e.ThicknessMM*1e-3)
		if err != nil {
			return nil, fmt.Errorf("layup entry %d: %w", i+1, err)
		}
		plies = append(plies, p)
	}
	return plies, nil
}
