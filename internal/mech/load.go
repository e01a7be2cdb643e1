// Package mech evaluates laminated tubular beams as cantilevers: combined
// stress profiles, natural frequencies, damping and dynamic tip response.
//
// The beam coordinate runs from the free (dropout) end at x = 0 to the
// clamped crown at x = L.
package mech

import (
	"fmt"
	"strings"
)

// LoadCase is one end-load scenario on the blade: an axial force along the
// beam axis plus a transverse force entering at Application metres from the
// free end. Forces in N.
type LoadCase struct {
	Name        string
	Axial       float64 // along the beam axis (N)
	Transverse  float64 // perpendicular to the beam axis (N)
	Application float64 // transverse load position from the free end (m)
}

// StandardCases are representative road riding loads, a named table the CLI
// picks from. The transverse entries act at the dropout (Application 0).
var StandardCases = []LoadCase{
	{Name: "static", Axial: 600, Transverse: 0},
	{Name: "braking", Axial: 400, Transverse: 500},
	{Name: "sprint", Axial: 250, Transverse: 350},
	{Name: "impact", Axial: 1000, Transverse: 750},
}

// Case looks a standard load case up by name.
func Case(name string) (LoadCase, error) {
	for _, c := range StandardCases {
		if c.Name == name {
			return c, nil
		}
	}
	return LoadCase{}, fmt.Errorf("unknown load case %q (have: %s)", name, strings.Join(CaseNames(), ", "))
}

// CaseNames lists the standard load case names in table order.
func CaseNames() []string {
	names := make([]string, len(StandardCases))
	for i, c := range StandardCases {
		names[i] = c.Name
	}
	return names
}
