package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/golam/internal/laminate"
	"github.com/alexiusacademia/golam/internal/material"
	"github.com/alexiusacademia/golam/internal/mech"
)

// loadLibrary returns the built-in materials merged with the optional user
// library named by --materials or the GOLAM_MATERIALS environment variable.
func loadLibrary() (material.Library, error) {
	lib := material.Builtin()
	path := materialsPath
	if path == "" {
		path = os.Getenv("GOLAM_MATERIALS")
	}
	if path != "" {
		user, err := material.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load material library: %w", err)
		}
		lib.Merge(user)
	}
	return lib, nil
}

// parseFloatList reads a comma-separated list like "0,45,-45,0".
func parseFloatList(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("bad value %q in %q", part, s)
		}
		values = append(values, v)
	}
	return values, nil
}

// buildStack assembles the laminate from --file when given, otherwise as a
// symmetric layup of one library material at the listed half-stack angles.
// The returned label names the stack for report and table headers.
func buildStack(lib material.Library, file, materialName, angles string, plyThicknessMM float64) (*laminate.Laminate, string, error) {
	if file != "" {
		entries, err := material.ReadLayupFile(file)
		if err != nil {
			return nil, "", err
		}
		plies, err := lib.ResolveStack(entries)
		if err != nil {
			return nil, "", err
		}
		lam, err := laminate.Build(plies)
		if err != nil {
			return nil, "", err
		}
		return lam, filepath.Base(file), nil
	}

	props, err := lib.Get(materialName)
	if err != nil {
		return nil, "", err
	}
	thetas, err := parseFloatList(angles)
	if err != nil {
		return nil, "", err
	}
	lam, err := laminate.SymmetricLayup(props, thetas, plyThicknessMM*1e-3)
	if err != nil {
		return nil, "", err
	}

	labels := make([]string, len(thetas))
	for i, t := range thetas {
		labels[i] = strconv.FormatFloat(t, 'g', -1, 64)
	}
	return lam, fmt.Sprintf("[%s]s %s", strings.Join(labels, "/"), materialName), nil
}

// resolveCase starts from the named riding case and lets explicit force
// flags override its components. Flag values carry newtons; the transverse
// application point arrives in millimetres.
func resolveCase(cmd *cobra.Command, name string, axial, transverse, atMM float64) (mech.LoadCase, error) {
	lc, err := mech.Case(name)
	if err != nil {
		return mech.LoadCase{}, err
	}
	modified := false
	if cmd.Flags().Changed("axial") {
		lc.Axial = axial
		modified = true
	}
	if cmd.Flags().Changed("transverse") {
		lc.Transverse = transverse
		modified = true
	}
	if cmd.Flags().Changed("at") {
		lc.Application = atMM * 1e-3
		modified = true
	}
	if modified {
		lc.Name += " (modified)"
	}
	return lc, nil
}
