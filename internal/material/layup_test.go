package material_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alexiusacademia/golam/internal/material"
)

func writeLayup(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stack.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadLayupFile(t *testing.T) {
	path := writeLayup(t, `
name: test stack
plies:
  - {material: carbon-t300, theta_deg: 0, thickness_mm: 0.125}
  - {material: flax-epoxy, theta_deg: 45, thickness_mm: 0.2}
`)
	entries, err := material.ReadLayupFile(path)
	if err != nil {
		t.Fatalf("ReadLayupFile() error = %v", err)
	}
	want := []material.LayupEntry{
		{Material: "carbon-t300", ThetaDeg: 0, ThicknessMM: 0.125},
		{Material: "flax-epoxy", ThetaDeg: 45, ThicknessMM: 0.2},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestReadLayupFileMirrorsSymmetric(t *testing.T) {
	path := writeLayup(t, `
symmetric: true
plies:
  - {material: carbon-t300, theta_deg: 0, thickness_mm: 0.125}
  - {material: carbon-t300, theta_deg: 45, thickness_mm: 0.125}
`)
	entries, err := material.ReadLayupFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 4 {
		t.Fatalf("symmetric layup has %d entries, want 4", len(entries))
	}
	if entries[1].ThetaDeg != 45 || entries[2].ThetaDeg != 45 {
		t.Errorf("mirror should repeat the innermost ply: thetas %g, %g", entries[1].ThetaDeg, entries[2].ThetaDeg)
	}
	if entries[0].ThetaDeg != 0 || entries[3].ThetaDeg != 0 {
		t.Errorf("mirror should repeat the outermost ply: thetas %g, %g", entries[0].ThetaDeg, entries[3].ThetaDeg)
	}
}

func TestReadLayupFileRejectsEmpty(t *testing.T) {
	path := writeLayup(t, "name: empty\nplies: []\n")
	if _, err := material.ReadLayupFile(path); err == nil {
		t.Error("ReadLayupFile() succeeded on an empty stack")
	}
}

func TestResolveStack(t *testing.T) {
	lib := material.Builtin()
	entries := []material.LayupEntry{
		{Material: "carbon-t300", ThetaDeg: 0, ThicknessMM: 0.125},
		{Material: "flax-epoxy", ThetaDeg: -45, ThicknessMM: 0.2},
	}
	plies, err := lib.ResolveStack(entries)
	if err != nil {
		t.Fatalf("ResolveStack() error = %v", err)
	}
	if len(plies) != 2 {
		t.Fatalf("got %d plies, want 2", len(plies))
	}
	if plies[0].E1 != 138e9 {
		t.Errorf("carbon E1 = %g Pa, want 1.38e11", plies[0].E1)
	}
	if plies[1].Thickness != 0.2e-3 {
		t.Errorf("flax thickness = %g m, want 2e-4", plies[1].Thickness)
	}
	if plies[1].Theta != -45 {
		t.Errorf("flax theta = %g, want -45", plies[1].Theta)
	}
}

func TestResolveStackUnknownMaterial(t *testing.T) {
	lib := material.Builtin()
	_, err := lib.ResolveStack([]material.LayupEntry{{Material: "mithril", ThicknessMM: 0.1}})
	if err == nil {
		t.Error("ResolveStack() succeeded with unknown material")
	}
}
