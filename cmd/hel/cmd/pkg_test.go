package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTinyPackage(t *testing.T, root, name string) {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(filepath.Join(dir, "schema"), 0o755); err != nil {
		t.Fatal(err)
	}
	manifest := "name = \"" + name + "\"\nversion = \"0.1.0\"\nschemas = [\"schema/00_domain.hel\"]\n"
	if err := os.WriteFile(filepath.Join(dir, "hel-package.toml"), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	schema := "type Widget {\n    name: String\n}\n"
	if err := os.WriteFile(filepath.Join(dir, "schema", "00_domain.hel"), []byte(schema), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNewPackageRegistryUsesSearchPathFlag(t *testing.T) {
	root := t.TempDir()
	writeTinyPackage(t, root, "widgets")

	pkgSearchPaths = []string{root}
	defer func() { pkgSearchPaths = nil }()

	reg := newPackageRegistry()
	resolved, err := reg.ResolveAll("widgets")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resolved) != 1 || resolved[0] != "widgets" {
		t.Errorf("resolved = %v", resolved)
	}
}

func TestNewPackageRegistryFallsBackToEnvVar(t *testing.T) {
	root := t.TempDir()
	writeTinyPackage(t, root, "widgets")

	pkgSearchPaths = nil
	t.Setenv("HEL_PACKAGE_PATH", root)

	reg := newPackageRegistry()
	if _, err := reg.ResolveAll("widgets"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
