package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPackage(t *testing.T, root, name string, deps map[string]string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(filepath.Join(dir, "schema"), 0o755); err != nil {
		t.Fatal(err)
	}

	manifest := fmt.Sprintf("name = %q\nversion = \"0.1.0\"\nschemas = [\"schema/00_domain.hel\"]\n", name)
	if len(deps) > 0 {
		manifest += "\n[dependencies]\n"
		for dep, ver := range deps {
			manifest += fmt.Sprintf("%q = %q\n", dep, ver)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "hel-package.toml"), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	typeName := sanitizeTypeName(name) + "Type"
	schema := fmt.Sprintf("type %s {\n    value: String\n}\n", typeName)
	if err := os.WriteFile(filepath.Join(dir, "schema", "00_domain.hel"), []byte(schema), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func sanitizeTypeName(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		if r == '-' {
			out = append(out, '_')
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

func TestPackageManifestParse(t *testing.T) {
	src := `
name = "test-package"
version = "1.0.0"
schemas = ["schema/00_domain.hel"]

[dependencies]
other-package = "0.1.0"
`
	m, err := ParseManifest(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Name != "test-package" || m.Version != "1.0.0" || len(m.Schemas) != 1 || len(m.Dependencies) != 1 {
		t.Errorf("unexpected manifest: %+v", m)
	}
}

func TestLoadPackageFromDirectory(t *testing.T) {
	root := t.TempDir()
	dir := writeTestPackage(t, root, "test-pkg", nil)

	pkg, err := LoadPackage(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pkg.Manifest.Name != "test-pkg" || len(pkg.Schema.Types) != 1 {
		t.Errorf("unexpected package: %+v", pkg)
	}
}

func TestRegistryLoadPackage(t *testing.T) {
	root := t.TempDir()
	writeTestPackage(t, root, "test-pkg", nil)

	reg := NewRegistry()
	reg.AddSearchPath(root)

	pkg, err := reg.LoadPackage("test-pkg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pkg.Manifest.Name != "test-pkg" {
		t.Errorf("got name %q", pkg.Manifest.Name)
	}
}

func TestRegistryLoadPackageNotFound(t *testing.T) {
	reg := NewRegistry()
	reg.AddSearchPath(t.TempDir())
	if _, err := reg.LoadPackage("missing"); err == nil {
		t.Fatal("expected PackageNotFound error")
	}
}

func TestResolveAllOrdersDependenciesFirst(t *testing.T) {
	root := t.TempDir()
	writeTestPackage(t, root, "base-pkg", nil)
	writeTestPackage(t, root, "dep-pkg", map[string]string{"base-pkg": "0.1.0"})

	reg := NewRegistry()
	reg.AddSearchPath(root)

	resolved, err := reg.ResolveAll("dep-pkg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resolved) != 2 || resolved[0] != "base-pkg" || resolved[1] != "dep-pkg" {
		t.Errorf("resolved = %v, want [base-pkg dep-pkg]", resolved)
	}
}

func TestResolveAllDetectsCircularDependency(t *testing.T) {
	root := t.TempDir()
	writeTestPackage(t, root, "pkg-a", map[string]string{"pkg-b": "0.1.0"})
	writeTestPackage(t, root, "pkg-b", map[string]string{"pkg-a": "0.1.0"})

	reg := NewRegistry()
	reg.AddSearchPath(root)

	_, err := reg.ResolveAll("pkg-a")
	if err == nil {
		t.Fatal("expected CircularDependency error")
	}
}

func TestBuildTypeEnvironmentQualifiesNames(t *testing.T) {
	root := t.TempDir()
	writeTestPackage(t, root, "test-pkg", nil)

	reg := NewRegistry()
	reg.AddSearchPath(root)

	resolved, err := reg.ResolveAll("test-pkg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env, err := reg.BuildTypeEnvironment(resolved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := env.GetType("test-pkg.test_pkgType"); !ok {
		t.Errorf("expected qualified type test-pkg.test_pkgType, got %v", env.Types)
	}
}

// Version requirements are parsed and preserved but never compared or
// enforced (§4.8): two packages depending on mutually incompatible version
// strings for the same dependency both still load successfully.
func TestIncompatibleVersionRequirementsBothLoadSuccessfully(t *testing.T) {
	root := t.TempDir()
	writeTestPackage(t, root, "base-pkg", nil)
	writeTestPackage(t, root, "consumer-a", map[string]string{"base-pkg": "^1.0.0"})
	writeTestPackage(t, root, "consumer-b", map[string]string{"base-pkg": "^2.0.0"})

	reg := NewRegistry()
	reg.AddSearchPath(root)

	if _, err := reg.ResolveAll("consumer-a"); err != nil {
		t.Fatalf("consumer-a: unexpected error: %v", err)
	}
	if _, err := reg.ResolveAll("consumer-b"); err != nil {
		t.Fatalf("consumer-b: unexpected error: %v", err)
	}
}

func TestBuiltinsNamespaceDefaultsToPackageName(t *testing.T) {
	m := &Manifest{Name: "security-binary"}
	if got := m.BuiltinsNamespaceOrDefault(); got != "security-binary" {
		t.Errorf("got %q", got)
	}
	m.BuiltinsNamespace = "secbin"
	if got := m.BuiltinsNamespaceOrDefault(); got != "secbin" {
		t.Errorf("got %q", got)
	}
}
