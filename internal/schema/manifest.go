package schema

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/cwbudde/go-hel/internal/herrors"
)

// Manifest is the decoded contents of a package's hel-package.toml (§6
// "Package manifest file"). Dependency version requirements are parsed and
// retained verbatim but never compared or enforced (§4.8).
type Manifest struct {
	Name              string            `toml:"name"`
	Version           string            `toml:"version"`
	Schemas           []string          `toml:"schemas"`
	Dependencies      map[string]string `toml:"dependencies"`
	BuiltinsNamespace string            `toml:"builtins_namespace"`
}

// ParseManifest decodes a hel-package.toml document.
func ParseManifest(content string) (*Manifest, *herrors.PackageError) {
	var m Manifest
	if _, err := toml.Decode(content, &m); err != nil {
		return nil, herrors.NewPackageError(herrors.ManifestParse, "", err.Error()).WithCause(err)
	}
	return &m, nil
}

// LoadManifest reads and decodes hel-package.toml from a package directory.
func LoadManifest(dir string) (*Manifest, *herrors.PackageError) {
	path := filepath.Join(dir, "hel-package.toml")
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, herrors.NewPackageError(herrors.Io, "", "failed to read manifest at "+path).WithCause(err)
	}
	return ParseManifest(string(content))
}

// BuiltinsNamespaceOrDefault returns the manifest's builtins_namespace if
// set, otherwise the package name.
func (m *Manifest) BuiltinsNamespaceOrDefault() string {
	if m.BuiltinsNamespace != "" {
		return m.BuiltinsNamespace
	}
	return m.Name
}
