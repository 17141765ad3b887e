package schema

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/cwbudde/go-hel/internal/herrors"
)

// Package is a loaded package: its manifest, the merged schema of all its
// schema files, and the imports those files declared.
type Package struct {
	Manifest *Manifest
	Schema   *Schema
	Imports  []string
	RootPath string
}

// Namespace is the package's identity namespace (its manifest name).
func (p *Package) Namespace() string { return p.Manifest.Name }

// BuiltinsNamespace is the namespace a built-ins registry should register
// this package's provider under (§9 "builtins_namespace activation").
func (p *Package) BuiltinsNamespace() string { return p.Manifest.BuiltinsNamespaceOrDefault() }

// LoadPackage reads hel-package.toml from dir and parses every schema file
// it lists, in manifest order, merging their types. A duplicate type name
// across files within the same package is a DuplicateType error.
func LoadPackage(dir string) (*Package, *herrors.PackageError) {
	manifest, err := LoadManifest(dir)
	if err != nil {
		return nil, err
	}

	combined := NewSchema()
	var allImports []string

	for _, schemaFile := range manifest.Schemas {
		path := filepath.Join(dir, schemaFile)
		content, ioErr := os.ReadFile(path)
		if ioErr != nil {
			return nil, herrors.NewPackageError(herrors.Io, manifest.Name, "failed to read schema "+path).WithCause(ioErr)
		}

		parsed, imports, perr := ParseSchema(string(content))
		if perr != nil {
			return nil, herrors.NewPackageError(herrors.SchemaParse, manifest.Name,
				"file "+schemaFile+": "+perr.Message).WithCause(perr)
		}
		allImports = append(allImports, imports...)

		for name, typedef := range parsed.Types {
			if _, exists := combined.Types[name]; exists {
				return nil, herrors.NewPackageError(herrors.DuplicateType, manifest.Name, "duplicate type "+name)
			}
			combined.AddType(typedef)
		}
	}

	return &Package{Manifest: manifest, Schema: combined, Imports: allImports, RootPath: dir}, nil
}

// Registry loads and resolves packages across a set of search paths,
// mirroring a Go module's GOPATH-style lookup.
type Registry struct {
	searchPaths []string
	packages    map[string]*Package
}

// NewRegistry returns an empty package registry.
func NewRegistry() *Registry {
	return &Registry{packages: make(map[string]*Package)}
}

// AddSearchPath appends a directory to search when loading packages by name.
func (r *Registry) AddSearchPath(path string) {
	r.searchPaths = append(r.searchPaths, path)
}

// LoadPackage loads (or returns the already-loaded) package with the given
// name, searching configured paths in order. The first directory whose
// hel-package.toml exists and whose manifest name matches wins.
func (r *Registry) LoadPackage(name string) (*Package, *herrors.PackageError) {
	if pkg, ok := r.packages[name]; ok {
		return pkg, nil
	}

	var dir, mismatched string
	for _, sp := range r.searchPaths {
		candidate := filepath.Join(sp, name)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			if _, err := os.Stat(filepath.Join(candidate, "hel-package.toml")); err == nil {
				if m, merr := LoadManifest(candidate); merr == nil && m.Name != name {
					mismatched = m.Name
					continue
				}
				dir = candidate
				break
			}
		}
	}
	if dir == "" {
		if mismatched != "" {
			return nil, herrors.NewPackageError(herrors.NameMismatch, name, "manifest declares name "+mismatched)
		}
		return nil, herrors.NewPackageError(herrors.PackageNotFound, name, "not found in search paths")
	}

	pkg, err := LoadPackage(dir)
	if err != nil {
		return nil, err
	}
	if pkg.Manifest.Name != name {
		return nil, herrors.NewPackageError(herrors.NameMismatch, name,
			"manifest declares name "+pkg.Manifest.Name)
	}

	r.packages[name] = pkg
	return pkg, nil
}

// GetPackage returns an already-loaded package by name.
func (r *Registry) GetPackage(name string) (*Package, bool) {
	pkg, ok := r.packages[name]
	return pkg, ok
}

// ResolveAll returns the dependency closure of root in deterministic
// topological order (dependencies before dependents, root last). Re-entering
// a package currently being expanded raises CircularDependency.
func (r *Registry) ResolveAll(root string) ([]string, *herrors.PackageError) {
	var resolved []string
	visiting := make(map[string]bool)
	seen := make(map[string]bool)
	if err := r.resolveRecursive(root, &resolved, seen, visiting); err != nil {
		return nil, err
	}
	return resolved, nil
}

func (r *Registry) resolveRecursive(name string, resolved *[]string, seen, visiting map[string]bool) *herrors.PackageError {
	if visiting[name] {
		return herrors.NewPackageError(herrors.CircularDependency, name, "circular dependency detected")
	}
	if seen[name] {
		return nil
	}

	visiting[name] = true
	pkg, err := r.LoadPackage(name)
	if err != nil {
		return err
	}

	deps := make([]string, 0, len(pkg.Manifest.Dependencies))
	for dep := range pkg.Manifest.Dependencies {
		deps = append(deps, dep)
	}
	sort.Strings(deps)

	for _, dep := range deps {
		if err := r.resolveRecursive(dep, resolved, seen, visiting); err != nil {
			return err
		}
	}

	delete(visiting, name)
	seen[name] = true
	*resolved = append(*resolved, name)
	return nil
}

// TypeEnvironment is a merged view of the types contributed by a set of
// resolved packages, keyed by "package.Type".
type TypeEnvironment struct {
	Types map[string]*TypeDef
}

// GetType looks up a type by its fully qualified "package.Type" name.
func (e *TypeEnvironment) GetType(qualified string) (*TypeDef, bool) {
	t, ok := e.Types[qualified]
	return t, ok
}

// BuildTypeEnvironment merges the schemas of the named (already-loaded)
// packages into one qualified environment, keyed by "package.Type", so the
// same type name in two different packages yields two distinct entries. A
// qualified name produced twice (the same package listed twice in names) is
// a TypeCollision error.
func (r *Registry) BuildTypeEnvironment(names []string) (*TypeEnvironment, *herrors.PackageError) {
	types := make(map[string]*TypeDef)

	for _, name := range names {
		pkg, ok := r.packages[name]
		if !ok {
			return nil, herrors.NewPackageError(herrors.PackageNotFound, name, "not loaded")
		}
		for typeName, typedef := range pkg.Schema.Types {
			qualified := pkg.Namespace() + "." + typeName
			if _, exists := types[qualified]; exists {
				return nil, herrors.NewPackageError(herrors.TypeCollision, "", "type "+qualified+" defined in multiple packages")
			}
			types[qualified] = typedef
		}
	}

	return &TypeEnvironment{Types: types}, nil
}

// Validate requires every TypeRef across the environment to resolve to a
// qualified type name present in the environment.
func (e *TypeEnvironment) Validate() *herrors.PackageError {
	for qualified, t := range e.Types {
		for _, f := range t.Fields {
			if err := e.validateFieldType(&f.Type, qualified); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *TypeEnvironment) validateFieldType(ft *FieldType, context string) *herrors.PackageError {
	switch ft.Kind {
	case TypeRef:
		if _, ok := e.Types[ft.Ref]; !ok {
			return herrors.NewPackageError(herrors.UndefinedTypeReference, "",
				"undefined type reference "+ft.Ref+" in "+context)
		}
		return nil
	case List, Map:
		return e.validateFieldType(ft.Inner, context)
	default:
		return nil
	}
}
