package hel

import "github.com/cwbudde/go-hel/internal/schema"

// Schema is a set of type definitions parsed from one or more schema files.
type Schema = schema.Schema

// TypeDef is a single `type Name { ... }` block.
type TypeDef = schema.TypeDef

// FieldDef is one field within a TypeDef.
type FieldDef = schema.FieldDef

// FieldType is a field's declared type.
type FieldType = schema.FieldType

// Manifest is the decoded contents of a package's hel-package.toml.
type Manifest = schema.Manifest

// Package is a loaded schema package: manifest, merged schema, imports.
type Package = schema.Package

// PackageRegistry loads and resolves packages across search paths.
type PackageRegistry = schema.Registry

// TypeEnvironment is a merged, qualified view of types across resolved
// packages.
type TypeEnvironment = schema.TypeEnvironment

// NewPackageRegistry returns an empty package registry.
func NewPackageRegistry() *PackageRegistry { return schema.NewRegistry() }

// ParseSchema parses the `.hel` schema file syntax.
func ParseSchema(input string) (*Schema, []string, error) {
	s, imports, err := schema.ParseSchema(input)
	if err != nil {
		return nil, nil, err
	}
	return s, imports, nil
}

// LoadPackage reads hel-package.toml and its schema files from dir.
func LoadPackage(dir string) (*Package, error) {
	pkg, err := schema.LoadPackage(dir)
	if err != nil {
		return nil, err
	}
	return pkg, nil
}
