// Package schema implements the declarative .hel schema file format and the
// package/manifest system built on top of it (§4.8): domains describe their
// data model in schema files instead of hand-writing resolvers.
package schema

// FieldKind classifies a FieldType.
type FieldKind uint8

const (
	Bool FieldKind = iota
	String
	Number
	List
	Map
	TypeRef
)

// FieldType is a field's declared type: one of the scalar kinds, a List or
// Map wrapping an inner FieldType, or a TypeRef naming another type in the
// schema (possibly package-qualified).
type FieldType struct {
	Kind  FieldKind
	Inner *FieldType // set when Kind is List or Map
	Ref   string     // set when Kind is TypeRef
}

// FieldDef is one field within a TypeDef. Description is empty unless set
// some other way than ParseSchema, which never populates it: the schema
// file grammar has no doc-comment-to-field association, matching
// `original_source/src/schema/mod.rs`'s `FieldDef.description`, which is
// likewise always `None` out of its parser.
type FieldDef struct {
	Name        string
	Type        FieldType
	Optional    bool
	Description string
}

// TypeDef is a single `type Name { ... }` block. Description is always
// empty from ParseSchema, for the same reason as FieldDef.Description.
type TypeDef struct {
	Name        string
	Fields      []FieldDef
	Description string
}

// Schema is the set of type definitions parsed from one or more schema
// files, keyed by type name.
type Schema struct {
	Types map[string]*TypeDef
}

// NewSchema returns an empty Schema.
func NewSchema() *Schema {
	return &Schema{Types: make(map[string]*TypeDef)}
}

// AddType inserts a type definition.
func (s *Schema) AddType(t *TypeDef) {
	s.Types[t.Name] = t
}

// GetType looks up a type definition by name.
func (s *Schema) GetType(name string) (*TypeDef, bool) {
	t, ok := s.Types[name]
	return t, ok
}
