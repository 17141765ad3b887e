package schema

import (
	"strings"

	"github.com/cwbudde/go-hel/internal/herrors"
)

// ParseSchema parses the simplified `type Name { field: Type ... }` syntax
// (§4.8). Comments start with `//` or `#`; a trailing `?` on a field name
// marks it optional; field types are Bool/Boolean, String, Number/Float/f64,
// List<T>, Map<T>, or a bare identifier treated as a TypeRef.
//
// `import "pkg";` lines are collected and returned alongside the schema for
// informational purposes; they do not themselves introduce types.
func ParseSchema(input string) (*Schema, []string, *herrors.PackageError) {
	schema := NewSchema()
	var imports []string
	var current *TypeDef
	inBlock := false

	for _, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") {
			continue
		}

		if imp, ok := parseImportLine(line); ok {
			imports = append(imports, imp)
			continue
		}

		if strings.HasPrefix(line, "type ") {
			if current != nil {
				schema.AddType(current)
			}
			parts := strings.Fields(line)
			if len(parts) < 3 || parts[2] != "{" {
				return nil, nil, herrors.NewPackageError(herrors.SchemaParse, "", "invalid type definition: "+line)
			}
			current = &TypeDef{Name: parts[1]}
			inBlock = true
			continue
		}

		if line == "}" {
			if current != nil {
				schema.AddType(current)
				current = nil
			}
			inBlock = false
			continue
		}

		if inBlock && current != nil {
			field, err := parseFieldLine(line)
			if err != nil {
				return nil, nil, err
			}
			current.Fields = append(current.Fields, *field)
		}
	}
	if current != nil {
		schema.AddType(current)
	}

	if err := validateLocal(schema); err != nil {
		return nil, nil, err
	}
	return schema, imports, nil
}

func parseImportLine(line string) (string, bool) {
	if !strings.HasPrefix(line, "import ") {
		return "", false
	}
	rest := strings.TrimSpace(strings.TrimPrefix(line, "import "))
	rest = strings.TrimSuffix(rest, ";")
	rest = strings.TrimSpace(rest)
	rest = strings.Trim(rest, `"`)
	return rest, rest != ""
}

func parseFieldLine(line string) (*FieldDef, *herrors.PackageError) {
	line = strings.TrimSuffix(line, ",")
	idx := strings.Index(line, ":")
	if idx < 0 {
		return nil, herrors.NewPackageError(herrors.SchemaParse, "", "invalid field definition: "+line)
	}
	name := strings.TrimSpace(line[:idx])
	typeStr := strings.TrimSpace(line[idx+1:])

	optional := false
	if strings.HasSuffix(name, "?") {
		name = strings.TrimSuffix(name, "?")
		optional = true
	}

	ft, err := parseFieldType(typeStr)
	if err != nil {
		return nil, err
	}
	return &FieldDef{Name: name, Type: *ft, Optional: optional}, nil
}

func parseFieldType(typeStr string) (*FieldType, *herrors.PackageError) {
	typeStr = strings.TrimSpace(typeStr)

	if strings.HasPrefix(typeStr, "List<") && strings.HasSuffix(typeStr, ">") {
		inner, err := parseFieldType(typeStr[len("List<") : len(typeStr)-1])
		if err != nil {
			return nil, err
		}
		return &FieldType{Kind: List, Inner: inner}, nil
	}
	if strings.HasPrefix(typeStr, "Map<") && strings.HasSuffix(typeStr, ">") {
		inner, err := parseFieldType(typeStr[len("Map<") : len(typeStr)-1])
		if err != nil {
			return nil, err
		}
		return &FieldType{Kind: Map, Inner: inner}, nil
	}

	switch typeStr {
	case "Bool", "Boolean":
		return &FieldType{Kind: Bool}, nil
	case "String":
		return &FieldType{Kind: String}, nil
	case "Number", "Float", "f64":
		return &FieldType{Kind: Number}, nil
	default:
		return &FieldType{Kind: TypeRef, Ref: typeStr}, nil
	}
}

// validateLocal requires every TypeRef within a single parsed schema to
// resolve to a type defined in that same schema. Package-qualified
// references (those containing a ".") are skipped here and checked by
// TypeEnvironment.Validate once the packages are merged.
func validateLocal(s *Schema) *herrors.PackageError {
	for _, t := range s.Types {
		for _, f := range t.Fields {
			if err := validateFieldTypeLocal(s, &f.Type); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateFieldTypeLocal(s *Schema, ft *FieldType) *herrors.PackageError {
	switch ft.Kind {
	case TypeRef:
		if strings.Contains(ft.Ref, ".") {
			return nil
		}
		if _, ok := s.Types[ft.Ref]; !ok {
			return herrors.NewPackageError(herrors.SchemaParse, "", "undefined type reference: "+ft.Ref)
		}
		return nil
	case List, Map:
		return validateFieldTypeLocal(s, ft.Inner)
	default:
		return nil
	}
}
