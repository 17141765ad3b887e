package schema

import "testing"

func TestParseSimpleSchema(t *testing.T) {
	src := `
type Lead {
    vertical: String
    score: Number
}
`
	schema, imports, err := ParseSchema(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(imports) != 0 {
		t.Errorf("imports = %v, want none", imports)
	}
	lead, ok := schema.GetType("Lead")
	if !ok {
		t.Fatal("Lead type not found")
	}
	if len(lead.Fields) != 2 || lead.Fields[0].Name != "vertical" || lead.Fields[1].Name != "score" {
		t.Errorf("unexpected fields: %+v", lead.Fields)
	}
}

func TestParseSchemaWithListOfTypeRef(t *testing.T) {
	src := `
type Contact {
    email: String
}

type Lead {
    contacts: List<Contact>
}
`
	schema, _, err := ParseSchema(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lead, _ := schema.GetType("Lead")
	ft := lead.Fields[0].Type
	if ft.Kind != List || ft.Inner.Kind != TypeRef || ft.Inner.Ref != "Contact" {
		t.Errorf("unexpected field type: %+v", ft)
	}
}

func TestParseSchemaOptionalField(t *testing.T) {
	src := `
type Lead {
    email: String
    phone?: String
}
`
	schema, _, err := ParseSchema(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lead, _ := schema.GetType("Lead")
	if lead.Fields[0].Optional {
		t.Error("email should not be optional")
	}
	if !lead.Fields[1].Optional {
		t.Error("phone should be optional")
	}
}

func TestParseSchemaUndefinedLocalReference(t *testing.T) {
	src := `
type Lead {
    contact: UnknownType
}
`
	_, _, err := ParseSchema(src)
	if err == nil {
		t.Fatal("expected undefined type reference error")
	}
}

func TestParseSchemaCollectsImports(t *testing.T) {
	src := `
import "core-types";
import "security-binary";

type MyType {
    field: String
}
`
	_, imports, err := ParseSchema(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"core-types", "security-binary"}
	if len(imports) != len(want) || imports[0] != want[0] || imports[1] != want[1] {
		t.Errorf("imports = %v, want %v", imports, want)
	}
}

func TestParseSchemaSkipsCommentsAndBlankLines(t *testing.T) {
	src := `
// leading comment
# hash comment
type Lead {
    // field comment
    score: Number
}
`
	schema, _, err := ParseSchema(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lead, ok := schema.GetType("Lead")
	if !ok || len(lead.Fields) != 1 {
		t.Fatalf("unexpected schema: %+v", schema.Types)
	}
}

func TestParseSchemaMapOfNumber(t *testing.T) {
	src := `
type Enrichment {
    data: Map<Number>
}
`
	schema, _, err := ParseSchema(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	enrich, _ := schema.GetType("Enrichment")
	ft := enrich.Fields[0].Type
	if ft.Kind != Map || ft.Inner.Kind != Number {
		t.Errorf("unexpected field type: %+v", ft)
	}
}
