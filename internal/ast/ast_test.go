package ast

import (
	"testing"

	"github.com/cwbudde/go-hel/internal/lexer"
	"github.com/cwbudde/go-hel/internal/value"
)

func ident(name string) *Identifier {
	return &Identifier{Token: lexer.Token{Type: lexer.IDENT, Literal: name}, Value: name}
}

func TestAttributeExprString(t *testing.T) {
	attr := &AttributeExpr{Object: "device", Field: "binary"}
	if got, want := attr.String(), "device.binary"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCallExprStringWithAndWithoutNamespace(t *testing.T) {
	call := &CallExpr{Name: "len", Args: []Expression{ident("tags")}}
	if got, want := call.String(), "len(tags)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	call.Namespace = "core"
	if got, want := call.String(), "core.len(tags)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLogicalExprStringIsParenthesised(t *testing.T) {
	l := &LogicalExpr{
		Op:   LogicalAnd,
		Left: ident("a"),
		Right: &LogicalExpr{
			Op:    LogicalOr,
			Left:  ident("b"),
			Right: ident("c"),
		},
	}
	if got, want := l.String(), "(a AND (b OR c))"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestComparisonExprString(t *testing.T) {
	c := &ComparisonExpr{
		Op:    value.Gt,
		Left:  &AttributeExpr{Object: "risk", Field: "score"},
		Right: &Literal{Value: value.Number(80)},
	}
	if got, want := c.String(), "risk.score > 80"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestListLiteralAndMapLiteralString(t *testing.T) {
	list := &ListLiteral{Elements: []Expression{
		&Literal{Value: value.Number(1)},
		&Literal{Value: value.String("a")},
	}}
	if got, want := list.String(), `[1, "a"]`; got != want {
		t.Errorf("ListLiteral.String() = %q, want %q", got, want)
	}

	m := &MapLiteral{Entries: []MapEntry{
		{Key: "a", Value: &Literal{Value: value.Number(1)}},
	}}
	if got, want := m.String(), "{a: 1}"; got != want {
		t.Errorf("MapLiteral.String() = %q, want %q", got, want)
	}
}

func TestScriptStringRendersBindingsThenResult(t *testing.T) {
	script := &Script{
		Bindings: []*LetStatement{
			{Name: ident("x"), Value: &Literal{Value: value.Number(1)}},
		},
		Result: ident("x"),
	}
	want := "let x = 1\nx"
	if got := script.String(); got != want {
		t.Errorf("Script.String() = %q, want %q", got, want)
	}
}
