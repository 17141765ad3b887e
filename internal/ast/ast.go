// Package ast defines the abstract syntax tree node types for HEL
// expressions and scripts.
package ast

import (
	"strconv"
	"strings"

	"github.com/cwbudde/go-hel/internal/lexer"
	"github.com/cwbudde/go-hel/internal/value"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	// TokenLiteral returns the literal text of the token the node starts at.
	TokenLiteral() string
	// String renders the node back to HEL surface syntax, used for debugging
	// and for reconstructing expressions from partially-parsed ASTs.
	String() string
	// Pos returns the node's source position for error reporting.
	Pos() lexer.Position
}

// Expression is any node that evaluates to a Value.
type Expression interface {
	Node
	expressionNode()
}

// Condition is the root of a parsed rule expression (the `condition`
// production). It is always an Expression; the alias exists so call sites
// that only ever hold rule roots can say what they mean.
type Condition = Expression

// Identifier is a bare name. In scripts it may reference a `let` binding;
// an unbound identifier evaluates to String(name) and the host resolver is
// not consulted.
type Identifier struct {
	Token lexer.Token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }
func (i *Identifier) Pos() lexer.Position  { return i.Token.Pos }

// AttributeExpr is a dotted `object.field` attribute reference resolved
// through the host Resolver.
type AttributeExpr struct {
	Token  lexer.Token // the leading IDENT token
	Object string
	Field  string
}

func (a *AttributeExpr) expressionNode()      {}
func (a *AttributeExpr) TokenLiteral() string { return a.Token.Literal }
func (a *AttributeExpr) String() string       { return a.Object + "." + a.Field }
func (a *AttributeExpr) Pos() lexer.Position  { return a.Token.Pos }

// CallExpr is a (possibly namespaced) built-in function call.
type CallExpr struct {
	Token     lexer.Token // the leading IDENT token
	Namespace string      // "" when unqualified (resolved against core)
	Name      string
	Args      []Expression
}

func (c *CallExpr) expressionNode()      {}
func (c *CallExpr) TokenLiteral() string { return c.Token.Literal }
func (c *CallExpr) Pos() lexer.Position  { return c.Token.Pos }
func (c *CallExpr) String() string {
	var b strings.Builder
	if c.Namespace != "" {
		b.WriteString(c.Namespace)
		b.WriteByte('.')
	}
	b.WriteString(c.Name)
	b.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Literal is any constant value appearing directly in source: strings,
// numbers, booleans, lists, and maps.
type Literal struct {
	Token lexer.Token
	Value value.Value
}

func (l *Literal) expressionNode()      {}
func (l *Literal) TokenLiteral() string { return l.Token.Literal }
func (l *Literal) Pos() lexer.Position  { return l.Token.Pos }

// String renders the literal as HEL source text: strings are quoted, unlike
// value.Render's unquoted value rendering used for resolved/materialised
// values in trace output.
func (l *Literal) String() string {
	if s, ok := l.Value.AsString(); ok {
		return strconv.Quote(s)
	}
	return value.Render(l.Value)
}

// ListLiteral is a `[a, b, c]` literal whose elements are themselves
// expressions (typically other literals) evaluated eagerly.
type ListLiteral struct {
	Token    lexer.Token // the `[`
	Elements []Expression
}

func (l *ListLiteral) expressionNode()      {}
func (l *ListLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *ListLiteral) Pos() lexer.Position  { return l.Token.Pos }
func (l *ListLiteral) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// MapEntry is a single `key: value` pair inside a MapLiteral.
type MapEntry struct {
	Key   string
	Value Expression
}

// MapLiteral is a `{key: value, ...}` literal.
type MapLiteral struct {
	Token   lexer.Token // the `{`
	Entries []MapEntry
}

func (m *MapLiteral) expressionNode()      {}
func (m *MapLiteral) TokenLiteral() string { return m.Token.Literal }
func (m *MapLiteral) Pos() lexer.Position  { return m.Token.Pos }
func (m *MapLiteral) String() string {
	parts := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		parts[i] = e.Key + ": " + e.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// LogicalOp is the AND/OR connective of a LogicalExpr.
type LogicalOp uint8

const (
	LogicalAnd LogicalOp = iota
	LogicalOr
)

func (op LogicalOp) String() string {
	if op == LogicalAnd {
		return "AND"
	}
	return "OR"
}

// LogicalExpr is a binary `left OP right` node built left-associatively by
// the parser for chained `a AND b AND c` / `a OR b OR c` sequences.
type LogicalExpr struct {
	Token lexer.Token // the AND/OR token
	Op    LogicalOp
	Left  Expression
	Right Expression
}

func (l *LogicalExpr) expressionNode()      {}
func (l *LogicalExpr) TokenLiteral() string { return l.Token.Literal }
func (l *LogicalExpr) Pos() lexer.Position  { return l.Left.Pos() }
func (l *LogicalExpr) String() string {
	return "(" + l.Left.String() + " " + l.Op.String() + " " + l.Right.String() + ")"
}

// ComparisonExpr is a `left OP right` comparison node.
type ComparisonExpr struct {
	Token lexer.Token // the operator token
	Op    value.Comparator
	Left  Expression
	Right Expression
}

func (c *ComparisonExpr) expressionNode()      {}
func (c *ComparisonExpr) TokenLiteral() string { return c.Token.Literal }
func (c *ComparisonExpr) Pos() lexer.Position  { return c.Left.Pos() }
func (c *ComparisonExpr) String() string {
	return c.Left.String() + " " + c.Op.String() + " " + c.Right.String()
}

// GroupedExpr wraps a parenthesised sub-expression so its original source
// position and parenthesisation survive round-tripping through String().
type GroupedExpr struct {
	Token lexer.Token // the `(`
	Inner Expression
}

func (g *GroupedExpr) expressionNode()      {}
func (g *GroupedExpr) TokenLiteral() string { return g.Token.Literal }
func (g *GroupedExpr) Pos() lexer.Position  { return g.Token.Pos }
func (g *GroupedExpr) String() string       { return "(" + g.Inner.String() + ")" }

// LetStatement is a single `let NAME = EXPR` binding line in a script.
type LetStatement struct {
	Token lexer.Token // the `let` token
	Name  *Identifier
	Value Expression
}

func (s *LetStatement) TokenLiteral() string { return s.Token.Literal }
func (s *LetStatement) Pos() lexer.Position  { return s.Token.Pos }
func (s *LetStatement) String() string {
	return "let " + s.Name.Value + " = " + s.Value.String()
}

// Script is a sequence of let-bindings followed by a final result
// expression, the root node produced by parsing script source.
type Script struct {
	Bindings []*LetStatement
	Result   Expression
}

func (s *Script) TokenLiteral() string {
	if len(s.Bindings) > 0 {
		return s.Bindings[0].TokenLiteral()
	}
	if s.Result != nil {
		return s.Result.TokenLiteral()
	}
	return ""
}

func (s *Script) Pos() lexer.Position {
	if len(s.Bindings) > 0 {
		return s.Bindings[0].Pos()
	}
	if s.Result != nil {
		return s.Result.Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}

func (s *Script) String() string {
	var b strings.Builder
	for _, bind := range s.Bindings {
		b.WriteString(bind.String())
		b.WriteByte('\n')
	}
	if s.Result != nil {
		b.WriteString(s.Result.String())
	}
	return b.String()
}
