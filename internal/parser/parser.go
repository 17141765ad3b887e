// Package parser implements a recursive-descent parser for HEL expressions
// and scripts, producing an internal/ast tree or a structured Error.
package parser

import (
	"strconv"
	"strings"

	"github.com/cwbudde/go-hel/internal/ast"
	"github.com/cwbudde/go-hel/internal/lexer"
	"github.com/cwbudde/go-hel/internal/value"
)

// Parser turns a pre-scanned token stream into an AST. The whole input is
// tokenised up front (HEL expressions are short) so the parser can use
// unbounded lookahead when disambiguating attribute vs. namespaced call.
type Parser struct {
	source string
	tokens []lexer.Token
	pos    int
}

// New creates a Parser over source.
func New(source string) *Parser {
	l := lexer.New(source)
	var tokens []lexer.Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Type == lexer.EOF {
			break
		}
	}
	return &Parser{source: source, tokens: tokens}
}

// ParseCondition parses a complete `condition` production (the entry point
// for rule expressions). It is an error for trailing tokens to remain after
// the expression.
func ParseCondition(source string) (ast.Expression, *Error) {
	p := New(source)
	expr, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	if tok := p.current(); tok.Type != lexer.EOF {
		return nil, newError(tok.Pos, ErrUnexpectedToken, "unexpected trailing token %q", tok.Literal)
	}
	return expr, nil
}

// Validate reports whether source is a syntactically valid condition. It
// runs the full parse, building the AST, and discards the tree; it does not
// take a cheaper syntax-only path.
func Validate(source string) *Error {
	_, err := ParseCondition(source)
	return err
}

func (p *Parser) current() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peek(n int) lexer.Token {
	idx := p.pos + n
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) advance() lexer.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(t lexer.TokenType, code, what string) (lexer.Token, *Error) {
	if p.current().Type != t {
		return lexer.Token{}, newError(p.current().Pos, code, "expected %s, got %q", what, p.current().Literal)
	}
	return p.advance(), nil
}

// parseCondition == logical_or.
func (p *Parser) parseCondition() (ast.Expression, *Error) {
	return p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() (ast.Expression, *Error) {
	left, err := p.parseLogicalAnd()
	if err != nil {
		return nil, err
	}
	for p.current().Type == lexer.OR {
		tok := p.advance()
		right, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalExpr{Token: tok, Op: ast.LogicalOr, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseLogicalAnd() (ast.Expression, *Error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.current().Type == lexer.AND {
		tok := p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalExpr{Token: tok, Op: ast.LogicalAnd, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseComparison() (ast.Expression, *Error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	op, ok := comparatorFor(p.current().Type)
	if !ok {
		return left, nil
	}
	tok := p.advance()
	right, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return &ast.ComparisonExpr{Token: tok, Op: op, Left: left, Right: right}, nil
}

func comparatorFor(t lexer.TokenType) (value.Comparator, bool) {
	switch t {
	case lexer.EQ:
		return value.Eq, true
	case lexer.NE:
		return value.Ne, true
	case lexer.GT:
		return value.Gt, true
	case lexer.GE:
		return value.Ge, true
	case lexer.LT:
		return value.Lt, true
	case lexer.LE:
		return value.Le, true
	case lexer.CONTAINS:
		return value.Contains, true
	case lexer.IN:
		return value.In, true
	default:
		return 0, false
	}
}

// parseTerm handles literal | attribute | function_call | identifier |
// "(" condition ")".
func (p *Parser) parseTerm() (ast.Expression, *Error) {
	tok := p.current()

	switch tok.Type {
	case lexer.LPAREN:
		p.advance()
		inner, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN, ErrMissingRParen, ")"); err != nil {
			return nil, err
		}
		return &ast.GroupedExpr{Token: tok, Inner: inner}, nil

	case lexer.STRING:
		p.advance()
		return &ast.Literal{Token: tok, Value: value.String(tok.Literal)}, nil

	case lexer.INT:
		p.advance()
		n, perr := parseIntLiteral(tok.Literal)
		if perr != nil {
			return nil, newError(tok.Pos, ErrInvalidLiteral, "invalid integer literal %q", tok.Literal)
		}
		return &ast.Literal{Token: tok, Value: value.Number(n)}, nil

	case lexer.FLOAT:
		p.advance()
		n, perr := strconv.ParseFloat(tok.Literal, 64)
		if perr != nil {
			return nil, newError(tok.Pos, ErrInvalidLiteral, "invalid float literal %q", tok.Literal)
		}
		return &ast.Literal{Token: tok, Value: value.Number(n)}, nil

	case lexer.TRUE:
		p.advance()
		return &ast.Literal{Token: tok, Value: value.Bool(true)}, nil

	case lexer.FALSE:
		p.advance()
		return &ast.Literal{Token: tok, Value: value.Bool(false)}, nil

	case lexer.LBRACKET:
		return p.parseListLiteral()

	case lexer.LBRACE:
		return p.parseMapLiteral()

	case lexer.IDENT:
		return p.parseIdentLed()
	}

	return nil, newError(tok.Pos, ErrInvalidExpression, "unexpected token %q", tok.Literal)
}

// parseIdentLed resolves the attribute/function_call/identifier ambiguity
// that all start with IDENT, using lookahead:
//
//	IDENT "("                          -> unqualified function call
//	IDENT "." IDENT "("                -> namespaced function call
//	IDENT "." IDENT (otherwise)        -> attribute
//	IDENT (otherwise)                  -> identifier
func (p *Parser) parseIdentLed() (ast.Expression, *Error) {
	first := p.advance()

	if p.current().Type == lexer.LPAREN {
		return p.parseCallArgs(first, "", first.Literal)
	}

	if p.current().Type == lexer.DOT && p.peek(1).Type == lexer.IDENT {
		second := p.peek(1)
		if p.peek(2).Type == lexer.LPAREN {
			p.advance() // consume DOT
			p.advance() // consume second IDENT
			return p.parseCallArgs(first, first.Literal, second.Literal)
		}
		p.advance() // consume DOT
		p.advance() // consume second IDENT
		return &ast.AttributeExpr{Token: first, Object: first.Literal, Field: second.Literal}, nil
	}

	return &ast.Identifier{Token: first, Value: first.Literal}, nil
}

func (p *Parser) parseCallArgs(startTok lexer.Token, namespace, name string) (ast.Expression, *Error) {
	if _, err := p.expect(lexer.LPAREN, ErrMissingLParen, "("); err != nil {
		return nil, err
	}

	var args []ast.Expression
	if p.current().Type != lexer.RPAREN {
		for {
			arg, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.current().Type == lexer.COMMA {
				p.advance()
				continue
			}
			break
		}
	}

	if _, err := p.expect(lexer.RPAREN, ErrMissingRParen, ")"); err != nil {
		return nil, err
	}

	return &ast.CallExpr{Token: startTok, Namespace: namespace, Name: name, Args: args}, nil
}

func (p *Parser) parseListLiteral() (ast.Expression, *Error) {
	tok := p.advance() // consume `[`

	var elems []ast.Expression
	if p.current().Type != lexer.RBRACKET {
		for {
			elem, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
			if p.current().Type == lexer.COMMA {
				p.advance()
				continue
			}
			break
		}
	}

	if _, err := p.expect(lexer.RBRACKET, ErrMissingRBracket, "]"); err != nil {
		return nil, err
	}

	return &ast.ListLiteral{Token: tok, Elements: elems}, nil
}

func (p *Parser) parseMapLiteral() (ast.Expression, *Error) {
	tok := p.advance() // consume `{`

	var entries []ast.MapEntry
	if p.current().Type != lexer.RBRACE {
		for {
			keyTok, err := p.expect(lexer.STRING, ErrExpectedIdent, "string key")
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.COLON, ErrMissingColon, ":"); err != nil {
				return nil, err
			}
			val, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			entries = append(entries, ast.MapEntry{Key: keyTok.Literal, Value: val})
			if p.current().Type == lexer.COMMA {
				p.advance()
				continue
			}
			break
		}
	}

	if _, err := p.expect(lexer.RBRACE, ErrMissingRBrace, "}"); err != nil {
		return nil, err
	}

	return &ast.MapLiteral{Token: tok, Entries: entries}, nil
}

// parseIntLiteral parses decimal and "0x" hex integer literals as unsigned
// 64-bit, then widens to float64 per spec §4.2 (Number is the only numeric
// runtime type).
func parseIntLiteral(lit string) (float64, error) {
	if strings.HasPrefix(lit, "0x") || strings.HasPrefix(lit, "0X") {
		n, err := strconv.ParseUint(lit[2:], 16, 64)
		if err != nil {
			return 0, err
		}
		return float64(n), nil
	}
	n, err := strconv.ParseUint(lit, 10, 64)
	if err != nil {
		return 0, err
	}
	return float64(n), nil
}
