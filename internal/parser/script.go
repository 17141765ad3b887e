package parser

import (
	"strings"

	"github.com/cwbudde/go-hel/internal/ast"
	"github.com/cwbudde/go-hel/internal/lexer"
)

// scriptSegment accumulates the physical lines that make up one logical
// script statement: either a `let` binding or the trailing final expression.
type scriptSegment struct {
	isLet     bool
	parts     []string
	startLine int
}

// ParseScript parses line-oriented script text (§4.6): `#`-comment and blank
// lines are dropped and each `let NAME = EXPR` line opens a binding. A
// following non-`let` line continues that binding when it is indented or
// when the binding text so far does not parse on its own; otherwise it
// starts the final expression, which absorbs the remaining non-`let` lines.
func ParseScript(source string) (*ast.Script, *Error) {
	lines := strings.Split(source, "\n")

	var segments []*scriptSegment
	for i, raw := range lines {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if trimmed == "let" || strings.HasPrefix(trimmed, "let ") {
			segments = append(segments, &scriptSegment{isLet: true, parts: []string{trimmed}, startLine: i + 1})
			continue
		}

		if len(segments) == 0 {
			segments = append(segments, &scriptSegment{isLet: false, parts: []string{trimmed}, startLine: i + 1})
			continue
		}

		last := segments[len(segments)-1]
		// An unindented line after a binding that already parses on its own
		// starts the final expression; otherwise it continues the segment.
		indented := raw[0] == ' ' || raw[0] == '\t'
		if last.isLet && !indented {
			if _, err := parseLetSegment(strings.Join(last.parts, " "), last.startLine); err == nil {
				segments = append(segments, &scriptSegment{isLet: false, parts: []string{trimmed}, startLine: i + 1})
				continue
			}
		}
		last.parts = append(last.parts, trimmed)
	}

	if len(segments) == 0 {
		return nil, newError(lexer.Position{Line: 1, Column: 1}, ErrInvalidExpression, "empty script: missing final expression")
	}

	var bindings []*ast.LetStatement
	var finalExpr ast.Expression

	for i, seg := range segments {
		joined := strings.Join(seg.parts, " ")
		last := i == len(segments)-1

		if !seg.isLet {
			if !last {
				return nil, newError(
					lexer.Position{Line: seg.startLine, Column: 1},
					ErrInvalidExpression,
					"final expression must follow all let bindings",
				)
			}
			expr, err := ParseCondition(joined)
			if err != nil {
				return nil, err
			}
			finalExpr = expr
			continue
		}

		binding, err := parseLetSegment(joined, seg.startLine)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, binding)
	}

	if finalExpr == nil {
		last := segments[len(segments)-1]
		return nil, newError(
			lexer.Position{Line: last.startLine, Column: 1},
			ErrInvalidExpression,
			"missing final expression",
		)
	}

	return &ast.Script{Bindings: bindings, Result: finalExpr}, nil
}

func parseLetSegment(joined string, lineNo int) (*ast.LetStatement, *Error) {
	l := lexer.New(joined)

	letTok := l.Next()
	if letTok.Type != lexer.LET {
		return nil, newError(atLine(letTok.Pos, lineNo), ErrUnexpectedToken, "expected let binding")
	}

	nameTok := l.Next()
	if nameTok.Type != lexer.IDENT {
		return nil, newError(atLine(nameTok.Pos, lineNo), ErrExpectedIdent, "expected binding name after let")
	}

	assignTok := l.Next()
	if assignTok.Type != lexer.ASSIGN {
		return nil, newError(atLine(assignTok.Pos, lineNo), ErrExpectedOperator, "expected '=' after let %s", nameTok.Literal)
	}

	runes := []rune(joined)
	var exprRunes []rune
	if assignTok.Pos.Column <= len(runes) {
		exprRunes = runes[assignTok.Pos.Column:]
	}
	exprSource := strings.TrimSpace(string(exprRunes))
	if exprSource == "" {
		return nil, newError(atLine(assignTok.Pos, lineNo), ErrInvalidExpression, "missing expression for let %s", nameTok.Literal)
	}

	exprAST, err := ParseCondition(exprSource)
	if err != nil {
		return nil, err
	}

	return &ast.LetStatement{
		Token: letTok,
		Name:  &ast.Identifier{Token: nameTok, Value: nameTok.Literal},
		Value: exprAST,
	}, nil
}

// atLine rewrites a position computed against a single joined line so
// reported errors point at the script's real starting line number.
func atLine(pos lexer.Position, lineNo int) lexer.Position {
	return lexer.Position{Line: lineNo, Column: pos.Column}
}
