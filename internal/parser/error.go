package parser

import (
	"fmt"

	"github.com/cwbudde/go-hel/internal/lexer"
)

// Error codes for programmatic handling of parse failures.
const (
	ErrUnexpectedToken   = "E_UNEXPECTED_TOKEN"
	ErrExpectedIdent     = "E_EXPECTED_IDENT"
	ErrExpectedOperator  = "E_EXPECTED_OPERATOR"
	ErrMissingLParen     = "E_MISSING_LPAREN"
	ErrMissingRParen     = "E_MISSING_RPAREN"
	ErrMissingRBracket   = "E_MISSING_RBRACKET"
	ErrMissingRBrace     = "E_MISSING_RBRACE"
	ErrMissingColon      = "E_MISSING_COLON"
	ErrInvalidLiteral    = "E_INVALID_LITERAL"
	ErrInvalidExpression = "E_INVALID_EXPRESSION"
	ErrUnexpectedEOF     = "E_UNEXPECTED_EOF"
)

// Error is a structured parse error carrying a machine-readable code and the
// source position it occurred at.
type Error struct {
	Message string
	Code    string
	Pos     lexer.Position
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Message, e.Pos.Line, e.Pos.Column)
}

func newError(pos lexer.Position, code, format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Code: code, Pos: pos}
}
