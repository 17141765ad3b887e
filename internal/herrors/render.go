// Package herrors defines HEL's error taxonomy: parse errors with caret
// rendering, structured evaluation errors, and package/schema errors.
package herrors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-hel/internal/lexer"
)

// ParseError is a single syntax error with source position, rendered with a
// source line and a caret pointing at the offending column.
type ParseError struct {
	Message string
	Source  string
	Pos     lexer.Position
}

// NewParseError creates a ParseError at pos against source, used to render
// the offending line.
func NewParseError(pos lexer.Position, message, source string) *ParseError {
	return &ParseError{Pos: pos, Message: message, Source: source}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return e.Format(false)
}

// Format renders a "parse error at line N, column C" header, the numbered
// source line, and a caret line carrying the message. If color
// is true, the caret and message are wrapped in ANSI codes for terminal
// output.
func (e *ParseError) Format(color bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("parse error at line %d, column %d\n", e.Pos.Line, e.Pos.Column))

	if line := e.sourceLine(e.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m") // Red bold
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m") // Reset
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m") // Bold
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m") // Reset
	}
	return sb.String()
}

func (e *ParseError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatParseErrors renders a batch of parse errors the way a multi-error
// parse run should: numbered, each with its own source context.
func FormatParseErrors(errs []*ParseError, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format(color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d parse errors:\n\n", len(errs)))
	for i, e := range errs {
		sb.WriteString(fmt.Sprintf("[%d/%d] ", i+1, len(errs)))
		sb.WriteString(e.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
