// Package hel is the public embedding surface for the Host Expression
// Language: a side-effect-free boolean rule language hosts use to evaluate
// conditions against their own data without giving rules any other power.
//
// A host supplies a Resolver (how to look up "object.field" attributes) and
// optionally a Registry of built-in functions, then calls Evaluate/
// EvaluateScript/EvaluateWithTrace against rule or script text.
package hel

import (
	"github.com/cwbudde/go-hel/internal/builtins"
	"github.com/cwbudde/go-hel/internal/evaluator"
	"github.com/cwbudde/go-hel/internal/herrors"
	"github.com/cwbudde/go-hel/internal/parser"
	"github.com/cwbudde/go-hel/internal/value"
)

// Value is the tagged variant every HEL expression evaluates to or
// compares against: Null, Bool, String, Number, List, or Map.
type Value = value.Value

// BoolValue, StringValue and NumberValue construct scalar Values for use in
// a FactsContext or Provider implementation.
func BoolValue(b bool) Value     { return value.Bool(b) }
func StringValue(s string) Value { return value.String(s) }
func NumberValue(n float64) Value { return value.Number(n) }

// ListValue constructs a List Value from its elements.
func ListValue(elems ...Value) Value { return value.List(elems) }

// MapValue constructs a Map Value from named entries.
func MapValue(entries map[string]Value) Value { return value.Map(entries) }

// Null is the absent/missing Value.
var Null = value.Null

// Resolver looks up "object.field" attribute references against host state.
type Resolver = evaluator.Resolver

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc = evaluator.ResolverFunc

// StrictResolver wraps a Resolver so missing attributes raise an
// UnknownAttribute error instead of evaluating to Null.
type StrictResolver = evaluator.StrictResolver

// FactsContext is a flat, built-in Resolver over an "object.field" -> Value
// map, handy for tests and simple host integrations.
type FactsContext = evaluator.FactsContext

// NewFactsContext returns an empty FactsContext.
func NewFactsContext() *FactsContext { return evaluator.NewFactsContext() }

// Registry is the namespaced built-ins registry. NewRegistry (below) returns
// one with the mandatory core namespace (len, contains, upper, lower)
// already registered.
type Registry = builtins.Registry

// Provider contributes a namespace of built-in functions to a Registry.
type Provider = builtins.Provider

// NewRegistry returns a Registry with the core namespace pre-registered.
func NewRegistry() *Registry { return builtins.NewRegistry() }

// EvalTrace is the result of EvaluateWithTrace: the boolean result plus
// every comparison atom actually visited during evaluation.
type EvalTrace = evaluator.EvalTrace

// AtomTrace is a single recorded comparison within an EvalTrace.
type AtomTrace = evaluator.AtomTrace

// Evaluate runs rule text against a FactsContext built from facts.
func Evaluate(text string, facts *FactsContext) (bool, error) {
	return evaluator.Evaluate(text, facts)
}

// EvaluateWithResolver runs rule text against an arbitrary Resolver, with no
// built-ins registry attached (function calls will fail).
func EvaluateWithResolver(text string, resolver Resolver) (bool, error) {
	return evaluator.EvaluateWithResolver(text, resolver)
}

// EvaluateWithContext runs rule text against a Resolver and Registry.
func EvaluateWithContext(text string, resolver Resolver, registry *Registry) (bool, error) {
	return evaluator.EvaluateWithContext(text, resolver, registry)
}

// EvaluateWithTrace runs rule text and records every comparison atom it
// actually visits (short-circuited branches leave no trace).
func EvaluateWithTrace(text string, resolver Resolver, registry *Registry) (*EvalTrace, error) {
	return evaluator.EvaluateWithTrace(text, resolver, registry)
}

// EvaluateScript runs script text: sequential `let` bindings followed by a
// final expression evaluated in boolean position.
func EvaluateScript(text string, resolver Resolver, registry *Registry) (bool, error) {
	return evaluator.EvaluateScript(text, resolver, registry)
}

// ParseError is a syntax error with source position, rendered with a source
// line and a caret pointing at the offending column. Callers that want
// colour output (a host CLI, for instance) can type-assert to it and call
// Format(true) directly instead of relying on Error()'s plain rendering.
type ParseError = herrors.ParseError

// ValidateExpression checks rule text for syntactic validity. It runs the
// full parse and discards the resulting AST, so it costs as much as parsing.
// A non-nil error is always a *ParseError.
func ValidateExpression(text string) error {
	if err := parser.Validate(text); err != nil {
		return herrors.NewParseError(err.Pos, err.Message, text)
	}
	return nil
}
