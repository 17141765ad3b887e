// Package evaluator walks HEL ASTs against a host-supplied Resolver and
// optional built-ins Registry, producing booleans, values, or traces.
package evaluator

import (
	"fmt"

	"github.com/cwbudde/go-hel/internal/herrors"
	"github.com/cwbudde/go-hel/internal/value"
)

// Resolver looks up `object.field` attribute references against host state.
// Resolvers must be referentially transparent across a single evaluation:
// the evaluator never mutates a Resolver, and concurrent evaluations sharing
// one must see a consistent snapshot.
type Resolver interface {
	// Resolve returns the field's value and true, or an unspecified Value
	// and false when the host has no such attribute.
	Resolve(object, field string) (value.Value, bool)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(object, field string) (value.Value, bool)

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(object, field string) (value.Value, bool) { return f(object, field) }

// StrictResolver wraps a Resolver so a missing attribute produces an
// UnknownAttribute EvalError instead of the default Null.
type StrictResolver struct {
	Inner Resolver
}

// Resolve implements Resolver by delegating to Inner.
func (s StrictResolver) Resolve(object, field string) (value.Value, bool) {
	return s.Inner.Resolve(object, field)
}

// isStrict reports whether missing attributes should error. Implemented as
// an unexported marker interface so StrictResolver composes transparently
// with any underlying Resolver without the evaluator needing a type switch
// over concrete types.
type isStrict interface {
	strict() bool
}

func (StrictResolver) strict() bool { return true }

func resolveAttribute(r Resolver, object, field string) (value.Value, *herrors.EvalError) {
	if r == nil {
		return value.Null, nil
	}
	v, found := r.Resolve(object, field)
	if found {
		return v, nil
	}
	if s, ok := r.(isStrict); ok && s.strict() {
		return value.Null, herrors.NewEvalError(herrors.UnknownAttribute, fmt.Sprintf("%s.%s", object, field))
	}
	return value.Null, nil
}
