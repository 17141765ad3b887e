package evaluator

import "github.com/cwbudde/go-hel/internal/value"

// FactsContext is the built-in convenience Resolver: a flat mapping from
// "object.field" keys to Value. It covers the common case where a host has
// no richer object model and just wants to hand the evaluator a bag of
// facts.
type FactsContext struct {
	facts map[string]value.Value
}

// NewFactsContext creates an empty FactsContext.
func NewFactsContext() *FactsContext {
	return &FactsContext{facts: make(map[string]value.Value)}
}

// AddFact stores value under the dotted key (e.g. "risk.score") and returns
// the receiver, so calls can be chained.
func (f *FactsContext) AddFact(key string, v value.Value) *FactsContext {
	f.facts[key] = v
	return f
}

// Resolve implements Resolver by rejoining object and field on "." and
// looking up the combined key.
func (f *FactsContext) Resolve(object, field string) (value.Value, bool) {
	v, ok := f.facts[object+"."+field]
	return v, ok
}
