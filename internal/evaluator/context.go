package evaluator

import (
	"github.com/cwbudde/go-hel/internal/builtins"
	"github.com/cwbudde/go-hel/internal/value"
)

// Context is the evaluation context threaded through an AST walk: a borrow
// of the resolver, an optional borrow of the built-ins registry, and the
// current variable bindings. Context is immutable; WithBinding returns a new
// Context layering one more binding over the same base, so evaluator
// recursion never shares mutable state across branches.
type Context struct {
	Resolver Resolver
	Registry *builtins.Registry
	bindings map[string]value.Value
}

// NewContext creates a Context with no bindings. Registry may be nil: a
// script or rule that never calls a built-in function doesn't need one, and
// any FunctionCall encountered without one fails with InvalidOperation.
func NewContext(resolver Resolver, registry *builtins.Registry) *Context {
	return &Context{Resolver: resolver, Registry: registry}
}

// WithBinding returns a new Context with name bound to v, layered over the
// receiver's existing bindings. The receiver is left unmodified.
func (c *Context) WithBinding(name string, v value.Value) *Context {
	next := make(map[string]value.Value, len(c.bindings)+1)
	for k, existing := range c.bindings {
		next[k] = existing
	}
	next[name] = v
	return &Context{Resolver: c.Resolver, Registry: c.Registry, bindings: next}
}

// Binding returns the bound value for name and whether it exists.
func (c *Context) Binding(name string) (value.Value, bool) {
	v, ok := c.bindings[name]
	return v, ok
}
