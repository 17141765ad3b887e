// Package builtins implements HEL's namespaced built-in function registry:
// providers expose pure functions under a lowercase namespace, and the
// registry dispatches qualified calls case-insensitively.
package builtins

import (
	"sort"
	"strings"

	"github.com/cwbudde/go-hel/internal/herrors"
	"github.com/cwbudde/go-hel/internal/value"
)

// Func is a built-in function implementation. It must be pure: no I/O, no
// clock, no randomness, no mutable globals.
type Func func(args []value.Value) (value.Value, *herrors.EvalError)

// Provider supplies a namespace of built-in functions.
type Provider interface {
	// Namespace returns the provider's namespace, case-insensitively; the
	// registry normalises it to lowercase at registration time.
	Namespace() string
	// Builtins returns the function name -> implementation map for this
	// provider. Names are matched case-insensitively at dispatch time.
	Builtins() map[string]Func
}

// Registry dispatches namespaced built-in calls across registered providers.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry creates a Registry with the mandatory core namespace already
// registered; callers add further providers with Register.
func NewRegistry() *Registry {
	r := &Registry{providers: make(map[string]Provider)}
	_ = r.Register(CoreProvider{})
	return r
}

// Register adds a provider under its (lowercased) namespace. Registering a
// second provider under the same namespace is a structured error.
func (r *Registry) Register(p Provider) *herrors.PackageError {
	ns := strings.ToLower(p.Namespace())
	if _, exists := r.providers[ns]; exists {
		return herrors.NewPackageError(herrors.DuplicateType, ns, "namespace already registered")
	}
	r.providers[ns] = p
	return nil
}

// Call dispatches namespace.name(args), normalising both to lowercase.
func (r *Registry) Call(namespace, name string, args []value.Value) (value.Value, *herrors.EvalError) {
	ns := strings.ToLower(namespace)
	p, ok := r.providers[ns]
	if !ok {
		return value.Null, herrors.NewEvalError(herrors.InvalidOperation, "unknown namespace: "+ns)
	}
	fn, ok := p.Builtins()[strings.ToLower(name)]
	if !ok {
		return value.Null, herrors.NewEvalError(herrors.InvalidOperation, "unknown function: "+ns+"."+strings.ToLower(name))
	}
	return fn(args)
}

// Has reports whether namespace.name is registered.
func (r *Registry) Has(namespace, name string) bool {
	p, ok := r.providers[strings.ToLower(namespace)]
	if !ok {
		return false
	}
	_, ok = p.Builtins()[strings.ToLower(name)]
	return ok
}

// Namespaces lists registered namespaces in sorted order.
func (r *Registry) Namespaces() []string {
	names := make([]string, 0, len(r.providers))
	for ns := range r.providers {
		names = append(names, ns)
	}
	sort.Strings(names)
	return names
}

// Functions lists the function names registered under namespace, sorted.
// Returns nil if the namespace is not registered.
func (r *Registry) Functions(namespace string) []string {
	p, ok := r.providers[strings.ToLower(namespace)]
	if !ok {
		return nil
	}
	builtins := p.Builtins()
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
