package builtins

import (
	"testing"

	"github.com/cwbudde/go-hel/internal/herrors"
	"github.com/cwbudde/go-hel/internal/value"
)

// acmeProvider is a minimal second namespace used only to exercise registry
// dispatch across more than one provider.
type acmeProvider struct{}

func (acmeProvider) Namespace() string { return "Acme" }
func (acmeProvider) Builtins() map[string]Func {
	return map[string]Func{
		"double": func(args []value.Value) (value.Value, *herrors.EvalError) {
			n, ok := args[0].AsNumber()
			if !ok {
				return value.Null, herrors.NewEvalError(herrors.TypeMismatch, "expected Number")
			}
			return value.Number(n * 2), nil
		},
	}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	// NewRegistry already registers the mandatory core provider.
	return NewRegistry()
}

func TestRegistryCallIsCaseInsensitive(t *testing.T) {
	r := newTestRegistry(t)
	got, err := r.Call("CORE", "UPPER", []value.Value{value.String("elf")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s, _ := got.AsString(); s != "ELF" {
		t.Errorf("got %q, want ELF", s)
	}
}

func TestRegistryRejectsDuplicateNamespace(t *testing.T) {
	r := newTestRegistry(t)
	if err := r.Register(CoreProvider{}); err == nil {
		t.Fatal("expected duplicate namespace error")
	}
}

func TestRegistryCallUnknownNamespaceOrFunction(t *testing.T) {
	r := newTestRegistry(t)

	if _, err := r.Call("nope", "upper", nil); err == nil {
		t.Fatal("expected unknown namespace error")
	}
	if _, err := r.Call("core", "nope", nil); err == nil {
		t.Fatal("expected unknown function error")
	}
}

func TestRegistryIntrospection(t *testing.T) {
	r := newTestRegistry(t)
	if err := r.Register(acmeProvider{}); err != nil {
		t.Fatalf("register acme: %v", err)
	}

	ns := r.Namespaces()
	if len(ns) != 2 || ns[0] != "acme" || ns[1] != "core" {
		t.Fatalf("Namespaces() = %v, want sorted [acme core]", ns)
	}

	if !r.Has("ACME", "Double") {
		t.Error("Has should be case-insensitive")
	}
	if r.Has("acme", "missing") {
		t.Error("Has should be false for an unregistered function")
	}

	fns := r.Functions("core")
	want := []string{"contains", "len", "lower", "upper"}
	if len(fns) != len(want) {
		t.Fatalf("Functions(core) = %v, want %v", fns, want)
	}
	for i := range want {
		if fns[i] != want[i] {
			t.Errorf("Functions(core)[%d] = %q, want %q", i, fns[i], want[i])
		}
	}
}
