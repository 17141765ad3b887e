package builtins

import (
	"strings"

	"github.com/cwbudde/go-hel/internal/herrors"
	"github.com/cwbudde/go-hel/internal/value"
)

// CoreProvider is the mandatory "core" namespace: generic, product-agnostic
// functions safe to ship with every deployment (len, contains, upper, lower).
type CoreProvider struct{}

// Namespace implements Provider.
func (CoreProvider) Namespace() string { return "core" }

// Builtins implements Provider.
func (CoreProvider) Builtins() map[string]Func {
	return map[string]Func{
		"len":      coreLen,
		"contains": coreContains,
		"upper":    coreUpper,
		"lower":    coreLower,
	}
}

func coreLen(args []value.Value) (value.Value, *herrors.EvalError) {
	if len(args) != 1 {
		return value.Null, herrors.NewEvalError(herrors.InvalidOperation, "core.len expects 1 argument")
	}
	switch args[0].Kind() {
	case value.KindList:
		list, _ := args[0].AsList()
		return value.Number(float64(len(list))), nil
	case value.KindString:
		s, _ := args[0].AsString()
		return value.Number(float64(len([]rune(s)))), nil
	case value.KindMap:
		m, _ := args[0].AsMap()
		return value.Number(float64(len(m))), nil
	default:
		return value.Null, herrors.NewEvalError(herrors.TypeMismatch,
			"expected List, String, or Map, got "+args[0].Kind().String()).WithContext("core.len")
	}
}

func coreContains(args []value.Value) (value.Value, *herrors.EvalError) {
	if len(args) != 2 {
		return value.Null, herrors.NewEvalError(herrors.InvalidOperation, "core.contains expects 2 arguments")
	}
	switch args[0].Kind() {
	case value.KindList:
		return value.Bool(value.ContainsOp(args[0], args[1])), nil
	case value.KindString:
		if args[1].Kind() != value.KindString {
			return value.Bool(false), nil
		}
		return value.Bool(value.ContainsOp(args[0], args[1])), nil
	default:
		return value.Null, herrors.NewEvalError(herrors.TypeMismatch,
			"expected List or String, got "+args[0].Kind().String()).WithContext("core.contains")
	}
}

func coreUpper(args []value.Value) (value.Value, *herrors.EvalError) {
	if len(args) != 1 {
		return value.Null, herrors.NewEvalError(herrors.InvalidOperation, "core.upper expects 1 argument")
	}
	s, ok := args[0].AsString()
	if !ok {
		return value.Null, herrors.NewEvalError(herrors.TypeMismatch,
			"expected String, got "+args[0].Kind().String()).WithContext("core.upper")
	}
	return value.String(strings.ToUpper(s)), nil
}

func coreLower(args []value.Value) (value.Value, *herrors.EvalError) {
	if len(args) != 1 {
		return value.Null, herrors.NewEvalError(herrors.InvalidOperation, "core.lower expects 1 argument")
	}
	s, ok := args[0].AsString()
	if !ok {
		return value.Null, herrors.NewEvalError(herrors.TypeMismatch,
			"expected String, got "+args[0].Kind().String()).WithContext("core.lower")
	}
	return value.String(strings.ToLower(s)), nil
}
