package evaluator

import (
	"github.com/cwbudde/go-hel/internal/ast"
	"github.com/cwbudde/go-hel/internal/builtins"
	"github.com/cwbudde/go-hel/internal/herrors"
	"github.com/cwbudde/go-hel/internal/parser"
	"github.com/cwbudde/go-hel/internal/value"
)

// EvaluateWithResolver parses and evaluates text as a boolean rule against
// resolver, with no built-ins registry attached.
func EvaluateWithResolver(text string, resolver Resolver) (bool, error) {
	return EvaluateWithContext(text, resolver, nil)
}

// EvaluateWithContext parses and evaluates text as a boolean rule against
// resolver and registry (registry may be nil if the rule calls no
// functions).
func EvaluateWithContext(text string, resolver Resolver, registry *builtins.Registry) (bool, error) {
	expr, perr := parser.ParseCondition(text)
	if perr != nil {
		return false, herrors.NewParseError(perr.Pos, perr.Message, text)
	}
	ctx := NewContext(resolver, registry)
	b, err := EvalBool(expr, ctx)
	if err != nil {
		return b, err
	}
	return b, nil
}

// Evaluate evaluates text against a FactsContext, the built-in convenience
// Resolver, with no built-ins registry attached.
func Evaluate(text string, facts *FactsContext) (bool, error) {
	return EvaluateWithResolver(text, facts)
}

// EvalBool walks expr in boolean position: And/Or short-circuit, Comparison
// applies its operator directly, and anything else is evaluated as a Value
// that must be Bool (TypeMismatch otherwise).
func EvalBool(expr ast.Expression, ctx *Context) (bool, *herrors.EvalError) {
	switch n := expr.(type) {
	case *ast.GroupedExpr:
		return EvalBool(n.Inner, ctx)

	case *ast.LogicalExpr:
		left, err := EvalBool(n.Left, ctx)
		if err != nil {
			return false, err.WithContext(n.String())
		}
		if n.Op == ast.LogicalAnd {
			if !left {
				return false, nil
			}
			right, err := EvalBool(n.Right, ctx)
			if err != nil {
				return false, err.WithContext(n.String())
			}
			return right, nil
		}
		// LogicalOr
		if left {
			return true, nil
		}
		right, err := EvalBool(n.Right, ctx)
		if err != nil {
			return false, err.WithContext(n.String())
		}
		return right, nil

	case *ast.ComparisonExpr:
		left, err := EvalValue(n.Left, ctx)
		if err != nil {
			return false, err.WithContext(n.String())
		}
		right, err := EvalValue(n.Right, ctx)
		if err != nil {
			return false, err.WithContext(n.String())
		}
		return value.Compare(left, right, n.Op), nil

	default:
		v, err := EvalValue(expr, ctx)
		if err != nil {
			return false, err
		}
		b, ok := v.AsBool()
		if !ok {
			return false, herrors.NewEvalError(herrors.TypeMismatch,
				"expected Bool, got "+v.Kind().String()).WithContext(expr.String())
		}
		return b, nil
	}
}

// EvalValue walks expr in value position: right-hand sides, function
// arguments, list/map literal elements, and top-level non-boolean queries.
func EvalValue(expr ast.Expression, ctx *Context) (value.Value, *herrors.EvalError) {
	switch n := expr.(type) {
	case *ast.Literal:
		return n.Value, nil

	case *ast.Identifier:
		if v, ok := ctx.Binding(n.Value); ok {
			return v, nil
		}
		// Unbound bareword: materialises as String(name), never a resolver lookup.
		return value.String(n.Value), nil

	case *ast.AttributeExpr:
		return resolveAttribute(ctx.Resolver, n.Object, n.Field)

	case *ast.ListLiteral:
		elems := make([]value.Value, len(n.Elements))
		for i, e := range n.Elements {
			v, err := EvalValue(e, ctx)
			if err != nil {
				return value.Null, err.WithContext(n.String())
			}
			elems[i] = v
		}
		return value.List(elems), nil

	case *ast.MapLiteral:
		m := make(map[string]value.Value, len(n.Entries))
		for _, entry := range n.Entries {
			v, err := EvalValue(entry.Value, ctx)
			if err != nil {
				return value.Null, err.WithContext(n.String())
			}
			m[entry.Key] = v
		}
		return value.Map(m), nil

	case *ast.CallExpr:
		if ctx.Registry == nil {
			return value.Null, herrors.NewEvalError(herrors.InvalidOperation, "no built-ins registry attached").WithContext(n.String())
		}
		args := make([]value.Value, len(n.Args))
		for i, a := range n.Args {
			v, err := EvalValue(a, ctx)
			if err != nil {
				return value.Null, err.WithContext(n.String())
			}
			args[i] = v
		}
		namespace := n.Namespace
		if namespace == "" {
			namespace = "core"
		}
		v, err := ctx.Registry.Call(namespace, n.Name, args)
		if err != nil {
			return value.Null, err.WithContext(n.String())
		}
		return v, nil

	case *ast.GroupedExpr:
		return EvalValue(n.Inner, ctx)

	case *ast.LogicalExpr, *ast.ComparisonExpr:
		b, err := EvalBool(expr, ctx)
		if err != nil {
			return value.Null, err
		}
		return value.Bool(b), nil

	default:
		return value.Null, herrors.NewEvalError(herrors.InvalidOperation, "unsupported expression node")
	}
}
