package evaluator

import (
	"github.com/cwbudde/go-hel/internal/builtins"
	"github.com/cwbudde/go-hel/internal/herrors"
	"github.com/cwbudde/go-hel/internal/parser"
)

// EvaluateScript parses and runs script text (§4.6): each `let` binding is
// evaluated in order against the context built up so far, then the final
// expression is evaluated in boolean position, exactly as a plain rule
// would be. A script with no bindings is equal in result to evaluating its
// final expression alone.
func EvaluateScript(text string, resolver Resolver, registry *builtins.Registry) (bool, error) {
	script, perr := parser.ParseScript(text)
	if perr != nil {
		return false, herrors.NewParseError(perr.Pos, perr.Message, text)
	}

	ctx := NewContext(resolver, registry)
	for _, binding := range script.Bindings {
		v, err := EvalValue(binding.Value, ctx)
		if err != nil {
			return false, err.WithContext("let " + binding.Name.Value)
		}
		ctx = ctx.WithBinding(binding.Name.Value, v)
	}

	result, err := EvalBool(script.Result, ctx)
	if err != nil {
		return false, err
	}
	return result, nil
}
