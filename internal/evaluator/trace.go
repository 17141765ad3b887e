package evaluator

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cwbudde/go-hel/internal/ast"
	"github.com/cwbudde/go-hel/internal/builtins"
	"github.com/cwbudde/go-hel/internal/herrors"
	"github.com/cwbudde/go-hel/internal/parser"
	"github.com/cwbudde/go-hel/internal/value"
)

// AtomTrace records one evaluated Comparison: its AST text on both sides,
// the operator, the materialised (resolved) values, and the boolean result.
type AtomTrace struct {
	LeftText      string
	Op            value.Comparator
	RightText     string
	LeftResolved  string
	RightResolved string
	Result        bool
}

// EvalTrace is the result of evaluate_with_trace: the final boolean plus
// every Comparison atom visited, in evaluation order.
type EvalTrace struct {
	Result bool
	Atoms  []AtomTrace
}

// FactsUsed returns the sorted, deduplicated set of dotted attribute paths
// referenced by atoms whose left-hand text contains a dot.
func (t *EvalTrace) FactsUsed() []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range t.Atoms {
		if strings.Contains(a.LeftText, ".") && !seen[a.LeftText] {
			seen[a.LeftText] = true
			out = append(out, a.LeftText)
		}
	}
	sort.Strings(out)
	return out
}

// PrettyPrint renders the trace in the fixed, deterministic shape:
//
//	Result: <bool>
//	  0: <left> <op> <right> => left_resolved=Some("…"), right_resolved=Some("…"), atom_result=<bool>
//	  1: …
//	Facts used: ["a.b", "c.d"]
func (t *EvalTrace) PrettyPrint() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Result: %v\n", t.Result)
	for i, a := range t.Atoms {
		fmt.Fprintf(&b, "  %d: %s %s %s => left_resolved=Some(%q), right_resolved=Some(%q), atom_result=%v\n",
			i, a.LeftText, a.Op, a.RightText, a.LeftResolved, a.RightResolved, a.Result)
	}
	facts := t.FactsUsed()
	quoted := make([]string, len(facts))
	for i, f := range facts {
		quoted[i] = strconv.Quote(f)
	}
	fmt.Fprintf(&b, "Facts used: [%s]", strings.Join(quoted, ", "))
	return b.String()
}

// tracer accumulates atoms during a single evaluation walk.
type tracer struct {
	atoms []AtomTrace
}

// EvaluateWithTrace parses and evaluates text as a boolean rule, recording
// every Comparison atom actually visited (short-circuited branches leave no
// atom behind).
func EvaluateWithTrace(text string, resolver Resolver, registry *builtins.Registry) (*EvalTrace, error) {
	expr, perr := parser.ParseCondition(text)
	if perr != nil {
		return nil, herrors.NewParseError(perr.Pos, perr.Message, text)
	}
	ctx := NewContext(resolver, registry)
	tr := &tracer{}
	result, err := tr.evalBool(expr, ctx)
	if err != nil {
		return nil, err
	}
	return &EvalTrace{Result: result, Atoms: tr.atoms}, nil
}

func (tr *tracer) evalBool(expr ast.Expression, ctx *Context) (bool, *herrors.EvalError) {
	switch n := expr.(type) {
	case *ast.GroupedExpr:
		return tr.evalBool(n.Inner, ctx)

	case *ast.LogicalExpr:
		left, err := tr.evalBool(n.Left, ctx)
		if err != nil {
			return false, err.WithContext(n.String())
		}
		if n.Op == ast.LogicalAnd {
			if !left {
				return false, nil
			}
			return tr.evalBool(n.Right, ctx)
		}
		if left {
			return true, nil
		}
		return tr.evalBool(n.Right, ctx)

	case *ast.ComparisonExpr:
		leftVal, err := EvalValue(n.Left, ctx)
		if err != nil {
			return false, err.WithContext(n.String())
		}
		rightVal, err := EvalValue(n.Right, ctx)
		if err != nil {
			return false, err.WithContext(n.String())
		}
		result := value.Compare(leftVal, rightVal, n.Op)
		tr.atoms = append(tr.atoms, AtomTrace{
			LeftText:      n.Left.String(),
			Op:            n.Op,
			RightText:     n.Right.String(),
			LeftResolved:  value.Render(leftVal),
			RightResolved: value.Render(rightVal),
			Result:        result,
		})
		return result, nil

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
