package cmd

import "testing"

func TestRunTraceInlineExpression(t *testing.T) {
	traceExpr = `risk.score > 80`
	traceFacts = []string{"risk.score=85"}
	defer func() {
		traceExpr = ""
		traceFacts = nil
	}()

	if err := runTrace(nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
