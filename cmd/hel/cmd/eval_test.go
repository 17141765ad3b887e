package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuildFactsMergesFlagsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facts.json")
	if err := os.WriteFile(path, []byte(`{"risk.score": 10, "risk.region": "eu"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	facts, err := buildFacts([]string{"risk.score=90"}, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := facts.Resolve("risk", "score")
	if !ok {
		t.Fatal("expected risk.score to resolve")
	}
	n, ok := v.AsNumber()
	if !ok || n != 90 {
		t.Errorf("got %v, want Number(90)", v)
	}
}

func TestInferValueKinds(t *testing.T) {
	if b, ok := inferValue("true").AsBool(); !ok || !b {
		t.Error("expected Bool(true)")
	}
	if n, ok := inferValue("3.5").AsNumber(); !ok || n != 3.5 {
		t.Error("expected Number(3.5)")
	}
	if s, ok := inferValue("eu-west").AsString(); !ok || s != "eu-west" {
		t.Error("expected String(eu-west)")
	}
}

func TestRunEvalInlineExpression(t *testing.T) {
	evalExpr = `risk.score > 80`
	evalFacts = []string{"risk.score=85"}
	evalFactsFile = ""
	defer func() {
		evalExpr = ""
		evalFacts = nil
	}()

	if err := runEval(nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
