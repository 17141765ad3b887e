package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunScriptInline(t *testing.T) {
	scriptExpr = "let has = perms CONTAINS \"READ_SMS\"\nhas AND entropy > 7.5"
	scriptFacts = []string{"entropy=8.0"}
	defer func() {
		scriptExpr = ""
		scriptFacts = nil
	}()

	// perms is provided via facts-file to exercise list-valued JSON facts.
	path := filepath.Join(t.TempDir(), "facts.json")
	if err := os.WriteFile(path, []byte(`{"perms": ["READ_SMS", "SEND_SMS"]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	scriptFactsFile = path
	defer func() { scriptFactsFile = "" }()

	if err := runScriptCmd(nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
