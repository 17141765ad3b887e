package cmd

import "testing"

func TestRunValidateAcceptsWellFormedRule(t *testing.T) {
	validateExpr = `risk.score > 80 AND risk.region == "eu"`
	defer func() { validateExpr = "" }()

	if err := runValidate(nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunValidateRejectsMalformedRule(t *testing.T) {
	validateExpr = `risk.score >`
	defer func() { validateExpr = "" }()

	if err := runValidate(nil, nil); err == nil {
		t.Fatal("expected validation error")
	}
}
