package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-hel/pkg/hel"
)

var (
	evalExpr      string
	evalFacts     []string
	evalFactsFile string
)

var evalCmd = &cobra.Command{
	Use:   "eval [file]",
	Short: "Evaluate a rule against supplied facts",
	Long: `Evaluate HEL rule text and print its boolean result.

Examples:
  # Evaluate a rule file against a facts JSON document
  hel eval --facts-file facts.json rule.hel

  # Evaluate an inline rule with ad-hoc facts
  hel eval -e 'risk.score > 80' --fact risk.score=85`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline rule text instead of reading from file")
	evalCmd.Flags().StringArrayVar(&evalFacts, "fact", nil, "a fact as key=value (repeatable)")
	evalCmd.Flags().StringVar(&evalFactsFile, "facts-file", "", "path to a JSON document of dotted-key facts")
}

func runEval(_ *cobra.Command, args []string) error {
	text, err := readRuleInput(evalExpr, args)
	if err != nil {
		return err
	}
	verbosef("evaluating %d bytes of rule text", len(text))

	facts, err := buildFacts(evalFacts, evalFactsFile)
	if err != nil {
		return err
	}
	verbosef("facts: %d --fact flag(s), facts-file=%q", len(evalFacts), evalFactsFile)

	result, err := hel.EvaluateWithContext(text, facts, hel.NewRegistry())
	if err != nil {
		fmt.Fprintln(os.Stderr, renderErr(err))
		return fmt.Errorf("evaluation failed")
	}

	fmt.Println(result)
	return nil
}

// readRuleInput returns inline text if set, otherwise reads the single file
// argument.
func readRuleInput(inline string, args []string) (string, error) {
	if inline != "" {
		return inline, nil
	}
	if len(args) != 1 {
		return "", fmt.Errorf("either provide a file path or use -e for inline text")
	}
	content, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(content), nil
}
