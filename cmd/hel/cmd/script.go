package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-hel/pkg/hel"
)

var (
	scriptExpr      string
	scriptFacts     []string
	scriptFactsFile string
)

var scriptCmd = &cobra.Command{
	Use:   "script [file]",
	Short: "Evaluate script text (let bindings + final expression)",
	Long: `Evaluate HEL script text: a sequence of "let NAME = EXPR" bindings
followed by a final expression evaluated in boolean position.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScriptCmd,
}

func init() {
	rootCmd.AddCommand(scriptCmd)

	scriptCmd.Flags().StringVarP(&scriptExpr, "eval", "e", "", "evaluate inline script text instead of reading from file")
	scriptCmd.Flags().StringArrayVar(&scriptFacts, "fact", nil, "a fact as key=value (repeatable)")
	scriptCmd.Flags().StringVar(&scriptFactsFile, "facts-file", "", "path to a JSON document of dotted-key facts")
}

func runScriptCmd(_ *cobra.Command, args []string) error {
	text, err := readRuleInput(scriptExpr, args)
	if err != nil {
		return err
	}
	verbosef("running %d bytes of script text", len(text))

	facts, err := buildFacts(scriptFacts, scriptFactsFile)
	if err != nil {
		return err
	}

	result, err := hel.EvaluateScript(text, facts, hel.NewRegistry())
	if err != nil {
		fmt.Fprintln(os.Stderr, renderErr(err))
		return fmt.Errorf("script evaluation failed")
	}

	fmt.Println(result)
	return nil
}
