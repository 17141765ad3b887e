package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-hel/pkg/hel"
)

var (
	traceExpr      string
	traceFacts     []string
	traceFactsFile string
)

var traceCmd = &cobra.Command{
	Use:   "trace [file]",
	Short: "Evaluate a rule and print its atom-by-atom trace",
	Long: `Evaluate a rule and print EvalTrace.PrettyPrint(): the result, every
comparison atom actually visited (short-circuited branches leave no atom),
and the sorted, deduplicated list of attribute paths used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTrace,
}

func init() {
	rootCmd.AddCommand(traceCmd)

	traceCmd.Flags().StringVarP(&traceExpr, "eval", "e", "", "trace inline rule text instead of reading from file")
	traceCmd.Flags().StringArrayVar(&traceFacts, "fact", nil, "a fact as key=value (repeatable)")
	traceCmd.Flags().StringVar(&traceFactsFile, "facts-file", "", "path to a JSON document of dotted-key facts")
}

func runTrace(_ *cobra.Command, args []string) error {
	text, err := readRuleInput(traceExpr, args)
	if err != nil {
		return err
	}
	verbosef("tracing %d bytes of rule text", len(text))

	facts, err := buildFacts(traceFacts, traceFactsFile)
	if err != nil {
		return err
	}

	trace, err := hel.EvaluateWithTrace(text, facts, hel.NewRegistry())
	if err != nil {
		fmt.Fprintln(os.Stderr, renderErr(err))
		return fmt.Errorf("evaluation failed")
	}
	verbosef("trace recorded %d atom(s)", len(trace.Atoms))

	fmt.Println(trace.PrettyPrint())
	return nil
}
