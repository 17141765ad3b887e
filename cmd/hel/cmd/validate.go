package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-hel/pkg/hel"
)

var validateExpr string

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check rule syntax without evaluating it",
	Long: `Validate rule text for syntactic validity only. The rule is fully
parsed and the AST is discarded; no resolver or registry is involved and
nothing is evaluated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateExpr, "eval", "e", "", "validate inline rule text instead of reading from file")
}

func runValidate(_ *cobra.Command, args []string) error {
	text, err := readRuleInput(validateExpr, args)
	if err != nil {
		return err
	}
	verbosef("validating %d bytes of rule text", len(text))

	if err := hel.ValidateExpression(text); err != nil {
		fmt.Fprintln(os.Stderr, renderErr(err))
		return fmt.Errorf("invalid rule")
	}

	fmt.Println("ok")
	return nil
}
