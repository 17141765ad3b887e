package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "hel",
	Short: "HEL rule and schema tooling",
	Long: `hel is the command-line tool for the Host Expression Language: a
side-effect-free boolean rule language hosts embed to evaluate conditions
against their own data.

  hel eval      evaluate a rule against supplied facts
  hel validate  check rule syntax without evaluating it
  hel trace     evaluate a rule and print its atom-by-atom trace
  hel script    evaluate script text (let bindings + final expression)
  hel pkg       resolve and inspect schema packages`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&colorOutput, "color", false, "render parse errors with ANSI colour")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
