// Command hel is the HEL CLI: evaluate, validate, and trace rule and script
// text, and inspect schema packages, from the shell.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-hel/cmd/hel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
