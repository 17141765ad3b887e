package cmd

import "github.com/cwbudde/go-hel/pkg/hel"

// renderErr formats err for stderr, using ParseError's source-line-and-caret
// rendering (with --color ANSI codes when requested) if err is one.
func renderErr(err error) string {
	if perr, ok := err.(*hel.ParseError); ok {
		return perr.Format(colorOutput)
	}
	return err.Error()
}
