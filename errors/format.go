package errors

import (
	"io"

	"github.com/fatih/color"
)

// errorColor renders diagnostic text in ANSI red.
var errorColor = color.New(color.FgRed)

// Print writes err's message to w in ANSI red followed by a newline. It is
// used for every lex, parse, and runtime error surfaced at the top level of
// run(), whether in file mode or the REPL.
func Print(w io.Writer, err error) {
	errorColor.Fprintln(w, err.Error())
}
