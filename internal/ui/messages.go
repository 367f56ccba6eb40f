package ui

import (
	"fmt"
	"io"
)

func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Success.Render(Current().SymOK+" "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Error.Render(Current().SymFail+" "+msg))
}

// Warn is the user-facing alert for rejected input.
func Warn(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Warning.Render(Current().SymWarn+" "+msg))
}

func Hint(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Muted.Render(msg))
}
