package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI terminal control escape sequences

// ClearLine clears the current line and returns cursor to the beginning
// This is equivalent to "\r\033[2K"
const ClearLine = "\r\033[2K"

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
