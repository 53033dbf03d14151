// Package console colors terminal output when the stream is a TTY.
package console

import (
	"os"

	"golang.org/x/term"
)

// ANSI color codes
const (
	Reset  = "\033[0m"
	Cyan   = "\033[36m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Red    = "\033[31m"
	Dim    = "\033[2m"
)

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Paint wraps s in color when f is a terminal and returns s unchanged
// otherwise.
func Paint(f *os.File, color, s string) string {
	return paint(IsTTY(f), color, s)
}

func paint(tty bool, color, s string) string {
	if !tty || color == "" {
		return s
	}
	return color + s + Reset
}
