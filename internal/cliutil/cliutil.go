package cliutil

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTty reports whether fd refers to a terminal, Cygwin ones included.
func IsTty(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// StdinIsPiped reports whether standard input carries data rather than
// an interactive terminal.
func StdinIsPiped() bool {
	return !IsTty(os.Stdin.Fd())
}
