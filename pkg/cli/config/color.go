package config

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ColorEnabled reports whether ANSI colors should be written to w. The decision is made
// per writer because logs and diagnostics go to stderr while stdout may be a terminal.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}

	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
