package terminal

import (
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

// Interactive reports whether f is a terminal the page can take over.
// Cygwin and MSYS ptys count.
func Interactive(f *os.File) bool {
	fd := f.Fd()
	return term.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
