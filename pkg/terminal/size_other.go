//go:build !unix

package terminal

import (
	"github.com/charmbracelet/x/term"

	"gitlab.com/tinyland/lab/folio/pkg/viewport"
)

// querySize reports cell dimensions only; pixel sizes are unavailable
// without the unix ioctl.
func querySize(fd uintptr) (viewport.Size, bool) {
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return viewport.Size{}, false
	}
	return viewport.Size{Cols: w, Rows: h}, true
}
