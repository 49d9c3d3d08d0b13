//go:build unix

package terminal

import (
	"golang.org/x/sys/unix"

	"gitlab.com/tinyland/lab/folio/pkg/viewport"
)

// querySize asks the tty driver for the window size, pixels included.
func querySize(fd uintptr) (viewport.Size, bool) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return viewport.Size{}, false
	}
	return viewport.Size{
		Cols:   int(ws.Col),
		Rows:   int(ws.Row),
		PixelW: int(ws.Xpixel),
		PixelH: int(ws.Ypixel),
	}, true
}
