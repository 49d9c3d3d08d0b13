package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/folio/pkg/components"
)

// Overlay draws top over base with its top-left corner at column x, row
// y. Cells of base outside top keep their styling; rows and columns past
// the edges of base are clipped.
func Overlay(base, top string, x, y int) string {
	rows := strings.Split(base, "\n")
	for dy, line := range strings.Split(top, "\n") {
		ry := y + dy
		if ry < 0 || ry >= len(rows) {
			continue
		}
		row := rows[ry]
		w := components.VisibleLen(line)
		left := ansi.Truncate(row, x, "")
		if pad := x - components.VisibleLen(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(row, x+w, "")
		rows[ry] = left + "\x1b[0m" + line + "\x1b[0m" + right
	}
	return strings.Join(rows, "\n")
}

// Corner returns the position that places a block of w x h cells in the
// bottom corner of a width x height area, inset by margin. left picks
// the bottom-left corner.
func Corner(width, height, w, h, margin int, left bool) (x, y int) {
	y = max(height-h-margin, 0)
	if left {
		return margin, y
	}
	return max(width-w-margin, 0), y
}
