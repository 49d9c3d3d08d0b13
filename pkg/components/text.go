// Package components renders the small building blocks of the page:
// wrapped and centred text, skill level bars and tag pills.
package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "…"

// VisibleLen returns the width of s in terminal cells, ignoring ANSI
// escape sequences and counting wide characters as two cells.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts s to at most width cells, ending in an ellipsis when
// anything was removed.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, Ellipsis)
}

// Wrap word-wraps s to width cells. Existing newlines are kept.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return strings.Split(s, "\n")
	}
	return strings.Split(ansi.Wrap(s, width, ""), "\n")
}

// Center pads each line of s on the left so it is centred in width
// cells. Lines wider than width are left alone.
func Center(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if pad := (width - VisibleLen(l)) / 2; pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + l
		}
	}
	return strings.Join(lines, "\n")
}

// PadRight pads s with spaces to width cells.
func PadRight(s string, width int) string {
	if vis := VisibleLen(s); vis < width {
		return s + strings.Repeat(" ", width-vis)
	}
	return s
}

// Typed returns the revealed text of a typewriter followed by caret when
// the caret is showing.
func Typed(revealed string, caretOn bool, caret string) string {
	if caretOn {
		return revealed + caret
	}
	return revealed
}
