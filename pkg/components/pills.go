package components

import "strings"

// Pills lays out tags as "[tag]" pills separated by a space, wrapping to
// width cells. render styles each pill and has the shape of
// lipgloss.Style.Render; nil leaves them plain.
func Pills(tags []string, width int, render func(...string) string) []string {
	if render == nil {
		render = func(s ...string) string { return strings.Join(s, " ") }
	}
	var lines []string
	var line strings.Builder
	lineW := 0
	for _, tag := range tags {
		pill := "[" + tag + "]"
		w := VisibleLen(pill)
		if lineW > 0 && width > 0 && lineW+1+w > width {
			lines = append(lines, line.String())
			line.Reset()
			lineW = 0
		}
		if lineW > 0 {
			line.WriteByte(' ')
			lineW++
		}
		line.WriteString(render(pill))
		lineW += w
	}
	if lineW > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
