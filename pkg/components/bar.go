package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// eighths are the left-aligned partial blocks, index n covering n/8 of a
// cell.
var eighths = [9]string{" ", "▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"}

// BarStyle colours a level bar.
type BarStyle struct {
	Filled lipgloss.Style
	Empty  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
}

// LevelBar draws level (0-100) as a bar of width cells with eighth-cell
// precision.
func LevelBar(level, width int, st BarStyle) string {
	if width <= 0 {
		return ""
	}
	ratio := math.Min(math.Max(float64(level)/100, 0), 1)
	units := int(math.Round(ratio * float64(width*8)))
	full := units / 8
	part := units % 8
	empty := width - full
	if part > 0 {
		empty--
	}

	var b strings.Builder
	b.WriteString(st.Filled.Render(strings.Repeat(eighths[8], full)))
	if part > 0 {
		b.WriteString(st.Filled.Render(eighths[part]))
	}
	if empty > 0 {
		b.WriteString(st.Empty.Render(strings.Repeat("░", empty)))
	}
	return b.String()
}

// SkillRow renders "name  ████▌░░░  85%" with the name padded to
// nameWidth and the bar filling the rest of width.
func SkillRow(name string, level, nameWidth, width int, st BarStyle) string {
	value := fmt.Sprintf("%3d%%", min(max(level, 0), 100))
	barWidth := width - nameWidth - VisibleLen(value) - 2
	label := PadRight(Truncate(name, nameWidth), nameWidth)
	if barWidth < 4 {
		return st.Label.Render(label) + " " + st.Value.Render(value)
	}
	return st.Label.Render(label) + " " + LevelBar(level, barWidth, st) + " " + st.Value.Render(value)
}
