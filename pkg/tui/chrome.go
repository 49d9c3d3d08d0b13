package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/folio/pkg/components"
	"gitlab.com/tinyland/lab/folio/pkg/sections"
	"gitlab.com/tinyland/lab/folio/pkg/viewport"
)

// Toolkit zone ids.
const (
	ZoneToolkit = "tk:toggle"
	ZoneNext    = "tk:next"
	ZoneSupport = "tk:support"
	ZoneAudio   = "tk:audio"
)

var sectionLabels = map[string]string{
	sections.Home:       "Home",
	sections.About:      "About",
	sections.Experience: "Experience",
	sections.Projects:   "Projects",
	sections.Skills:     "Skills",
	sections.Contact:    "Contact",
}

// SectionLabel returns the display name of a section id.
func SectionLabel(id string) string {
	if l, ok := sectionLabels[id]; ok {
		return l
	}
	return id
}

// NavState is the navigation bar's input.
type NavState struct {
	Brand      string
	Active     string
	Scrolled   bool
	ThemeLabel string
	Class      viewport.Class
	Width      int
	Mark       func(id, s string) string
}

func (n NavState) mark(id, s string) string {
	if n.Mark == nil {
		return s
	}
	return n.Mark(id, s)
}

// RenderNav draws the one-line navigation bar. Once the page has
// scrolled the bar takes the surface background. Mobile shows only the
// active section.
func RenderNav(n NavState, sty Styles) string {
	if n.Width <= 0 {
		return ""
	}
	bar := sty.NavBar
	item, on := sty.NavItem, sty.NavOn
	if !n.Scrolled {
		bar = bar.UnsetBackground()
		item, on = item.UnsetBackground(), on.UnsetBackground()
	}

	brand := bar.Bold(true).Padding(0, 1).Render(n.Brand)
	themeBtn := n.mark(ZoneTheme, item.Render("◐ "+n.ThemeLabel))

	var middle string
	if n.Class == viewport.Mobile {
		middle = on.Render(SectionLabel(n.Active))
	} else {
		items := make([]string, 0, len(sections.IDs()))
		for _, id := range sections.IDs() {
			style := item
			if id == n.Active {
				style = on
			}
			items = append(items, n.mark(ZoneNav+id, style.Render(SectionLabel(id))))
		}
		middle = strings.Join(items, "")
	}

	used := lipgloss.Width(brand) + lipgloss.Width(middle) + lipgloss.Width(themeBtn)
	if used > n.Width {
		// Drop the brand first, then fall back to the active label.
		brand = ""
		if lipgloss.Width(middle)+lipgloss.Width(themeBtn) > n.Width {
			middle = on.Render(SectionLabel(n.Active))
		}
		used = lipgloss.Width(middle) + lipgloss.Width(themeBtn)
	}
	gap := max(n.Width-used, 0)
	leftGap := gap / 2
	line := brand + bar.Render(strings.Repeat(" ", leftGap)) + middle +
		bar.Render(strings.Repeat(" ", gap-leftGap)) + themeBtn
	return components.Truncate(line, n.Width)
}

// Side is where the toolkit tooltip opens.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// TooltipSide opens the tooltip toward the larger half of the screen: a
// toolkit centred in the right half gets its tooltip on the left.
func TooltipSide(centerX, width int) Side {
	if width > 0 && centerX > width/2 {
		return SideLeft
	}
	return SideRight
}

// ToolkitState is the floating toolkit's input.
type ToolkitState struct {
	Open  bool
	Audio bool
	Hover int // index of the highlighted button, -1 for none
	Mark  func(id, s string) string
}

// ToolkitButton is one toolkit entry.
type ToolkitButton struct {
	Zone    string
	Icon    string
	Tooltip string
}

// ToolkitButtons returns the buttons in display order.
func ToolkitButtons(audio bool) []ToolkitButton {
	sound := "Audio: off"
	if audio {
		sound = "Audio: on"
	}
	return []ToolkitButton{
		{ZoneNext, "↓", "Next Section"},
		{ZoneSupport, "♥", "Support"},
		{ZoneAudio, "♪", sound},
	}
}

// RenderToolkit draws the toolkit. side picks where the tooltip of the
// hovered button goes.
func RenderToolkit(t ToolkitState, sty Styles, side Side) string {
	mark := func(id, s string) string {
		if t.Mark == nil {
			return s
		}
		return t.Mark(id, s)
	}
	toggle := "✦"
	if t.Open {
		toggle = "✕"
	}
	toggleBtn := mark(ZoneToolkit, sty.Accent.Render(toggle))
	if !t.Open {
		return sty.Panel.Render(toggleBtn)
	}

	buttons := ToolkitButtons(t.Audio)
	rows := make([]string, 0, len(buttons)+1)
	var tip string
	for i, b := range buttons {
		icon := sty.Body.Render(b.Icon)
		if i == t.Hover {
			icon = sty.Accent.Render(b.Icon)
			tip = sty.Tooltip.Render(b.Tooltip)
		}
		rows = append(rows, mark(b.Zone, icon))
	}
	rows = append(rows, toggleBtn)
	panel := sty.Panel.Render(strings.Join(rows, "\n"))
	if tip == "" {
		return panel
	}

	// Vertically align the tooltip with its button, inside the border.
	tipCol := strings.Repeat("\n", 1+t.Hover) + tip
	if side == SideLeft {
		return lipgloss.JoinHorizontal(lipgloss.Top, tipCol, " ", panel)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panel, " ", tipCol)
}
