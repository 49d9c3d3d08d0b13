package app

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/folio/pkg/content"
	"gitlab.com/tinyland/lab/folio/pkg/nav"
	"gitlab.com/tinyland/lab/folio/pkg/sections"
	"gitlab.com/tinyland/lab/folio/pkg/tui"
)

// toolkit is the floating widget's state.
type toolkit struct {
	open  bool
	audio bool
	left  bool // docked bottom-left instead of bottom-right
	hover int
}

func (t *toolkit) toggle() {
	t.open = !t.open
	t.hover = -1
}

// toolkitMargin keeps the widget off the screen edge and the help line.
const toolkitMargin = 1

// overlayToolkit draws the widget over view. The tooltip opens toward
// the wider half of the screen.
func (m *Model) overlayToolkit(view string, width, height int) string {
	st := tui.ToolkitState{Open: m.toolkit.open, Audio: m.toolkit.audio, Hover: -1, Mark: m.mark}
	bare := tui.RenderToolkit(st, m.styles, tui.SideLeft)
	pw, ph := lipgloss.Width(bare), lipgloss.Height(bare)
	x, _ := tui.Corner(width, height, pw, ph, toolkitMargin, m.toolkit.left)

	st.Hover = m.toolkit.hover
	widget := tui.RenderToolkit(st, m.styles, tui.TooltipSide(x+pw/2, width))
	x, y := tui.Corner(width, height, lipgloss.Width(widget), lipgloss.Height(widget), toolkitMargin, m.toolkit.left)
	return tui.Overlay(view, widget, x, y)
}

// clickable lists the zone ids the current frame can contain, toolkit
// first since it is drawn on top.
func (m *Model) clickable() []string {
	ids := []string{tui.ZoneToolkit}
	if m.toolkit.open {
		for _, b := range tui.ToolkitButtons(m.toolkit.audio) {
			ids = append(ids, b.Zone)
		}
	}
	ids = append(ids, tui.ZoneTheme)
	for _, id := range sections.IDs() {
		ids = append(ids, tui.ZoneNav+id)
	}
	ids = append(ids, tui.ZoneWork, tui.ZoneContact, tui.ZoneDown)
	for _, c := range content.Categories() {
		ids = append(ids, tui.ZoneCategory+c)
	}
	for i := range m.jobs.Len() {
		ids = append(ids, tui.ZoneCard+strconv.Itoa(i))
	}
	for _, f := range content.Filters() {
		ids = append(ids, tui.ZoneFilter+f.String())
	}
	for i := range m.content.Links {
		ids = append(ids, tui.ZoneLink+strconv.Itoa(i))
	}
	return ids
}

// zoneAt returns the first clickable zone under the pointer.
func (m *Model) zoneAt(msg tea.MouseMsg) (string, bool) {
	if m.zones == nil {
		return "", false
	}
	for _, id := range m.clickable() {
		if z := m.zones.Get(id); z != nil && z.InBounds(msg) {
			return id, true
		}
	}
	return "", false
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Button == tea.MouseButtonWheelDown:
		return m.scrollBy(3)
	case msg.Button == tea.MouseButtonWheelUp:
		return m.scrollBy(-3)
	case msg.Action == tea.MouseActionMotion:
		m.hoverAt(msg)
	case msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft:
		if id, ok := m.zoneAt(msg); ok {
			return m.HandleZone(id)
		}
	}
	return nil
}

// hoverAt highlights the toolkit button under the pointer.
func (m *Model) hoverAt(msg tea.MouseMsg) {
	m.toolkit.hover = -1
	if !m.toolkit.open || m.zones == nil {
		return
	}
	for i, b := range tui.ToolkitButtons(m.toolkit.audio) {
		if z := m.zones.Get(b.Zone); z != nil && z.InBounds(msg) {
			m.toolkit.hover = i
			return
		}
	}
}

// HandleZone performs the action of a clicked zone.
func (m *Model) HandleZone(id string) tea.Cmd {
	switch id {
	case tui.ZoneToolkit:
		m.toolkit.toggle()
		return nil
	case tui.ZoneNext:
		return m.scrollTo(nav.NextSection(m.observer.Active()))
	case tui.ZoneSupport, tui.ZoneContact:
		return m.scrollTo(sections.Contact)
	case tui.ZoneAudio:
		m.toolkit.audio = !m.toolkit.audio
		return nil
	case tui.ZoneTheme:
		m.ctrl.CyclePreference()
		m.restyle()
		return nil
	case tui.ZoneWork:
		return m.scrollTo(sections.Projects)
	case tui.ZoneDown:
		return m.scrollTo(sections.About)
	}

	switch {
	case strings.HasPrefix(id, tui.ZoneNav):
		return m.scrollTo(strings.TrimPrefix(id, tui.ZoneNav))
	case strings.HasPrefix(id, tui.ZoneCategory):
		return m.setCategory(strings.TrimPrefix(id, tui.ZoneCategory))
	case strings.HasPrefix(id, tui.ZoneCard):
		i, err := strconv.Atoi(strings.TrimPrefix(id, tui.ZoneCard))
		if err != nil {
			return nil
		}
		cmd := m.jobs.Select(i)
		m.render()
		return cmd
	case strings.HasPrefix(id, tui.ZoneFilter):
		name := strings.TrimPrefix(id, tui.ZoneFilter)
		for _, f := range content.Filters() {
			if f.String() == name {
				return m.setFilter(f)
			}
		}
	case strings.HasPrefix(id, tui.ZoneLink):
		// Links open through the terminal's own hyperlink handling.
		m.log.Debug("link clicked", "zone", id)
	}
	return nil
}

// ToolkitOpen reports whether the toolkit panel is expanded.
func (m *Model) ToolkitOpen() bool { return m.toolkit.open }

// Audio reports whether the section-change bell is on.
func (m *Model) Audio() bool { return m.toolkit.audio }

// DockedLeft reports whether the toolkit sits in the bottom-left corner.
func (m *Model) DockedLeft() bool { return m.toolkit.left }
