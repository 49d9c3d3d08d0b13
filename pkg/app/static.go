package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/folio/pkg/sections"
	"gitlab.com/tinyland/lab/folio/pkg/tui"
)

// staticAvatarRows bounds the portrait height when there is no window.
const staticAvatarRows = 36

// RenderStatic lays out the page once with every section revealed and
// every subtitle typed, for pipes and other non-interactive output. No
// timers are started and sections are not stretched to a window height.
// Graphics-protocol portraits are printed above the page since their
// escape sequences cannot take part in the layout.
func RenderStatic(o Options, cols int) string {
	if cols <= 0 {
		return ""
	}
	o.Zones = nil
	m := New(o)
	m.ctrl.Initialize()
	m.restyle()
	m.tracker.Update(tea.WindowSizeMsg{Width: cols, Height: 1})

	for _, id := range sections.IDs() {
		m.revealed[id] = true
	}
	for _, tw := range m.typers {
		tw.Complete()
	}

	var top string
	if m.portrait != nil {
		w, _ := tui.Container(cols, m.tracker.Class().Metrics())
		if ac, ar := avatarCells(m.tracker.Class(), w, staticAvatarRows); ac > 0 {
			frame, err := m.portrait.Render(ac, ar)
			switch {
			case err != nil:
				m.log.Warn("avatar not rendered", "error", err)
			case m.portrait.Protocol().Graphics():
				top = frame + "\n"
			default:
				m.avatarFrame = frame
			}
		}
	}

	st := m.state()
	st.Width = cols
	st.Rows = 0
	st.TailRows = 0
	return top + tui.Render(st).Body + "\n"
}
