package avatar

import tea "github.com/charmbracelet/bubbletea"

// RenderedMsg carries a finished frame back to the event loop.
type RenderedMsg struct {
	Cols, Rows int
	Frame      string
	Err        error
}

// RenderCmd renders off the event loop. A nil Renderer yields nil.
func RenderCmd(r *Renderer, cols, rows int) tea.Cmd {
	if r == nil {
		return nil
	}
	return func() tea.Msg {
		frame, err := r.Render(cols, rows)
		return RenderedMsg{Cols: cols, Rows: rows, Frame: frame, Err: err}
	}
}
