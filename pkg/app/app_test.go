package app

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"gitlab.com/tinyland/lab/folio/pkg/carousel"
	"gitlab.com/tinyland/lab/folio/pkg/clock/clocktest"
	"gitlab.com/tinyland/lab/folio/pkg/config"
	"gitlab.com/tinyland/lab/folio/pkg/content"
	"gitlab.com/tinyland/lab/folio/pkg/sections"
	"gitlab.com/tinyland/lab/folio/pkg/theme"
	"gitlab.com/tinyland/lab/folio/pkg/tui"
	"gitlab.com/tinyland/lab/folio/pkg/typewriter"
	"gitlab.com/tinyland/lab/folio/pkg/viewport"
)

type harness struct {
	m    *Model
	fake *clocktest.Fake
	bell *bytes.Buffer
}

func testOptions(t *testing.T, cfg *config.Config, fake *clocktest.Fake, bell io.Writer) Options {
	t.Helper()
	return Options{
		Config:    cfg,
		Content:   content.Default(),
		Canvas:    theme.NewCanvas(lipgloss.NewRenderer(io.Discard), theme.Get(theme.DefaultName)),
		Scheduler: fake,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Now:       fake.Now,
		Bell:      bell,
	}
}

// newHarness starts a model on a 100x30 terminal. Smooth scrolling is
// off unless smooth is set.
func newHarness(t *testing.T, smooth bool) *harness {
	t.Helper()
	return newSizedHarness(t, smooth, 100, 30)
}

func newSizedHarness(t *testing.T, smooth bool, cols, rows int) *harness {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Animation.SmoothScroll = smooth
	fake := clocktest.NewFake(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	bell := &bytes.Buffer{}
	m := New(testOptions(t, cfg, fake, bell))
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: cols, Height: rows})
	return &harness{m: m, fake: fake, bell: bell}
}

func (h *harness) key(s string) tea.Cmd {
	var msg tea.KeyMsg
	switch s {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	_, cmd := h.m.Update(msg)
	return cmd
}

// advance moves the fake clock, feeding every due timer back into the
// model.
func (h *harness) advance(d time.Duration) {
	h.fake.AdvanceFunc(d, func(msg tea.Msg) { h.m.Update(msg) })
}

// run executes cmd and any batched commands it produces.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func maxOffset(m *Model) int { return pane{&m.vp}.MaxYOffset() }

func TestInitialLayout(t *testing.T) {
	h := newHarness(t, false)
	m := h.m

	require.Equal(t, sections.Home, m.Active())
	require.True(t, m.Revealed(sections.Home))
	require.False(t, m.Revealed(sections.Skills))
	require.Greater(t, m.Page().Height, 0)

	view := ansi.Strip(m.View())
	require.Contains(t, view, "Sam Rivera")
	require.LessOrEqual(t, lipgloss.Height(view), 30)
}

func TestJumpToSectionRevealsAndTypes(t *testing.T) {
	h := newHarness(t, false)
	m := h.m

	h.key("3")
	span := m.Page().Spans[sections.Experience]
	require.Equal(t, min(span.Start, maxOffset(m)), m.Offset())
	require.Equal(t, sections.Experience, m.Active())
	require.True(t, m.Revealed(sections.Experience))

	tw := m.Typewriter(sections.Experience)
	require.Equal(t, typewriter.Delaying, tw.State())
	require.Empty(t, tw.Text())

	h.advance(10 * time.Second)
	require.True(t, tw.Done())
	require.Equal(t, tw.Full(), tw.Text())
	require.Equal(t, typewriter.Waiting, m.Typewriter(sections.Skills).State())
}

func TestSmoothScroll(t *testing.T) {
	h := newHarness(t, true)
	m := h.m

	h.key("6")
	require.True(t, m.Commander().Animating())

	h.advance(3 * time.Second)
	require.False(t, m.Commander().Animating())
	require.Positive(t, m.Offset())
	require.Equal(t, m.Commander().Target(), m.Offset())
	span := m.Page().Spans[sections.Contact]
	require.Equal(t, min(span.Start, maxOffset(m)), m.Offset())
}

func TestManualScrollCancelsSmoothScroll(t *testing.T) {
	h := newHarness(t, true)
	m := h.m

	h.key("5")
	require.True(t, m.Commander().Animating())
	h.key("k")
	require.False(t, m.Commander().Animating())
	require.Zero(t, h.fake.Pending()-pendingBackground(m))
}

// pendingBackground counts the timers that run regardless of scrolling.
func pendingBackground(m *Model) int {
	n := 0
	if m.Jobs().Pending() {
		n++
	}
	for _, tw := range m.typers {
		if tw.Pending() {
			n++
		}
	}
	return n
}

func TestNextSectionWraps(t *testing.T) {
	h := newHarness(t, false)
	m := h.m

	h.key("n")
	require.Equal(t, sections.About, m.Active())
	h.key("2")
	require.Equal(t, sections.About, m.Active())
	h.key("N")
	require.Equal(t, sections.Home, m.Active())
	require.Zero(t, m.Offset())
}

func TestNextSectionWrapsAtEverySize(t *testing.T) {
	sizes := []struct{ cols, rows int }{{60, 20}, {60, 17}, {80, 24}, {100, 30}, {200, 50}}
	ids := sections.IDs()
	for _, sz := range sizes {
		h := newSizedHarness(t, false, sz.cols, sz.rows)
		m := h.m
		for i := 1; i <= 2*len(ids); i++ {
			h.key("n")
			want := ids[i%len(ids)]
			if got := m.Active(); got != want {
				t.Fatalf("%dx%d: press %d active = %s, want %s (offset %d of %d)",
					sz.cols, sz.rows, i, got, want, m.Offset(), maxOffset(m))
			}
		}
	}
}

func TestThemeToggleCycles(t *testing.T) {
	h := newHarness(t, false)
	m := h.m
	require.Equal(t, theme.PreferenceSystem, m.ctrl.Preference())

	h.key("t")
	require.Equal(t, theme.PreferenceLight, m.ctrl.Preference())
	h.key("t")
	require.Equal(t, theme.PreferenceDark, m.ctrl.Preference())
	require.Equal(t, theme.Dark, m.canvas.Resolved())
	require.Equal(t, "DARK", m.ctrl.Label())

	m.HandleZone(tui.ZoneTheme)
	require.Equal(t, theme.PreferenceSystem, m.ctrl.Preference())
}

func TestCarouselAutoAdvanceAndPause(t *testing.T) {
	h := newHarness(t, false)
	jobs := h.m.Jobs()
	require.Equal(t, content.CategoryLeadership, jobs.Category())
	require.Equal(t, carousel.AutoAdvancing, jobs.State())

	h.advance(3 * time.Second)
	require.Equal(t, 1, jobs.Index())

	h.key("l")
	require.Equal(t, carousel.ManualPause, jobs.State())
	require.Equal(t, 2, jobs.Index())

	h.advance(5 * time.Second)
	require.Equal(t, carousel.AutoAdvancing, jobs.State())

	h.key("c")
	require.Equal(t, content.CategoryTech, jobs.Category())
	require.Equal(t, 0, jobs.Index())
	require.NotEqual(t, carousel.AutoAdvancing, jobs.State())
}

func TestFilterKeyCycles(t *testing.T) {
	h := newHarness(t, false)
	h.key("f")
	require.Equal(t, content.FilterFeatured, h.m.Filter())
	h.key("f")
	require.Equal(t, content.FilterOther, h.m.Filter())
	h.key("f")
	require.Equal(t, content.FilterAll, h.m.Filter())
}

func TestZones(t *testing.T) {
	h := newHarness(t, false)
	m := h.m

	m.HandleZone(tui.ZoneCard + "2")
	require.Equal(t, 2, m.Jobs().Index())
	require.Equal(t, carousel.ManualPause, m.Jobs().State())

	m.HandleZone(tui.ZoneCategory + content.CategoryEngineering)
	require.Equal(t, content.CategoryEngineering, m.Jobs().Category())

	m.HandleZone(tui.ZoneFilter + "other")
	require.Equal(t, content.FilterOther, m.Filter())

	m.HandleZone(tui.ZoneNav + sections.Projects)
	require.Equal(t, sections.Projects, m.Active())

	m.HandleZone(tui.ZoneDown)
	require.Equal(t, sections.About, m.Active())

	m.HandleZone(tui.ZoneWork)
	require.Equal(t, sections.Projects, m.Active())

	require.Nil(t, m.HandleZone("nonsense"))
	require.Nil(t, m.HandleZone(tui.ZoneCard+"x"))
}

func TestToolkit(t *testing.T) {
	h := newHarness(t, false)
	m := h.m

	require.False(t, m.ToolkitOpen())
	m.HandleZone(tui.ZoneToolkit)
	require.True(t, m.ToolkitOpen())
	require.Contains(t, ansi.Strip(m.View()), "♥")

	h.key("W")
	require.True(t, m.DockedLeft())

	m.HandleZone(tui.ZoneSupport)
	span := m.Page().Spans[sections.Contact]
	require.Equal(t, min(span.Start, maxOffset(m)), m.Offset())

	h.key("esc")
	require.False(t, m.ToolkitOpen())
}

func TestBellOnSectionChange(t *testing.T) {
	h := newHarness(t, false)
	m := h.m

	run(m.HandleZone(tui.ZoneNext))
	require.Equal(t, sections.About, m.Active())
	require.Zero(t, h.bell.Len(), "bell rang with audio off")

	m.HandleZone(tui.ZoneAudio)
	require.True(t, m.Audio())
	run(m.HandleZone(tui.ZoneNext))
	require.Equal(t, sections.Experience, m.Active())
	require.Equal(t, "\a", h.bell.String())

	// Scrolling within a section does not ring.
	run(h.key("j"))
	require.Equal(t, "\a", h.bell.String())
}

func TestQuitStopsEverything(t *testing.T) {
	h := newHarness(t, true)
	m := h.m
	h.key("4")
	require.Positive(t, h.fake.Pending())

	cmd := h.key("q")
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.Zero(t, h.fake.Pending())
	require.False(t, m.observer.Connected())
	require.Empty(t, m.View())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	require.Nil(t, cmd)
}

func TestOrientationFlipSettles(t *testing.T) {
	cfg := config.DefaultConfig()
	fake := clocktest.NewFake(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	size := viewport.Size{Cols: 100, Rows: 30, PixelW: 1000, PixelH: 600}
	o := testOptions(t, cfg, fake, nil)
	o.Size = viewport.SourceFunc(func() viewport.Size { return size })

	m := New(o)
	m.Init()
	require.Equal(t, 100, m.vp.Width)
	require.Equal(t, viewport.Tablet, m.tracker.Class())

	size = viewport.Size{Cols: 50, Rows: 60, PixelW: 500, PixelH: 1200}
	m.Update(tea.WindowSizeMsg{Width: 50, Height: 60})
	require.True(t, m.tracker.SettlePending())

	fake.AdvanceFunc(cfg.Viewport.SettleDelay.Duration, func(msg tea.Msg) { m.Update(msg) })
	require.False(t, m.tracker.SettlePending())
	require.Equal(t, 50, m.vp.Width)
	require.Equal(t, viewport.Mobile, m.tracker.Class())
}

func TestAvatarCells(t *testing.T) {
	tests := []struct {
		class              viewport.Class
		w, height          int
		wantCols, wantRows int
	}{
		{viewport.Mobile, 60, 30, 16, 8},
		{viewport.Desktop, 120, 60, 24, 12},
		{viewport.Large, 140, 30, 20, 10},
		{viewport.Mobile, 10, 30, 0, 0},
	}
	for _, tt := range tests {
		cols, rows := avatarCells(tt.class, tt.w, tt.height)
		if cols != tt.wantCols || rows != tt.wantRows {
			t.Errorf("avatarCells(%v, %d, %d) = %d,%d, want %d,%d",
				tt.class, tt.w, tt.height, cols, rows, tt.wantCols, tt.wantRows)
		}
	}
}

func TestRenderStatic(t *testing.T) {
	fake := clocktest.NewFake(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	out := ansi.Strip(RenderStatic(testOptions(t, config.DefaultConfig(), fake, nil), 100))

	c := content.Default()
	for _, want := range []string{c.Profile.Name, "Leadership experience", "A showcase of recent work", "Technical skills", "© 2026"} {
		if !strings.Contains(out, want) {
			t.Errorf("static render missing %q", want)
		}
	}
	if fake.Pending() != 0 {
		t.Errorf("static render left %d timers", fake.Pending())
	}
	if RenderStatic(testOptions(t, nil, fake, nil), 0) != "" {
		t.Error("zero width should render nothing")
	}
}
