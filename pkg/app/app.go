// Package app is the root Bubbletea model. It owns the scroll window and
// every animated component and turns their messages into frames.
package app

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	scroll "github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/folio/pkg/avatar"
	"gitlab.com/tinyland/lab/folio/pkg/carousel"
	"gitlab.com/tinyland/lab/folio/pkg/clock"
	"gitlab.com/tinyland/lab/folio/pkg/config"
	"gitlab.com/tinyland/lab/folio/pkg/content"
	"gitlab.com/tinyland/lab/folio/pkg/nav"
	"gitlab.com/tinyland/lab/folio/pkg/sections"
	"gitlab.com/tinyland/lab/folio/pkg/terminal"
	"gitlab.com/tinyland/lab/folio/pkg/theme"
	"gitlab.com/tinyland/lab/folio/pkg/tui"
	"gitlab.com/tinyland/lab/folio/pkg/typewriter"
	"gitlab.com/tinyland/lab/folio/pkg/viewport"
)

// Options wires the model. Every field is optional.
type Options struct {
	Config  *config.Config
	Content *content.Content
	Theme   *theme.Controller
	Canvas  *theme.Canvas
	Size    viewport.Source
	Avatar  *avatar.Renderer
	Caps    terminal.Capabilities

	Scheduler clock.Scheduler
	Zones     *zone.Manager
	Logger    *slog.Logger
	Now       func() time.Time
	Bell      io.Writer // receives BEL on section change while audio is on
}

// themeMsg reports a theme change made outside the event loop.
type themeMsg struct{}

// Model is the portfolio page.
type Model struct {
	cfg      *config.Config
	content  *content.Content
	ctrl     *theme.Controller
	canvas   *theme.Canvas
	portrait *avatar.Renderer
	caps     terminal.Capabilities
	zones    *zone.Manager
	log      *slog.Logger
	bell     io.Writer
	year     int

	keys   KeyMap
	help   help.Model
	vp     scroll.Model
	styles tui.Styles
	page   tui.Page

	tracker  *viewport.Tracker
	observer *sections.Observer
	inview   []*sections.InView
	typers   map[string]*typewriter.Model
	jobs     *carousel.Carousel[content.Job]
	cmdr     *nav.Commander

	revealed map[string]bool
	filter   content.ProjectFilter
	toolkit  toolkit
	changed  bool // active section moved since the last sync

	avatarCols, avatarRows int
	avatarFrame            string

	themeCh     chan themeMsg
	done        chan struct{}
	unsubscribe func()
	quitting    bool
}

// New builds the model. Call Init (or let the program do it) before use.
func New(o Options) *Model {
	cfg := o.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := o.Logger
	if log == nil {
		log = slog.Default()
	}
	sched := o.Scheduler
	if sched == nil {
		sched = clock.Real{}
	}
	now := o.Now
	if now == nil {
		now = time.Now
	}
	c := o.Content
	if c == nil {
		c = content.Default()
	}
	canvas := o.Canvas
	if canvas == nil {
		canvas = theme.NewCanvas(nil, theme.Get(cfg.Theme.Palette))
	}
	ctrl := o.Theme
	if ctrl == nil {
		ctrl = theme.NewController(nil, nil, canvas, log)
	}

	m := &Model{
		cfg:      cfg,
		content:  c,
		ctrl:     ctrl,
		canvas:   canvas,
		portrait: o.Avatar,
		caps:     o.Caps,
		zones:    o.Zones,
		log:      log,
		bell:     o.Bell,
		year:     now().Year(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		vp:       scroll.New(0, 0),
		revealed: make(map[string]bool),
		toolkit:  toolkit{audio: cfg.Toolkit.Bell, hover: -1},
		themeCh:  make(chan themeMsg, 1),
		done:     make(chan struct{}),
	}

	vc := cfg.Viewport
	m.tracker = viewport.NewTracker(o.Size,
		viewport.WithBreakpoints(viewport.Breakpoints{Tablet: vc.Tablet, Desktop: vc.Desktop, Large: vc.Large}),
		viewport.WithScheduler(sched),
		viewport.WithSettleDelay(vc.SettleDelay.Duration),
		viewport.WithCellSize(vc.CellWidth, vc.CellHeight),
	)

	m.observer = sections.NewObserver(sections.IDs(),
		sections.WithBand(sections.Band{Top: cfg.Observer.BandTop, Bottom: cfg.Observer.BandBottom}),
		sections.WithScrolledThreshold(cfg.Observer.ScrolledThreshold),
		sections.WithLogger(log),
		sections.OnChange(func(id string) {
			m.changed = true
			log.Debug("active section", "id", id)
		}),
	)

	anim := cfg.Animation
	typer := func(text string, interval time.Duration) *typewriter.Model {
		return typewriter.New(text,
			typewriter.WithDelay(anim.TypewriterDelay.Duration),
			typewriter.WithInterval(interval),
			typewriter.WithChunk(anim.TypewriterChunk),
			typewriter.WithScheduler(sched),
		)
	}
	interval := anim.TypewriterInterval.Duration
	m.typers = map[string]*typewriter.Model{
		sections.Experience: typer(c.Experience.Subtitle, interval+5*time.Millisecond),
		sections.Projects:   typer(c.Projects.Subtitle, interval),
		sections.Skills:     typer(c.Skills.Subtitle, interval),
	}

	m.jobs = carousel.New(c.Experience.Items, content.JobCategory, content.CategoryLeadership,
		carousel.WithPeriod(anim.CarouselPeriod.Duration),
		carousel.WithIdle(anim.CarouselIdle.Duration),
		carousel.WithScheduler(sched),
	)

	m.cmdr = nav.NewCommander(m.page.Spans, pane{&m.vp},
		nav.WithScheduler(sched),
		nav.WithSmooth(anim.SmoothScroll),
		nav.WithLogger(log),
	)

	m.restyle()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.ctrl.Initialize()
	m.unsubscribe = m.ctrl.Subscribe(func(theme.Preference, theme.Resolved) {
		select {
		case m.themeCh <- themeMsg{}:
		default:
			// A queued message already rebuilds from the canvas.
		}
	})
	m.tracker.Init()
	m.restyle()
	cmds := []tea.Cmd{m.waitTheme(), m.jobs.Start()}
	if m.tracker.Cols() > 0 {
		cmds = append(cmds, m.layout(m.tracker.Cols(), m.tracker.Rows()))
	}
	return tea.Batch(cmds...)
}

// waitTheme delivers the next theme change, or nothing once the model
// has shut down.
func (m *Model) waitTheme() tea.Cmd {
	ch, done := m.themeCh, m.done
	return func() tea.Msg {
		select {
		case msg := <-ch:
			return msg
		case <-done:
			return nil
		}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		settle := m.tracker.Update(msg)
		return m, tea.Batch(settle, m.layout(msg.Width, msg.Height))

	case viewport.SettledMsg:
		m.tracker.Update(msg)
		return m, m.layout(m.tracker.Cols(), m.tracker.Rows())

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case typewriter.StartMsg, typewriter.TickMsg:
		var cmds []tea.Cmd
		for _, tw := range m.typers {
			cmds = append(cmds, tw.Update(msg))
		}
		m.render()
		return m, tea.Batch(cmds...)

	case carousel.AdvanceMsg, carousel.ResumeMsg:
		cmd := m.jobs.Update(msg)
		m.render()
		return m, cmd

	case nav.FrameMsg:
		cmd := m.cmdr.Update(msg)
		return m, tea.Batch(cmd, m.sync())

	case themeMsg:
		m.restyle()
		return m, m.waitTheme()

	case avatar.RenderedMsg:
		if msg.Cols != m.avatarCols || msg.Rows != m.avatarRows {
			return m, nil
		}
		if msg.Err != nil {
			m.log.Warn("avatar not rendered", "error", msg.Err)
			return m, nil
		}
		m.avatarFrame = msg.Frame
		m.render()
		return m, m.sync()
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting || m.vp.Width <= 0 {
		return ""
	}
	width := m.vp.Width
	bar := tui.RenderNav(tui.NavState{
		Brand:      m.content.Profile.Name,
		Active:     m.observer.Active(),
		Scrolled:   m.observer.Scrolled(),
		ThemeLabel: m.ctrl.Label(),
		Class:      m.tracker.Class(),
		Width:      width,
		Mark:       m.mark,
	}, m.styles)

	view := strings.Join([]string{bar, m.vp.View(), m.help.View(m.keys)}, "\n")
	view = m.overlayToolkit(view, width, lipgloss.Height(view))
	if m.zones != nil {
		view = m.zones.Scan(view)
	}
	return view
}

// layout sizes the scroll window for a cols x rows terminal and
// re-renders. It returns the avatar render when the portrait size
// changed.
func (m *Model) layout(cols, rows int) tea.Cmd {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	m.help.Width = cols
	chrome := 1 + lipgloss.Height(m.help.View(m.keys))
	m.vp.Width = cols
	m.vp.Height = max(rows-chrome, 1)
	if m.inview == nil {
		m.armTriggers(m.vp.Height)
	}

	var cmd tea.Cmd
	w, _ := tui.Container(cols, m.tracker.Class().Metrics())
	ac, ar := avatarCells(m.tracker.Class(), w, m.vp.Height)
	if m.portrait != nil && (ac != m.avatarCols || ar != m.avatarRows) {
		m.avatarCols, m.avatarRows = ac, ar
		m.avatarFrame = ""
		if ac > 0 {
			cmd = avatar.RenderCmd(m.portrait, ac, ar)
		}
	}
	m.render()
	return tea.Batch(cmd, m.sync())
}

// avatarCells sizes the portrait for the class, within w columns and a
// third of the window height. Halfblock cells are twice as tall as wide,
// so cols = 2*rows keeps a square image square.
func avatarCells(c viewport.Class, w, height int) (cols, rows int) {
	rows = 8
	switch c {
	case viewport.Tablet:
		rows = 10
	case viewport.Desktop:
		rows = 12
	case viewport.Large:
		rows = 14
	}
	rows = min(rows, height/3, (w-4)/2)
	if rows < 4 {
		return 0, 0
	}
	return rows * 2, rows
}

// state snapshots everything the page renderer needs.
func (m *Model) state() tui.State {
	subs := make(map[string]tui.Typed, len(m.typers))
	for id, tw := range m.typers {
		subs[id] = tui.Typed{Text: tw.Text(), Full: tw.Full(), Caret: tw.Caret()}
	}
	return tui.State{
		Content:    m.content,
		Styles:     m.styles,
		Class:      m.tracker.Class(),
		Width:      m.vp.Width,
		Rows:       m.vp.Height,
		TailRows:   m.observer.Band().Reach(m.vp.Height),
		Revealed:   m.revealed,
		Subtitles:  subs,
		Avatar:     m.avatarFrame,
		Category:   m.jobs.Category(),
		Jobs:       m.jobs.Items(),
		JobIndex:   m.jobs.Index(),
		AutoPlay:   m.jobs.State() == carousel.AutoAdvancing,
		Filter:     m.filter,
		Year:       m.year,
		Hyperlinks: m.caps.Hyperlinks,
		Mark:       m.mark,
	}
}

// render redraws the page body and re-attaches the observer to the new
// section spans. Scroll-driven state is left to sync.
func (m *Model) render() {
	if m.vp.Width <= 0 {
		return
	}
	m.page = tui.Render(m.state())
	m.vp.SetContent(m.page.Body)
	m.vp.SetYOffset(m.vp.YOffset)
	m.observer.Observe(m.page.Spans)
	m.cmdr.SetLocator(m.page.Spans)
}

// sync evaluates the observer and the reveal triggers for the current
// scroll position.
func (m *Model) sync() tea.Cmd {
	if m.vp.Width <= 0 {
		return nil
	}
	off, h := m.vp.YOffset, m.vp.Height
	m.observer.Scroll(off, h)

	var cmds []tea.Cmd
	revealed := false
	for _, v := range m.inview {
		if !v.Check(m.page.Spans, off, h) {
			continue
		}
		m.revealed[v.ID()] = true
		revealed = true
		if tw, ok := m.typers[v.ID()]; ok {
			cmds = append(cmds, tw.Trigger())
		}
		m.log.Debug("section revealed", "id", v.ID())
	}
	if revealed {
		m.render()
	}
	if m.changed {
		m.changed = false
		if m.toolkit.audio {
			cmds = append(cmds, m.ring())
		}
	}
	return tea.Batch(cmds...)
}

// restyle rebuilds the styles from the canvas palette.
func (m *Model) restyle() {
	m.styles = tui.NewStyles(m.canvas)
	m.help.Styles.ShortKey = m.styles.HelpKey
	m.help.Styles.FullKey = m.styles.HelpKey
	m.help.Styles.ShortDesc = m.styles.HelpDesc
	m.help.Styles.FullDesc = m.styles.HelpDesc
	m.help.Styles.ShortSeparator = m.styles.Dim
	m.help.Styles.FullSeparator = m.styles.Dim
	m.help.Styles.Ellipsis = m.styles.Dim
	m.render()
}

// armTriggers creates one reveal trigger per section. Margins follow the
// section: the hero a fifth of the window, about six lines, the rest
// twelve.
func (m *Model) armTriggers(rows int) {
	for _, id := range sections.IDs() {
		margin := 12
		switch id {
		case sections.Home:
			margin = rows / 5
		case sections.About:
			margin = 6
		}
		m.inview = append(m.inview, sections.NewInView(id, margin))
	}
}

func (m *Model) mark(id, s string) string {
	if m.zones == nil {
		return s
	}
	return m.zones.Mark(id, s)
}

func (m *Model) ring() tea.Cmd {
	w := m.bell
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		_, _ = io.WriteString(w, "\a")
		return nil
	}
}

// scrollBy moves the window by n lines, cancelling any smooth scroll.
func (m *Model) scrollBy(n int) tea.Cmd {
	m.cmdr.Stop()
	m.vp.SetYOffset(m.vp.YOffset + n)
	return m.sync()
}

// scrollTo jumps to a section.
func (m *Model) scrollTo(id string) tea.Cmd {
	return tea.Batch(m.cmdr.ScrollToSection(id), m.sync())
}

// nextCategory cycles the experience category tabs.
func (m *Model) nextCategory() tea.Cmd {
	cats := content.Categories()
	next := cats[0]
	for i, c := range cats {
		if c == m.jobs.Category() {
			next = cats[(i+1)%len(cats)]
		}
	}
	return m.setCategory(next)
}

func (m *Model) setCategory(c string) tea.Cmd {
	cmd := m.jobs.SetCategory(c)
	m.render()
	return tea.Batch(cmd, m.sync())
}

// setFilter changes the project filter. The grid height may change, so
// the scroll state is re-evaluated.
func (m *Model) setFilter(f content.ProjectFilter) tea.Cmd {
	if f == m.filter {
		return nil
	}
	m.filter = f
	m.render()
	return m.sync()
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		m.Shutdown()
		return tea.Quit
	case key.Matches(msg, k.Close):
		if m.help.ShowAll {
			m.help.ShowAll = false
			return m.layout(m.vp.Width, m.totalRows())
		}
		m.toolkit.open = false
		m.toolkit.hover = -1
	case key.Matches(msg, k.Down):
		return m.scrollBy(1)
	case key.Matches(msg, k.Up):
		return m.scrollBy(-1)
	case key.Matches(msg, k.PageDown):
		return m.scrollBy(m.vp.Height)
	case key.Matches(msg, k.PageUp):
		return m.scrollBy(-m.vp.Height)
	case key.Matches(msg, k.Top):
		return m.scrollBy(-m.vp.YOffset)
	case key.Matches(msg, k.Bottom):
		return m.scrollBy(m.vp.TotalLineCount())
	case key.Matches(msg, k.Section):
		if i := int(msg.String()[0] - '1'); i >= 0 && i < len(nav.Order) {
			return m.scrollTo(nav.Order[i])
		}
	case key.Matches(msg, k.NextSection):
		return m.scrollTo(nav.NextSection(m.observer.Active()))
	case key.Matches(msg, k.PrevSection):
		return m.scrollTo(nav.PrevSection(m.observer.Active()))
	case key.Matches(msg, k.Theme):
		p := m.ctrl.CyclePreference()
		m.log.Debug("theme toggled", "preference", p)
		m.restyle()
	case key.Matches(msg, k.NextCard):
		cmd := m.jobs.Next()
		m.render()
		return cmd
	case key.Matches(msg, k.PrevCard):
		cmd := m.jobs.Prev()
		m.render()
		return cmd
	case key.Matches(msg, k.Category):
		return m.nextCategory()
	case key.Matches(msg, k.Filter):
		return m.setFilter(m.filter.Next())
	case key.Matches(msg, k.Toolkit):
		m.toolkit.toggle()
	case key.Matches(msg, k.Dock):
		m.toolkit.left = !m.toolkit.left
	case key.Matches(msg, k.Bell):
		m.toolkit.audio = !m.toolkit.audio
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.layout(m.vp.Width, m.totalRows())
	}
	return nil
}

// totalRows is the terminal height the current layout was built for.
func (m *Model) totalRows() int {
	if r := m.tracker.Rows(); r > 0 {
		return r
	}
	return m.vp.Height + 2
}

// Shutdown cancels every timer and releases the observer and the theme
// subscription. The model ignores all messages afterwards.
func (m *Model) Shutdown() {
	if m.quitting {
		return
	}
	m.quitting = true
	for _, tw := range m.typers {
		tw.Stop()
	}
	m.jobs.Stop()
	m.cmdr.Stop()
	m.tracker.Stop()
	m.observer.Disconnect()
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	close(m.done)
	m.log.Debug("model shut down")
}

// Active returns the active section id.
func (m *Model) Active() string { return m.observer.Active() }

// Offset returns the scroll offset in lines.
func (m *Model) Offset() int { return m.vp.YOffset }

// Page returns the last rendered page.
func (m *Model) Page() tui.Page { return m.page }

// Revealed reports whether section id has played its entrance.
func (m *Model) Revealed(id string) bool { return m.revealed[id] }

// Typewriter returns the subtitle animator of section id, if it has one.
func (m *Model) Typewriter(id string) *typewriter.Model { return m.typers[id] }

// Jobs returns the experience carousel.
func (m *Model) Jobs() *carousel.Carousel[content.Job] { return m.jobs }

// Filter returns the project filter.
func (m *Model) Filter() content.ProjectFilter { return m.filter }

// Commander returns the scroll commander.
func (m *Model) Commander() *nav.Commander { return m.cmdr }

// pane adapts the bubbles viewport to nav.Scroller.
type pane struct{ vp *scroll.Model }

func (p pane) YOffset() int     { return p.vp.YOffset }
func (p pane) SetYOffset(n int) { p.vp.SetYOffset(n) }
func (p pane) MaxYOffset() int  { return max(p.vp.TotalLineCount()-p.vp.Height, 0) }
