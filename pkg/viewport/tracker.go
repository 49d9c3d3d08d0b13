package viewport

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/folio/pkg/clock"
)

// DefaultCellWidth and DefaultCellHeight are the assumed cell size in
// pixels when the terminal does not report pixel dimensions.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// DefaultSettleDelay is how long the tracker waits after an orientation
// flip before re-reading the size source.
const DefaultSettleDelay = 100 * time.Millisecond

// Size is a viewport measurement.
type Size struct {
	Cols   int // character columns
	Rows   int // character rows
	PixelW int // pixel width, 0 if unknown
	PixelH int // pixel height, 0 if unknown
}

// Source reports the current viewport size.
type Source interface {
	Size() Size
}

// SourceFunc adapts a function to Source.
type SourceFunc func() Size

// Size implements Source.
func (f SourceFunc) Size() Size { return f() }

// SettledMsg is delivered when the post-orientation settle delay elapses.
type SettledMsg struct {
	gen int
}

// Tracker holds the current viewport size and class.
type Tracker struct {
	bp     Breakpoints
	src    Source
	sched  clock.Scheduler
	settle time.Duration

	size  Size
	cellW int
	cellH int
	class Class

	gen         int
	settleTimer clock.Timer
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithBreakpoints overrides the default breakpoints.
func WithBreakpoints(b Breakpoints) Option {
	return func(t *Tracker) { t.bp = b }
}

// WithScheduler overrides the timer scheduler.
func WithScheduler(s clock.Scheduler) Option {
	return func(t *Tracker) { t.sched = s }
}

// WithSettleDelay overrides the orientation settle delay.
func WithSettleDelay(d time.Duration) Option {
	return func(t *Tracker) { t.settle = d }
}

// WithCellSize sets the assumed cell size in pixels, used until the
// source reports real pixel dimensions.
func WithCellSize(w, h int) Option {
	return func(t *Tracker) {
		if w > 0 && h > 0 {
			t.cellW, t.cellH = w, h
		}
	}
}

// NewTracker creates a Tracker reading from src. src may be nil, in which
// case only resize messages update the tracker.
func NewTracker(src Source, opts ...Option) *Tracker {
	t := &Tracker{
		bp:     DefaultBreakpoints(),
		src:    src,
		sched:  clock.Real{},
		settle: DefaultSettleDelay,
		cellW:  DefaultCellWidth,
		cellH:  DefaultCellHeight,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Init takes the initial measurement from the source.
func (t *Tracker) Init() {
	if t.src != nil {
		t.apply(t.src.Size())
	}
}

// Update handles resize and settle messages. It returns a command when a
// settle re-read is scheduled.
func (t *Tracker) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		wasLandscape := t.Landscape()
		hadSize := t.size.Cols > 0
		t.apply(Size{Cols: msg.Width, Rows: msg.Height})
		if hadSize && t.src != nil && wasLandscape != t.Landscape() {
			return t.scheduleSettle()
		}
	case SettledMsg:
		if msg.gen != t.gen {
			return nil
		}
		t.settleTimer = nil
		if t.src != nil {
			t.apply(t.src.Size())
		}
	}
	return nil
}

// Stop cancels a pending settle re-read.
func (t *Tracker) Stop() {
	t.gen++
	clock.Stop(t.settleTimer)
	t.settleTimer = nil
}

func (t *Tracker) scheduleSettle() tea.Cmd {
	clock.Stop(t.settleTimer)
	t.gen++
	gen := t.gen
	cmd, timer := t.sched.Schedule(t.settle, func(time.Time) tea.Msg {
		return SettledMsg{gen: gen}
	})
	t.settleTimer = timer
	return cmd
}

// apply records a measurement. Pixel dimensions, when present, also
// update the cell size used for later column-only measurements.
func (t *Tracker) apply(s Size) {
	if s.Cols <= 0 || s.Rows <= 0 {
		return
	}
	if s.PixelW > 0 {
		t.cellW = max(1, s.PixelW/s.Cols)
	} else {
		s.PixelW = s.Cols * t.cellW
	}
	if s.PixelH > 0 {
		t.cellH = max(1, s.PixelH/s.Rows)
	} else {
		s.PixelH = s.Rows * t.cellH
	}
	t.size = s
	t.class = t.bp.Classify(s.PixelW)
}

// Class returns the current breakpoint class.
func (t *Tracker) Class() Class { return t.class }

// Width returns the viewport width in pixels.
func (t *Tracker) Width() int { return t.size.PixelW }

// Height returns the viewport height in pixels.
func (t *Tracker) Height() int { return t.size.PixelH }

// Cols returns the viewport width in columns.
func (t *Tracker) Cols() int { return t.size.Cols }

// Rows returns the viewport height in rows.
func (t *Tracker) Rows() int { return t.size.Rows }

// Landscape reports whether the viewport is at least as wide as it is
// tall, in pixels.
func (t *Tracker) Landscape() bool {
	return t.size.PixelW >= t.size.PixelH
}

// CellSize returns the current cell size in pixels.
func (t *Tracker) CellSize() (w, h int) { return t.cellW, t.cellH }

// SettlePending reports whether a settle re-read is scheduled.
func (t *Tracker) SettlePending() bool {
	return t.settleTimer != nil
}
