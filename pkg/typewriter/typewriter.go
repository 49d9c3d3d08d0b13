// Package typewriter reveals a line of text one grapheme cluster at a
// time, the way section headers type themselves out when scrolled into
// view.
package typewriter

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rivo/uniseg"

	"gitlab.com/tinyland/lab/folio/pkg/clock"
)

// Defaults for section headers.
const (
	DefaultDelay    = 800 * time.Millisecond
	DefaultInterval = 35 * time.Millisecond
	DefaultChunk    = 1
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// State is the animator's lifecycle stage.
type State int

const (
	// Waiting has not been triggered.
	Waiting State = iota
	// Delaying is triggered and waiting out the start delay.
	Delaying
	// Revealing adds one chunk per interval.
	Revealing
	// Done has revealed the whole text.
	Done
	// Stopped was torn down before finishing.
	Stopped
)

func (s State) String() string {
	switch s {
	case Waiting:
		return "waiting"
	case Delaying:
		return "delaying"
	case Revealing:
		return "revealing"
	case Done:
		return "done"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// StartMsg ends the start delay.
type StartMsg struct {
	id, gen int
}

// TickMsg reveals the next chunk.
type TickMsg struct {
	id, gen int
}

// Model is a typewriter animation.
type Model struct {
	id       int
	text     string
	bounds   []int // byte offset after each grapheme cluster
	delay    time.Duration
	interval time.Duration
	chunk    int
	sched    clock.Scheduler

	state    State
	revealed int
	gen      int
	timer    clock.Timer
}

// Option configures a Model.
type Option func(*Model)

// WithDelay overrides the start delay.
func WithDelay(d time.Duration) Option {
	return func(m *Model) { m.delay = d }
}

// WithInterval overrides the reveal interval.
func WithInterval(d time.Duration) Option {
	return func(m *Model) { m.interval = d }
}

// WithChunk overrides the number of graphemes revealed per tick.
func WithChunk(n int) Option {
	return func(m *Model) { m.chunk = max(n, 1) }
}

// WithScheduler overrides the timer scheduler.
func WithScheduler(s clock.Scheduler) Option {
	return func(m *Model) { m.sched = s }
}

// New returns an untriggered typewriter for text.
func New(text string, opts ...Option) *Model {
	m := &Model{
		id:       nextID(),
		text:     text,
		bounds:   graphemeBounds(text),
		delay:    DefaultDelay,
		interval: DefaultInterval,
		chunk:    DefaultChunk,
		sched:    clock.Real{},
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

func graphemeBounds(s string) []int {
	var bounds []int
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		_, end := g.Positions()
		bounds = append(bounds, end)
	}
	return bounds
}

// ID returns the model's message routing id.
func (m *Model) ID() int { return m.id }

// Trigger starts the animation. Only the first call has any effect.
func (m *Model) Trigger() tea.Cmd {
	if m.state != Waiting {
		return nil
	}
	m.state = Delaying
	return m.schedule(m.delay, func(id, gen int) tea.Msg { return StartMsg{id: id, gen: gen} })
}

// Update advances the animation. Messages for other models, stale
// generations or a stopped model are ignored.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case StartMsg:
		if msg.id != m.id || msg.gen != m.gen || m.state != Delaying {
			return nil
		}
		m.timer = nil
		if len(m.bounds) == 0 {
			m.state = Done
			return nil
		}
		m.state = Revealing
		return m.scheduleTick()
	case TickMsg:
		if msg.id != m.id || msg.gen != m.gen || m.state != Revealing {
			return nil
		}
		m.timer = nil
		m.revealed = min(m.revealed+m.chunk, len(m.bounds))
		if m.revealed == len(m.bounds) {
			m.state = Done
			return nil
		}
		return m.scheduleTick()
	}
	return nil
}

// Stop cancels any pending timer. A stopped model never changes again.
func (m *Model) Stop() {
	m.gen++
	clock.Stop(m.timer)
	m.timer = nil
	if m.state == Delaying || m.state == Revealing {
		m.state = Stopped
	}
}

// Complete reveals the whole text immediately, for static rendering.
func (m *Model) Complete() {
	m.Stop()
	m.revealed = len(m.bounds)
	m.state = Done
}

func (m *Model) scheduleTick() tea.Cmd {
	return m.schedule(m.interval, func(id, gen int) tea.Msg { return TickMsg{id: id, gen: gen} })
}

func (m *Model) schedule(d time.Duration, mk func(id, gen int) tea.Msg) tea.Cmd {
	m.gen++
	id, gen := m.id, m.gen
	cmd, timer := m.sched.Schedule(d, func(time.Time) tea.Msg { return mk(id, gen) })
	m.timer = timer
	return cmd
}

// State returns the lifecycle stage.
func (m *Model) State() State { return m.state }

// Triggered reports whether Trigger has been called.
func (m *Model) Triggered() bool { return m.state != Waiting }

// Done reports whether the whole text is revealed.
func (m *Model) Done() bool { return m.state == Done }

// Revealed returns the number of grapheme clusters revealed.
func (m *Model) Revealed() int { return m.revealed }

// Len returns the number of grapheme clusters in the text.
func (m *Model) Len() int { return len(m.bounds) }

// Text returns the revealed prefix.
func (m *Model) Text() string {
	if m.revealed == 0 {
		return ""
	}
	return m.text[:m.bounds[m.revealed-1]]
}

// Full returns the complete target text.
func (m *Model) Full() string { return m.text }

// Caret reports whether the caret should be drawn: only while revealing.
func (m *Model) Caret() bool { return m.state == Revealing }

// Pending reports whether a timer is outstanding.
func (m *Model) Pending() bool { return m.timer != nil }
