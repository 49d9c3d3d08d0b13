// Package carousel rotates through a category-filtered list of cards.
//
// The carousel is a three-state machine. In AutoAdvancing it moves to the
// next card every Period. Any explicit selection puts it in ManualPause
// and starts an idle timer; when that fires the carousel resumes
// AutoAdvancing if its category is the auto-advance category and falls
// back to Idle otherwise. Changing category resets to the first card.
package carousel

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/folio/pkg/clock"
)

// Defaults.
const (
	DefaultPeriod       = 3 * time.Second
	DefaultIdle         = 5 * time.Second
	DefaultAutoCategory = "Leadership"
)

// State is the rotation state.
type State int

const (
	Idle State = iota
	AutoAdvancing
	ManualPause
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AutoAdvancing:
		return "auto"
	case ManualPause:
		return "paused"
	default:
		return "unknown"
	}
}

var lastID int64

// AdvanceMsg moves an auto-advancing carousel to its next card.
type AdvanceMsg struct {
	id, gen int
}

// ResumeMsg ends a manual pause.
type ResumeMsg struct {
	id, gen int
}

// Carousel rotates through the items of the selected category.
type Carousel[T any] struct {
	id         int
	all        []T
	categoryOf func(T) string
	auto       string
	period     time.Duration
	idle       time.Duration
	sched      clock.Scheduler

	category string
	items    []T
	index    int
	state    State
	started  bool
	stopped  bool

	gen   int
	timer clock.Timer
}

// Option configures a Carousel.
type Option func(*options)

type options struct {
	auto   string
	period time.Duration
	idle   time.Duration
	sched  clock.Scheduler
}

// WithAutoCategory sets the category that auto-advances.
func WithAutoCategory(c string) Option {
	return func(o *options) { o.auto = c }
}

// WithPeriod overrides the auto-advance period.
func WithPeriod(d time.Duration) Option {
	return func(o *options) { o.period = d }
}

// WithIdle overrides the manual-pause idle delay.
func WithIdle(d time.Duration) Option {
	return func(o *options) { o.idle = d }
}

// WithScheduler overrides the timer scheduler.
func WithScheduler(s clock.Scheduler) Option {
	return func(o *options) { o.sched = s }
}

// New returns an idle carousel over items, showing category. categoryOf
// reports each item's category.
func New[T any](items []T, categoryOf func(T) string, category string, opts ...Option) *Carousel[T] {
	o := options{
		auto:   DefaultAutoCategory,
		period: DefaultPeriod,
		idle:   DefaultIdle,
		sched:  clock.Real{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	c := &Carousel[T]{
		id:         int(atomic.AddInt64(&lastID, 1)),
		all:        items,
		categoryOf: categoryOf,
		auto:       o.auto,
		period:     o.period,
		idle:       o.idle,
		sched:      o.sched,
		category:   category,
	}
	c.items = c.filter(category)
	return c
}

func (c *Carousel[T]) filter(category string) []T {
	var out []T
	for _, it := range c.all {
		if c.categoryOf(it) == category {
			out = append(out, it)
		}
	}
	return out
}

// Start enters the initial state for the current category. Only the
// first call has any effect.
func (c *Carousel[T]) Start() tea.Cmd {
	if c.started || c.stopped {
		return nil
	}
	c.started = true
	return c.enterCategoryState()
}

// SetCategory switches to category and resets to its first card.
// Selecting the current category is a no-op.
func (c *Carousel[T]) SetCategory(category string) tea.Cmd {
	if c.stopped || category == c.category {
		return nil
	}
	c.cancel()
	c.category = category
	c.items = c.filter(category)
	c.index = 0
	if !c.started {
		c.state = Idle
		return nil
	}
	return c.enterCategoryState()
}

// Select shows card i and pauses rotation for the idle delay. Indices
// outside the list wrap.
func (c *Carousel[T]) Select(i int) tea.Cmd {
	n := len(c.items)
	if c.stopped || n == 0 {
		return nil
	}
	c.index = ((i % n) + n) % n
	c.cancel()
	c.state = ManualPause
	return c.schedule(c.idle, func(id, gen int) tea.Msg { return ResumeMsg{id: id, gen: gen} })
}

// Next selects the following card, wrapping to the first.
func (c *Carousel[T]) Next() tea.Cmd { return c.Select(c.index + 1) }

// Prev selects the preceding card, wrapping to the last.
func (c *Carousel[T]) Prev() tea.Cmd { return c.Select(c.index - 1) }

// Update handles the carousel's timer messages.
func (c *Carousel[T]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case AdvanceMsg:
		if msg.id != c.id || msg.gen != c.gen || c.state != AutoAdvancing {
			return nil
		}
		c.timer = nil
		if len(c.items) <= 1 {
			c.state = Idle
			return nil
		}
		c.index = (c.index + 1) % len(c.items)
		return c.scheduleAdvance()
	case ResumeMsg:
		if msg.id != c.id || msg.gen != c.gen || c.state != ManualPause {
			return nil
		}
		c.timer = nil
		return c.enterCategoryState()
	}
	return nil
}

// Stop cancels every timer. A stopped carousel ignores all input.
func (c *Carousel[T]) Stop() {
	c.cancel()
	c.stopped = true
	c.state = Idle
}

// enterCategoryState moves to AutoAdvancing when the category rotates
// and has more than one card, Idle otherwise.
func (c *Carousel[T]) enterCategoryState() tea.Cmd {
	if c.category == c.auto && len(c.items) > 1 {
		c.state = AutoAdvancing
		return c.scheduleAdvance()
	}
	c.state = Idle
	return nil
}

func (c *Carousel[T]) scheduleAdvance() tea.Cmd {
	return c.schedule(c.period, func(id, gen int) tea.Msg { return AdvanceMsg{id: id, gen: gen} })
}

func (c *Carousel[T]) schedule(d time.Duration, mk func(id, gen int) tea.Msg) tea.Cmd {
	c.gen++
	id, gen := c.id, c.gen
	cmd, timer := c.sched.Schedule(d, func(time.Time) tea.Msg { return mk(id, gen) })
	c.timer = timer
	return cmd
}

func (c *Carousel[T]) cancel() {
	c.gen++
	clock.Stop(c.timer)
	c.timer = nil
}

// State returns the rotation state.
func (c *Carousel[T]) State() State { return c.state }

// Index returns the selected card index.
func (c *Carousel[T]) Index() int { return c.index }

// Category returns the selected category.
func (c *Carousel[T]) Category() string { return c.category }

// Items returns the cards of the selected category.
func (c *Carousel[T]) Items() []T { return c.items }

// Len returns the number of cards in the selected category.
func (c *Carousel[T]) Len() int { return len(c.items) }

// Current returns the selected card.
func (c *Carousel[T]) Current() (T, bool) {
	if len(c.items) == 0 {
		var zero T
		return zero, false
	}
	return c.items[c.index], true
}

// Pending reports whether a timer is outstanding.
func (c *Carousel[T]) Pending() bool { return c.timer != nil }
