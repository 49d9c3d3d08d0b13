// Package nav moves the scroll window between page sections.
package nav

import (
	"log/slog"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"gitlab.com/tinyland/lab/folio/pkg/clock"
	"gitlab.com/tinyland/lab/folio/pkg/sections"
)

// Order is the fixed section order.
var Order = sections.IDs()

// NextSection returns the section after current, wrapping from the last
// back to the first. Unknown ids return the first section.
func NextSection(current string) string {
	for i, id := range Order {
		if id == current {
			return Order[(i+1)%len(Order)]
		}
	}
	return Order[0]
}

// PrevSection returns the section before current, wrapping from the
// first to the last. Unknown ids return the first section.
func PrevSection(current string) string {
	for i, id := range Order {
		if id == current {
			return Order[(i-1+len(Order))%len(Order)]
		}
	}
	return Order[0]
}

// IndexOf returns the position of id in Order, or -1.
func IndexOf(id string) int {
	for i, o := range Order {
		if o == id {
			return i
		}
	}
	return -1
}

// Scroller is the scroll window being driven.
type Scroller interface {
	YOffset() int
	SetYOffset(n int)
	MaxYOffset() int
}

// Spring defaults: a critically damped spring settling in roughly a third
// of a second.
const (
	DefaultFPS       = 60
	DefaultFrequency = 8.0
	DefaultDamping   = 1.0
)

// FrameMsg advances a smooth scroll by one frame.
type FrameMsg struct {
	gen int
}

// Commander scrolls to sections, smoothly when enabled.
type Commander struct {
	loc    sections.Locator
	scroll Scroller
	sched  clock.Scheduler
	log    *slog.Logger
	smooth bool
	frame  time.Duration
	spring harmonica.Spring

	animating bool
	pos, vel  float64
	target    int
	gen       int
	timer     clock.Timer
}

// Option configures a Commander.
type Option func(*Commander)

// WithScheduler overrides the frame scheduler.
func WithScheduler(s clock.Scheduler) Option {
	return func(c *Commander) { c.sched = s }
}

// WithSmooth enables or disables animated scrolling.
func WithSmooth(on bool) Option {
	return func(c *Commander) { c.smooth = on }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Commander) { c.log = l }
}

// NewCommander returns a commander locating sections with loc and
// scrolling s.
func NewCommander(loc sections.Locator, s Scroller, opts ...Option) *Commander {
	c := &Commander{
		loc:    loc,
		scroll: s,
		sched:  clock.Real{},
		log:    slog.Default(),
		smooth: true,
		frame:  time.Second / DefaultFPS,
		spring: harmonica.NewSpring(harmonica.FPS(DefaultFPS), DefaultFrequency, DefaultDamping),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SetLocator replaces the locator after the page is re-rendered.
func (c *Commander) SetLocator(loc sections.Locator) { c.loc = loc }

// ScrollToSection brings the start of section id to the top of the
// window. A section that is not rendered is ignored.
func (c *Commander) ScrollToSection(id string) tea.Cmd {
	if c.loc == nil {
		return nil
	}
	span, ok := c.loc.Locate(id)
	if !ok {
		c.log.Debug("scroll target not rendered", "id", id)
		return nil
	}
	return c.ScrollTo(span.Start)
}

// ScrollTo moves the window to line, clamped to the scrollable range. A
// new target replaces any animation in flight, keeping its velocity.
func (c *Commander) ScrollTo(line int) tea.Cmd {
	target := min(max(line, 0), max(c.scroll.MaxYOffset(), 0))
	if !c.smooth {
		c.Stop()
		c.scroll.SetYOffset(target)
		return nil
	}
	if !c.animating {
		c.pos = float64(c.scroll.YOffset())
		c.vel = 0
	}
	c.target = target
	if int(math.Round(c.pos)) == target && c.vel == 0 {
		c.scroll.SetYOffset(target)
		c.animating = false
		return nil
	}
	c.animating = true
	return c.scheduleFrame()
}

// Update steps the animation on FrameMsg.
func (c *Commander) Update(msg tea.Msg) tea.Cmd {
	f, ok := msg.(FrameMsg)
	if !ok || f.gen != c.gen || !c.animating {
		return nil
	}
	c.timer = nil
	c.pos, c.vel = c.spring.Update(c.pos, c.vel, float64(c.target))
	if math.Abs(c.pos-float64(c.target)) < 0.5 && math.Abs(c.vel) < 0.5 {
		c.scroll.SetYOffset(c.target)
		c.animating = false
		c.vel = 0
		return nil
	}
	c.scroll.SetYOffset(int(math.Round(c.pos)))
	return c.scheduleFrame()
}

// Stop cancels an animation in flight, leaving the window where it is.
func (c *Commander) Stop() {
	c.gen++
	clock.Stop(c.timer)
	c.timer = nil
	c.animating = false
	c.vel = 0
}

func (c *Commander) scheduleFrame() tea.Cmd {
	clock.Stop(c.timer)
	c.gen++
	gen := c.gen
	cmd, timer := c.sched.Schedule(c.frame, func(time.Time) tea.Msg { return FrameMsg{gen: gen} })
	c.timer = timer
	return cmd
}

// Animating reports whether a smooth scroll is in flight.
func (c *Commander) Animating() bool { return c.animating }

// Target returns the line of the last scroll target.
func (c *Commander) Target() int { return c.target }
