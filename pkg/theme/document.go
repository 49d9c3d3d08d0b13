package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Document is the page-wide theme target. Only the Controller applies to
// it.
type Document interface {
	Apply(r Resolved)
}

// Canvas is the Document the renderer draws with: a lipgloss renderer
// whose dark-background flag follows the resolved theme, and the palette
// variant for that theme downgraded to the terminal's colour depth.
type Canvas struct {
	renderer *lipgloss.Renderer
	theme    Theme
	depth    int

	mu       sync.RWMutex
	resolved Resolved
	palette  Palette
	applied  int
}

// NewCanvas returns a Canvas painting t through renderer. It starts on
// the light variant until the first Apply.
func NewCanvas(renderer *lipgloss.Renderer, t Theme) *Canvas {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	c := &Canvas{
		renderer: renderer,
		theme:    t,
		depth:    ColorDepth(renderer.ColorProfile()),
		resolved: Light,
	}
	c.palette = Adapt(t.Light, c.depth)
	return c
}

// Apply implements Document.
func (c *Canvas) Apply(r Resolved) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resolved = r
	c.palette = Adapt(c.theme.Variant(r), c.depth)
	c.renderer.SetHasDarkBackground(r == Dark)
	c.applied++
}

// Resolved returns the last applied theme.
func (c *Canvas) Resolved() Resolved {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resolved
}

// Palette returns the active palette.
func (c *Canvas) Palette() Palette {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.palette
}

// Applied returns how many times Apply has run.
func (c *Canvas) Applied() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.applied
}

// ThemeName returns the name of the painted theme.
func (c *Canvas) ThemeName() string { return c.theme.Name }

// Renderer returns the lipgloss renderer styles should be built from.
func (c *Canvas) Renderer() *lipgloss.Renderer { return c.renderer }

// NewStyle returns an empty style bound to the canvas renderer.
func (c *Canvas) NewStyle() lipgloss.Style { return c.renderer.NewStyle() }
