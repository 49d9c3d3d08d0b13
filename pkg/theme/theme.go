// Package theme owns the page's colour scheme: the palette registry, the
// light/dark/system preference and the Document the resolved palette is
// applied to.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Palette is one colour variant of a theme. Values are "#RRGGBB" hex
// strings, or 256-colour indices after Adapt.
type Palette struct {
	Background string
	Foreground string
	Dim        string // secondary text, dates, captions
	Accent     string // active nav item, headings rule, buttons
	Secondary  string // tags and badges
	Surface    string // cards and the floating toolkit
	Border     string
	Heading    string
	Link       string
	Caret      string // typewriter caret
	BarFilled  string // skill level bars
	BarEmpty   string
	HelpKey    string
}

// Theme is a named pair of palettes.
type Theme struct {
	Name  string
	Light Palette
	Dark  Palette
}

// Variant returns the palette for r.
func (t Theme) Variant(r Resolved) Palette {
	if r == Dark {
		return t.Dark
	}
	return t.Light
}

// DefaultName is the palette used when none is configured.
const DefaultName = "default"

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	registerBuiltins()
}

// Get returns a named theme, falling back to the default theme if the
// name is not registered.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry[DefaultName]
}

// Lookup returns a named theme and whether it is registered.
func Lookup(name string) (Theme, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := registry[strings.ToLower(name)]
	return t, ok
}

// Names returns all registered theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds t to the registry under its lowercase name, replacing
// any theme of the same name.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
