package theme

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// Preference is the user's theme choice.
type Preference string

const (
	PreferenceLight  Preference = "light"
	PreferenceDark   Preference = "dark"
	PreferenceSystem Preference = "system"
)

// Resolved is the concrete theme applied after collapsing "system"
// against the desktop appearance.
type Resolved string

const (
	Light Resolved = "light"
	Dark  Resolved = "dark"
)

// StorageKey is the preference store key holding the preference.
const StorageKey = "theme"

// ParsePreference parses "light", "dark" or "system".
func ParsePreference(s string) (Preference, error) {
	switch p := Preference(strings.ToLower(strings.TrimSpace(s))); p {
	case PreferenceLight, PreferenceDark, PreferenceSystem:
		return p, nil
	default:
		return "", fmt.Errorf("theme: invalid preference %q (want light, dark or system)", s)
	}
}

// Valid reports whether p is one of the three preferences.
func (p Preference) Valid() bool {
	_, err := ParsePreference(string(p))
	return err == nil
}

// Next returns the preference after p in the cycle light, dark, system.
func (p Preference) Next() Preference {
	switch p {
	case PreferenceLight:
		return PreferenceDark
	case PreferenceDark:
		return PreferenceSystem
	default:
		return PreferenceLight
	}
}

// Resolve collapses p against the system appearance.
func Resolve(p Preference, systemDark bool) Resolved {
	switch p {
	case PreferenceLight:
		return Light
	case PreferenceDark:
		return Dark
	}
	if systemDark {
		return Dark
	}
	return Light
}

// PreferenceStore persists the preference string. prefs.Store satisfies
// it.
type PreferenceStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// SystemSource reports the desktop appearance. appearance.Source
// satisfies it.
type SystemSource interface {
	Dark() bool
	Subscribe(fn func(dark bool)) (cancel func())
}

// Controller is the single writer of the Document. It is safe for
// concurrent use: system appearance changes arrive from watcher
// goroutines while the UI calls SetPreference.
type Controller struct {
	store PreferenceStore
	sys   SystemSource
	doc   Document
	log   *slog.Logger

	mu          sync.Mutex
	initialized bool
	ready       bool
	memoryOnly  bool
	pref        Preference
	systemDark  bool
	resolved    Resolved
	unsubscribe func()

	subMu   sync.Mutex
	subNext int
	subs    map[int]func(Preference, Resolved)
}

// NewController wires a controller. store and sys may be nil: a nil store
// keeps the preference in memory, a nil system source reports light.
func NewController(store PreferenceStore, sys SystemSource, doc Document, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{
		store:      store,
		sys:        sys,
		doc:        doc,
		log:        log,
		memoryOnly: store == nil,
		pref:       PreferenceSystem,
		resolved:   Light,
		subs:       make(map[int]func(Preference, Resolved)),
	}
}

// Initialize reads the stored preference (system when absent or
// unreadable), applies the resolved theme to the document and starts
// listening for system appearance changes. Later calls are no-ops.
func (c *Controller) Initialize() {
	c.mu.Lock()
	if c.initialized {
		c.mu.Unlock()
		return
	}
	c.initialized = true
	c.mu.Unlock()

	// Subscribe before the first read so no change falls between them.
	var unsub func()
	if c.sys != nil {
		unsub = c.sys.Subscribe(c.systemChanged)
	}

	c.mu.Lock()
	c.unsubscribe = unsub
	c.pref = c.loadLocked()
	if c.sys != nil {
		c.systemDark = c.sys.Dark()
	}
	c.resolved = Resolve(c.pref, c.systemDark)
	c.applyLocked()
	c.ready = true
	pref, resolved := c.pref, c.resolved
	c.mu.Unlock()

	c.log.Debug("theme initialized", "preference", pref, "resolved", resolved)
	c.notify(pref, resolved)
}

// SetPreference stores p, re-resolves and re-applies the theme. Invalid
// preferences are ignored.
func (c *Controller) SetPreference(p Preference) {
	if !p.Valid() {
		c.log.Warn("ignoring invalid theme preference", "preference", p)
		return
	}
	c.mu.Lock()
	c.pref = p
	c.persistLocked(p)
	changed := c.resolveLocked()
	pref, resolved := c.pref, c.resolved
	c.mu.Unlock()

	c.log.Debug("theme preference set", "preference", pref, "resolved", resolved, "reapplied", changed)
	c.notify(pref, resolved)
}

// CyclePreference advances light, dark, system, light and returns the new
// preference.
func (c *Controller) CyclePreference() Preference {
	c.mu.Lock()
	next := c.pref.Next()
	c.mu.Unlock()
	c.SetPreference(next)
	return next
}

// Preference returns the current preference.
func (c *Controller) Preference() Preference {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pref
}

// Resolved returns the applied theme.
func (c *Controller) Resolved() Resolved {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolved
}

// MemoryOnly reports whether persistence has been abandoned.
func (c *Controller) MemoryOnly() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.memoryOnly
}

// Label is the toggle control text: LIGHT, DARK or SYSTEM (DARK).
func (c *Controller) Label() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.pref {
	case PreferenceLight:
		return "LIGHT"
	case PreferenceDark:
		return "DARK"
	default:
		return "SYSTEM (" + strings.ToUpper(string(c.resolved)) + ")"
	}
}

// Subscribe registers fn to be called after every preference change and
// every applied system change. The returned function unregisters it.
func (c *Controller) Subscribe(fn func(Preference, Resolved)) (cancel func()) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	id := c.subNext
	c.subNext++
	c.subs[id] = fn
	return func() {
		c.subMu.Lock()
		defer c.subMu.Unlock()
		delete(c.subs, id)
	}
}

// Close stops listening for system appearance changes.
func (c *Controller) Close() {
	c.mu.Lock()
	unsub := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

// systemChanged records the new appearance. The theme is only re-applied
// when the preference is system.
func (c *Controller) systemChanged(dark bool) {
	c.mu.Lock()
	c.systemDark = dark
	if !c.ready || c.pref != PreferenceSystem {
		c.mu.Unlock()
		return
	}
	changed := c.resolveLocked()
	pref, resolved := c.pref, c.resolved
	c.mu.Unlock()

	if changed {
		c.log.Debug("system appearance changed", "resolved", resolved)
		c.notify(pref, resolved)
	}
}

// resolveLocked re-resolves and applies the theme if it changed.
func (c *Controller) resolveLocked() bool {
	r := Resolve(c.pref, c.systemDark)
	if r == c.resolved {
		return false
	}
	c.resolved = r
	c.applyLocked()
	return true
}

func (c *Controller) applyLocked() {
	if c.doc != nil {
		c.doc.Apply(c.resolved)
	}
}

func (c *Controller) loadLocked() Preference {
	if c.memoryOnly {
		return PreferenceSystem
	}
	v, ok, err := c.store.Get(StorageKey)
	if err != nil {
		c.log.Warn("theme preference unreadable, keeping it in memory", "error", err)
		c.memoryOnly = true
		return PreferenceSystem
	}
	if !ok {
		return PreferenceSystem
	}
	p, err := ParsePreference(v)
	if err != nil {
		c.log.Warn("stored theme preference invalid", "value", v)
		return PreferenceSystem
	}
	return p
}

func (c *Controller) persistLocked(p Preference) {
	if c.memoryOnly {
		return
	}
	if err := c.store.Set(StorageKey, string(p)); err != nil {
		c.log.Warn("theme preference not saved, keeping it in memory", "error", err)
		c.memoryOnly = true
	}
}

func (c *Controller) notify(p Preference, r Resolved) {
	c.subMu.Lock()
	fns := make([]func(Preference, Resolved), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subMu.Unlock()
	for _, fn := range fns {
		fn(p, r)
	}
}
