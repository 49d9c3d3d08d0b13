// Package config provides TOML-based configuration for folio.
package config

import (
	"errors"
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/folio/pkg/prefs"
)

// Config is the complete folio configuration.
type Config struct {
	General   GeneralConfig   `toml:"general"`
	Content   ContentConfig   `toml:"content"`
	Theme     ThemeConfig     `toml:"theme"`
	Prefs     PrefsConfig     `toml:"prefs"`
	Viewport  ViewportConfig  `toml:"viewport"`
	Observer  ObserverConfig  `toml:"observer"`
	Animation AnimationConfig `toml:"animation"`
	Image     ImageConfig     `toml:"image"`
	Toolkit   ToolkitConfig   `toml:"toolkit"`
}

// GeneralConfig holds process-wide settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"` // debug, info, warn, error
	LogFile  string `toml:"log_file"`  // empty: <state_dir>/folio.log
	StateDir string `toml:"state_dir"` // preference store and log directory
}

// ContentConfig locates the portfolio document.
type ContentConfig struct {
	Path string `toml:"path"` // empty: embedded sample
}

// ThemeConfig selects the palette and the appearance source.
type ThemeConfig struct {
	Palette        string `toml:"palette"`
	PaletteDir     string `toml:"palette_dir"`     // extra *.toml palettes
	AppearanceFile string `toml:"appearance_file"` // watched "dark"/"light" file, "off" to disable
}

// PrefsConfig selects the preference store backend.
type PrefsConfig struct {
	Backend string `toml:"backend"` // file, sqlite, memory
}

// ViewportConfig holds the breakpoints in pixels and the assumed cell
// size for terminals that do not report pixel dimensions.
type ViewportConfig struct {
	Tablet      int      `toml:"tablet"`
	Desktop     int      `toml:"desktop"`
	Large       int      `toml:"large"`
	CellWidth   int      `toml:"cell_width"`
	CellHeight  int      `toml:"cell_height"`
	SettleDelay Duration `toml:"settle_delay"`
}

// ObserverConfig positions the active-section trigger band.
type ObserverConfig struct {
	BandTop           float64 `toml:"band_top"`
	BandBottom        float64 `toml:"band_bottom"`
	ScrolledThreshold int     `toml:"scrolled_threshold"`
}

// AnimationConfig holds the motion timings.
type AnimationConfig struct {
	Preset             string   `toml:"preset"`
	TypewriterDelay    Duration `toml:"typewriter_delay"`
	TypewriterInterval Duration `toml:"typewriter_interval"`
	TypewriterChunk    int      `toml:"typewriter_chunk"`
	CarouselPeriod     Duration `toml:"carousel_period"`
	CarouselIdle       Duration `toml:"carousel_idle"`
	SmoothScroll       bool     `toml:"smooth_scroll"`
}

// ImageConfig controls the hero avatar.
type ImageConfig struct {
	Enabled  bool   `toml:"enabled"`
	Protocol string `toml:"protocol"` // auto, kitty, iterm2, sixel, halfblocks
}

// ToolkitConfig sets the floating toolkit's initial state.
type ToolkitConfig struct {
	Bell bool `toml:"bell"` // ring the terminal bell on section change
}

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

var validProtocols = map[string]bool{
	"auto": true, "kitty": true, "iterm2": true, "sixel": true, "halfblocks": true,
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if !validLogLevels[strings.ToLower(c.General.LogLevel)] {
		add("general.log_level %q (want debug, info, warn or error)", c.General.LogLevel)
	}
	switch strings.ToLower(c.Prefs.Backend) {
	case prefs.BackendFile, prefs.BackendSQLite, prefs.BackendMemory:
	default:
		add("prefs.backend %q (want file, sqlite or memory)", c.Prefs.Backend)
	}

	v := c.Viewport
	if v.Tablet <= 0 || v.Tablet >= v.Desktop || v.Desktop >= v.Large {
		add("viewport breakpoints %d/%d/%d must be positive and increasing", v.Tablet, v.Desktop, v.Large)
	}
	if v.CellWidth <= 0 || v.CellHeight <= 0 {
		add("viewport cell size %dx%d must be positive", v.CellWidth, v.CellHeight)
	}

	o := c.Observer
	if o.BandTop < 0 || o.BandBottom < 0 || o.BandTop+o.BandBottom > 1 {
		add("observer band %.2f/%.2f must be non-negative and sum to at most 1", o.BandTop, o.BandBottom)
	}
	if o.ScrolledThreshold < 0 {
		add("observer.scrolled_threshold %d must be non-negative", o.ScrolledThreshold)
	}

	a := c.Animation
	if a.TypewriterInterval.Duration <= 0 {
		add("animation.typewriter_interval must be positive")
	}
	if a.TypewriterChunk <= 0 {
		add("animation.typewriter_chunk %d must be positive", a.TypewriterChunk)
	}
	if a.CarouselPeriod.Duration <= 0 || a.CarouselIdle.Duration <= 0 {
		add("animation carousel period and idle must be positive")
	}

	if !validProtocols[strings.ToLower(c.Image.Protocol)] {
		add("image.protocol %q (want auto, kitty, iterm2, sixel or halfblocks)", c.Image.Protocol)
	}
	return errors.Join(errs...)
}
