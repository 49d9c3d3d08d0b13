package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Environment overrides.
const (
	EnvContent        = "FOLIO_CONTENT"
	EnvLogLevel       = "FOLIO_LOG_LEVEL"
	EnvAppearanceFile = "FOLIO_APPEARANCE_FILE"
	EnvPalette        = "FOLIO_PALETTE"
	EnvPrefsBackend   = "FOLIO_PREFS_BACKEND"
)

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/folio/config.toml
//  2. ~/.config/folio/config.toml
//
// If no file exists, returns DefaultConfig() with environment overrides.
func Load() (*Config, error) {
	for _, p := range SearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path. A missing
// file yields the defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes TOML over the defaults. Keys the schema does not
// know are rejected. A motion preset named in [animation] is applied
// before the explicit animation keys.
func LoadFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var probe struct {
		Animation struct {
			Preset string `toml:"preset"`
		} `toml:"animation"`
	}
	if _, err := toml.Decode(string(data), &probe); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if probe.Animation.Preset != "" {
		cfg.Animation = MotionPreset(probe.Animation.Preset)
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		General: GeneralConfig{
			LogLevel: "info",
			StateDir: filepath.Join(xdgStateHome(home), "folio"),
		},
		Theme: ThemeConfig{
			Palette:    "default",
			PaletteDir: filepath.Join(xdgConfigHome(home), "folio", "palettes"),
		},
		Prefs: PrefsConfig{
			Backend: "file",
		},
		Viewport: ViewportConfig{
			Tablet:      640,
			Desktop:     1024,
			Large:       1280,
			CellWidth:   8,
			CellHeight:  16,
			SettleDelay: Duration{100 * time.Millisecond},
		},
		Observer: ObserverConfig{
			BandTop:           0.20,
			BandBottom:        0.80,
			ScrolledThreshold: 3,
		},
		Animation: MotionPreset("standard"),
		Image: ImageConfig{
			Enabled:  true,
			Protocol: "auto",
		},
	}
}

// LogPath returns the log file path.
func (c *Config) LogPath() string {
	if c.General.LogFile != "" {
		return c.General.LogFile
	}
	return filepath.Join(c.General.StateDir, "folio.log")
}

// AppearanceOff disables the watched appearance file.
const AppearanceOff = "off"

// AppearancePath returns the watched appearance file, by default
// "appearance" in the state directory, or "" when disabled.
func (c *Config) AppearancePath() string {
	switch c.Theme.AppearanceFile {
	case AppearanceOff:
		return ""
	case "":
		return filepath.Join(c.General.StateDir, "appearance")
	}
	return c.Theme.AppearanceFile
}

// applyEnvOverrides checks environment variables and overrides config
// values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvContent); v != "" {
		cfg.Content.Path = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.General.LogLevel = v
	}
	if v := os.Getenv(EnvAppearanceFile); v != "" {
		cfg.Theme.AppearanceFile = v
	}
	if v := os.Getenv(EnvPalette); v != "" {
		cfg.Theme.Palette = v
	}
	if v := os.Getenv(EnvPrefsBackend); v != "" {
		cfg.Prefs.Backend = v
	}
}

// SearchPaths returns the ordered list of config file paths to try.
func SearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, "folio", "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, "folio", "config.toml"))
	}
	return paths
}

func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

func xdgStateHome(home string) string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".local", "state")
}
