package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/folio/pkg/app"
	"gitlab.com/tinyland/lab/folio/pkg/appearance"
	"gitlab.com/tinyland/lab/folio/pkg/avatar"
	"gitlab.com/tinyland/lab/folio/pkg/config"
	"gitlab.com/tinyland/lab/folio/pkg/content"
	"gitlab.com/tinyland/lab/folio/pkg/prefs"
	"gitlab.com/tinyland/lab/folio/pkg/terminal"
	"gitlab.com/tinyland/lab/folio/pkg/theme"
)

// session holds everything a command wires up from the configuration.
type session struct {
	cfg     *config.Config
	log     *slog.Logger
	logFile *os.File
	content *content.Content
	store   prefs.Store
	sys     appearance.Source
	canvas  *theme.Canvas
	ctrl    *theme.Controller
	caps    terminal.Capabilities
}

func interactive() bool {
	return terminal.Interactive(os.Stdout)
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFromFile(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if contentPath != "" {
		cfg.Content.Path = contentPath
	}
	if palette != "" {
		cfg.Theme.Palette = palette
	}
	if motion != "" {
		cfg.Animation = config.MotionPreset(motion)
	}
	if verbose {
		cfg.General.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openLog opens the log file. The terminal belongs to the page, so
// logs never go to stderr while it runs.
func openLog(cfg *config.Config) (*slog.Logger, *os.File) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.General.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	path := cfg.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log directory: %v\n", err)
		return slog.New(slog.NewTextHandler(io.Discard, opts)), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		return slog.New(slog.NewTextHandler(io.Discard, opts)), nil
	}
	return slog.New(slog.NewTextHandler(f, opts)), f
}

// openSession wires configuration, logging, content, preferences, the
// appearance source and the theme controller. out is where the page
// will be drawn; its colour profile decides the palette depth.
func openSession(out io.Writer) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log, logFile := openLog(cfg)
	s := &session{cfg: cfg, log: log, logFile: logFile}

	s.content = content.Default()
	if cfg.Content.Path != "" {
		c, err := content.Load(cfg.Content.Path)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.content = c
	}

	store, err := prefs.Open(cfg.Prefs.Backend, cfg.General.StateDir)
	if err != nil {
		log.Warn("preference store unavailable, theme kept in memory", "backend", cfg.Prefs.Backend, "error", err)
		store = prefs.NewMemory()
	}
	s.store = store

	if names, err := theme.LoadDir(cfg.Theme.PaletteDir); err != nil {
		log.Warn("custom palettes skipped", "error", err)
	} else if len(names) > 0 {
		log.Debug("custom palettes loaded", "names", names)
	}
	t, ok := theme.Lookup(cfg.Theme.Palette)
	if !ok {
		log.Warn("unknown palette, using default", "palette", cfg.Theme.Palette)
		t = theme.Get(theme.DefaultName)
	}

	appearanceFile := cfg.AppearancePath()
	if appearanceFile != "" {
		if err := os.MkdirAll(filepath.Dir(appearanceFile), 0755); err != nil {
			log.Warn("appearance directory unavailable", "error", err)
		}
	}
	output := termenv.NewOutput(out)
	s.sys = appearance.Detect(appearance.Options{
		File:   appearanceFile,
		Output: output,
		Logger: log,
	})
	renderer := lipgloss.NewRenderer(out)
	s.canvas = theme.NewCanvas(renderer, t)
	s.ctrl = theme.NewController(s.store, s.sys, s.canvas, log)
	s.ctrl.Initialize()

	s.caps = terminal.Probe(nil, cfg.Image.Protocol)
	log.Debug("session opened",
		"terminal", s.caps.Term,
		"protocol", s.caps.Protocol,
		"palette", t.Name,
		"preference", s.ctrl.Preference(),
		"resolved", s.ctrl.Resolved())
	return s, nil
}

// portrait loads the profile avatar for protocol p. It returns nil when
// images are disabled, the profile has none or it cannot be decoded.
func (s *session) portrait(p terminal.Protocol) *avatar.Renderer {
	path := s.content.Profile.Avatar
	if !s.cfg.Image.Enabled || path == "" || p == terminal.ProtocolNone {
		return nil
	}
	if !filepath.IsAbs(path) && s.cfg.Content.Path != "" {
		path = filepath.Join(filepath.Dir(s.cfg.Content.Path), path)
	}
	img, err := avatar.Load(path)
	if err != nil {
		s.log.Warn("avatar skipped", "error", err)
		return nil
	}
	return avatar.New(img, p,
		avatar.WithCellSize(s.cfg.Viewport.CellWidth, s.cfg.Viewport.CellHeight),
		avatar.WithLogger(s.log),
	)
}

// options returns the page wiring. Portraits in the interactive page are
// always halfblocks so they scroll line by line with the text.
func (s *session) options(interactive bool) app.Options {
	p := s.caps.Protocol
	if interactive && p != terminal.ProtocolNone {
		p = terminal.ProtocolHalfblocks
	}
	return app.Options{
		Config:  s.cfg,
		Content: s.content,
		Theme:   s.ctrl,
		Canvas:  s.canvas,
		Size:    terminal.NewSizer(),
		Avatar:  s.portrait(p),
		Caps:    s.caps,
		Logger:  s.log,
	}
}

// Close releases the appearance watcher, the preference store and the
// log file.
func (s *session) Close() {
	if s.ctrl != nil {
		s.ctrl.Close()
	}
	if s.sys != nil {
		_ = s.sys.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.log.Warn("preference store close", "error", err)
		}
	}
	if s.logFile != nil {
		_ = s.logFile.Close()
	}
}

// listPalettes formats the palette names, marking the active one.
func listPalettes(active string) string {
	var b strings.Builder
	for _, name := range theme.Names() {
		mark := " "
		if strings.EqualFold(name, active) {
			mark = "*"
		}
		fmt.Fprintf(&b, "%s %s\n", mark, name)
	}
	return b.String()
}
