// Package appearance reports whether the desktop prefers a dark colour
// scheme and notifies subscribers when that changes.
//
// Terminals expose no colour-scheme change notification, so three sources
// are offered: a one-shot query of the terminal background, a watched
// file that desktop hooks (darkman, a GNOME/macOS shortcut, a cron job)
// rewrite with "dark" or "light", and a fixed value from the environment.
package appearance

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// EnvVar forces the appearance to "dark" or "light".
const EnvVar = "FOLIO_APPEARANCE"

// Source reports the current system appearance.
type Source interface {
	// Dark reports whether the system prefers a dark scheme.
	Dark() bool
	// Subscribe registers fn for appearance changes. The returned
	// function removes the subscription.
	Subscribe(fn func(dark bool)) (cancel func())
	// Close releases any watchers.
	Close() error
}

// Parse interprets a scheme name. Anything mentioning "dark" is dark,
// "light" is light; ok is false for anything else.
func Parse(s string) (dark, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.Contains(s, "dark"):
		return true, true
	case strings.Contains(s, "light"):
		return false, true
	default:
		return false, false
	}
}

// Static is a Source whose value never changes.
type Static struct {
	dark bool
}

// NewStatic returns a Static source.
func NewStatic(dark bool) *Static { return &Static{dark: dark} }

// Dark implements Source.
func (s *Static) Dark() bool { return s.dark }

// Subscribe implements Source. Static sources never notify.
func (s *Static) Subscribe(func(bool)) func() { return func() {} }

// Close implements Source.
func (s *Static) Close() error { return nil }

// QueryTerminal asks the terminal for its background colour. Terminals
// that do not answer are treated as dark.
func QueryTerminal(out *termenv.Output) bool {
	if out == nil {
		return termenv.HasDarkBackground()
	}
	return out.HasDarkBackground()
}

// Options selects the appearance source.
type Options struct {
	// File, when set, is watched for "dark"/"light" contents.
	File string
	// Output is queried for the background colour when neither the
	// environment nor File decides. Nil uses stdout.
	Output *termenv.Output
	Logger *slog.Logger
}

// Detect returns the most specific available Source: the environment
// override, then the watched file, then the terminal background query.
func Detect(opts Options) Source {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	if dark, ok := Parse(os.Getenv(EnvVar)); ok {
		log.Debug("appearance from environment", "dark", dark)
		return NewStatic(dark)
	}

	fallback := QueryTerminal(opts.Output)
	if opts.File != "" {
		w, err := NewFileWatcher(opts.File, fallback, log)
		if err == nil {
			return w
		}
		log.Warn("appearance file watch unavailable", "path", opts.File, "error", err)
	}
	return NewStatic(fallback)
}

// subscribers is the fan-out shared by changing sources.
type subscribers struct {
	mu   sync.Mutex
	next int
	fns  map[int]func(bool)
}

func (s *subscribers) add(fn func(bool)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fns == nil {
		s.fns = make(map[int]func(bool))
	}
	id := s.next
	s.next++
	s.fns[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.fns, id)
	}
}

func (s *subscribers) notify(dark bool) {
	s.mu.Lock()
	fns := make([]func(bool), 0, len(s.fns))
	for _, fn := range s.fns {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(dark)
	}
}
