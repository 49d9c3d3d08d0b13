package terminal

import (
	"testing"

	"gitlab.com/tinyland/lab/folio/pkg/viewport"
)

func envOf(vars map[string]string) Env {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestDetectEnv(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want Terminal
	}{
		{"ghostty program", map[string]string{"TERM_PROGRAM": "ghostty"}, TermGhostty},
		{"ghostty term", map[string]string{"TERM": "xterm-ghostty"}, TermGhostty},
		{"kitty term", map[string]string{"TERM": "xterm-kitty"}, TermKitty},
		{"kitty window", map[string]string{"KITTY_WINDOW_ID": "3"}, TermKitty},
		{"wezterm", map[string]string{"TERM_PROGRAM": "WezTerm"}, TermWezTerm},
		{"iterm", map[string]string{"TERM_PROGRAM": "iTerm.app"}, TermITerm2},
		{"iterm over ssh", map[string]string{"LC_TERMINAL": "iTerm2"}, TermITerm2},
		{"alacritty", map[string]string{"TERM": "alacritty-direct"}, TermAlacritty},
		{"vte", map[string]string{"VTE_VERSION": "7600"}, TermVTE},
		{"vscode", map[string]string{"TERM_PROGRAM": "vscode"}, TermVSCode},
		{"tmux", map[string]string{"TMUX": "/tmp/tmux-1000/default,1,0"}, TermTmux},
		{"screen", map[string]string{"STY": "1234.pts-0"}, TermScreen},
		{"inner wins over tmux", map[string]string{"TERM_PROGRAM": "ghostty", "TMUX": "x"}, TermGhostty},
		{"nothing", nil, TermGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectEnv(envOf(tt.vars)); got != tt.want {
				t.Errorf("DetectEnv() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTerminalString(t *testing.T) {
	if TermVTE.String() != "vte" {
		t.Errorf("TermVTE.String() = %q", TermVTE.String())
	}
	if Terminal(99).String() != "unknown" {
		t.Errorf("Terminal(99).String() = %q", Terminal(99).String())
	}
}

func TestSelectProtocol(t *testing.T) {
	tests := []struct {
		term     Terminal
		remote   bool
		override string
		want     Protocol
	}{
		{TermKitty, false, "", ProtocolKitty},
		{TermGhostty, false, "", ProtocolKitty},
		{TermITerm2, false, "", ProtocolITerm2},
		{TermAlacritty, false, "", ProtocolHalfblocks},
		{TermKitty, true, "", ProtocolHalfblocks},
		{TermKitty, true, "kitty", ProtocolKitty},
		{TermGeneric, false, "sixel", ProtocolSixel},
		{TermKitty, false, "none", ProtocolNone},
		{TermKitty, false, "auto", ProtocolKitty},
		{TermITerm2, false, "bogus", ProtocolITerm2},
	}
	for _, tt := range tests {
		if got := SelectProtocol(tt.term, tt.remote, tt.override); got != tt.want {
			t.Errorf("SelectProtocol(%v, %v, %q) = %v, want %v", tt.term, tt.remote, tt.override, got, tt.want)
		}
	}
}

func TestProtocolGraphics(t *testing.T) {
	if !ProtocolKitty.Graphics() || ProtocolHalfblocks.Graphics() || ProtocolNone.Graphics() {
		t.Error("Graphics() misclassified a protocol")
	}
}

func TestProbe(t *testing.T) {
	c := Probe(envOf(map[string]string{"TERM_PROGRAM": "kitty", "SSH_TTY": "/dev/pts/1"}), "")
	if c.Term != TermKitty || !c.Remote || !c.Hyperlinks {
		t.Errorf("Probe() = %+v", c)
	}
	if c.Protocol != ProtocolHalfblocks {
		t.Errorf("remote kitty protocol = %v, want halfblocks", c.Protocol)
	}
}

func TestSizerFallsBackToEnv(t *testing.T) {
	// An invalid descriptor fails the query on every platform.
	s := &Sizer{fds: []uintptr{^uintptr(0)}, env: envOf(map[string]string{"COLUMNS": "132", "LINES": "43"})}
	if got := s.Size(); got != (viewport.Size{Cols: 132, Rows: 43}) {
		t.Errorf("Size() = %+v, want 132x43", got)
	}

	s.env = envOf(map[string]string{"COLUMNS": "wide"})
	if got := s.Size(); got.Cols != FallbackCols || got.Rows != FallbackRows {
		t.Errorf("Size() = %+v, want fallback", got)
	}
}

var _ viewport.Source = (*Sizer)(nil)
