// Package terminal identifies the host terminal emulator and what it can
// draw: inline image protocols, OSC 8 hyperlinks and pixel-accurate size
// reports. Detection reads only the environment and never writes to the
// terminal.
package terminal

import (
	"os"
	"strings"
)

// Terminal identifies the terminal emulator in use.
type Terminal int

const (
	TermGeneric Terminal = iota
	TermGhostty
	TermKitty
	TermWezTerm
	TermITerm2
	TermAlacritty
	TermVTE // GNOME Terminal, Tilix and other VTE-based emulators
	TermVSCode
	TermTmux
	TermScreen
)

var terminalNames = [...]string{
	TermGeneric:   "generic",
	TermGhostty:   "ghostty",
	TermKitty:     "kitty",
	TermWezTerm:   "wezterm",
	TermITerm2:    "iterm2",
	TermAlacritty: "alacritty",
	TermVTE:       "vte",
	TermVSCode:    "vscode",
	TermTmux:      "tmux",
	TermScreen:    "screen",
}

func (t Terminal) String() string {
	if t >= 0 && int(t) < len(terminalNames) {
		return terminalNames[t]
	}
	return "unknown"
}

// Hyperlinks reports whether the terminal renders OSC 8 links.
func (t Terminal) Hyperlinks() bool {
	switch t {
	case TermGhostty, TermKitty, TermWezTerm, TermITerm2,
		TermAlacritty, TermVTE, TermVSCode:
		return true
	}
	return false
}

// Env looks up an environment variable. os.LookupEnv satisfies it.
type Env func(key string) (string, bool)

func (e Env) get(key string) string {
	if e == nil {
		e = os.LookupEnv
	}
	v, _ := e(key)
	return v
}

// Detect identifies the terminal from the process environment.
func Detect() Terminal { return DetectEnv(os.LookupEnv) }

// DetectEnv identifies the terminal from env. TERM_PROGRAM wins, then
// TERM, then emulator specific variables. Multiplexers are checked last
// so an inner emulator that exports TERM_PROGRAM is still recognised.
func DetectEnv(env Env) Terminal {
	switch strings.ToLower(env.get("TERM_PROGRAM")) {
	case "ghostty":
		return TermGhostty
	case "kitty":
		return TermKitty
	case "wezterm":
		return TermWezTerm
	case "iterm.app":
		return TermITerm2
	case "vscode":
		return TermVSCode
	case "alacritty":
		return TermAlacritty
	case "tmux":
		return TermTmux
	}

	switch term := env.get("TERM"); {
	case term == "xterm-ghostty":
		return TermGhostty
	case term == "xterm-kitty":
		return TermKitty
	case strings.HasPrefix(term, "alacritty"):
		return TermAlacritty
	}

	switch {
	case env.get("KITTY_WINDOW_ID") != "":
		return TermKitty
	case env.get("WEZTERM_EXECUTABLE") != "":
		return TermWezTerm
	case env.get("ITERM_SESSION_ID") != "", env.get("LC_TERMINAL") == "iTerm2":
		return TermITerm2
	case env.get("VTE_VERSION") != "":
		return TermVTE
	case env.get("TMUX") != "":
		return TermTmux
	case env.get("STY") != "":
		return TermScreen
	}
	return TermGeneric
}

// Remote reports whether env describes an SSH session.
func Remote(env Env) bool {
	return env.get("SSH_TTY") != "" ||
		env.get("SSH_CONNECTION") != "" ||
		env.get("SSH_CLIENT") != ""
}

// Capabilities summarises what the page may use on this terminal.
type Capabilities struct {
	Term       Terminal
	Protocol   Protocol
	Hyperlinks bool
	Remote     bool
}

// Probe detects capabilities from env. override forces an image protocol
// by name; an empty or unknown override keeps detection.
func Probe(env Env, override string) Capabilities {
	t := DetectEnv(env)
	remote := Remote(env)
	return Capabilities{
		Term:       t,
		Protocol:   SelectProtocol(t, remote, override),
		Hyperlinks: t.Hyperlinks(),
		Remote:     remote,
	}
}
