package terminal

import "strings"

// Protocol is an inline image protocol.
type Protocol int

const (
	ProtocolNone Protocol = iota
	ProtocolKitty
	ProtocolITerm2
	ProtocolSixel
	ProtocolHalfblocks
)

var protocolNames = [...]string{
	ProtocolNone:       "none",
	ProtocolKitty:      "kitty",
	ProtocolITerm2:     "iterm2",
	ProtocolSixel:      "sixel",
	ProtocolHalfblocks: "halfblocks",
}

func (p Protocol) String() string {
	if p >= 0 && int(p) < len(protocolNames) {
		return protocolNames[p]
	}
	return "unknown"
}

// Graphics reports whether p transmits real pixels rather than coloured
// text cells.
func (p Protocol) Graphics() bool {
	return p == ProtocolKitty || p == ProtocolITerm2 || p == ProtocolSixel
}

// ParseProtocol maps a configured protocol name. ok is false for unknown
// names and for "auto".
func ParseProtocol(name string) (p Protocol, ok bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "kitty":
		return ProtocolKitty, true
	case "iterm2":
		return ProtocolITerm2, true
	case "sixel":
		return ProtocolSixel, true
	case "halfblocks", "unicode":
		return ProtocolHalfblocks, true
	case "none", "off":
		return ProtocolNone, true
	}
	return ProtocolNone, false
}

// SelectProtocol picks the image protocol for t. Remote sessions fall back
// to halfblocks since graphics escapes rarely survive the hop intact.
func SelectProtocol(t Terminal, remote bool, override string) Protocol {
	if p, ok := ParseProtocol(override); ok {
		return p
	}
	if remote {
		return ProtocolHalfblocks
	}
	switch t {
	case TermGhostty, TermKitty, TermWezTerm:
		return ProtocolKitty
	case TermITerm2:
		return ProtocolITerm2
	}
	return ProtocolHalfblocks
}
