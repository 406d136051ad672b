package stream

import (
	"fmt"
	"strings"
)

// LookaheadMode controls which bytes ParseInt and ParseFloat discard while
// looking for the first byte of a number.
//
// The rules apply until either the first valid byte is found or a timeout
// occurs.
type LookaheadMode int

const (
	// SkipAll discards every byte that cannot start a number.
	SkipAll LookaheadMode = iota
	// SkipNone discards nothing; the stream is not touched unless the next
	// byte can start a number.
	SkipNone
	// SkipWhitespace discards only spaces, tabs, carriage returns and line feeds.
	SkipWhitespace
)

// String returns the name of the mode as accepted by ParseLookaheadMode.
func (m LookaheadMode) String() string {
	switch m {
	case SkipAll:
		return "skip-all"
	case SkipNone:
		return "skip-none"
	case SkipWhitespace:
		return "skip-whitespace"
	default:
		return fmt.Sprintf("LookaheadMode(%d)", int(m))
	}
}

// ParseLookaheadMode converts "skip-all", "skip-none" or "skip-whitespace"
// (case-insensitive, '_' accepted for '-') to a LookaheadMode.
func ParseLookaheadMode(name string) (LookaheadMode, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-") {
	case "skip-all", "all", "":
		return SkipAll, nil
	case "skip-none", "none":
		return SkipNone, nil
	case "skip-whitespace", "whitespace":
		return SkipWhitespace, nil
	default:
		return SkipAll, fmt.Errorf("stream: unknown lookahead mode %q", name)
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isBlank(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

// peekNextDigit returns, without consuming it, the next byte that can start a
// number: a sign, a digit, or a decimal point when detectDecimal is set.
// Bytes in front of it are discarded as allowed by mode.
func (s *Stream) peekNextDigit(mode LookaheadMode, detectDecimal bool) (byte, error) {
	for {
		c, ok := s.timedPeek()
		if !ok {
			return 0, ErrTimeout
		}

		if c == '-' || isDigit(c) || (detectDecimal && c == '.') {
			return c, nil
		}

		switch mode {
		case SkipNone:
			return 0, ErrNoNumber
		case SkipWhitespace:
			if !isBlank(c) {
				return 0, ErrNoNumber
			}
		}

		s.skip()
	}
}
