package stream

import (
	"bytes"

	"github.com/arloliu/go-charstream/internal/util"
)

// NoMatch is returned by FindMulti when no pattern matched before the timeout.
const NoMatch = -1

// multiTarget is one pattern of a search and its partial match cursor.
type multiTarget struct {
	pattern []byte
	index   int // length of the matched prefix
}

// advance feeds c to the target and reports whether the pattern is now fully
// matched.
//
// On a mismatch the cursor falls back to the longest prefix of the pattern
// that is a suffix of the matched run and can be extended by c, so '1112'
// still matches the tail of '11112'.
func (t *multiTarget) advance(c byte) bool {
	if c == t.pattern[t.index] {
		t.index++
		return t.index == len(t.pattern)
	}

	matched := t.index
	for cand := matched - 1; cand >= 0; cand-- {
		if c != t.pattern[cand] {
			continue
		}

		// pattern[:cand] must also end the run matched before c
		if bytes.Equal(t.pattern[:cand], t.pattern[matched-cand:matched]) {
			t.index = cand + 1
			return false
		}
	}
	t.index = 0

	return false
}

// findMulti reads the source until one of the targets is fully matched and
// returns its index, or NoMatch on timeout. Each byte is read exactly once.
//
// A zero-length pattern matches immediately without consuming anything. When
// several patterns complete on the same byte the lowest index wins.
func (s *Stream) findMulti(targets []multiTarget) int {
	if len(targets) == 0 {
		return NoMatch
	}

	for i := range targets {
		if len(targets[i].pattern) == 0 {
			return i
		}
	}

	for {
		c, ok := s.timedRead()
		if !ok {
			return NoMatch
		}

		for i := range targets {
			if targets[i].advance(c) {
				return i
			}
		}
	}
}

// find runs a search and records its outcome. primary is the number of
// leading targets whose match counts as a hit; the rest are terminators.
func (s *Stream) find(targets []multiTarget, primary int) int {
	s.metrics.incFindCount()

	idx := s.findMulti(targets)
	switch {
	case idx == NoMatch:
		s.logger.Debug("stream: find timeout", "targets", len(targets), "timeout", s.Timeout())
	case idx < primary:
		s.metrics.incFindMatchCount()
		s.logger.Debug("stream: find matched", "index", idx, "pattern", string(targets[idx].pattern))
	default:
		s.logger.Debug("stream: find terminated", "terminator", string(targets[idx].pattern))
	}

	return idx
}

// FindMulti reads the stream until any of patterns is found and returns the
// index of the pattern, or NoMatch if the timeout expired first.
//
// The stream is left positioned just after the matched occurrence. When
// nothing matches every byte that arrived in time has been consumed.
func (s *Stream) FindMulti(patterns ...[]byte) int {
	targets := make([]multiTarget, len(patterns))
	for i, p := range patterns {
		targets[i].pattern = p
	}

	return s.find(targets, len(targets))
}

// Find reads the stream until target is found. It returns false if the
// timeout expired first.
func (s *Stream) Find(target []byte) bool {
	return s.find([]multiTarget{{pattern: target}}, 1) == 0
}

// FindString is Find for a string target.
func (s *Stream) FindString(target string) bool {
	return s.Find([]byte(target))
}

// FindN reads the stream until the first length bytes of target are found.
// length is clamped to [0, len(target)].
func (s *Stream) FindN(target []byte, length int) bool {
	return s.Find(target[:util.ClampLen(length, len(target))])
}

// FindByte reads the stream until c is found.
func (s *Stream) FindByte(c byte) bool {
	return s.Find([]byte{c})
}

// FindUntil is Find that also gives up when terminator is found first.
// A nil terminator makes it equivalent to Find. A non-nil empty terminator
// matches at once, so FindUntil reports false without consuming unless target
// is empty too.
func (s *Stream) FindUntil(target, terminator []byte) bool {
	if terminator == nil {
		return s.Find(target)
	}

	return s.find([]multiTarget{{pattern: target}, {pattern: terminator}}, 1) == 0
}

// FindUntilString is FindUntil for string arguments. An empty terminator is
// the non-nil empty case.
func (s *Stream) FindUntilString(target, terminator string) bool {
	return s.FindUntil([]byte(target), []byte(terminator))
}
