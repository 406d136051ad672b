package stream

// ParseOption configures a single ParseInt or ParseFloat call.
type ParseOption func(*parseConfig)

type parseConfig struct {
	lookahead LookaheadMode
	ignore    byte
	hasIgnore bool
}

func newParseConfig(opts []ParseOption) parseConfig {
	cfg := parseConfig{lookahead: SkipAll}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (cfg *parseConfig) isIgnored(c byte) bool {
	return cfg.hasIgnore && c == cfg.ignore
}

// WithLookahead sets the policy for bytes in front of the number.
// The default is SkipAll.
func WithLookahead(mode LookaheadMode) ParseOption {
	return func(cfg *parseConfig) {
		cfg.lookahead = mode
	}
}

// WithIgnore sets a byte that is silently discarded inside the number, such as
// a thousands separator.
func WithIgnore(c byte) ParseOption {
	return func(cfg *parseConfig) {
		cfg.ignore = c
		cfg.hasIgnore = true
	}
}

// ParseInt returns the first integer from the current position.
//
// Leading bytes are handled per the lookahead mode. Once parsing starts, the
// ignore byte is skipped and the first byte that is neither a digit nor the
// ignore byte ends the number; that byte is left in the stream.
//
// It returns ErrTimeout if nothing numeric arrived in time and ErrNoNumber if
// the lookahead policy rejected the next byte or no digit was found.
// Values that do not fit in an int64 wrap around.
func (s *Stream) ParseInt(opts ...ParseOption) (int64, error) {
	cfg := newParseConfig(opts)
	s.metrics.incParseCount()

	c, err := s.peekNextDigit(cfg.lookahead, false)
	if err != nil {
		return 0, s.parseFailed("int", err)
	}

	var (
		negative bool
		value    int64
		digits   int
	)

	for {
		switch {
		case cfg.isIgnored(c):
		case c == '-':
			negative = true
		case isDigit(c):
			value = value*10 + int64(c-'0')
			digits++
		}
		s.skip()

		next, ok := s.timedPeek()
		if !ok || (!isDigit(next) && !cfg.isIgnored(next)) {
			break
		}
		c = next
	}

	if digits == 0 {
		return 0, s.parseFailed("int", ErrNoNumber)
	}

	if negative {
		value = -value
	}

	return value, nil
}

// ParseFloat is ParseInt for decimal numbers. A single '.' switches to the
// fractional part; a second '.' ends the number. Exponents are not supported.
func (s *Stream) ParseFloat(opts ...ParseOption) (float64, error) {
	cfg := newParseConfig(opts)
	s.metrics.incParseCount()

	c, err := s.peekNextDigit(cfg.lookahead, true)
	if err != nil {
		return 0, s.parseFailed("float", err)
	}

	var (
		negative bool
		fraction bool
		value    float64
		scale    = 1.0
		digits   int
	)

	for {
		switch {
		case cfg.isIgnored(c):
		case c == '-':
			negative = true
		case c == '.':
			fraction = true
		case isDigit(c):
			if fraction {
				scale *= 0.1
				value += scale * float64(c-'0')
			} else {
				value = value*10 + float64(c-'0')
			}
			digits++
		}
		s.skip()

		next, ok := s.timedPeek()
		if !ok || (!isDigit(next) && !(next == '.' && !fraction) && !cfg.isIgnored(next)) {
			break
		}
		c = next
	}

	if digits == 0 {
		return 0, s.parseFailed("float", ErrNoNumber)
	}

	if negative {
		value = -value
	}

	return value, nil
}

func (s *Stream) parseFailed(kind string, err error) error {
	s.metrics.incParseErrCount()
	s.logger.Debug("stream: parse failed", "kind", kind, "error", err)

	return err
}
