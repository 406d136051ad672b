// Package stream implements a timed character-stream parsing engine over an
// abstract byte source.
//
// A concrete transport (UART bridge, socket, in-memory buffer, ...) implements
// the narrow Source interface and hands out bytes one at a time. A Stream adds:
//   - Bounded-wait reads: every read or peek waits at most the configured
//     timeout (default 1s) for the next byte.
//   - Substring search: Find, FindN, FindByte, FindUntil and FindMulti scan the
//     source once, byte by byte, tracking partial matches of any number of
//     patterns simultaneously and recovering from mismatches without re-reading.
//   - Numeric parsing: ParseInt and ParseFloat skip leading bytes according to
//     a LookaheadMode and fold sign, digits and decimal point into a value.
//   - Bounded extraction: ReadBytes, ReadBytesUntil, ReadString and
//     ReadStringUntil.
//
// Timeouts are never reported as panics. Searches return false or NoMatch,
// parsers return ErrTimeout or ErrNoNumber, and bounded reads return what was
// collected before the deadline.
//
// Usage Example:
//
//	src := source.NewBufferString("temp=21.5;hum=40\n")
//	s, err := stream.New(src, stream.WithTimeout(50*time.Millisecond))
//	// ... handle error ...
//
//	if s.FindString("temp=") {
//	    temp, err := s.ParseFloat()
//	    // temp == 21.5, the stream is positioned at ';'
//	}
//
//	if s.FindUntilString("hum=", "\n") {
//	    hum, _ := s.ParseInt(stream.WithLookahead(stream.SkipNone))
//	    // hum == 40
//	}
//
// A Stream is not goroutine-safe. Only SetTimeout, Timeout and the metrics may
// be used while another goroutine runs an operation.
package stream
