package source

import (
	"time"

	"github.com/nats-io/nats.go"

	"github.com/arloliu/go-charstream/stream"
)

// NATS is a byte source fed by the payloads of messages published on a
// subject.
type NATS struct {
	pipe    *Pipe
	nc      *nats.Conn
	sub     *nats.Subscription
	ownConn bool
}

var (
	_ stream.Source = (*NATS)(nil)
	_ stream.Waiter = (*NATS)(nil)
)

// NewNATS subscribes to subject on nc. Closing the source unsubscribes but
// leaves nc open.
func NewNATS(nc *nats.Conn, subject string) (*NATS, error) {
	s := &NATS{pipe: NewPipe(), nc: nc}

	sub, err := nc.Subscribe(subject, s.handle)
	if err != nil {
		return nil, err
	}
	s.sub = sub

	return s, nil
}

// DialNATS connects to the server at url and subscribes to subject. The
// connection is closed together with the source.
func DialNATS(url string, subject string, opts ...nats.Option) (*NATS, error) {
	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, err
	}

	s, err := NewNATS(nc, subject)
	if err != nil {
		nc.Close()
		return nil, err
	}
	s.ownConn = true

	return s, nil
}

func (s *NATS) handle(msg *nats.Msg) {
	_, _ = s.pipe.Write(msg.Data)
}

// Available implements stream.Source.
func (s *NATS) Available() int { return s.pipe.Available() }

// TryRead implements stream.Source.
func (s *NATS) TryRead() (byte, bool) { return s.pipe.TryRead() }

// TryPeek implements stream.Source.
func (s *NATS) TryPeek() (byte, bool) { return s.pipe.TryPeek() }

// WaitAvailable implements stream.Waiter.
func (s *NATS) WaitAvailable(timeout time.Duration) bool {
	return s.pipe.WaitAvailable(timeout)
}

// Close unsubscribes. Payloads already received stay readable.
func (s *NATS) Close() error {
	_ = s.pipe.Close()

	var err error
	if s.sub != nil {
		err = s.sub.Unsubscribe()
	}
	if s.ownConn {
		s.nc.Close()
	}

	return err
}
