package source

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/arloliu/go-charstream/logger"
	"github.com/arloliu/go-charstream/stream"
)

// WebSocket is a byte source fed by the messages of a websocket connection.
// Text and binary message payloads are concatenated in arrival order.
type WebSocket struct {
	pipe *Pipe
	ws   *websocket.Conn
	done chan struct{}
}

var (
	_ stream.Source = (*WebSocket)(nil)
	_ stream.Waiter = (*WebSocket)(nil)
)

// NewWebSocket starts reading messages from ws. The WebSocket takes
// ownership of ws.
func NewWebSocket(ws *websocket.Conn) *WebSocket {
	s := &WebSocket{
		pipe: NewPipe(),
		ws:   ws,
		done: make(chan struct{}),
	}
	go s.pump()

	return s
}

// DialWebSocket opens a websocket connection to url.
func DialWebSocket(ctx context.Context, url string, header http.Header) (*WebSocket, error) {
	ws, resp, err := websocket.DefaultDialer.DialContext(ctx, url, header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, err
	}

	return NewWebSocket(ws), nil
}

func (s *WebSocket) pump() {
	defer close(s.done)

	for {
		_, data, err := s.ws.ReadMessage()
		if err != nil {
			if s.pipe.Closed() || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				err = nil
			} else {
				logger.Warn("source: websocket closed unexpectedly", "remote", s.ws.RemoteAddr().String(), "error", err)
			}
			_ = s.pipe.CloseWithError(err)

			return
		}

		if _, err := s.pipe.Write(data); err != nil {
			return
		}
	}
}

// Available implements stream.Source.
func (s *WebSocket) Available() int { return s.pipe.Available() }

// TryRead implements stream.Source.
func (s *WebSocket) TryRead() (byte, bool) { return s.pipe.TryRead() }

// TryPeek implements stream.Source.
func (s *WebSocket) TryPeek() (byte, bool) { return s.pipe.TryPeek() }

// WaitAvailable implements stream.Waiter.
func (s *WebSocket) WaitAvailable(timeout time.Duration) bool {
	return s.pipe.WaitAvailable(timeout)
}

// WriteMessage sends p as a single text message.
func (s *WebSocket) WriteMessage(p []byte) error {
	return s.ws.WriteMessage(websocket.TextMessage, p)
}

// Done is closed when the connection stopped delivering messages.
func (s *WebSocket) Done() <-chan struct{} { return s.done }

// Err returns the error that ended the connection, or nil after a normal
// close.
func (s *WebSocket) Err() error { return s.pipe.Err() }

// Close closes the connection. Bytes already received stay readable.
func (s *WebSocket) Close() error {
	_ = s.pipe.Close()

	return s.ws.Close()
}
