package stream

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-charstream/logger"
)

func TestNew_Defaults(t *testing.T) {
	s, err := New(&memSource{})
	require.NoError(t, err)

	assert.Equal(t, DefaultTimeout, s.Timeout())
	assert.Equal(t, DefaultPollInterval, s.PollInterval())
	assert.Empty(t, s.Name())
	assert.NotNil(t, s.Source())
	assert.Nil(t, s.waiter)
}

func TestNew_Options(t *testing.T) {
	l := logger.NewMockLogger()
	l.On("With", "stream", "uart0").Return(l)

	s, err := New(&silentWaiter{},
		WithTimeout(250*time.Millisecond),
		WithPollInterval(5*time.Millisecond),
		WithLogger(l),
		WithName("uart0"),
	)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, s.Timeout())
	assert.Equal(t, 5*time.Millisecond, s.PollInterval())
	assert.Equal(t, "uart0", s.Name())
	assert.NotNil(t, s.waiter, "a Waiter source must be detected")
	l.AssertExpectations(t)
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrSourceNil)

	tests := []struct {
		name string
		opt  Option
	}{
		{"negative timeout", WithTimeout(-time.Millisecond)},
		{"zero poll interval", WithPollInterval(0)},
		{"huge poll interval", WithPollInterval(time.Second)},
		{"nil logger", WithLogger(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(&memSource{}, tt.opt)
			require.Error(t, err)
		})
	}
}

func TestSetTimeout(t *testing.T) {
	s, _ := newTestStream(t, "")

	s.SetTimeout(5 * time.Millisecond)
	assert.Equal(t, 5*time.Millisecond, s.Timeout())

	s.SetTimeout(-time.Second)
	assert.Equal(t, time.Duration(0), s.Timeout())
}

func TestSetTimeout_Concurrent(t *testing.T) {
	s, err := New(&silentSource{}, WithTimeout(10*time.Millisecond))
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			s.SetTimeout(time.Duration(i%5+1) * time.Millisecond)
			_ = s.Timeout()
		}
	}()

	_, ok := s.timedRead()
	assert.False(t, ok)
	wg.Wait()
}

func TestTimedPeek_Idempotent(t *testing.T) {
	s, src := newTestStream(t, "xyz")

	for i := 0; i < 5; i++ {
		c, ok := s.timedPeek()
		require.True(t, ok)
		assert.Equal(t, byte('x'), c)
	}
	assert.Equal(t, "xyz", src.rest(), "peek must never advance the source")

	c, err := s.PeekByte()
	require.NoError(t, err)
	assert.Equal(t, byte('x'), c)

	c, err = s.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('x'), c)
	assert.Equal(t, "yz", src.rest())
}

func TestTimedRead_Timeout(t *testing.T) {
	s, _ := newTestStream(t, "a")

	c, ok := s.timedRead()
	assert.True(t, ok)
	assert.Equal(t, byte('a'), c)

	begin := time.Now()
	_, ok = s.timedRead()
	elapsed := time.Since(begin)

	assert.False(t, ok)
	assert.GreaterOrEqual(t, elapsed, testTimeout)
	assert.Less(t, elapsed, testTimeout+50*time.Millisecond)

	_, err := s.ReadByte()
	require.ErrorIs(t, err, ErrTimeout)
	_, err = s.PeekByte()
	require.ErrorIs(t, err, ErrTimeout)

	assert.Equal(t, uint64(3), s.GetMetrics().TimeoutCount.Load())
	assert.Equal(t, uint64(1), s.GetMetrics().BytesRead.Load())
}

func TestTimedRead_ZeroTimeout(t *testing.T) {
	src := &memSource{}
	s, err := New(src, WithTimeout(0))
	require.NoError(t, err)

	begin := time.Now()
	_, ok := s.timedRead()
	assert.False(t, ok)
	assert.Less(t, time.Since(begin), 10*time.Millisecond)
	assert.Equal(t, 1, src.reads, "zero timeout still makes one attempt")
}

func TestTimedRead_Waiter(t *testing.T) {
	src := &silentWaiter{}
	s, err := New(src, WithTimeout(30*time.Millisecond))
	require.NoError(t, err)

	begin := time.Now()
	_, ok := s.timedPeek()
	elapsed := time.Since(begin)

	assert.False(t, ok)
	assert.Equal(t, 1, src.waits, "a waiter is asked once instead of polled")
	assert.GreaterOrEqual(t, elapsed, 30*time.Millisecond)
	assert.Less(t, elapsed, 80*time.Millisecond)
}

// Every blocking operation on a source that never produces data must return
// within the timeout plus polling overhead.
func TestTimeoutMonotonicity(t *testing.T) {
	const timeout = 25 * time.Millisecond
	const slack = 60 * time.Millisecond

	ops := map[string]func(s *Stream){
		"Find":            func(s *Stream) { s.FindString("x") },
		"FindUntil":       func(s *Stream) { s.FindUntilString("x", "y") },
		"FindMulti":       func(s *Stream) { s.FindMulti([]byte("a"), []byte("b")) },
		"ParseInt":        func(s *Stream) { _, _ = s.ParseInt() },
		"ParseFloat":      func(s *Stream) { _, _ = s.ParseFloat() },
		"ReadBytes":       func(s *Stream) { s.ReadBytes(make([]byte, 4)) },
		"ReadBytesUntil":  func(s *Stream) { s.ReadBytesUntil(',', make([]byte, 4)) },
		"ReadString":      func(s *Stream) { _ = s.ReadString() },
		"ReadStringUntil": func(s *Stream) { _ = s.ReadStringUntil(',') },
	}

	sources := map[string]func() Source{
		"poll":   func() Source { return &silentSource{} },
		"waiter": func() Source { return &silentWaiter{} },
	}

	for srcName, newSrc := range sources {
		for opName, op := range ops {
			t.Run(srcName+"/"+opName, func(t *testing.T) {
				s, err := New(newSrc(), WithTimeout(timeout))
				require.NoError(t, err)

				begin := time.Now()
				op(s)
				elapsed := time.Since(begin)

				assert.GreaterOrEqual(t, elapsed, timeout)
				assert.Less(t, elapsed, timeout+slack)
			})
		}
	}
}

func TestTryReadPeekAvailable(t *testing.T) {
	s, src := newTestStream(t, "ab")

	assert.Equal(t, 2, s.Available())

	c, ok := s.TryPeek()
	assert.True(t, ok)
	assert.Equal(t, byte('a'), c)

	c, ok = s.TryRead()
	assert.True(t, ok)
	assert.Equal(t, byte('a'), c)
	assert.Equal(t, 1, s.Available())
	assert.Equal(t, "b", src.rest())

	s.TryRead()
	_, ok = s.TryRead()
	assert.False(t, ok)
	assert.Equal(t, uint64(2), s.GetMetrics().BytesRead.Load())
}
