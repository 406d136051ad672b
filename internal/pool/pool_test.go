package pool

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTimer_Fires(t *testing.T) {
	timer := GetTimer(10 * time.Millisecond)
	defer PutTimer(timer)

	select {
	case <-timer.C:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}

// A timer released while armed or after firing unreceived must not leak an
// early expiry to its next user.
func TestGetTimer_NoStaleExpiry(t *testing.T) {
	tests := []struct {
		name    string
		prepare func() *time.Timer
	}{
		{"released while armed", func() *time.Timer {
			timer := GetTimer(100 * time.Millisecond)
			time.Sleep(10 * time.Millisecond)
			return timer
		}},
		{"released after firing", func() *time.Timer {
			timer := GetTimer(time.Millisecond)
			time.Sleep(20 * time.Millisecond)
			return timer
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			PutTimer(tt.prepare())

			begin := time.Now()
			timer := GetTimer(50 * time.Millisecond)
			defer PutTimer(timer)

			select {
			case fired := <-timer.C:
				assert.GreaterOrEqual(t, fired.Sub(begin), 45*time.Millisecond)
			case <-time.After(time.Second):
				t.Fatal("timer did not fire")
			}
		})
	}
}

func TestGetTimer_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			timer := GetTimer(2 * time.Millisecond)
			defer PutTimer(timer)
			<-timer.C
		}()
	}
	wg.Wait()
}

func TestBuffer(t *testing.T) {
	buf := GetBuffer()
	require.Zero(t, buf.Len())

	buf.WriteString("leftover")
	PutBuffer(buf)

	for range 10 {
		b := GetBuffer()
		assert.Zero(t, b.Len(), "pooled buffers must come back empty")
		PutBuffer(b)
	}

	big := GetBuffer()
	big.Grow(maxPooledBufferSize * 2)
	PutBuffer(big)
}
