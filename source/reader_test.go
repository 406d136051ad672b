package source

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-charstream/logger"
	"github.com/arloliu/go-charstream/stream"
)

func TestReader_ParseFromIOReader(t *testing.T) {
	rd := NewReaderSize(strings.NewReader("temp=21.5;hum=40\n"), 3)
	defer rd.Close()

	s, err := stream.New(rd, stream.WithTimeout(200*time.Millisecond))
	require.NoError(t, err)

	require.True(t, s.FindString("temp="))
	temp, err := s.ParseFloat()
	require.NoError(t, err)
	assert.InDelta(t, 21.5, temp, 1e-9)

	require.True(t, s.FindString("hum="))
	hum, err := s.ParseInt()
	require.NoError(t, err)
	assert.Equal(t, int64(40), hum)

	<-rd.Done()
	assert.NoError(t, rd.Err(), "io.EOF is a normal end")
}

func TestReader_EndOfInputStopsWaiting(t *testing.T) {
	rd := NewReader(strings.NewReader("abc"))
	<-rd.Done()

	s, err := stream.New(rd, stream.WithTimeout(time.Second))
	require.NoError(t, err)

	begin := time.Now()
	assert.Equal(t, "abc", s.ReadString())
	assert.Less(t, time.Since(begin), 500*time.Millisecond)
}

func TestReader_Err(t *testing.T) {
	l := logger.NewMockLogger()
	prev := logger.SetLogger(l)
	t.Cleanup(func() { logger.SetLogger(prev) })

	pr, pw := io.Pipe()
	rd := NewReader(pr)

	errLine := errors.New("line dropped")
	_, _ = pw.Write([]byte("12"))
	_ = pw.CloseWithError(errLine)
	<-rd.Done()

	require.ErrorIs(t, rd.Err(), errLine)
	assert.Equal(t, 2, rd.Available())
	assert.Contains(t, l.Messages(logger.WarnLevel), "source: read failed")
}

func TestReader_CloseClosesUnderlying(t *testing.T) {
	pr, pw := io.Pipe()
	rd := NewReader(pr)

	require.NoError(t, rd.Close())
	<-rd.Done()

	_, err := pw.Write([]byte("x"))
	require.ErrorIs(t, err, io.ErrClosedPipe)
}
