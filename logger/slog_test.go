package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogWithWriter(&buf, InfoLevel, false, false)

	l.Debug("hidden", "k", 1)
	assert.Zero(t, buf.Len(), "debug must be filtered at info level")

	l.Info("stream: find matched", "pattern", "OK", "index", 0)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "stream: find matched", rec["msg"])
	assert.Equal(t, "OK", rec["pattern"])
	assert.Contains(t, rec, "ts")
	assert.NotContains(t, rec, "time")
}

func TestSlogLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogWithWriter(&buf, WarnLevel, false, false)
	assert.Equal(t, WarnLevel, l.Level())

	l.SetLevel(DebugLevel)
	assert.Equal(t, DebugLevel, l.Level())

	l.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestSlogLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogWithWriter(&buf, InfoLevel, false, false)
	child := l.With("stream", "uart0")

	child.Info("hello")
	assert.Contains(t, buf.String(), `"stream":"uart0"`)

	// the child shares the parent's level
	l.SetLevel(ErrorLevel)
	buf.Reset()
	child.Info("filtered")
	assert.Zero(t, buf.Len())
}

func TestSlogLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogWithWriter(&buf, InfoLevel, false, true)
	l.Info("console line", "n", 42)

	out := buf.String()
	assert.Contains(t, out, "console line")
	assert.True(t, strings.Contains(out, "n=42") || strings.Contains(out, "42"))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    Level
		wantErr bool
	}{
		{"debug", DebugLevel, false},
		{"INFO", InfoLevel, false},
		{"", InfoLevel, false},
		{"warning", WarnLevel, false},
		{"error", ErrorLevel, false},
		{"fatal", FatalLevel, false},
		{"verbose", InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetLogger(t *testing.T) {
	m := NewMockLogger()
	prev := SetLogger(m)
	defer SetLogger(prev)

	Warn("source: read failed", "error", "line dropped")
	Debug("stream: find timeout")

	assert.Equal(t, []string{"source: read failed"}, m.Messages(WarnLevel))
	assert.Equal(t, []string{"stream: find timeout"}, m.Messages(DebugLevel))
	assert.Len(t, m.Entries(), 2)

	assert.Same(t, m, SetLogger(nil), "nil keeps the current logger")
	assert.Same(t, m, GetLogger())
}
