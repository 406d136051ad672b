package logger

import (
	"sync"

	"github.com/stretchr/testify/mock"
)

// Entry is a log record captured by MockLogger.
type Entry struct {
	Level         Level
	Msg           string
	KeysAndValues []any
}

// MockLogger captures log records for assertions.
//
// The logging methods only record; With, Level and SetLevel go through the
// embedded testify mock and need expectations.
type MockLogger struct {
	mock.Mock

	mu      sync.Mutex
	entries []Entry
}

var _ Logger = (*MockLogger)(nil)

// NewMockLogger returns a MockLogger without expectations or records.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) Debug(msg string, keysAndValues ...any) {
	m.record(DebugLevel, msg, keysAndValues)
}

func (m *MockLogger) Info(msg string, keysAndValues ...any) {
	m.record(InfoLevel, msg, keysAndValues)
}

func (m *MockLogger) Warn(msg string, keysAndValues ...any) {
	m.record(WarnLevel, msg, keysAndValues)
}

func (m *MockLogger) Error(msg string, keysAndValues ...any) {
	m.record(ErrorLevel, msg, keysAndValues)
}

// Fatal records the message. It does not exit.
func (m *MockLogger) Fatal(msg string, keysAndValues ...any) {
	m.record(FatalLevel, msg, keysAndValues)
}

func (m *MockLogger) SetLevel(level Level) {
	m.Called(level)
}

func (m *MockLogger) Level() Level {
	args := m.Called()
	return args.Get(0).(Level)
}

func (m *MockLogger) With(keyValues ...any) Logger {
	args := m.Called(keyValues...)
	return args.Get(0).(Logger)
}

// Entries returns a copy of the captured records in logging order.
func (m *MockLogger) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]Entry(nil), m.entries...)
}

// Messages returns the messages captured at level.
func (m *MockLogger) Messages(level Level) []string {
	var msgs []string
	for _, e := range m.Entries() {
		if e.Level == level {
			msgs = append(msgs, e.Msg)
		}
	}

	return msgs
}

func (m *MockLogger) record(level Level, msg string, keysAndValues []any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, Entry{Level: level, Msg: msg, KeysAndValues: keysAndValues})
}
