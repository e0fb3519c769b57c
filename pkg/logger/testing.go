package logger

import (
	"fmt"
	"sync"
	"testing"
)

// Entry is a message recorded by TestLogger
type Entry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

// TestLogger forwards messages to testing.T and keeps them for assertions
type TestLogger struct {
	T      *testing.T
	fields map[string]interface{}
	sink   *entrySink
}

type entrySink struct {
	mu      sync.Mutex
	entries []Entry
}

// NewTestLogger creates a new test logger
func NewTestLogger(t *testing.T) *TestLogger {
	return &TestLogger{T: t, sink: &entrySink{}}
}

func (l *TestLogger) log(level, msg string) {
	fields := make(map[string]interface{}, len(l.fields))
	for k, v := range l.fields {
		fields[k] = v
	}
	l.sink.mu.Lock()
	l.sink.entries = append(l.sink.entries, Entry{Level: level, Message: msg, Fields: fields})
	l.sink.mu.Unlock()
	if l.T != nil {
		if len(fields) > 0 {
			l.T.Logf("[%s] %s %v", level, msg, fields)
		} else {
			l.T.Logf("[%s] %s", level, msg)
		}
	}
}

// Entries returns every message logged so far, child loggers included
func (l *TestLogger) Entries() []Entry {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	out := make([]Entry, len(l.sink.entries))
	copy(out, l.sink.entries)
	return out
}

// Messages returns the messages logged at the given level
func (l *TestLogger) Messages(level string) []string {
	var out []string
	for _, e := range l.Entries() {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

func (l *TestLogger) Debug(msg string) { l.log("DEBUG", msg) }

func (l *TestLogger) Info(msg string) { l.log("INFO", msg) }

func (l *TestLogger) Warn(msg string) { l.log("WARN", msg) }

func (l *TestLogger) Error(msg string) { l.log("ERROR", msg) }

// Fatal records the message without exiting
func (l *TestLogger) Fatal(msg string) { l.log("FATAL", msg) }

// WithField returns a logger with a field
func (l *TestLogger) WithField(key string, value interface{}) Logger {
	return l.WithFields(map[string]interface{}{key: value})
}

// WithFields returns a logger with fields, sharing the recorded entries
func (l *TestLogger) WithFields(fields map[string]interface{}) Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &TestLogger{T: l.T, fields: merged, sink: l.sink}
}

func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s", e.Level, e.Message)
}
