// Package notify is the capability controllers use to surface outcomes to
// the operator. Injecting it keeps controllers free of any presentation
// dependency and lets tests assert on exactly what was shown.
package notify

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notifier interface {
	Info(title, message string)
	Success(title, message string)
	Error(title, message string)
}

// Console writes notifications to a writer, one line each. This is the
// variant wired into the CLI.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Info(title, message string)    { c.write(LevelInfo, title, message) }
func (c *Console) Success(title, message string) { c.write(LevelSuccess, title, message) }
func (c *Console) Error(title, message string)   { c.write(LevelError, title, message) }

func (c *Console) write(level Level, title, message string) {
	fmt.Fprintf(c.w, "[%s] %s: %s\n", level, title, message)
}

// Logging mirrors notifications into a zap logger, for headless use.
type Logging struct {
	logger *zap.Logger
}

func NewLogging(logger *zap.Logger) *Logging {
	return &Logging{logger: logger}
}

func (l *Logging) Info(title, message string) {
	l.logger.Info(message, zap.String("title", title))
}

func (l *Logging) Success(title, message string) {
	l.logger.Info(message, zap.String("title", title), zap.String("outcome", "success"))
}

func (l *Logging) Error(title, message string) {
	l.logger.Error(message, zap.String("title", title))
}

// Entry is one recorded notification.
type Entry struct {
	Level   Level
	Title   string
	Message string
}

// Recorder captures notifications for assertions in tests.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Info(title, message string)    { r.record(LevelInfo, title, message) }
func (r *Recorder) Success(title, message string) { r.record(LevelSuccess, title, message) }
func (r *Recorder) Error(title, message string)   { r.record(LevelError, title, message) }

func (r *Recorder) record(level Level, title, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Title: title, Message: message})
}

// Entries returns a snapshot of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// ByLevel returns recorded entries with the given level.
func (r *Recorder) ByLevel(level Level) []Entry {
	var out []Entry
	for _, e := range r.Entries() {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}
