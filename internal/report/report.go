// Package report is the user-facing sink for progress milestones and the
// single terminal failure of a run.
package report

import (
	"sync"

	"create-starter/internal/logger"
)

// Level classifies a reported event.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarn    Level = "warn"
	LevelPanic   Level = "panic"
)

// Reporter receives user-visible events.
// Panic is terminal: nothing else is reported for the run after it.
type Reporter interface {
	Info(msg string)
	Success(msg string)
	Warn(msg string)
	Panic(msg string)
}

// Console prints events to the terminal through the colored logger.
// Each level keeps the logger's prefix convention; milestones get a check mark instead.
type Console struct{}

// Info prints a notice (green, "[INFO]" prefix).
func (Console) Info(msg string) { logger.Info("[INFO] %s\n", msg) }

// Success prints a completed milestone (bold green, check mark).
func (Console) Success(msg string) { logger.Success("%s\n", msg) }

// Warn prints a non-fatal diagnostic (magenta, "[WARN]" prefix).
func (Console) Warn(msg string) { logger.Warn("[WARN] %s\n", msg) }

// Panic prints the terminal failure of a run (red, "[ERROR]" prefix).
func (Console) Panic(msg string) { logger.Error("[ERROR] %s\n", msg) }

// Event is one reported message.
type Event struct {
	Level   Level
	Message string
}

// Recorder keeps every event in order. It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Recorder satisfies Reporter; each method appends one Event.
func (r *Recorder) Info(msg string)    { r.add(LevelInfo, msg) }
func (r *Recorder) Success(msg string) { r.add(LevelSuccess, msg) }
func (r *Recorder) Warn(msg string)    { r.add(LevelWarn, msg) }
func (r *Recorder) Panic(msg string)   { r.add(LevelPanic, msg) }

// add appends an event under the lock so concurrent reporters keep a consistent order.
func (r *Recorder) add(level Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Level: level, Message: msg})
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Messages returns the messages recorded at level, in order.
func (r *Recorder) Messages(level Level) []string {
	var out []string
	for _, e := range r.Events() {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}
