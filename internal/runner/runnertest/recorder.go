// Package runnertest provides a scripted runner.Runner for tests.
package runnertest

import (
	"context"
	"sync"

	"create-starter/internal/runner"
)

// Recorder records every command it receives and answers with Handler.
// A nil Handler makes every command succeed.
type Recorder struct {
	Handler func(runner.Command) runner.Outcome

	mu    sync.Mutex
	calls []runner.Command
}

// Run records cmd and returns the scripted outcome.
func (r *Recorder) Run(_ context.Context, cmd runner.Command) runner.Outcome {
	r.mu.Lock()
	r.calls = append(r.calls, cmd)
	r.mu.Unlock()

	if r.Handler == nil {
		return runner.Success("")
	}
	return r.Handler(cmd)
}

// Calls returns the recorded commands in invocation order.
func (r *Recorder) Calls() []runner.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]runner.Command(nil), r.calls...)
}

// Lines returns the recorded commands rendered as command lines.
func (r *Recorder) Lines() []string {
	calls := r.Calls()
	lines := make([]string, len(calls))
	for i, c := range calls {
		lines[i] = c.String()
	}
	return lines
}
