// Package runner invokes external executables and turns every result into an
// Outcome instead of an error, so callers decide how a failure is reported.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"create-starter/internal/logger"
)

// Stream selects what happens to a command's stderr.
type Stream int

const (
	// Capture buffers stderr and appends it to a failure message.
	Capture Stream = iota
	// Inherit streams stderr straight through to the user.
	Inherit
	// Discard drops stderr.
	Discard
)

// Command describes one external invocation.
type Command struct {
	Name   string
	Args   []string
	Dir    string // working directory (optional)
	Stderr Stream
}

// String renders the command line the way a user would type it.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Outcome is the pass/fail result of a command.
// The zero value is a success with no output.
type Outcome struct {
	Failed  bool
	Message string // diagnostic for a failure
	Stdout  string
}

// OK reports whether the command succeeded.
func (o Outcome) OK() bool {
	return !o.Failed
}

// Success builds a passing Outcome.
func Success(stdout string) Outcome {
	return Outcome{Stdout: stdout}
}

// Failure builds a failing Outcome with the given diagnostic.
func Failure(format string, a ...any) Outcome {
	return Outcome{Failed: true, Message: fmt.Sprintf(format, a...)}
}

// Runner is the interface for running external commands.
// Implementations never return errors; all results are Outcomes.
type Runner interface {
	Run(ctx context.Context, cmd Command) Outcome
}

// Exec is the production Runner using os/exec.
type Exec struct {
	// Stderr receives inherited stderr. Defaults to os.Stderr.
	Stderr io.Writer
}

// NewExec creates an Exec that streams inherited stderr to the process stderr.
func NewExec() *Exec {
	return &Exec{Stderr: os.Stderr}
}

// Run executes the command, waits for it, and describes the result.
func (e *Exec) Run(ctx context.Context, c Command) Outcome {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	switch c.Stderr {
	case Inherit:
		cmd.Stderr = e.stderr()
	case Discard:
		// nil Stderr is connected to the null device
	default:
		cmd.Stderr = &stderr
	}

	logger.Debug("[DEBUG] Running command: %s (dir %q)\n", c, c.Dir)
	err := cmd.Run()
	if err == nil {
		return Success(stdout.String())
	}

	out := Outcome{Failed: true, Stdout: stdout.String()}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out.Message = fmt.Sprintf("Command failed with exit code %d: %s", exitErr.ExitCode(), c)
	} else {
		// The process never ran: binary missing, bad dir, canceled context
		out.Message = fmt.Sprintf("Command failed: %s: %v", c, err)
	}
	if detail := strings.TrimSpace(stderr.String()); detail != "" {
		out.Message += "\n" + detail
	}

	logger.Debug("[DEBUG] %s\n", out.Message)
	return out
}

func (e *Exec) stderr() io.Writer {
	if e.Stderr == nil {
		return os.Stderr
	}
	return e.Stderr
}
