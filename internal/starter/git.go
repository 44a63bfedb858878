package starter

import (
	"context"
	"fmt"
	"strings"

	"create-starter/internal/logger"
	"create-starter/internal/runner"
)

// gitAuthor returns the configured git user name, or "" when git has none.
func (s *Starter) gitAuthor(ctx context.Context, sitePath string) string {
	out := s.runner.Run(ctx, runner.Command{
		Name:   "git",
		Args:   []string{"config", "user.name"},
		Dir:    sitePath,
		Stderr: runner.Discard,
	})
	if !out.OK() {
		logger.Debug("[DEBUG] No git author: %s\n", out.Message)
		return ""
	}
	return strings.TrimSpace(out.Stdout)
}

// InitialCommitMessage is the message of the first commit in a new project.
func InitialCommitMessage(source string) string {
	return fmt.Sprintf("Initial commit from create-starter: (%s)", source)
}

// gitInit puts the installed project under version control.
// Failures are diagnostics only: the project itself is already usable.
func (s *Starter) gitInit(ctx context.Context, sitePath, source string) {
	steps := [][]string{
		{"init"},
		{"add", "-A"},
		{"commit", "-m", InitialCommitMessage(source)},
	}
	for _, args := range steps {
		out := s.runner.Run(ctx, runner.Command{Name: "git", Args: args, Dir: sitePath, Stderr: runner.Capture})
		if !out.OK() {
			s.reporter.Warn(fmt.Sprintf("Could not initialize git repository: %s", out.Message))
			return
		}
	}
	logger.Debug("[DEBUG] Initialized git repository in %s\n", sitePath)
}
