// Package pm decides which JavaScript package manager installs a project.
package pm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"create-starter/internal/logger"
	"create-starter/internal/report"
	"create-starter/internal/runner"
)

// PreferenceKey is the preference store key holding the chosen manager.
const PreferenceKey = "cli.packageManager"

// YarnFallbackNotice is shown when yarn was requested but cannot be run.
const YarnFallbackNotice = `Woops! You have chosen "yarn" as your package manager, but it doesn't seem be installed on your machine. You can install it from https://yarnpkg.com/getting-started/install or change your preferred package manager with the command "gatsby options set pm npm". As a fallback, we will run the next steps with npm.`

// ErrUnavailable means a requested manager could not be invoked on this host.
var ErrUnavailable = errors.New("package manager unavailable")

// Manager is a supported package manager.
type Manager string

const (
	NPM  Manager = "npm"
	Yarn Manager = "yarn"
)

// Parse validates a user-supplied manager name.
func Parse(s string) (Manager, error) {
	switch Manager(strings.ToLower(strings.TrimSpace(s))) {
	case NPM:
		return NPM, nil
	case Yarn:
		return Yarn, nil
	}
	return "", fmt.Errorf("unknown package manager %q (want npm or yarn)", s)
}

// Lockfile is the lock artifact the manager writes.
func (m Manager) Lockfile() string {
	if m == Yarn {
		return "yarn.lock"
	}
	return "package-lock.json"
}

// Other returns the manager that is not m.
func (m Manager) Other() Manager {
	if m == Yarn {
		return NPM
	}
	return Yarn
}

// RequestsYarn reports whether an npm_config_user_agent style hint comes from yarn,
// e.g. "yarn/1.22.19 npm/? node/v18.17.0 darwin arm64".
func RequestsYarn(hint string) bool {
	hint = strings.ToLower(strings.TrimSpace(hint))
	return hint == "yarn" || strings.HasPrefix(hint, "yarn/")
}

// Selector resolves the manager for one run.
type Selector struct {
	Runner   runner.Runner
	Reporter report.Reporter
}

// Select picks npm or yarn.
// Yarn is requested when either the agent hint or the saved preference asks for it,
// and only chosen when it can actually be invoked; otherwise the fallback notice is
// reported and npm is used. Selection never writes the preference.
func (s *Selector) Select(ctx context.Context, hint, preference string) Manager {
	// An unknown saved value cannot request yarn; say so and carry on
	savedYarn := false
	if preference != "" {
		m, err := Parse(preference)
		if err != nil {
			logger.Warn("[WARN] Ignoring saved preference: %v\n", err)
		}
		savedYarn = m == Yarn
	}

	if !RequestsYarn(hint) && !savedYarn {
		return NPM
	}

	if err := s.CheckYarn(ctx); err != nil {
		logger.Debug("[DEBUG] %v\n", err)
		s.Reporter.Info(YarnFallbackNotice)
		return NPM
	}
	return Yarn
}

// CheckYarn probes for a runnable yarn binary.
func (s *Selector) CheckYarn(ctx context.Context) error {
	out := s.Runner.Run(ctx, runner.Command{
		Name:   "yarnpkg",
		Args:   []string{"--version"},
		Stderr: runner.Discard,
	})
	if !out.OK() {
		return fmt.Errorf("%w: yarn: %s", ErrUnavailable, out.Message)
	}
	logger.Debug("[DEBUG] Found yarn %s\n", strings.TrimSpace(out.Stdout))
	return nil
}
