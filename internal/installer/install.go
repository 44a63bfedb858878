// Package installer installs a freshly cloned project's dependencies with the
// selected package manager.
package installer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"create-starter/internal/logger"
	"create-starter/internal/pm"
	"create-starter/internal/report"
	"create-starter/internal/runner"
	"github.com/spf13/afero"
)

// ErrInstallFailed wraps any failed install invocation.
var ErrInstallFailed = errors.New("install failed")

// Milestones reported to the user.
const (
	FrameworkInstalled = "Installed Gatsby"
	PluginsInstalled   = "Installed plugins"
)

// npmFlags keep npm quiet apart from errors while preserving colored output.
var npmFlags = []string{"--loglevel", "error", "--color", "always"}

// step is one install invocation and the milestone it completes, if any.
type step struct {
	cmd       runner.Command
	milestone string
}

// Installer runs the install commands for a project.
type Installer struct {
	Runner   runner.Runner
	FS       afero.Fs
	Reporter report.Reporter
}

// Plan returns the commands Install runs for manager and packages, in order.
// The commands carry no working directory.
func Plan(manager pm.Manager, packages []string) []runner.Command {
	steps := plan(manager, packages)
	cmds := make([]runner.Command, len(steps))
	for i, s := range steps {
		cmds[i] = s.cmd
	}
	return cmds
}

func plan(manager pm.Manager, packages []string) []step {
	if manager == pm.Yarn {
		// yarn installs the project and the extras in one pass
		args := []string{"--silent"}
		if len(packages) > 0 {
			args = append([]string{"add", "--silent"}, packages...)
		}
		return []step{{cmd: runner.Command{Name: "yarnpkg", Args: args, Stderr: runner.Inherit}}}
	}

	// npm installs the starter's own dependencies first, then the extras in a second call
	steps := []step{{
		cmd:       runner.Command{Name: "npm", Args: npmArgs(nil), Stderr: runner.Inherit},
		milestone: FrameworkInstalled,
	}}
	if len(packages) > 0 {
		steps = append(steps, step{
			cmd: runner.Command{Name: "npm", Args: npmArgs(packages), Stderr: runner.Inherit},
		})
	}
	return steps
}

// npmArgs builds `install <flags> <packages...>` on a fresh slice each time.
func npmArgs(packages []string) []string {
	args := append([]string{"install"}, npmFlags...)
	return append(args, packages...)
}

// Install removes the other manager's lockfile, then installs the project's
// dependencies followed by packages. The first failing invocation stops the install.
func (i *Installer) Install(ctx context.Context, projectPath string, manager pm.Manager, packages []string) error {
	logger.Debug("[DEBUG] Installing %s with %s (extra packages: %v)\n", projectPath, manager, packages)

	// A lockfile from the other manager would pin a conflicting dependency tree
	if err := i.removeLockfile(projectPath, manager.Other().Lockfile()); err != nil {
		return err
	}

	// Run each step inside the project; stop at the first failure
	for _, s := range plan(manager, packages) {
		s.cmd.Dir = projectPath
		out := i.Runner.Run(ctx, s.cmd)
		if !out.OK() {
			// No rollback: the cloned project stays so the user can retry the install
			return fmt.Errorf("%w: %s", ErrInstallFailed, out.Message)
		}
		if s.milestone != "" {
			i.Reporter.Success(s.milestone)
		}
	}

	// Every requested package is in place, whichever manager ran
	i.Reporter.Success(PluginsInstalled)
	return nil
}

// removeLockfile deletes a lockfile left by the manager that is not being used.
func (i *Installer) removeLockfile(projectPath, name string) error {
	path := filepath.Join(projectPath, name)
	err := i.FS.Remove(path)
	if err == nil {
		logger.Debug("[DEBUG] Removed %s\n", path)
		return nil
	}
	// Most starters only ship one lockfile, so absence is the common case
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("%w: remove %s: %v", ErrInstallFailed, name, err)
}
