// Package starter creates a project from a starter repository: clone, rewrite
// the manifest, pick a package manager, install.
package starter

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"create-starter/internal/installer"
	"create-starter/internal/logger"
	"create-starter/internal/manifest"
	"create-starter/internal/pm"
	"create-starter/internal/prefs"
	"create-starter/internal/report"
	"create-starter/internal/runner"
	"github.com/spf13/afero"
)

// CreatedFromTemplate is reported once the starter has been cloned.
const CreatedFromTemplate = "Created site from template"

// Options tunes a Starter.
type Options struct {
	// PackageManagerHint is the launching agent, as found in npm_config_user_agent.
	PackageManagerHint string
	Manifest           manifest.Options
	// SetAuthor fills the manifest author from `git config user.name`.
	SetAuthor bool
	// GitInit commits the new project into a fresh repository after install.
	GitInit bool
}

// Starter runs the initialization pipeline. One Starter may serve several runs
// in sequence; it keeps no per-run state.
type Starter struct {
	runner   runner.Runner
	fs       afero.Fs
	reporter report.Reporter
	prefs    prefs.Store
	opts     Options

	cloner    *Cloner
	selector  *pm.Selector
	installer *installer.Installer
}

// New wires a Starter from its collaborators.
func New(run runner.Runner, fsys afero.Fs, rep report.Reporter, store prefs.Store, opts Options) *Starter {
	return &Starter{
		runner:    run,
		fs:        fsys,
		reporter:  rep,
		prefs:     store,
		opts:      opts,
		cloner:    &Cloner{Runner: run, FS: fsys},
		selector:  &pm.Selector{Runner: run, Reporter: rep},
		installer: &installer.Installer{Runner: run, FS: fsys, Reporter: rep},
	}
}

// Init creates the project described by spec.
// Stages run strictly in order and the first failure ends the run with a single
// Panic report. Everything after the clone works on the absolute destination
// path; the process working directory is left alone.
func (s *Starter) Init(ctx context.Context, spec Spec) error {
	// Start: refuse the run before touching the filesystem or network
	sitePath, err := spec.Validate(s.fs)
	if err != nil {
		return s.fail(&StageError{Stage: StageValidate, Message: err.Error(), Err: err})
	}

	// Cloning: the cloner has already removed any partial directory on failure
	if err := s.cloner.Clone(ctx, spec.Source, sitePath); err != nil {
		var stageErr *StageError
		if errors.As(err, &stageErr) {
			return s.fail(stageErr)
		}
		return s.fail(&StageError{Stage: StageClone, Message: err.Error(), Err: err})
	}
	s.reporter.Success(CreatedFromTemplate)
	s.detachHistory(sitePath)

	opts := s.opts.Manifest
	if s.opts.SetAuthor {
		opts.Author = s.gitAuthor(ctx, sitePath)
		if opts.Author == "" {
			// No git user: the starter's author does not belong to the new project either
			opts.StripFields = append(append([]string(nil), opts.StripFields...), "author")
		}
	}
	if _, err := manifest.Rewrite(s.fs, sitePath, filepath.Base(sitePath), opts); err != nil {
		return s.fail(&StageError{Stage: StageManifest, Message: err.Error(), Err: err})
	}

	// SelectManager: read-only use of the saved preference
	preference, _ := s.prefs.Get(pm.PreferenceKey)
	manager := s.selector.Select(ctx, s.opts.PackageManagerHint, preference)
	logger.Debug("[DEBUG] Using %s for %s\n", manager, sitePath)

	// Installing: failure is terminal but leaves the project in place
	if err := s.installer.Install(ctx, sitePath, manager, spec.Packages); err != nil {
		return s.fail(&StageError{Stage: StageInstall, Message: err.Error(), Err: err})
	}

	if s.opts.GitInit {
		s.gitInit(ctx, sitePath, spec.Source)
	}
	return nil
}

// fail reports the terminal failure. A cleanup problem is surfaced first as a
// diagnostic so the Panic stays the last event of the run.
func (s *Starter) fail(err *StageError) error {
	if err.Cleanup != nil {
		s.reporter.Warn(fmt.Sprintf("Could not clean up after failed %s: %v", err.Stage, err.Cleanup))
	}
	s.reporter.Panic(err.Message)
	return err
}

// detachHistory drops the starter's .git directory so the project starts without its history.
func (s *Starter) detachHistory(sitePath string) {
	gitDir := filepath.Join(sitePath, ".git")
	if err := s.fs.RemoveAll(gitDir); err != nil {
		s.reporter.Warn(fmt.Sprintf("Could not remove starter history %s: %v", gitDir, err))
	}
}
