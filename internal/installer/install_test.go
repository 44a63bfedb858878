package installer

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"create-starter/internal/pm"
	"create-starter/internal/report"
	"create-starter/internal/runner"
	"create-starter/internal/runner/runnertest"
	"github.com/spf13/afero"
)

const project = "/work/my-site"

func newProject(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for _, f := range []string{"package.json", "yarn.lock", "package-lock.json"} {
		if err := afero.WriteFile(fsys, project+"/"+f, []byte("{}"), 0o644); err != nil {
			t.Fatalf("seed %s: %v", f, err)
		}
	}
	return fsys
}

func exists(t *testing.T, fsys afero.Fs, name string) bool {
	t.Helper()
	ok, err := afero.Exists(fsys, project+"/"+name)
	if err != nil {
		t.Fatalf("stat %s: %v", name, err)
	}
	return ok
}

func TestInstallNPMWithExtras(t *testing.T) {
	fsys := newProject(t)
	run := &runnertest.Recorder{}
	rep := &report.Recorder{}
	inst := &Installer{Runner: run, FS: fsys, Reporter: rep}

	if err := inst.Install(context.Background(), project, pm.NPM, []string{"one-package"}); err != nil {
		t.Fatalf("Install: %v", err)
	}

	if exists(t, fsys, "yarn.lock") {
		t.Error("yarn.lock should be removed for npm")
	}
	if !exists(t, fsys, "package-lock.json") {
		t.Error("package-lock.json should be kept for npm")
	}

	want := []string{
		"npm install --loglevel error --color always",
		"npm install --loglevel error --color always one-package",
	}
	if got := run.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("commands = %q, want %q", got, want)
	}
	for _, c := range run.Calls() {
		if c.Dir != project || c.Stderr != runner.Inherit {
			t.Errorf("command %q: dir %q stderr %v", c, c.Dir, c.Stderr)
		}
	}

	wantEvents := []string{FrameworkInstalled, PluginsInstalled}
	if got := rep.Messages(report.LevelSuccess); !reflect.DeepEqual(got, wantEvents) {
		t.Fatalf("success events = %q, want %q", got, wantEvents)
	}
}

func TestInstallNPMWithoutExtras(t *testing.T) {
	run := &runnertest.Recorder{}
	rep := &report.Recorder{}
	inst := &Installer{Runner: run, FS: newProject(t), Reporter: rep}

	if err := inst.Install(context.Background(), project, pm.NPM, nil); err != nil {
		t.Fatalf("Install: %v", err)
	}
	if got := run.Lines(); len(got) != 1 {
		t.Fatalf("commands = %q, want a single base install", got)
	}
	if got := rep.Messages(report.LevelSuccess); len(got) != 2 {
		t.Fatalf("success events = %q", got)
	}
}

func TestInstallYarn(t *testing.T) {
	tests := []struct {
		name     string
		packages []string
		want     string
	}{
		{"no extras", nil, "yarnpkg --silent"},
		{"extras in the same call", []string{"gatsby-plugin-sitemap", "gatsby-plugin-image"}, "yarnpkg add --silent gatsby-plugin-sitemap gatsby-plugin-image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := newProject(t)
			run := &runnertest.Recorder{}
			rep := &report.Recorder{}
			inst := &Installer{Runner: run, FS: fsys, Reporter: rep}

			if err := inst.Install(context.Background(), project, pm.Yarn, tt.packages); err != nil {
				t.Fatalf("Install: %v", err)
			}

			if exists(t, fsys, "package-lock.json") {
				t.Error("package-lock.json should be removed for yarn")
			}
			if got := run.Lines(); len(got) != 1 || got[0] != tt.want {
				t.Fatalf("commands = %q, want [%q]", got, tt.want)
			}
			if got := rep.Messages(report.LevelSuccess); !reflect.DeepEqual(got, []string{PluginsInstalled}) {
				t.Fatalf("success events = %q", got)
			}
		})
	}
}

func TestInstallMissingLockfileIsFine(t *testing.T) {
	fsys := afero.NewMemMapFs()
	inst := &Installer{Runner: &runnertest.Recorder{}, FS: fsys, Reporter: &report.Recorder{}}

	if err := inst.Install(context.Background(), project, pm.Yarn, nil); err != nil {
		t.Fatalf("Install without lockfiles: %v", err)
	}
}

func TestInstallFailureStops(t *testing.T) {
	run := &runnertest.Recorder{Handler: func(c runner.Command) runner.Outcome {
		return runner.Failure("Command failed with exit code 1: %s", c)
	}}
	rep := &report.Recorder{}
	inst := &Installer{Runner: run, FS: newProject(t), Reporter: rep}

	err := inst.Install(context.Background(), project, pm.NPM, []string{"one-package"})
	if !errors.Is(err, ErrInstallFailed) {
		t.Fatalf("error = %v, want ErrInstallFailed", err)
	}
	if !strings.Contains(err.Error(), "exit code 1") {
		t.Errorf("error %q should carry the command diagnostic", err)
	}
	if n := len(run.Calls()); n != 1 {
		t.Errorf("ran %d commands after failure, want 1", n)
	}
	if got := rep.Events(); len(got) != 0 {
		t.Errorf("unexpected events %v", got)
	}
}

func TestPlanIsStable(t *testing.T) {
	a := Plan(pm.NPM, []string{"x", "y"})
	b := Plan(pm.NPM, []string{"x", "y"})
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("plans differ: %v vs %v", a, b)
	}
	if len(a) != 2 || a[0].Dir != "" {
		t.Fatalf("unexpected plan %v", a)
	}
}
