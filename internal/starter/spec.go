package starter

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Spec is the caller's request for one project.
type Spec struct {
	Source      string   // git URL or path of the starter
	Destination string   // directory to create
	Packages    []string // extra packages installed after the starter's own dependencies
}

// Validate checks the spec against the filesystem and returns the absolute
// destination. An existing destination must be an empty directory, since a
// failed clone removes it.
func (s Spec) Validate(fsys afero.Fs) (string, error) {
	// The source is handed to git as a positional argument, so it must not look like an option
	if strings.TrimSpace(s.Source) == "" {
		return "", fmt.Errorf("%w: starter source is empty", ErrInvalidSpec)
	}
	if strings.HasPrefix(strings.TrimSpace(s.Source), "-") {
		return "", fmt.Errorf("%w: starter source %q looks like a command-line option", ErrInvalidSpec, s.Source)
	}
	if strings.TrimSpace(s.Destination) == "" {
		return "", fmt.Errorf("%w: destination is empty", ErrInvalidSpec)
	}

	// Extra packages end up on the npm/yarn command line for the same reason
	for _, p := range s.Packages {
		if strings.TrimSpace(p) == "" || strings.HasPrefix(p, "-") {
			return "", fmt.Errorf("%w: invalid package name %q", ErrInvalidSpec, p)
		}
	}

	// Resolve once; every later stage works on this absolute path
	dest, err := filepath.Abs(s.Destination)
	if err != nil {
		return "", fmt.Errorf("%w: resolve %s: %v", ErrInvalidSpec, s.Destination, err)
	}

	info, err := fsys.Stat(dest)
	if errors.Is(err, fs.ErrNotExist) {
		// Not there yet: git creates it
		return dest, nil
	}
	if err != nil {
		// Permission problems and the like: we cannot tell whether it is safe to clone here
		return "", fmt.Errorf("%w: inspect %s: %v", ErrInvalidSpec, dest, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s exists and is not a directory", ErrInvalidSpec, dest)
	}

	// An empty directory is fine; anything else could be the user's work
	empty, err := afero.IsEmpty(fsys, dest)
	if err != nil {
		return "", fmt.Errorf("%w: inspect %s: %v", ErrInvalidSpec, dest, err)
	}
	if !empty {
		return "", fmt.Errorf("%w: %s already exists and is not empty", ErrInvalidSpec, dest)
	}
	return dest, nil
}
