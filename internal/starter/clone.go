package starter

import (
	"context"
	"fmt"

	"create-starter/internal/logger"
	"create-starter/internal/runner"
	"github.com/spf13/afero"
)

// CloneArgs are the git arguments used to fetch a starter: shallow, with submodules, quiet.
func CloneArgs(source, destination string) []string {
	return []string{"clone", source, destination, "--recursive", "--depth=1", "--quiet"}
}

// Cloner fetches a starter into a new directory.
type Cloner struct {
	Runner runner.Runner
	FS     afero.Fs
}

// Clone runs git clone. On failure the destination is removed so no partial
// project is left behind; a failed removal is attached to the returned StageError.
func (c *Cloner) Clone(ctx context.Context, source, destination string) error {
	logger.Debug("[DEBUG] Cloning %s into %s\n", source, destination)

	out := c.Runner.Run(ctx, runner.Command{
		Name:   "git",
		Args:   CloneArgs(source, destination),
		Stderr: runner.Capture,
	})
	if out.OK() {
		return nil
	}

	stageErr := &StageError{
		Stage:   StageClone,
		Message: out.Message,
		Err:     fmt.Errorf("%w: %s", ErrCloneFailed, out.Message),
	}
	if err := c.FS.RemoveAll(destination); err != nil {
		stageErr.Cleanup = fmt.Errorf("remove %s: %w", destination, err)
	}
	return stageErr
}
