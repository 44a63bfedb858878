package starter

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSpec means the run was refused before anything was cloned.
	ErrInvalidSpec = errors.New("invalid starter spec")
	// ErrCloneFailed means git could not clone the starter.
	ErrCloneFailed = errors.New("clone failed")
)

// Stage names a step of the initialization pipeline.
type Stage string

const (
	StageValidate Stage = "validate"
	StageClone    Stage = "clone"
	StageManifest Stage = "manifest"
	StageInstall  Stage = "install"
)

// StageError is the terminal failure of a run.
// Message is what the user is told; Cleanup records a failed attempt to undo
// the stage and never replaces the original failure.
type StageError struct {
	Stage   Stage
	Message string
	Err     error
	Cleanup error
}

func (e *StageError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Stage, e.Message)
	if e.Cleanup != nil {
		msg += fmt.Sprintf(" (cleanup: %v)", e.Cleanup)
	}
	return msg
}

// Unwrap exposes both the stage failure and the cleanup failure to errors.Is/As.
func (e *StageError) Unwrap() []error {
	errs := []error{e.Err}
	if e.Cleanup != nil {
		errs = append(errs, e.Cleanup)
	}
	return errs
}
