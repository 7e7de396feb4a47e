package sferd

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := generator.Generate(config)
//	if errors.Is(err, sferd.ErrNoObjects) {
//	    // Nothing to diagram; not a crash
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrObjectsPathNotFound indicates the metadata root directory does not
	// exist. This aborts the whole run.
	ErrObjectsPathNotFound = errors.New("objects path not found")

	// ErrNoObjects indicates the load produced zero objects. This is a
	// "nothing to do" outcome, not a crash.
	ErrNoObjects = errors.New("no objects found")

	// ErrRenderFailed indicates image rendering failed for every requested
	// format. The DOT output is still written.
	ErrRenderFailed = errors.New("render failed")

	// ErrRendererNotFound indicates the external layout binary is not
	// installed or not on PATH.
	ErrRendererNotFound = errors.New("renderer not found")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrObjectsPathNotFound):
		return ExitObjectsPathMissing
	case errors.Is(err, ErrNoObjects):
		return ExitNoObjects
	case errors.Is(err, ErrRendererNotFound):
		return ExitRenderFailed
	case errors.Is(err, ErrRenderFailed):
		return ExitRenderFailed
	}

	// Cobra reports flag and argument misuse as plain errors; classify the
	// common message shapes as usage errors.
	errStr := err.Error()
	if strings.HasPrefix(errStr, "unknown flag") ||
		strings.HasPrefix(errStr, "unknown shorthand flag") ||
		strings.HasPrefix(errStr, "unknown command") ||
		strings.HasPrefix(errStr, "invalid argument") ||
		strings.HasPrefix(errStr, "required flag") ||
		strings.Contains(errStr, "arg(s), received") {
		return ExitUsageError
	}

	return ExitGeneralError
}
