package autolaunch

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the builder and the platform backends.
// Callers match them with errors.Is.
var (
	// ErrMissingField is returned by Build/New when a required record
	// field was not set. The wrapping error names the field.
	ErrMissingField = errors.New("autolaunch: missing required field")

	// ErrInvalidAppPath is returned by the macOS backend when the
	// application path is not absolute or does not exist.
	ErrInvalidAppPath = errors.New("autolaunch: app path must be an absolute path to an existing file")

	// ErrAccessDenied marks a registry operation rejected for lack of
	// rights. DynamicMode uses it to fall back to the user hive.
	ErrAccessDenied = errors.New("autolaunch: access denied")

	// ErrNotFound marks a missing registry key or value. Disable and
	// IsEnabled recover from it locally.
	ErrNotFound = errors.New("autolaunch: entry not found")

	// ErrUnsupportedOS is returned by all operations on platforms without
	// a backend.
	ErrUnsupportedOS = errors.New("autolaunch: unsupported operating system")
)

// ScriptError reports a non-zero exit status from the AppleScript runner.
type ScriptError struct {
	ExitCode int
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("autolaunch: script runner exited with code %d", e.ExitCode)
}

func missingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}
