package autolaunch

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// ScriptRunner evaluates an AppleScript program and reports its standard
// output and exit status. A non-nil error means the runner itself could not
// execute the script; a non-zero exit status is reported via exitCode.
//
// The default runner shells out to osascript. Tests and embedders may
// substitute their own via Builder.SetScriptRunner.
type ScriptRunner interface {
	Run(script string) (stdout []byte, exitCode int, err error)
}

// runSystemEvents wraps the statement in a System Events tell block and
// evaluates it, converting a non-zero exit into a *ScriptError.
func runSystemEvents(r ScriptRunner, stmt string) ([]byte, error) {
	out, code, err := r.Run(`tell application "System Events" to ` + stmt)
	if err != nil {
		return nil, fmt.Errorf("running script: %w", err)
	}
	if code != 0 {
		return out, &ScriptError{ExitCode: code}
	}
	return out, nil
}

// addLoginItem appends the app to the user's login items.
func addLoginItem(r ScriptRunner, name, appPath string, hidden bool) error {
	stmt := fmt.Sprintf(
		"make login item at end with properties {name:%q, path:%q, hidden:%t}",
		name, appPath, hidden,
	)
	_, err := runSystemEvents(r, stmt)
	return err
}

// deleteLoginItem removes the named entry from the user's login items.
func deleteLoginItem(r ScriptRunner, name string) error {
	_, err := runSystemEvents(r, fmt.Sprintf("delete login item %q", name))
	return err
}

// loginItemPresent reports whether the named entry appears in the login
// items list. System Events prints the names comma-separated; anything that
// does not match after trimming counts as not present, and a failed listing
// reports not present rather than erroring.
func loginItemPresent(r ScriptRunner, name string) (bool, error) {
	out, err := runSystemEvents(r, "get the name of every login item")
	if err != nil {
		var scriptErr *ScriptError
		if errors.As(err, &scriptErr) {
			return false, nil
		}
		return false, err
	}
	for _, item := range strings.Split(string(out), ",") {
		if strings.TrimSpace(item) == name {
			return true, nil
		}
	}
	return false, nil
}

// loginItemName derives the name System Events uses for a login item: the
// final path component with a trailing ".app" stripped.
func loginItemName(appPath string) string {
	return strings.TrimSuffix(path.Base(appPath), ".app")
}
