//go:build darwin

package autolaunch

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"go.uber.org/zap"
)

const supported = true

func platformPrepare(a *AutoLaunch) {
	if !a.useLaunchAgent {
		// The login-items database keys entries by the target's own
		// name, so the caller-supplied name is replaced.
		a.appName = loginItemName(a.appPath)
	}
	if a.runner == nil {
		a.runner = osaScriptRunner{}
	}
}

// osaScriptRunner evaluates AppleScript through the osascript interpreter.
type osaScriptRunner struct{}

func (osaScriptRunner) Run(script string) ([]byte, int, error) {
	cmd := exec.Command("osascript", "-e", script)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.Bytes(), exitErr.ExitCode(), nil
		}
		return nil, 0, err
	}
	return stdout.Bytes(), 0, nil
}

// checkAppPath rejects relative or non-existent targets before touching the
// login items or writing an agent.
func (a *AutoLaunch) checkAppPath() error {
	if !filepath.IsAbs(a.appPath) {
		return ErrInvalidAppPath
	}
	if _, err := os.Stat(a.appPath); err != nil {
		if os.IsNotExist(err) {
			return ErrInvalidAppPath
		}
		return fmt.Errorf("checking app path: %w", err)
	}
	return nil
}

// agentPlistPath returns ~/Library/LaunchAgents/<name>.plist.
func (a *AutoLaunch) agentPlistPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, "Library", "LaunchAgents", a.appName+".plist"), nil
}

// Enable registers the record, either as a launch agent plist or as a
// System Events login item.
func (a *AutoLaunch) Enable() error {
	if err := a.checkAppPath(); err != nil {
		return err
	}
	if a.useLaunchAgent {
		file, err := a.agentPlistPath()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
			return fmt.Errorf("creating LaunchAgents directory: %w", err)
		}
		if err := os.WriteFile(file, []byte(a.launchAgentPlist()), 0644); err != nil {
			return fmt.Errorf("writing agent plist: %w", err)
		}
		a.logger.Debug("wrote launch agent", zap.String("app", a.appName), zap.String("file", file))
		return nil
	}
	if err := addLoginItem(a.runner, a.appName, a.appPath, a.hidden); err != nil {
		return err
	}
	a.logger.Debug("added login item", zap.String("app", a.appName))
	return nil
}

// Disable removes the agent plist or deletes the login item. A missing
// plist counts as success.
func (a *AutoLaunch) Disable() error {
	if a.useLaunchAgent {
		file, err := a.agentPlistPath()
		if err != nil {
			return err
		}
		if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing agent plist: %w", err)
		}
		a.logger.Debug("removed launch agent", zap.String("app", a.appName))
		return nil
	}
	if err := deleteLoginItem(a.runner, a.appName); err != nil {
		return err
	}
	a.logger.Debug("deleted login item", zap.String("app", a.appName))
	return nil
}

// IsEnabled reports whether the agent plist exists or, in login-item mode,
// whether the name appears in the login items list.
func (a *AutoLaunch) IsEnabled() (bool, error) {
	if a.useLaunchAgent {
		file, err := a.agentPlistPath()
		if err != nil {
			return false, err
		}
		if _, err := os.Stat(file); err != nil {
			if os.IsNotExist(err) {
				return false, nil
			}
			return false, fmt.Errorf("checking agent plist: %w", err)
		}
		return true, nil
	}
	return loginItemPresent(a.runner, a.appName)
}
