//go:build linux

package autolaunch

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const supported = true

func platformPrepare(a *AutoLaunch) {}

// desktopFilePath returns ~/.config/autostart/<name>.desktop.
func (a *AutoLaunch) desktopFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "autostart", a.appName+".desktop"), nil
}

// Enable writes the XDG autostart desktop entry, creating the autostart
// directory if needed and overwriting any existing entry.
func (a *AutoLaunch) Enable() error {
	file, err := a.desktopFilePath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(file)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.Mkdir(dir, 0755); err != nil {
			return fmt.Errorf("creating autostart directory: %w", err)
		}
	}
	if err := os.WriteFile(file, []byte(a.desktopEntry()), 0644); err != nil {
		return fmt.Errorf("writing desktop entry: %w", err)
	}
	a.logger.Debug("wrote autostart desktop entry",
		zap.String("app", a.appName),
		zap.String("file", file))
	return nil
}

// Disable removes the desktop entry. A missing entry counts as success.
func (a *AutoLaunch) Disable() error {
	file, err := a.desktopFilePath()
	if err != nil {
		return err
	}
	if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing desktop entry: %w", err)
	}
	a.logger.Debug("removed autostart desktop entry", zap.String("app", a.appName))
	return nil
}

// IsEnabled reports whether the desktop entry exists.
func (a *AutoLaunch) IsEnabled() (bool, error) {
	file, err := a.desktopFilePath()
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(file); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("checking desktop entry: %w", err)
	}
	return true, nil
}
