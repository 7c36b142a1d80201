//go:build windows

package autolaunch

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const supported = true

func platformPrepare(a *AutoLaunch) {}

// The four registry locations. Startup commands live under the hive's Run
// key; the paired StartupApproved key carries the Task Manager override.
// The machine-wide Run key is the WOW6432Node one, whose override records
// Task Manager keeps under StartupApproved\Run32.
const (
	userRunPath         = `SOFTWARE\Microsoft\Windows\CurrentVersion\Run`
	userApprovedPath    = `SOFTWARE\Microsoft\Windows\CurrentVersion\Explorer\StartupApproved\Run`
	machineRunPath      = `SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Run`
	machineApprovedPath = `SOFTWARE\Microsoft\Windows\CurrentVersion\Explorer\StartupApproved\Run32`
)

var (
	machineStore = regStore{registry.LOCAL_MACHINE, machineRunPath, machineApprovedPath}
	userStore    = regStore{registry.CURRENT_USER, userRunPath, userApprovedPath}
)

// regStore is the registry-backed runKeyStore for one hive.
type regStore struct {
	root         registry.Key
	runPath      string
	approvedPath string
}

// wrapRegistryErr maps raw registry failures onto the package's typed
// kinds so the hive-selection logic can branch on them.
func wrapRegistryErr(op string, err error) error {
	switch {
	case errors.Is(err, registry.ErrNotExist):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, windows.ERROR_ACCESS_DENIED):
		return fmt.Errorf("%s: %w", op, ErrAccessDenied)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (s regStore) SetCommand(name, command string) error {
	k, _, err := registry.CreateKey(s.root, s.runPath, registry.SET_VALUE)
	if err != nil {
		return wrapRegistryErr("opening Run key", err)
	}
	defer k.Close()
	if err := k.SetStringValue(name, command); err != nil {
		return wrapRegistryErr("setting Run value", err)
	}
	return nil
}

func (s regStore) Command(name string) (string, error) {
	k, err := registry.OpenKey(s.root, s.runPath, registry.QUERY_VALUE)
	if err != nil {
		return "", wrapRegistryErr("opening Run key", err)
	}
	defer k.Close()
	v, _, err := k.GetStringValue(name)
	if err != nil {
		return "", wrapRegistryErr("reading Run value", err)
	}
	return v, nil
}

func (s regStore) DeleteCommand(name string) error {
	k, err := registry.OpenKey(s.root, s.runPath, registry.SET_VALUE)
	if err != nil {
		return wrapRegistryErr("opening Run key", err)
	}
	defer k.Close()
	if err := k.DeleteValue(name); err != nil {
		return wrapRegistryErr("deleting Run value", err)
	}
	return nil
}

func (s regStore) SetApproved(name string, data []byte) error {
	// Opened, not created: a hive without the StartupApproved key is an
	// older Windows and the caller treats the ErrNotFound as success.
	k, err := registry.OpenKey(s.root, s.approvedPath, registry.SET_VALUE)
	if err != nil {
		return wrapRegistryErr("opening StartupApproved key", err)
	}
	defer k.Close()
	if err := k.SetBinaryValue(name, data); err != nil {
		return wrapRegistryErr("setting StartupApproved value", err)
	}
	return nil
}

func (s regStore) Approved(name string) ([]byte, error) {
	k, err := registry.OpenKey(s.root, s.approvedPath, registry.QUERY_VALUE)
	if err != nil {
		return nil, wrapRegistryErr("opening StartupApproved key", err)
	}
	defer k.Close()
	v, _, err := k.GetBinaryValue(name)
	if err != nil {
		return nil, wrapRegistryErr("reading StartupApproved value", err)
	}
	return v, nil
}

// Enable registers the launch command in the hive selected by the record's
// enable mode and clears any Task Manager override. DynamicMode falls back
// to the current-user hive when the machine hive denies the write.
func (a *AutoLaunch) Enable() error {
	command := launchCommand(a.appPath, a.args)
	if err := enableStartup(machineStore, userStore, a.enableMode, a.appName, command); err != nil {
		return err
	}
	a.logger.Debug("registered startup entry",
		zap.String("app", a.appName),
		zap.Stringer("mode", a.enableMode))
	return nil
}

// Disable deletes the Run value per the record's enable mode. A value that
// was never registered counts as success.
func (a *AutoLaunch) Disable() error {
	if err := disableStartup(machineStore, userStore, a.enableMode, a.appName); err != nil {
		return err
	}
	a.logger.Debug("unregistered startup entry",
		zap.String("app", a.appName),
		zap.Stringer("mode", a.enableMode))
	return nil
}

// IsEnabled reports whether the entry is registered and not disabled from
// the Task Manager Startup pane.
func (a *AutoLaunch) IsEnabled() (bool, error) {
	return startupEnabled(machineStore, userStore, a.enableMode, a.appName)
}
