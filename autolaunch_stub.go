//go:build !linux && !darwin && !windows

// Stub backend for platforms without an autostart convention.

package autolaunch

const supported = false

func platformPrepare(a *AutoLaunch) {}

func (a *AutoLaunch) Enable() error { return ErrUnsupportedOS }

func (a *AutoLaunch) Disable() error { return ErrUnsupportedOS }

func (a *AutoLaunch) IsEnabled() (bool, error) { return false, ErrUnsupportedOS }
