// Package autolaunch registers an executable to be launched automatically
// when the current user logs into their desktop session, and can query or
// revoke that registration.
//
// Three platforms are supported, each behind the same four operations:
//
//   - Linux: an XDG autostart desktop entry under ~/.config/autostart
//   - macOS: a per-user launch agent plist, or a System Events login item
//   - Windows: the CurrentVersion Run registry keys together with the
//     Task-Manager-managed StartupApproved record
//
// The backend is fixed at build time via build tags; on any other GOOS the
// operations fail with ErrUnsupportedOS.
package autolaunch

import "go.uber.org/zap"

// AutoLaunch is an immutable registration record: the identity of one
// startup entry plus the platform flags that shape how it is persisted.
// All operations read the record and mutate only the OS store beneath it.
type AutoLaunch struct {
	appName string
	appPath string
	args    []string
	hidden  bool

	// macOS
	useLaunchAgent    bool
	bundleIdentifiers []string
	agentExtraConfig  string
	runner            ScriptRunner

	// Windows
	enableMode EnableMode

	logger *zap.Logger
}

// Options collects the fields of a registration record for direct
// construction. Builder is the fluent alternative.
type Options struct {
	// AppName identifies the registration in the underlying store.
	// Required.
	AppName string

	// AppPath is the absolute path to the executable or .app bundle.
	// Required. Existence is checked by Enable, not at construction.
	AppPath string

	// Args are appended to the launch command (Linux, Windows, and the
	// macOS launch-agent mode).
	Args []string

	// Hidden appends a --hidden launch flag (Linux, macOS).
	Hidden bool

	// UseLaunchAgent selects the launch-agent persistence on macOS
	// instead of the System Events login item.
	UseLaunchAgent bool

	// BundleIdentifiers populates the AssociatedBundleIdentifiers array
	// of the launch-agent plist.
	BundleIdentifiers []string

	// AgentExtraConfig is appended verbatim inside the plist dict.
	AgentExtraConfig string

	// EnableMode selects the Windows registry hive.
	EnableMode EnableMode

	// ScriptRunner overrides the AppleScript collaborator. Defaults to
	// an osascript subprocess runner on macOS.
	ScriptRunner ScriptRunner

	// Logger receives operation events. Defaults to a no-op logger.
	Logger *zap.Logger
}

// New validates the required fields and produces a registration record.
//
// On macOS, when UseLaunchAgent is false, the effective app name is derived
// from AppPath (its basename with a trailing ".app" stripped) because the
// login-items database keys entries by the target's own name; AppName then
// reports the derived value.
func New(opts Options) (*AutoLaunch, error) {
	if opts.AppName == "" {
		return nil, missingField("app name")
	}
	if opts.AppPath == "" {
		return nil, missingField("app path")
	}

	a := &AutoLaunch{
		appName:           opts.AppName,
		appPath:           opts.AppPath,
		args:              append([]string(nil), opts.Args...),
		hidden:            opts.Hidden,
		useLaunchAgent:    opts.UseLaunchAgent,
		bundleIdentifiers: append([]string(nil), opts.BundleIdentifiers...),
		agentExtraConfig:  opts.AgentExtraConfig,
		enableMode:        opts.EnableMode,
		runner:            opts.ScriptRunner,
		logger:            opts.Logger,
	}
	if a.logger == nil {
		a.logger = zap.NewNop()
	}
	platformPrepare(a)
	return a, nil
}

// IsSupported reports whether the host platform has a backend.
func IsSupported() bool { return supported }

// AppName returns the effective registration name.
func (a *AutoLaunch) AppName() string { return a.appName }

// AppPath returns the registered executable path.
func (a *AutoLaunch) AppPath() string { return a.appPath }

// Args returns a copy of the launch arguments.
func (a *AutoLaunch) Args() []string {
	return append([]string(nil), a.args...)
}

// IsHidden reports whether the entry launches with the --hidden flag.
func (a *AutoLaunch) IsHidden() bool { return a.hidden }

// Mode returns the Windows enable mode.
func (a *AutoLaunch) Mode() EnableMode { return a.enableMode }
