package autolaunch

import "go.uber.org/zap"

// Builder assembles a registration record field by field. All setters
// return the builder for chaining; Build performs the required-field
// validation.
//
//	record, err := autolaunch.NewBuilder().
//		SetAppName("demo").
//		SetAppPath("/opt/demo/demo").
//		SetArgs([]string{"--minimized"}).
//		Build()
type Builder struct {
	opts Options
}

// NewBuilder returns an empty builder. Unset fields keep their platform
// defaults: no args, not hidden, login-item mode on macOS, DynamicMode on
// Windows.
func NewBuilder() *Builder { return &Builder{} }

// SetAppName sets the registration name.
func (b *Builder) SetAppName(name string) *Builder {
	b.opts.AppName = name
	return b
}

// SetAppPath sets the absolute path of the executable or .app bundle.
func (b *Builder) SetAppPath(path string) *Builder {
	b.opts.AppPath = path
	return b
}

// SetArgs sets the launch arguments.
func (b *Builder) SetArgs(args []string) *Builder {
	b.opts.Args = args
	return b
}

// SetHidden controls the --hidden launch flag (Linux, macOS).
func (b *Builder) SetHidden(hidden bool) *Builder {
	b.opts.Hidden = hidden
	return b
}

// SetUseLaunchAgent selects launch-agent persistence on macOS.
func (b *Builder) SetUseLaunchAgent(use bool) *Builder {
	b.opts.UseLaunchAgent = use
	return b
}

// SetBundleIdentifiers sets the AssociatedBundleIdentifiers of the
// launch-agent plist.
func (b *Builder) SetBundleIdentifiers(ids []string) *Builder {
	b.opts.BundleIdentifiers = ids
	return b
}

// SetAgentExtraConfig appends a verbatim fragment inside the plist dict.
func (b *Builder) SetAgentExtraConfig(fragment string) *Builder {
	b.opts.AgentExtraConfig = fragment
	return b
}

// SetEnableMode selects the Windows registry hive.
func (b *Builder) SetEnableMode(mode EnableMode) *Builder {
	b.opts.EnableMode = mode
	return b
}

// SetScriptRunner overrides the AppleScript collaborator.
func (b *Builder) SetScriptRunner(r ScriptRunner) *Builder {
	b.opts.ScriptRunner = r
	return b
}

// SetLogger attaches a logger for operation events.
func (b *Builder) SetLogger(logger *zap.Logger) *Builder {
	b.opts.Logger = logger
	return b
}

// Build produces the registration record. It fails with ErrMissingField
// when the app name or app path is unset; it does not check that the path
// exists (Enable does).
func (b *Builder) Build() (*AutoLaunch, error) {
	return New(b.opts)
}
