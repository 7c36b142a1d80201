package autolaunch

import "strings"

// desktopEntryTemplate is the XDG autostart entry written on Linux.
// The placeholders {name} and {exec} are replaced per record.
const desktopEntryTemplate = `[Desktop Entry]
Type=Application
Version=1.0
Name={name}
Comment={name}startup script
Exec={exec}
StartupNotify=false
Terminal=false`

// desktopEntry renders the autostart desktop entry for the record.
func (a *AutoLaunch) desktopEntry() string {
	exec := launchCommand(a.appPath, a.args)
	if a.hidden {
		exec += " --hidden"
	}
	entry := strings.ReplaceAll(desktopEntryTemplate, "{name}", a.appName)
	return strings.ReplaceAll(entry, "{exec}", exec)
}
