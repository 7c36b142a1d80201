package autolaunch

import (
	"fmt"
	"strings"
)

const plistHeader = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">`

// launchAgentPlist renders the property list written to the user's
// LaunchAgents directory. The program arguments start with the app path,
// followed by the record's args and, when hidden, a trailing --hidden.
func (a *AutoLaunch) launchAgentPlist() string {
	programArgs := append([]string{a.appPath}, a.args...)
	if a.hidden {
		programArgs = append(programArgs, "--hidden")
	}

	var b strings.Builder
	b.WriteString(plistHeader)
	b.WriteString("\n<plist version=\"1.0\">\n<dict>\n")
	fmt.Fprintf(&b, "    <key>Label</key>\n    <string>%s</string>\n", a.appName)
	b.WriteString("    <key>ProgramArguments</key>\n    <array>\n")
	for _, arg := range programArgs {
		fmt.Fprintf(&b, "        <string>%s</string>\n", arg)
	}
	b.WriteString("    </array>\n")
	b.WriteString("    <key>RunAtLoad</key>\n    <true/>\n")
	if len(a.bundleIdentifiers) > 0 {
		b.WriteString("    <key>AssociatedBundleIdentifiers</key>\n    <array>\n")
		for _, id := range a.bundleIdentifiers {
			fmt.Fprintf(&b, "        <string>%s</string>\n", id)
		}
		b.WriteString("    </array>\n")
	}
	if a.agentExtraConfig != "" {
		b.WriteString("    ")
		b.WriteString(a.agentExtraConfig)
		b.WriteString("\n")
	}
	b.WriteString("</dict>\n</plist>\n")
	return b.String()
}
