package autolaunch

import "strings"

// launchCommand joins the executable path and its arguments with single
// spaces. No shell quoting is applied; callers that need quoting must bake
// it into the path or the arguments themselves.
func launchCommand(appPath string, args []string) string {
	if len(args) == 0 {
		return appPath
	}
	return appPath + " " + strings.Join(args, " ")
}
