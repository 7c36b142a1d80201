package autolaunch

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLaunchAgentPlist(t *testing.T) {
	a := &AutoLaunch{
		appName: "demo",
		appPath: "/Applications/Calc.app",
		args:    []string{"--minimized"},
	}
	plist := a.launchAgentPlist()

	if !strings.HasPrefix(plist, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Error("missing XML declaration")
	}
	if !strings.Contains(plist, `"-//Apple//DTD PLIST 1.0//EN"`) {
		t.Error("missing PropertyList DOCTYPE")
	}
	if !strings.Contains(plist, "<key>Label</key>\n    <string>demo</string>") {
		t.Error("missing Label")
	}
	if !strings.Contains(plist, "<key>RunAtLoad</key>\n    <true/>") {
		t.Error("missing RunAtLoad")
	}

	// The app path must be the first ProgramArguments entry.
	argsIdx := strings.Index(plist, "<key>ProgramArguments</key>")
	firstString := strings.Index(plist[argsIdx:], "<string>")
	got := plist[argsIdx+firstString:]
	if !strings.HasPrefix(got, "<string>/Applications/Calc.app</string>") {
		t.Errorf("first ProgramArguments entry is not the app path:\n%s", plist)
	}
}

func TestLaunchAgentPlistHidden(t *testing.T) {
	a := &AutoLaunch{
		appName: "demo",
		appPath: "/Applications/Calc.app",
		hidden:  true,
	}
	plist := a.launchAgentPlist()
	want := "<string>/Applications/Calc.app</string>\n        <string>--hidden</string>"
	if !strings.Contains(plist, want) {
		t.Errorf("ProgramArguments missing --hidden after the app path:\n%s", plist)
	}
}

func TestLaunchAgentPlistBundleIdentifiers(t *testing.T) {
	a := &AutoLaunch{
		appName:           "demo",
		appPath:           "/Applications/Calc.app",
		bundleIdentifiers: []string{"com.example.calc", "com.example.calc.helper"},
	}
	plist := a.launchAgentPlist()
	if !strings.Contains(plist, "<key>AssociatedBundleIdentifiers</key>") {
		t.Fatal("missing AssociatedBundleIdentifiers")
	}
	if !strings.Contains(plist, "<string>com.example.calc.helper</string>") {
		t.Error("missing bundle identifier entry")
	}

	// Absent when not configured.
	b := &AutoLaunch{appName: "demo", appPath: "/Applications/Calc.app"}
	if strings.Contains(b.launchAgentPlist(), "AssociatedBundleIdentifiers") {
		t.Error("AssociatedBundleIdentifiers rendered without identifiers")
	}
}

func TestLaunchAgentPlistExtraConfig(t *testing.T) {
	a := &AutoLaunch{
		appName:          "demo",
		appPath:          "/Applications/Calc.app",
		agentExtraConfig: "<key>KeepAlive</key>\n    <true/>",
	}
	if !strings.Contains(a.launchAgentPlist(), "<key>KeepAlive</key>") {
		t.Error("extra config fragment not injected")
	}
}

// The generated document must stay well-formed XML.
func TestLaunchAgentPlistWellFormed(t *testing.T) {
	a := &AutoLaunch{
		appName:           "demo",
		appPath:           "/Applications/Calc.app",
		args:              []string{"--flag"},
		hidden:            true,
		bundleIdentifiers: []string{"com.example.calc"},
	}
	dec := xml.NewDecoder(strings.NewReader(a.launchAgentPlist()))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("plist is not well-formed XML: %v", err)
		}
	}
}
