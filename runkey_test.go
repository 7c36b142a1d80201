package autolaunch

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

// fakeHive is an in-memory runKeyStore standing in for one registry hive.
type fakeHive struct {
	run      map[string]string
	approved map[string][]byte

	// noApprovedKey simulates an older Windows without a StartupApproved
	// key; denied rejects every mutation with an access-denied failure.
	noApprovedKey bool
	denied        bool
}

func newFakeHive() *fakeHive {
	return &fakeHive{
		run:      make(map[string]string),
		approved: make(map[string][]byte),
	}
}

func (h *fakeHive) SetCommand(name, command string) error {
	if h.denied {
		return fmt.Errorf("setting Run value: %w", ErrAccessDenied)
	}
	h.run[name] = command
	return nil
}

func (h *fakeHive) Command(name string) (string, error) {
	v, ok := h.run[name]
	if !ok {
		return "", fmt.Errorf("reading Run value: %w", ErrNotFound)
	}
	return v, nil
}

func (h *fakeHive) DeleteCommand(name string) error {
	if h.denied {
		return fmt.Errorf("deleting Run value: %w", ErrAccessDenied)
	}
	if _, ok := h.run[name]; !ok {
		return fmt.Errorf("deleting Run value: %w", ErrNotFound)
	}
	delete(h.run, name)
	return nil
}

func (h *fakeHive) SetApproved(name string, data []byte) error {
	if h.noApprovedKey {
		return fmt.Errorf("opening StartupApproved key: %w", ErrNotFound)
	}
	if h.denied {
		return fmt.Errorf("setting StartupApproved value: %w", ErrAccessDenied)
	}
	h.approved[name] = append([]byte(nil), data...)
	return nil
}

func (h *fakeHive) Approved(name string) ([]byte, error) {
	if h.noApprovedKey {
		return nil, fmt.Errorf("opening StartupApproved key: %w", ErrNotFound)
	}
	v, ok := h.approved[name]
	if !ok {
		return nil, fmt.Errorf("reading StartupApproved value: %w", ErrNotFound)
	}
	return v, nil
}

var disabledByTaskManager = []byte{0x03, 0, 0, 0, 0xa5, 0x20, 0xf6, 0x4a, 0x95, 0xd7, 0xd9, 0x01}

func TestEnableWritesCommandAndApprovedMarker(t *testing.T) {
	machine, user := newFakeHive(), newFakeHive()

	err := enableStartup(machine, user, CurrentUserMode, "AutoLaunchTest", `C:\app.exe --minimized`)
	if err != nil {
		t.Fatal(err)
	}
	if got := user.run["AutoLaunchTest"]; got != `C:\app.exe --minimized` {
		t.Errorf("Run value = %q, want %q", got, `C:\app.exe --minimized`)
	}
	if !bytes.Equal(user.approved["AutoLaunchTest"], startupApprovedEnabled) {
		t.Errorf("approved value = %v, want enabled marker", user.approved["AutoLaunchTest"])
	}
	if len(machine.run) != 0 || len(machine.approved) != 0 {
		t.Error("CurrentUserMode must not touch the machine hive")
	}
}

func TestEnableDisableRoundTrip(t *testing.T) {
	for _, mode := range []EnableMode{DynamicMode, CurrentUserMode, SystemMode} {
		machine, user := newFakeHive(), newFakeHive()

		if err := enableStartup(machine, user, mode, "demo", "/opt/demo/demo"); err != nil {
			t.Fatalf("%v: enable: %v", mode, err)
		}
		enabled, err := startupEnabled(machine, user, mode, "demo")
		if err != nil {
			t.Fatalf("%v: is enabled: %v", mode, err)
		}
		if !enabled {
			t.Errorf("%v: enabled = false after enable", mode)
		}

		if err := disableStartup(machine, user, mode, "demo"); err != nil {
			t.Fatalf("%v: disable: %v", mode, err)
		}
		enabled, err = startupEnabled(machine, user, mode, "demo")
		if err != nil {
			t.Fatalf("%v: is enabled: %v", mode, err)
		}
		if enabled {
			t.Errorf("%v: enabled = true after disable", mode)
		}
	}
}

func TestDisableNeverEnabled(t *testing.T) {
	for _, mode := range []EnableMode{DynamicMode, CurrentUserMode, SystemMode} {
		machine, user := newFakeHive(), newFakeHive()
		if err := disableStartup(machine, user, mode, "ghost"); err != nil {
			t.Errorf("%v: disable of unregistered entry: %v", mode, err)
		}
		if len(machine.run) != 0 || len(user.run) != 0 {
			t.Errorf("%v: disable left residue", mode)
		}
	}
}

func TestEnableSucceedsWithoutApprovedKey(t *testing.T) {
	machine, user := newFakeHive(), newFakeHive()
	user.noApprovedKey = true

	if err := enableStartup(machine, user, CurrentUserMode, "demo", "/opt/demo/demo"); err != nil {
		t.Fatalf("enable without StartupApproved key: %v", err)
	}
	enabled, err := startupEnabled(machine, user, CurrentUserMode, "demo")
	if err != nil {
		t.Fatal(err)
	}
	if !enabled {
		t.Error("missing approved key must leave the registration state authoritative")
	}
}

func TestTaskManagerOverride(t *testing.T) {
	machine, user := newFakeHive(), newFakeHive()

	if err := enableStartup(machine, user, CurrentUserMode, "demo", "/opt/demo/demo"); err != nil {
		t.Fatal(err)
	}

	// Simulate the user flipping the entry off in the Startup pane.
	user.approved["demo"] = append([]byte(nil), disabledByTaskManager...)

	enabled, err := startupEnabled(machine, user, CurrentUserMode, "demo")
	if err != nil {
		t.Fatal(err)
	}
	if enabled {
		t.Fatal("overridden entry reported enabled")
	}

	// Re-enabling clears the override.
	if err := enableStartup(machine, user, CurrentUserMode, "demo", "/opt/demo/demo"); err != nil {
		t.Fatal(err)
	}
	enabled, err = startupEnabled(machine, user, CurrentUserMode, "demo")
	if err != nil {
		t.Fatal(err)
	}
	if !enabled {
		t.Error("enable did not reset the Task Manager override")
	}
}

func TestStaleApprovedRecordDoesNotReportEnabled(t *testing.T) {
	machine, user := newFakeHive(), newFakeHive()
	// Approved record left behind by an earlier registration, Run value gone.
	user.approved["demo"] = append([]byte(nil), startupApprovedEnabled...)

	enabled, err := startupEnabled(machine, user, CurrentUserMode, "demo")
	if err != nil {
		t.Fatal(err)
	}
	if enabled {
		t.Error("unregistered entry reported enabled from a stale approved record")
	}
}

func TestDynamicEnableFallsBackOnAccessDenied(t *testing.T) {
	machine, user := newFakeHive(), newFakeHive()
	machine.denied = true

	if err := enableStartup(machine, user, DynamicMode, "demo", `C:\app.exe`); err != nil {
		t.Fatalf("dynamic enable with denied machine hive: %v", err)
	}
	if got := user.run["demo"]; got != `C:\app.exe` {
		t.Errorf("user Run value = %q, want fallback write", got)
	}
	enabled, err := startupEnabled(machine, user, DynamicMode, "demo")
	if err != nil {
		t.Fatal(err)
	}
	if !enabled {
		t.Error("enabled = false after fallback enable")
	}
}

func TestDynamicDisableClearsUserHiveAfterModeChange(t *testing.T) {
	machine, user := newFakeHive(), newFakeHive()
	user.run["demo"] = `C:\app.exe`
	machine.denied = true

	if err := disableStartup(machine, user, DynamicMode, "demo"); err != nil {
		t.Fatalf("dynamic disable: %v", err)
	}
	if _, ok := user.run["demo"]; ok {
		t.Error("user hive entry survived dynamic disable")
	}
}

func TestDynamicDisableRemovesBothHives(t *testing.T) {
	machine, user := newFakeHive(), newFakeHive()
	machine.run["demo"] = `C:\app.exe`
	user.run["demo"] = `C:\app.exe`

	if err := disableStartup(machine, user, DynamicMode, "demo"); err != nil {
		t.Fatal(err)
	}
	if len(machine.run) != 0 || len(user.run) != 0 {
		t.Error("dynamic disable must clear both hives")
	}
}

func TestSystemDisableDeniedIsFatal(t *testing.T) {
	machine, user := newFakeHive(), newFakeHive()
	machine.run["demo"] = `C:\app.exe`
	machine.denied = true

	err := disableStartup(machine, user, SystemMode, "demo")
	if !errors.Is(err, ErrAccessDenied) {
		t.Errorf("system disable error = %v, want access denied", err)
	}
}

func TestDynamicEnabledDoesNotFallThroughWhenMachineRegistered(t *testing.T) {
	machine, user := newFakeHive(), newFakeHive()
	machine.run["demo"] = `C:\app.exe`
	machine.approved["demo"] = append([]byte(nil), disabledByTaskManager...)
	// A healthy user entry must not mask the machine-level override.
	user.run["demo"] = `C:\app.exe`

	enabled, err := startupEnabled(machine, user, DynamicMode, "demo")
	if err != nil {
		t.Fatal(err)
	}
	if enabled {
		t.Error("machine-level override must win in dynamic mode")
	}
}

func TestDynamicEnabledFallsThroughToUserHive(t *testing.T) {
	machine, user := newFakeHive(), newFakeHive()
	user.run["demo"] = `C:\app.exe`

	enabled, err := startupEnabled(machine, user, DynamicMode, "demo")
	if err != nil {
		t.Fatal(err)
	}
	if !enabled {
		t.Error("unregistered machine hive must fall through to the user hive")
	}
}
