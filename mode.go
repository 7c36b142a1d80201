package autolaunch

import "fmt"

// EnableMode selects which Windows registry hive the record operates on.
// It is ignored on other platforms.
type EnableMode int

const (
	// DynamicMode tries the machine hive first and falls back to the
	// current-user hive when access is denied.
	DynamicMode EnableMode = iota

	// CurrentUserMode operates only on the current-user hive.
	CurrentUserMode

	// SystemMode operates only on the machine hive (requires admin).
	SystemMode
)

func (m EnableMode) String() string {
	switch m {
	case DynamicMode:
		return "dynamic"
	case CurrentUserMode:
		return "current-user"
	case SystemMode:
		return "system"
	default:
		return "unknown"
	}
}

// ParseEnableMode converts a mode name to an EnableMode.
func ParseEnableMode(s string) (EnableMode, error) {
	switch s {
	case "dynamic":
		return DynamicMode, nil
	case "current-user", "user":
		return CurrentUserMode, nil
	case "system":
		return SystemMode, nil
	default:
		return 0, fmt.Errorf("invalid enable mode %q (expected \"dynamic\", \"current-user\" or \"system\")", s)
	}
}
