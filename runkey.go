package autolaunch

import "errors"

// runKeyStore is one registry hive's view of the two startup locations:
// the Run key holding the launch command and the StartupApproved key
// holding the Task Manager override record.
//
// Implementations map a missing key or value onto ErrNotFound and an
// insufficient-rights failure onto ErrAccessDenied (wrapped, so errors.Is
// matches).
type runKeyStore interface {
	SetCommand(name, command string) error
	Command(name string) (string, error)
	DeleteCommand(name string) error
	SetApproved(name string, data []byte) error
	Approved(name string) ([]byte, error)
}

// enableIn registers the launch command in one hive. The Run value is
// written first so that a failure on the approved record still leaves the
// entry registered. A hive without a StartupApproved key (pre-8 Windows)
// is not an error; any other approved-key failure is.
func enableIn(s runKeyStore, name, command string) error {
	if err := s.SetCommand(name, command); err != nil {
		return err
	}
	if err := s.SetApproved(name, startupApprovedEnabled); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

// disableIn deletes the Run value in one hive. A value that was never
// registered counts as already disabled. The approved record is left in
// place; Windows rewrites it on the next enable.
func disableIn(s runKeyStore, name string) error {
	if err := s.DeleteCommand(name); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

// stateIn reports one hive's view of the entry: whether a Run value exists
// at all, and whether the Task Manager override (if any) leaves it enabled.
// The Run value is read first so a stale approved record for an
// unregistered entry never reports enabled.
func stateIn(s runKeyStore, name string) (registered, enabled bool, err error) {
	if _, err := s.Command(name); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, false, nil
		}
		return false, false, err
	}
	data, err := s.Approved(name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// No override record means enabled.
			return true, true, nil
		}
		return true, false, err
	}
	return true, startupApprovedIsEnabled(data), nil
}

// enableStartup registers the command in the hive selected by mode.
// DynamicMode retries against the user hive when the machine hive rejects
// the write.
func enableStartup(machine, user runKeyStore, mode EnableMode, name, command string) error {
	switch mode {
	case SystemMode:
		return enableIn(machine, name, command)
	case CurrentUserMode:
		return enableIn(user, name, command)
	default:
		err := enableIn(machine, name, command)
		if errors.Is(err, ErrAccessDenied) {
			return enableIn(user, name, command)
		}
		return err
	}
}

// disableStartup deletes the Run value in the hive selected by mode. In
// DynamicMode the machine delete tolerates access denial and the user hive
// is always tried afterwards, so an entry registered system-wide before a
// mode change is still cleaned up.
func disableStartup(machine, user runKeyStore, mode EnableMode, name string) error {
	switch mode {
	case SystemMode:
		return disableIn(machine, name)
	case CurrentUserMode:
		return disableIn(user, name)
	default:
		if err := disableIn(machine, name); err != nil && !errors.Is(err, ErrAccessDenied) {
			return err
		}
		return disableIn(user, name)
	}
}

// startupEnabled evaluates the enabled predicate for the hive selected by
// mode. In DynamicMode an unregistered or unreadable machine hive falls
// through to the user hive; a machine entry that exists but is overridden
// does not.
func startupEnabled(machine, user runKeyStore, mode EnableMode, name string) (bool, error) {
	switch mode {
	case SystemMode:
		_, enabled, err := stateIn(machine, name)
		return enabled, err
	case CurrentUserMode:
		_, enabled, err := stateIn(user, name)
		return enabled, err
	default:
		registered, enabled, err := stateIn(machine, name)
		if err != nil && !errors.Is(err, ErrAccessDenied) {
			return false, err
		}
		if err == nil && registered {
			return enabled, nil
		}
		_, enabled, err = stateIn(user, name)
		return enabled, err
	}
}
