package autolaunch

import "encoding/binary"

// The Task Manager Startup pane tracks per-entry enablement in a companion
// StartupApproved registry value: a 12-byte REG_BINARY record whose first
// four bytes are a status tag and whose last eight bytes hold the Windows
// FILETIME of when the entry was disabled. A zero timestamp means enabled.

// startupApprovedEnabled is the record written on enable to clear any
// Task Manager override.
var startupApprovedEnabled = []byte{0x02, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

// startupApprovedIsEnabled interprets an approved-key record. Records too
// short to carry a timestamp are unreadable and count as enabled, matching
// how Windows treats them.
func startupApprovedIsEnabled(data []byte) bool {
	if len(data) < 8 {
		return true
	}
	return binary.LittleEndian.Uint64(data[len(data)-8:]) == 0
}
