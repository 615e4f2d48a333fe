// Package fsutil holds the shared filesystem probes used by the walkers.
package fsutil

import (
	"os"
	"syscall"
)

// DeviceID returns the device id of a path via lstat. Walkers compare it
// against their root's id to detect mount crossings.
func DeviceID(path string) (uint64, bool) {
	info, err := os.Lstat(path)
	if err != nil {
		return 0, false
	}
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, false
	}
	return uint64(st.Dev), true
}
