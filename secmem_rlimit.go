//go:build unix

package mac

import (
	"golang.org/x/sys/unix"
)

// Enough for the pad buffers of a few dozen concurrent handles plus
// memguard's own guard pages.
const minLockedPoolBytes = 64 * 1024

// Whether the process may lock enough memory for the secure pool.
func lockedPoolUsable() bool {
	var rl unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_MEMLOCK, &rl); err != nil {
		return false
	}
	return rl.Cur == unix.RLIM_INFINITY || rl.Cur >= minLockedPoolBytes
}
