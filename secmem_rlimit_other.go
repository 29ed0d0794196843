//go:build !unix

package mac

// No rlimit to consult; let memguard find out.
func lockedPoolUsable() bool {
	return true
}
