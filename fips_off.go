//go:build !fips

package mac

const fipsMode = false
