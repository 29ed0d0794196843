//go:build fips

package mac

// In fips builds the weak algorithms (MD4, MD5, SHA-1, RIPEMD-160)
// stay in the registry for introspection but refuse to open.
const fipsMode = true
