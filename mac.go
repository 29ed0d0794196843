// Go implementation of a generic Message Authentication Code (MAC)
// dispatch layer: a uniform handle-based API to compute and verify MACs
// without depending on a concrete algorithm at compile time.
//
// Callers resolve an algorithm by id or name, Open() a Handle bound to
// it and drive the computation through SetKey/Write/Read/Verify/Reset.
// Key material held by a handle lives in a wiping memory pool (or an
// mlock()ed pool when opened with FlagSecure) and is zeroed on Close.
package mac

// Algo identifies a MAC algorithm.  The values are stable across
// versions; 0 is reserved and means "no algorithm".
type Algo int

const (
	AlgoNone Algo = 0

	AlgoHMACSHA256     Algo = 101
	AlgoHMACSHA224     Algo = 102
	AlgoHMACSHA512     Algo = 103
	AlgoHMACSHA384     Algo = 104
	AlgoHMACSHA1       Algo = 105
	AlgoHMACMD5        Algo = 106
	AlgoHMACMD4        Algo = 107
	AlgoHMACRMD160     Algo = 108
	AlgoHMACSHA3_224   Algo = 115
	AlgoHMACSHA3_256   Algo = 116
	AlgoHMACSHA3_384   Algo = 117
	AlgoHMACSHA3_512   Algo = 118
	AlgoHMACBLAKE2B512 Algo = 120
	AlgoHMACBLAKE2B384 Algo = 121
	AlgoHMACBLAKE2B256 Algo = 122
	AlgoHMACBLAKE2B160 Algo = 123
	AlgoHMACBLAKE2S256 Algo = 124
	AlgoHMACSHA512_256 Algo = 128
	AlgoHMACSHA512_224 Algo = 129
)

// Flags modify how a handle is opened.
type Flags uint32

const (
	// FlagSecure allocates the handle's key material and running state
	// from the locked, wiping memory pool.
	FlagSecure Flags = 1 << 0
)

const knownFlags = FlagSecure
