package mac

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"hash"

	"github.com/templexxx/xor"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// The HMAC construction (RFC 2104) over a pluggable hash:
//
//	MAC = H((key ^ opad) || H((key ^ ipad) || message))
//
// Each registered algorithm below binds the same operation table to a
// different hash constructor.

const (
	ipadByte = 0x36
	opadByte = 0x5c
)

// hmacAlgo ties an algorithm id to its underlying hash.
type hmacAlgo struct {
	algo Algo
	name string
	new  func() hash.Hash
	weak bool // disabled in fips builds
}

func newBlake2b(size int) func() hash.Hash {
	return func() hash.Hash {
		h, _ := blake2b.New(size, nil) // only fails for bad size/key
		return h
	}
}

var hmacLut = make(map[Algo]hmacAlgo)

// The HMAC algorithms built into this package.  Hashes without a Go
// implementation (Tiger, Whirlpool, GOST 34.11, Stribog, SM3) are not
// registered.
func hmacAlgos() []hmacAlgo {
	return []hmacAlgo{
		{AlgoHMACSHA256, "HMAC_SHA256", sha256.New, false},
		{AlgoHMACSHA224, "HMAC_SHA224", sha256.New224, false},
		{AlgoHMACSHA512, "HMAC_SHA512", sha512.New, false},
		{AlgoHMACSHA384, "HMAC_SHA384", sha512.New384, false},
		{AlgoHMACSHA1, "HMAC_SHA1", sha1.New, true},
		{AlgoHMACMD5, "HMAC_MD5", md5.New, true},
		{AlgoHMACMD4, "HMAC_MD4", md4.New, true},
		{AlgoHMACRMD160, "HMAC_RMD160", ripemd160.New, true},
		{AlgoHMACSHA3_224, "HMAC_SHA3-224",
			func() hash.Hash { return sha3.New224() }, false},
		{AlgoHMACSHA3_256, "HMAC_SHA3-256",
			func() hash.Hash { return sha3.New256() }, false},
		{AlgoHMACSHA3_384, "HMAC_SHA3-384",
			func() hash.Hash { return sha3.New384() }, false},
		{AlgoHMACSHA3_512, "HMAC_SHA3-512",
			func() hash.Hash { return sha3.New512() }, false},
		{AlgoHMACBLAKE2B512, "HMAC_BLAKE2B_512", newBlake2b(64), false},
		{AlgoHMACBLAKE2B384, "HMAC_BLAKE2B_384", newBlake2b(48), false},
		{AlgoHMACBLAKE2B256, "HMAC_BLAKE2B_256", newBlake2b(32), false},
		{AlgoHMACBLAKE2B160, "HMAC_BLAKE2B_160", newBlake2b(20), false},
		{AlgoHMACBLAKE2S256, "HMAC_BLAKE2S_256",
			func() hash.Hash {
				h, _ := blake2s.New256(nil)
				return h
			}, false},
		{AlgoHMACSHA512_256, "HMAC_SHA512_256", sha512.New512_256, false},
		{AlgoHMACSHA512_224, "HMAC_SHA512_224", sha512.New512_224, false},
	}
}

// Builds the registry entries for the built-in HMAC algorithms.
func hmacSpecs() []*Spec {
	algos := hmacAlgos()
	specs := make([]*Spec, 0, len(algos))
	for _, ha := range algos {
		hmacLut[ha.algo] = ha
		specs = append(specs, &Spec{
			Algo:     ha.algo,
			Name:     ha.name,
			Disabled: ha.weak && fipsMode,
			Ops:      &hmacOps,
		})
	}
	return specs
}

// HMAC has no notion of an IV, so SetIV stays unbound.
var hmacOps = Operations{
	Open:   hmacOpen,
	Close:  hmacClose,
	SetKey: hmacSetKey,
	Write:  hmacWrite,
	Read:   hmacRead,
	Verify: hmacVerify,
	Reset:  hmacReset,
	MACLen: hmacMACLen,
	KeyLen: hmacKeyLen,
}

// Per-handle HMAC context.  The pad blocks hold the key material and
// come from the handle's memory pool; they are wiped on close.
type hmacState struct {
	newHash func() hash.Hash
	inner   hash.Hash // running H((key^ipad) || message...)
	ipad    []byte    // key block xored with ipadByte
	opad    []byte    // key block xored with opadByte
}

func hmacOpen(h *Handle) error {
	ha, ok := hmacLut[h.algo]
	if !ok {
		return errorf(ErrUnknownAlgorithm,
			"no HMAC construction bound for algorithm %d", h.algo)
	}
	blockSize := ha.new().BlockSize()
	ipad, err := h.alloc.Alloc(blockSize)
	if err != nil {
		return err
	}
	opad, err := h.alloc.Alloc(blockSize)
	if err != nil {
		h.alloc.Free(ipad)
		return err
	}
	st := &hmacState{newHash: ha.new, ipad: ipad, opad: opad}
	// Until SetKey runs the pads correspond to the empty key.
	st.fillPads(nil)
	st.restart()
	h.state = st
	return nil
}

// Derives the pad blocks from the key.  Keys longer than the hash's
// block size are hashed down first, as RFC 2104 prescribes.
func (st *hmacState) fillPads(key []byte) {
	block := make([]byte, len(st.ipad))
	if len(key) > len(block) {
		kh := st.newHash()
		kh.Write(key)
		copy(block, kh.Sum(nil))
	} else {
		copy(block, key)
	}
	pad := make([]byte, len(block))
	for i := range pad {
		pad[i] = ipadByte
	}
	xor.BytesSameLen(st.ipad, block, pad)
	for i := range pad {
		pad[i] = opadByte
	}
	xor.BytesSameLen(st.opad, block, pad)
	// The key transits through block; wipe it before the GC gets it.
	heapAllocator{}.Wipe(block)
}

func (st *hmacState) restart() {
	st.inner = st.newHash()
	st.inner.Write(st.ipad)
}

// Computes the current tag without disturbing the running state:
// hash.Hash.Sum does not consume the stream.
func (st *hmacState) sum() []byte {
	innerSum := st.inner.Sum(nil)
	outer := st.newHash()
	outer.Write(st.opad)
	outer.Write(innerSum)
	return outer.Sum(nil)
}

func hmacSetKey(h *Handle, key []byte) error {
	st := h.state.(*hmacState)
	st.fillPads(key)
	st.restart()
	return nil
}

func hmacWrite(h *Handle, p []byte) error {
	st := h.state.(*hmacState)
	st.inner.Write(p) // never fails
	return nil
}

func hmacRead(h *Handle, out []byte) (int, error) {
	st := h.state.(*hmacState)
	return copy(out, st.sum()), nil
}

func hmacVerify(h *Handle, tag []byte) error {
	st := h.state.(*hmacState)
	want := st.sum()
	if len(tag) > len(want) {
		return errorf(ErrInvalidArgument,
			"MAC to verify is longer than the %d byte tag", len(want))
	}
	// Truncated tags verify against the tag's prefix.  The length is
	// not secret; the comparison itself is constant-time.
	if subtle.ConstantTimeCompare(tag, want[:len(tag)]) != 1 {
		return errorf(ErrVerificationFailed,
			"MAC mismatch for %s", h.spec.Name)
	}
	return nil
}

func hmacReset(h *Handle) error {
	st := h.state.(*hmacState)
	st.restart()
	return nil
}

func hmacClose(h *Handle) {
	st, ok := h.state.(*hmacState)
	if !ok {
		return
	}
	if st.inner != nil {
		st.inner.Reset()
		st.inner = nil
	}
	h.alloc.Free(st.ipad)
	h.alloc.Free(st.opad)
	st.ipad, st.opad = nil, nil
}

func hmacMACLen(algo Algo) uint {
	if ha, ok := hmacLut[algo]; ok {
		return uint(ha.new().Size())
	}
	return 0
}

func hmacKeyLen(algo Algo) uint {
	if ha, ok := hmacLut[algo]; ok {
		return uint(ha.new().BlockSize())
	}
	return 0
}
