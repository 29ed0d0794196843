package mac

// Pool tags stamped onto a handle at open.  Checked defensively to
// catch use of a corrupted or already-closed handle.
const (
	magicNormal uint32 = 0x6d61634e // "macN"
	magicSecure uint32 = 0x6d616353 // "macS"
)

// Handle is one in-progress MAC computation, bound to a single Spec
// for its whole lifetime.  A handle must not be used from multiple
// goroutines without external synchronization.
//
// Create one with Open() and release it with exactly one Close();
// a double Close is as undefined as a double free.
type Handle struct {
	magic uint32
	spec  *Spec
	algo  Algo
	assoc interface{} // caller-supplied correlation object; not owned
	alloc Allocator
	state interface{} // algorithm-specific context, owned by the handle
}

// Open creates a handle for the given algorithm.  With FlagSecure the
// handle's key material and running state are allocated from the
// locked memory pool.  Unknown flag bits are rejected before any
// lookup or allocation happens.
//
// assoc is an optional caller-supplied object stored on the handle for
// correlation purposes; this package never touches it.
//
// On error no handle is returned and nothing is left allocated.
func Open(algo Algo, flags Flags, assoc interface{}) (*Handle, error) {
	if flags&^knownFlags != 0 {
		return nil, errorf(ErrInvalidArgument,
			"unknown flag bits 0x%x", uint32(flags&^knownFlags))
	}
	return openHandle(specFromAlgo(algo), algo, flags&FlagSecure != 0, assoc)
}

// OpenByName is Open with the algorithm resolved by name.
func OpenByName(name string, flags Flags, assoc interface{}) (*Handle, error) {
	return Open(MapName(name), flags, assoc)
}

func openHandle(spec *Spec, algo Algo, secure bool, assoc interface{}) (
	*Handle, error) {
	if spec == nil {
		return nil, errorf(ErrUnknownAlgorithm,
			"no MAC algorithm with id %d", algo)
	}
	if spec.Disabled {
		return nil, errorf(ErrUnknownAlgorithm,
			"MAC algorithm %s is disabled", spec.Name)
	}
	if !spec.Ops.complete() {
		// A partial operation table is never partially usable.
		return nil, errorf(ErrUnknownAlgorithm,
			"MAC algorithm %s is not fully implemented", spec.Name)
	}

	h := &Handle{
		spec:  spec,
		algo:  spec.Algo,
		assoc: assoc,
	}
	if secure {
		h.magic = magicSecure
		h.alloc = getSecurePool()
	} else {
		h.magic = magicNormal
		h.alloc = getNormalPool()
	}

	if err := spec.Ops.Open(h); err != nil {
		h.release()
		return nil, err
	}
	return h, nil
}

// Close tears down the handle: the algorithm's close operation runs
// first (its errors are swallowed by design; close cannot fail from
// the caller's perspective), then every field of the handle is
// overwritten.  Key material handed to the memory pools is wiped
// before release.
func (h *Handle) Close() {
	if h.spec.Ops.Close != nil {
		h.spec.Ops.Close(h)
	}
	h.release()
}

func (h *Handle) release() {
	*h = Handle{}
}

// Algo returns the id of the algorithm the handle is bound to.
func (h *Handle) Algo() Algo { return h.algo }

// Name returns the name of the algorithm the handle is bound to.
func (h *Handle) Name() string { return h.spec.Name }

// Secure reports whether the handle was opened with FlagSecure.
func (h *Handle) Secure() bool { return h.magic == magicSecure }

// Assoc returns the correlation object passed to Open, if any.
func (h *Handle) Assoc() interface{} { return h.assoc }
