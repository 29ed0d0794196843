package mac

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/awnumar/memguard"
)

// Allocator is the memory pool contract used for handle state: Alloc
// returns a zero-initialized buffer, Free wipes and releases it, Wipe
// overwrites it in place.  Two pools are in use: a wiping heap pool
// and a locked pool whose pages stay out of swap.
type Allocator interface {
	Alloc(n int) ([]byte, error)
	Free(b []byte)
	Wipe(b []byte)
}

// heapAllocator is the normal pool: ordinary garbage-collected memory,
// explicitly zeroed on Wipe and Free.
type heapAllocator struct{}

func (a heapAllocator) Alloc(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	return make([]byte, n), nil
}

func (a heapAllocator) Free(b []byte) {
	a.Wipe(b)
}

func (a heapAllocator) Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	// Keeps the compiler from eliding the zeroing store.
	runtime.KeepAlive(b)
}

// lockedAllocator is the secure pool: buffers are mlock()ed and
// guarded by memguard, so key material cannot be paged to disk and is
// wiped when the buffer is destroyed.
type lockedAllocator struct {
	mu   sync.Mutex
	bufs map[*byte]*memguard.LockedBuffer
}

func newLockedAllocator() *lockedAllocator {
	return &lockedAllocator{bufs: make(map[*byte]*memguard.LockedBuffer)}
}

func (a *lockedAllocator) Alloc(n int) (b []byte, err error) {
	if n <= 0 {
		return nil, nil
	}
	// memguard panics when the kernel refuses the locked allocation.
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, wrapErrorf(ErrOutOfMemory, fmt.Errorf("%v", r),
				"locked pool allocation of %d bytes failed", n)
		}
	}()
	lb := memguard.NewBuffer(n)
	b = lb.Bytes()
	a.mu.Lock()
	a.bufs[&b[0]] = lb
	a.mu.Unlock()
	return b, nil
}

func (a *lockedAllocator) Free(b []byte) {
	if len(b) == 0 {
		return
	}
	a.mu.Lock()
	lb := a.bufs[&b[0]]
	delete(a.bufs, &b[0])
	a.mu.Unlock()
	if lb != nil {
		lb.Destroy() // wipes before unmapping
		return
	}
	// Not one of ours; at least wipe it.
	a.Wipe(b)
}

func (a *lockedAllocator) Wipe(b []byte) {
	memguard.WipeBytes(b)
}

var (
	poolMu     sync.Mutex
	normalPool Allocator
	securePool Allocator
)

func getNormalPool() Allocator {
	poolMu.Lock()
	defer poolMu.Unlock()
	if normalPool == nil {
		normalPool = heapAllocator{}
	}
	return normalPool
}

func getSecurePool() Allocator {
	poolMu.Lock()
	defer poolMu.Unlock()
	if securePool == nil {
		if lockedPoolUsable() {
			securePool = newLockedAllocator()
		} else {
			log.Logf("mac: cannot lock memory (RLIMIT_MEMLOCK too low); " +
				"secure pool falls back to the wiping heap pool")
			securePool = heapAllocator{}
		}
	}
	return securePool
}

// SetAllocators replaces the memory pools handles allocate from.
// Passing nil for a pool restores its default.  Call this before any
// handle is opened; handles remember the pool they were opened with.
func SetAllocators(normal, secure Allocator) {
	poolMu.Lock()
	defer poolMu.Unlock()
	normalPool = normal
	securePool = secure
}
