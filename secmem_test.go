package mac

import (
	"testing"
)

func TestHeapAllocator(t *testing.T) {
	var a heapAllocator
	b, err := a.Alloc(32)
	if err != nil || len(b) != 32 {
		t.Fatalf("Alloc(32): len=%d err=%v", len(b), err)
	}
	for _, v := range b {
		if v != 0 {
			t.Fatal("Alloc() did not zero-initialize")
		}
	}
	copy(b, "sensitive")
	a.Free(b)
	for _, v := range b {
		if v != 0 {
			t.Fatal("Free() did not wipe")
		}
	}

	if b, err = a.Alloc(0); b != nil || err != nil {
		t.Errorf("Alloc(0): %v, %v", b, err)
	}
}

func TestLockedAllocator(t *testing.T) {
	if !lockedPoolUsable() {
		t.Skip("cannot lock memory here")
	}
	a := newLockedAllocator()
	b, err := a.Alloc(48)
	if err != nil {
		t.Fatalf("Alloc(48): %v", err)
	}
	if len(b) != 48 {
		t.Fatalf("Alloc(48) returned %d bytes", len(b))
	}
	copy(b, "locked key material")
	a.Wipe(b)
	for _, v := range b {
		if v != 0 {
			t.Fatal("Wipe() left residual bytes")
		}
	}
	a.Free(b)
	if len(a.bufs) != 0 {
		t.Errorf("Free() did not release the tracked buffer")
	}
}

func TestSecureOpenUsesSecurePool(t *testing.T) {
	rec := &recordingAllocator{}
	SetAllocators(failingAllocator{}, rec)
	defer SetAllocators(nil, nil)

	h, err := Open(AlgoHMACSHA256, FlagSecure, nil)
	if err != nil {
		t.Fatalf("Open(FlagSecure): %v", err)
	}
	defer h.Close()
	if len(rec.bufs) == 0 {
		t.Errorf("secure handle did not allocate from the secure pool")
	}
}
