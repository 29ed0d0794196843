package mac

import (
	"testing"
)

func TestSelfTest(t *testing.T) {
	SetLogger(t)
	defer SetLogger(nil)
	if err := SelfTest(); err != nil {
		t.Fatalf("SelfTest(): %v", err)
	}
}

func TestSelfTestSecurePool(t *testing.T) {
	// The end-to-end paths must behave the same from the secure pool.
	for _, spec := range registry {
		if spec.Disabled {
			continue
		}
		h, err := Open(spec.Algo, FlagSecure, nil)
		if err != nil {
			t.Fatalf("%s: Open(FlagSecure): %v", spec.Name, err)
		}
		if err = h.SetKey([]byte("key")); err != nil {
			t.Fatalf("%s: SetKey(): %v", spec.Name, err)
		}
		if err = h.Write([]byte("msg")); err != nil {
			t.Fatalf("%s: Write(): %v", spec.Name, err)
		}
		tag := make([]byte, AlgoMACLen(spec.Algo))
		if _, err = h.Read(tag); err != nil {
			t.Fatalf("%s: Read(): %v", spec.Name, err)
		}
		if err = h.Verify(tag); err != nil {
			t.Fatalf("%s: Verify(): %v", spec.Name, err)
		}
		h.Close()
	}
}
