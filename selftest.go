package mac

import (
	"github.com/hashicorp/go-multierror"
)

// SelfTest exercises every enabled algorithm in the registry: compute
// a MAC, verify it through a second handle, check that reset keeps the
// key, and check that a corrupted MAC is rejected.  Failures for all
// algorithms are collected into one error.
func SelfTest() error {
	var result *multierror.Error
	for _, spec := range registry {
		if spec.Disabled {
			continue
		}
		if err := selfTestAlgo(spec.Algo); err != nil {
			result = multierror.Append(result,
				wrapErrorf(ErrUnknownAlgorithm, err,
					"self test of %s failed", spec.Name))
		}
	}
	return result.ErrorOrNil()
}

func selfTestAlgo(algo Algo) error {
	key := []byte("self test key 0123456789abcdef")
	msg := []byte("the quick brown fox jumps over the lazy dog")

	h, err := Open(algo, 0, nil)
	if err != nil {
		return err
	}
	defer h.Close()
	if err = h.SetKey(key); err != nil {
		return err
	}
	if err = h.Write(msg); err != nil {
		return err
	}
	tag := make([]byte, AlgoMACLen(algo))
	n, err := h.Read(tag)
	if err != nil {
		return err
	}
	tag = tag[:n]

	// A fresh handle over the same key and message must verify.
	h2, err := Open(algo, 0, nil)
	if err != nil {
		return err
	}
	defer h2.Close()
	if err = h2.SetKey(key); err != nil {
		return err
	}
	if err = h2.Write(msg); err != nil {
		return err
	}
	if err = h2.Verify(tag); err != nil {
		return err
	}

	// Reset must keep the key.
	if err = h.Reset(); err != nil {
		return err
	}
	if err = h.Write(msg); err != nil {
		return err
	}
	if err = h.Verify(tag); err != nil {
		return err
	}

	// And a single flipped bit must be caught.
	bad := make([]byte, len(tag))
	copy(bad, tag)
	bad[0] ^= 0x01
	if err = h2.Verify(bad); err == nil {
		return errorf(ErrVerificationFailed,
			"corrupted MAC passed verification")
	}
	return nil
}
