package mac

import (
	"errors"
	"testing"
)

func TestInfoTestAlgo(t *testing.T) {
	if err := AlgoInfo(AlgoHMACSHA256, InfoTestAlgo, nil, nil); err != nil {
		t.Errorf("InfoTestAlgo of HMAC_SHA256: %v", err)
	}
	err := AlgoInfo(Algo(54321), InfoTestAlgo, nil, nil)
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("InfoTestAlgo of unknown algorithm: got %v", err)
	}

	// Extra arguments must be absent.
	var n uint
	err = AlgoInfo(AlgoHMACSHA256, InfoTestAlgo, nil, &n)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("InfoTestAlgo with n: got %v instead of ErrInvalidArgument",
			err)
	}
	err = AlgoInfo(AlgoHMACSHA256, InfoTestAlgo, []byte{0}, nil)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("InfoTestAlgo with buf: got %v instead of ErrInvalidArgument",
			err)
	}
}

func TestInfoGetKeyLen(t *testing.T) {
	var n uint
	if err := AlgoInfo(AlgoHMACSHA256, InfoGetKeyLen, nil, &n); err != nil {
		t.Fatalf("InfoGetKeyLen of HMAC_SHA256: %v", err)
	}
	if n != 64 {
		t.Errorf("InfoGetKeyLen of HMAC_SHA256 wrote %d instead of 64", n)
	}
	err := AlgoInfo(Algo(54321), InfoGetKeyLen, nil, &n)
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("InfoGetKeyLen of unknown algorithm: got %v", err)
	}
	err = AlgoInfo(AlgoHMACSHA256, InfoGetKeyLen, nil, nil)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("InfoGetKeyLen without n: got %v", err)
	}
}

func TestInfoUnknownQuery(t *testing.T) {
	err := AlgoInfo(AlgoHMACSHA256, InfoQuery(99), nil, nil)
	if !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("unknown query: got %v instead of ErrUnsupportedOperation",
			err)
	}
}

func TestAlgoAvailable(t *testing.T) {
	if !AlgoAvailable(AlgoHMACSHA256) {
		t.Errorf("HMAC_SHA256 not available")
	}
	if AlgoAvailable(AlgoNone) || AlgoAvailable(Algo(54321)) {
		t.Errorf("unknown algorithm reported available")
	}
}
