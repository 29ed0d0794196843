package mac

import (
	"errors"
	"testing"
)

func TestNameIdRoundTrip(t *testing.T) {
	for _, spec := range registry {
		name := AlgoName(spec.Algo)
		if name == "?" || name == "" {
			t.Fatalf("AlgoName(%d) is %q", spec.Algo, name)
		}
		if MapName(name) != spec.Algo {
			t.Errorf("MapName(%s) is %d instead of %d",
				name, MapName(name), spec.Algo)
		}
		if AlgoName(MapName(AlgoName(spec.Algo))) != name {
			t.Errorf("name/id round trip broken for %s", name)
		}
	}
}

func TestMapNameUnknown(t *testing.T) {
	for _, name := range []string{"", "not-a-real-algo", "?"} {
		if algo := MapName(name); algo != AlgoNone {
			t.Errorf("MapName(%q) is %d instead of 0", name, algo)
		}
	}
}

func TestMapNameCaseInsensitive(t *testing.T) {
	for _, name := range []string{"hmac_sha256", "Hmac_Sha256", "HMAC_SHA256"} {
		if MapName(name) != AlgoHMACSHA256 {
			t.Errorf("MapName(%q) is %d", name, MapName(name))
		}
	}
}

func TestAlgoNamePlaceholder(t *testing.T) {
	if AlgoName(AlgoNone) != "?" {
		t.Errorf("AlgoName(0) is %q instead of \"?\"", AlgoName(AlgoNone))
	}
	if AlgoName(Algo(54321)) != "?" {
		t.Errorf("AlgoName(54321) is %q instead of \"?\"", AlgoName(54321))
	}
}

func TestListNames(t *testing.T) {
	names := ListNames()
	if len(names) != len(registry) {
		t.Fatalf("ListNames() returned %d names for %d registered algorithms",
			len(names), len(registry))
	}
	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			t.Errorf("duplicate algorithm name %s", name)
		}
		seen[name] = true
	}
}

func TestLengths(t *testing.T) {
	if l := AlgoMACLen(AlgoHMACSHA256); l != 32 {
		t.Errorf("AlgoMACLen(HMAC_SHA256) is %d instead of 32", l)
	}
	if l := AlgoKeyLen(AlgoHMACSHA256); l != 64 {
		t.Errorf("AlgoKeyLen(HMAC_SHA256) is %d instead of 64", l)
	}
	if l := AlgoMACLen(AlgoHMACSHA512); l != 64 {
		t.Errorf("AlgoMACLen(HMAC_SHA512) is %d instead of 64", l)
	}
	if l := AlgoKeyLen(AlgoHMACSHA512); l != 128 {
		t.Errorf("AlgoKeyLen(HMAC_SHA512) is %d instead of 128", l)
	}
	if AlgoMACLen(AlgoNone) != 0 || AlgoKeyLen(AlgoNone) != 0 {
		t.Errorf("lengths of unknown algorithm are not 0")
	}
}

func TestDisabledAlgorithm(t *testing.T) {
	spec := specFromAlgo(AlgoHMACSHA224)
	if spec == nil {
		t.Fatal("HMAC_SHA224 not registered")
	}
	spec.Disabled = true
	defer func() { spec.Disabled = false }()

	if AlgoAvailable(AlgoHMACSHA224) {
		t.Errorf("disabled algorithm reported available")
	}
	if AlgoName(AlgoHMACSHA224) != "HMAC_SHA224" {
		t.Errorf("disabled algorithm lost its name")
	}
	_, err := Open(AlgoHMACSHA224, 0, nil)
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("Open() of disabled algorithm: got %v instead of "+
			"ErrUnknownAlgorithm", err)
	}
	err = AlgoInfo(AlgoHMACSHA224, InfoTestAlgo, nil, nil)
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("InfoTestAlgo of disabled algorithm: got %v", err)
	}
}
