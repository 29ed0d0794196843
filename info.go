package mac

// AlgoName returns the name of the algorithm, or the placeholder "?"
// for an unknown id.  It never returns an empty string; use
// AlgoAvailable or AlgoInfo with InfoTestAlgo to check validity.
func AlgoName(algo Algo) string {
	if spec := specFromAlgo(algo); spec != nil {
		return spec.Name
	}
	return "?"
}

// MapName maps an algorithm name to its id, comparing
// case-insensitively.  Unknown (or empty) names map to AlgoNone.
func MapName(name string) Algo {
	if spec := specFromName(name); spec != nil {
		return spec.Algo
	}
	return AlgoNone
}

// AlgoMACLen returns the length in bytes of the MAC the algorithm
// produces, or 0 for an unknown algorithm.
func AlgoMACLen(algo Algo) uint {
	spec := specFromAlgo(algo)
	if spec == nil || spec.Ops == nil || spec.Ops.MACLen == nil {
		return 0
	}
	return spec.Ops.MACLen(algo)
}

// AlgoKeyLen returns the recommended key length in bytes for the
// algorithm, or 0 for an unknown algorithm.
func AlgoKeyLen(algo Algo) uint {
	spec := specFromAlgo(algo)
	if spec == nil || spec.Ops == nil || spec.Ops.KeyLen == nil {
		return 0
	}
	return spec.Ops.KeyLen(algo)
}

// InfoQuery selects what AlgoInfo should report.
type InfoQuery int

const (
	// InfoTestAlgo succeeds iff the algorithm is available for use.
	// buf and n must be nil.
	InfoTestAlgo InfoQuery = iota + 1

	// InfoGetKeyLen writes the algorithm's key length to *n.  buf must
	// be nil.
	InfoGetKeyLen
)

// AlgoInfo returns information about the given algorithm, independent
// of any open handle.  Queries this package does not know fail with
// ErrUnsupportedOperation.
func AlgoInfo(algo Algo, what InfoQuery, buf []byte, n *uint) error {
	switch what {
	case InfoTestAlgo:
		if buf != nil || n != nil {
			return errorf(ErrInvalidArgument,
				"InfoTestAlgo takes no further arguments")
		}
		if !AlgoAvailable(algo) {
			return errorf(ErrUnknownAlgorithm,
				"MAC algorithm %d is not available", algo)
		}
		return nil

	case InfoGetKeyLen:
		if buf != nil || n == nil {
			return errorf(ErrInvalidArgument,
				"InfoGetKeyLen writes to n and takes no buffer")
		}
		keyLen := AlgoKeyLen(algo)
		if keyLen == 0 {
			// The only reason for a zero key length is an invalid algo.
			return errorf(ErrUnknownAlgorithm,
				"no key length known for MAC algorithm %d", algo)
		}
		*n = keyLen
		return nil

	default:
		return errorf(ErrUnsupportedOperation, "unknown info query %d", what)
	}
}
