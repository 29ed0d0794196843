package mac

import (
	"strings"
)

// Registry of compiled-in MAC algorithms.  Which algorithms end up in
// here depends on build configuration; see the fips build tag.
var registry []*Spec

var registryAlgoLut map[Algo]*Spec
var registryNameLut map[string]*Spec

// Initializes the registry and its lookup tables.
func init() {
	registry = hmacSpecs()
	registryAlgoLut = make(map[Algo]*Spec)
	registryNameLut = make(map[string]*Spec)
	for _, spec := range registry {
		registryAlgoLut[spec.Algo] = spec
		registryNameLut[strings.ToLower(spec.Name)] = spec
	}
}

// Returns the Spec for the given algorithm id (and nil if it is
// unknown).
func specFromAlgo(algo Algo) *Spec {
	return registryAlgoLut[algo]
}

// Returns the Spec with the given name, compared case-insensitively
// (and nil if there is no such algorithm).
func specFromName(name string) *Spec {
	return registryNameLut[strings.ToLower(name)]
}

// AlgoAvailable reports whether the algorithm is registered, enabled
// and carries an operation table.
func AlgoAvailable(algo Algo) bool {
	spec := specFromAlgo(algo)
	return spec != nil && !spec.Disabled && spec.Ops != nil
}

// ListNames lists the names of all registered MAC algorithms, in
// registration order.  Disabled algorithms are included.
func ListNames() (names []string) {
	names = make([]string, len(registry))
	for i, spec := range registry {
		names[i] = spec.Name
	}
	return
}
