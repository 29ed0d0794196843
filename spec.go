package mac

// Spec describes a single MAC algorithm: its stable id, its
// case-insensitive name, whether it may be opened, and the operation
// table it dispatches through.  Specs are constructed once at process
// init and must not be mutated afterwards.
type Spec struct {
	Algo     Algo
	Name     string
	Disabled bool // still listed for introspection, but refuses to open
	Ops      *Operations
}

// Operations is the capability table an algorithm binds into the
// dispatcher.  Open, Write, SetKey, Read, Verify and Reset are
// mandatory for a usable algorithm; Close and SetIV may be left nil.
//
// Every Verify binding must compare in constant time; the dispatcher
// forwards the expected MAC verbatim and never inspects digest bytes.
type Operations struct {
	Open   func(h *Handle) error
	Close  func(h *Handle)
	SetKey func(h *Handle, key []byte) error
	SetIV  func(h *Handle, iv []byte) error
	Write  func(h *Handle, p []byte) error
	Read   func(h *Handle, out []byte) (int, error)
	Verify func(h *Handle, tag []byte) error
	Reset  func(h *Handle) error

	// Pure metadata accessors.  A return of 0 means "unknown".
	MACLen func(algo Algo) uint
	KeyLen func(algo Algo) uint
}

// Whether the mandatory subset of operations is bound.  An algorithm
// with a partial table is treated as not implemented at all.
func (ops *Operations) complete() bool {
	return ops != nil &&
		ops.Open != nil && ops.Write != nil && ops.SetKey != nil &&
		ops.Read != nil && ops.Verify != nil && ops.Reset != nil
}
