package mac

// The methods below validate their arguments generically and then
// forward to the handle's operation table.  Return values pass through
// unchanged; no state is touched on a validation failure.

// SetKey sets the key for the computation.  A zero-length key is a
// valid (if inadvisable) key.
func (h *Handle) SetKey(key []byte) error {
	if h.spec.Ops.SetKey == nil {
		return errorf(ErrInvalidArgument,
			"%s has no setkey operation", h.spec.Name)
	}
	return h.spec.Ops.SetKey(h, key)
}

// SetIV sets the initialization vector on algorithms that take one.
func (h *Handle) SetIV(iv []byte) error {
	if h.spec.Ops.SetIV == nil {
		return errorf(ErrInvalidArgument,
			"%s has no setiv operation", h.spec.Name)
	}
	return h.spec.Ops.SetIV(h, iv)
}

// Write feeds message bytes into the computation.  Writing zero bytes
// is a no-op.
func (h *Handle) Write(p []byte) error {
	if h.spec.Ops.Write == nil {
		return errorf(ErrInvalidArgument,
			"%s has no write operation", h.spec.Name)
	}
	return h.spec.Ops.Write(h, p)
}

// Read copies the MAC over everything written so far into out and
// returns the number of bytes copied, at most the algorithm's MAC
// length.  Reading does not disturb the running computation; more
// data may be written afterwards.  out must not be empty.
func (h *Handle) Read(out []byte) (int, error) {
	if len(out) == 0 {
		return 0, errorf(ErrInvalidArgument, "empty destination buffer")
	}
	if h.spec.Ops.Read == nil {
		return 0, errorf(ErrInvalidArgument,
			"%s has no read operation", h.spec.Name)
	}
	return h.spec.Ops.Read(h, out)
}

// Verify compares tag against the MAC over everything written so far
// and returns nil only on a match.  The comparison happens in constant
// time.  A mismatch is reported as ErrVerificationFailed, distinct
// from any argument error.  tag must not be empty.
func (h *Handle) Verify(tag []byte) error {
	if len(tag) == 0 {
		return errorf(ErrInvalidArgument, "empty MAC to verify")
	}
	if h.spec.Ops.Verify == nil {
		return errorf(ErrInvalidArgument,
			"%s has no verify operation", h.spec.Name)
	}
	return h.spec.Ops.Verify(h, tag)
}

// Reset restarts the computation as if no message bytes had been
// written, keeping the key.
func (h *Handle) Reset() error {
	if h.spec.Ops.Reset == nil {
		return errorf(ErrUnsupportedOperation,
			"%s has no reset operation", h.spec.Name)
	}
	return h.spec.Ops.Reset(h)
}

// Cmd is a control command for Ctl.
type Cmd int

const (
	CmdReset Cmd = iota + 1
)

// Ctl performs a generic control operation on the handle.
func (h *Handle) Ctl(cmd Cmd) error {
	switch cmd {
	case CmdReset:
		return h.Reset()
	default:
		return errorf(ErrUnsupportedOperation,
			"unknown control command %d", cmd)
	}
}
