package validator

import (
	"github.com/tasknet/taskrt/internal/fcs"
	"github.com/tasknet/taskrt/internal/protocol"
)

// Seal computes the fcs over raw[:codec.FCSOffset()] — header through the
// end of the payload — and stamps it into raw's trailing fcs bytes. A
// no-op when codec's policy is none.
func Seal(codec protocol.Codec, raw []byte) {
	if !codec.Framed() {
		return
	}
	covered := raw[:codec.FCSOffset()]
	value := fcs.Compute(codec.Policy, covered)
	fcs.Put(codec.Policy, value, raw[codec.FCSOffset():])
}

// IsValid recomputes the fcs over the same range Seal covers and compares
// it to the stored value. Always true when codec's policy is none.
func IsValid(codec protocol.Codec, raw []byte) bool {
	if !codec.Framed() {
		return true
	}
	if len(raw) != codec.Size {
		return false
	}
	covered := raw[:codec.FCSOffset()]
	want := fcs.Compute(codec.Policy, covered)
	got := fcs.Get(codec.Policy, raw[codec.FCSOffset():])
	return want == got
}
