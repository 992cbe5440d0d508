// Package envelope owns the opaque result blob ferried from a task to its
// channel, and the non-owning view used to deliver inbound payloads to
// task constructors.
package envelope

// Envelope is an owned, opaque byte blob. A task produces one as its
// result; the scheduler and bridge never interpret its contents.
type Envelope struct {
	data []byte
}

// New copies data into a freshly owned Envelope.
func New(data []byte) Envelope {
	owned := make([]byte, len(data))
	copy(owned, data)
	return Envelope{data: owned}
}

// Empty is the zero-value envelope returned by tasks that produce no
// result.
var Empty = Envelope{}

// Data returns the envelope's bytes. Callers must not mutate the result.
func (e Envelope) Data() []byte {
	return e.data
}

// Size returns the envelope's byte length.
func (e Envelope) Size() int {
	return len(e.data)
}

// View is a non-owning window over inbound payload bytes, handed to a
// task constructor. It must not be retained past the constructor call.
type View struct {
	data []byte
}

// NewView wraps data without copying it.
func NewView(data []byte) View {
	return View{data: data}
}

// Bytes returns the view's bytes.
func (v View) Bytes() []byte {
	return v.data
}

// Len returns the view's byte length.
func (v View) Len() int {
	return len(v.data)
}
