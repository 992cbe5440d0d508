package transport

import (
	"github.com/tasknet/taskrt/internal/observability"
	"github.com/tasknet/taskrt/internal/protocol"
	"github.com/tasknet/taskrt/internal/validator"
)

// Link is the capability set a concrete transport driver must implement.
// The core never assumes a connection-oriented or connectionless link;
// HasPeer is informational only.
type Link interface {
	// ReadAvailable reports how many bytes are currently available to
	// read without blocking.
	ReadAvailable() (int, error)
	// ReadExact reads exactly len(buf) bytes. Callers only invoke it
	// after ReadAvailable has confirmed enough bytes are present.
	ReadExact(buf []byte) error
	// WriteAll writes buf in full.
	WriteAll(buf []byte) error
	// HasPeer reports whether a peer is currently known/connected.
	HasPeer() bool
}

// Transport wraps a Link with this device's Codec and board id, layering
// the validator pipeline above the link's raw bytes.
type Transport struct {
	link    Link
	codec   protocol.Codec
	boardID uint8
}

// New returns a Transport over link using codec, filtering received
// packets to boardID.
func New(link Link, codec protocol.Codec, boardID uint8) Transport {
	return Transport{link: link, codec: codec, boardID: boardID}
}

// HasPeer delegates to the underlying link.
func (t Transport) HasPeer() bool {
	return t.link.HasPeer()
}

// TryReceive attempts a non-blocking read of exactly one packet's worth
// of bytes. It returns (Packet{}, false, nil) when fewer bytes are
// available, when the addressee does not match this device's board id,
// or when the fcs fails to verify. All three cases are silently dropped,
// not errors. A non-nil error means the link itself failed.
func (t Transport) TryReceive() (protocol.Packet, bool, error) {
	avail, err := t.link.ReadAvailable()
	if err != nil {
		return protocol.Packet{}, false, err
	}
	if avail < t.codec.Size {
		return protocol.Packet{}, false, nil
	}

	raw := make([]byte, t.codec.Size)
	if err := t.link.ReadExact(raw); err != nil {
		return protocol.Packet{}, false, err
	}

	p, err := protocol.Decode(t.codec, raw)
	if err != nil {
		observability.RecordValidatorDrop("short_read")
		return protocol.Packet{}, false, nil
	}
	if p.Header.ReceiverID != t.boardID {
		observability.RecordValidatorDrop("addressee_mismatch")
		return protocol.Packet{}, false, nil
	}
	if !validator.IsValid(t.codec, raw) {
		observability.RecordValidatorDrop("fcs_invalid")
		return protocol.Packet{}, false, nil
	}
	return p, true, nil
}

// Send seals p's fcs (a no-op under policy none) and hands the packed
// bytes to the link.
func (t Transport) Send(p protocol.Packet) error {
	raw, err := protocol.Encode(t.codec, p)
	if err != nil {
		return err
	}
	validator.Seal(t.codec, raw)
	return t.link.WriteAll(raw)
}
