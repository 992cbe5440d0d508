package protocol

import (
	"encoding/binary"

	"github.com/tasknet/taskrt/internal/fcs"
)

// UID names a task type. The runtime fixes the UID wire width at 4 bytes;
// callers that model a semantic enumeration convert to/from UID at the
// boundary (see internal/registry for the normalization point).
type UID uint32

// uidSize is the wire width of UID, in bytes.
const uidSize = 4

// StatusOffset, UIDOffset and PayloadOffset are the fixed byte offsets
// within any packet sharing this runtime's Codec, per the wire layout in
// the protocol's external interface section.
const (
	StatusOffset  = HeaderSize
	UIDOffset     = StatusOffset + 1
	PayloadOffset = UIDOffset + uidSize
)

// Codec fixes the overall packet size S and the fcs policy P for one
// deployment. All packets exchanged by a device share one Codec.
type Codec struct {
	Size   int
	Policy fcs.Policy
}

// NewCodec validates S against the word size and against the minimum size
// needed to hold header, status, uid and (if policy != none) fcs, then
// returns a Codec. wordSize is the machine word size in bytes (e.g. 4 or
// 8); S must be a positive multiple of it.
func NewCodec(size, wordSize int, policy fcs.Policy) (Codec, error) {
	if wordSize <= 0 || size <= 0 || size%wordSize != 0 {
		return Codec{}, ErrSizeNotWordMult
	}
	if size < PayloadOffset+policy.Size() {
		return Codec{}, ErrSizeTooSmall
	}
	return Codec{Size: size, Policy: policy}, nil
}

// PayloadCapacity returns the number of payload bytes this codec's packets
// carry: S minus header, status, uid and fcs.
func (c Codec) PayloadCapacity() int {
	return c.Size - PayloadOffset - c.Policy.Size()
}

// Framed reports whether this codec's packets carry an fcs field.
func (c Codec) Framed() bool {
	return c.Policy.Size() > 0
}

// FCSOffset is the byte offset of the fcs field. Meaningless if !Framed().
func (c Codec) FCSOffset() int {
	return c.Size - c.Policy.Size()
}

// Packet is the in-memory view of a basic or framed wire packet; which
// variant it is follows entirely from the Codec used to encode/decode it.
type Packet struct {
	Header  Header
	Status  uint8
	UID     UID
	Payload []byte
	FCS     uint64
}

// Encode packs p into a fresh S-byte buffer under codec. The fcs field, if
// the codec is framed, is left zeroed — seal it with validator.Seal.
// Payload longer than the codec's capacity is a precondition violation.
func Encode(codec Codec, p Packet) ([]byte, error) {
	payloadCap := codec.PayloadCapacity()
	if len(p.Payload) > payloadCap {
		return nil, ErrPayloadTooLarge
	}

	buf := make([]byte, codec.Size)
	hb := EncodeHeader(p.Header)
	copy(buf[0:HeaderSize], hb[:])
	buf[StatusOffset] = p.Status
	binary.LittleEndian.PutUint32(buf[UIDOffset:UIDOffset+uidSize], uint32(p.UID))
	copy(buf[PayloadOffset:PayloadOffset+len(p.Payload)], p.Payload)
	return buf, nil
}

// Decode unpacks an S-byte wire buffer into a Packet under codec. It does
// not verify the fcs — that is validator.IsValid's job, one layer up.
func Decode(codec Codec, raw []byte) (Packet, error) {
	if len(raw) != codec.Size {
		return Packet{}, ErrShortPacket
	}
	header, err := DecodeHeader(raw[:HeaderSize])
	if err != nil {
		return Packet{}, err
	}
	payloadCap := codec.PayloadCapacity()
	payload := make([]byte, payloadCap)
	copy(payload, raw[PayloadOffset:PayloadOffset+payloadCap])

	p := Packet{
		Header:  header,
		Status:  raw[StatusOffset],
		UID:     UID(binary.LittleEndian.Uint32(raw[UIDOffset : UIDOffset+uidSize])),
		Payload: payload,
	}
	if codec.Framed() {
		p.FCS = fcs.Get(codec.Policy, raw[codec.FCSOffset():])
	}
	return p, nil
}
