package protocol

import "encoding/binary"

// HeaderSize is the wire size of the control word plus sender/receiver
// bytes: 4 bytes of packed fields, 1 byte sender_id, 1 byte receiver_id.
const HeaderSize = 6

// Header is the unpacked view of a packet's control word and addressing
// bytes. Field accessors on the struct are plain field reads — pure by
// construction.
type Header struct {
	Type       PacketType
	Version    uint8 // 2 bits, 0..3
	Encrypted  bool
	Fragmented bool
	Priority   uint8 // 3 bits, 0..7
	Flags      Flag
	Validated  bool
	SenderID   uint8
	ReceiverID uint8
}

// HeaderFields are the caller-supplied inputs to NewHeader. Version and
// SenderID are never taken from here: NewHeader pins them from the device
// configuration regardless of what a caller passes.
type HeaderFields struct {
	Type       PacketType
	Encrypted  bool
	Fragmented bool
	Priority   uint8
	Flags      Flag
	Validated  bool
	ReceiverID uint8
}

// NewHeader builds a Header from fields, forcibly overwriting version and
// sender_id with the device's configured protocol version and board id.
func NewHeader(protocolVersion, boardID uint8, f HeaderFields) Header {
	return Header{
		Type:       f.Type,
		Version:    protocolVersion & 0x3,
		Encrypted:  f.Encrypted,
		Fragmented: f.Fragmented,
		Priority:   f.Priority & 0x7,
		Flags:      f.Flags,
		Validated:  f.Validated,
		SenderID:   boardID,
		ReceiverID: f.ReceiverID,
	}
}

// EncodeHeader packs h into its 6-byte wire image.
func EncodeHeader(h Header) [HeaderSize]byte {
	var word uint32
	word |= uint32(h.Type&0xF) << 28
	word |= uint32(h.Version&0x3) << 26
	if h.Encrypted {
		word |= 1 << 25
	}
	if h.Fragmented {
		word |= 1 << 24
	}
	word |= uint32(h.Priority&0x7) << 21
	word |= uint32(h.Flags&0x7) << 18
	if h.Validated {
		word |= 1 << 17
	}

	var buf [HeaderSize]byte
	binary.BigEndian.PutUint32(buf[0:4], word)
	buf[4] = h.SenderID
	buf[5] = h.ReceiverID
	return buf
}

// DecodeHeader unpacks a 6-byte wire image into a Header.
func DecodeHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, ErrShortHeader
	}
	word := binary.BigEndian.Uint32(buf[0:4])
	return Header{
		Type:       PacketType((word >> 28) & 0xF),
		Version:    uint8((word >> 26) & 0x3),
		Encrypted:  (word>>25)&1 != 0,
		Fragmented: (word>>24)&1 != 0,
		Priority:   uint8((word >> 21) & 0x7),
		Flags:      Flag((word >> 18) & 0x7),
		Validated:  (word>>17)&1 != 0,
		SenderID:   buf[4],
		ReceiverID: buf[5],
	}, nil
}
