package validator

import (
	"testing"

	"github.com/tasknet/taskrt/internal/fcs"
	"github.com/tasknet/taskrt/internal/protocol"
)

func TestSealThenIsValid(t *testing.T) {
	codec, err := protocol.NewCodec(32, 4, fcs.CRC32)
	if err != nil {
		t.Fatalf("codec: %v", err)
	}
	h := protocol.NewHeader(1, 0x10, protocol.HeaderFields{Type: protocol.TypeData, ReceiverID: 0x7A})
	raw, err := protocol.Encode(codec, protocol.Packet{Header: h, UID: 7, Payload: []byte{1, 2, 3}})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	Seal(codec, raw)
	if !IsValid(codec, raw) {
		t.Fatalf("sealed packet should validate")
	}
}

func TestIsValidDetectsCorruption(t *testing.T) {
	codec, _ := protocol.NewCodec(32, 4, fcs.CRC32)
	h := protocol.NewHeader(1, 0x10, protocol.HeaderFields{Type: protocol.TypeData, ReceiverID: 0x7A})
	raw, _ := protocol.Encode(codec, protocol.Packet{Header: h, UID: 7, Payload: []byte{1, 2, 3}})
	Seal(codec, raw)
	raw[protocol.PayloadOffset] ^= 0x01
	if IsValid(codec, raw) {
		t.Fatalf("corrupted payload should fail validation")
	}
}

func TestNonePolicyAlwaysValid(t *testing.T) {
	codec, _ := protocol.NewCodec(16, 4, fcs.None)
	h := protocol.NewHeader(1, 0x10, protocol.HeaderFields{Type: protocol.TypeData, ReceiverID: 0x7A})
	raw, _ := protocol.Encode(codec, protocol.Packet{Header: h, UID: 1})
	raw[0] ^= 0xFF
	if !IsValid(codec, raw) {
		t.Fatalf("none policy should always validate")
	}
}
