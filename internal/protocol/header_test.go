package protocol

import "testing"

func TestHeaderRoundTrip(t *testing.T) {
	h := NewHeader(2, 0x10, HeaderFields{
		Type:       TypeControl,
		Encrypted:  true,
		Fragmented: false,
		Priority:   5,
		Flags:      FlagPause,
		Validated:  true,
		ReceiverID: 0x7A,
	})
	buf := EncodeHeader(h)
	got, err := DecodeHeader(buf[:])
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != h {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, h)
	}
}

func TestNewHeaderPinsVersionAndSender(t *testing.T) {
	h := NewHeader(3, 0x42, HeaderFields{
		Type:       TypeData,
		ReceiverID: 0x01,
	})
	if h.Version != 3 {
		t.Fatalf("version = %d, want 3", h.Version)
	}
	if h.SenderID != 0x42 {
		t.Fatalf("sender_id = %d, want 0x42", h.SenderID)
	}
}

func TestDecodeHeaderShort(t *testing.T) {
	if _, err := DecodeHeader([]byte{1, 2, 3}); err != ErrShortHeader {
		t.Fatalf("expected ErrShortHeader, got %v", err)
	}
}
