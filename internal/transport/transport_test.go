package transport

import (
	"errors"
	"testing"

	"github.com/tasknet/taskrt/internal/fcs"
	"github.com/tasknet/taskrt/internal/protocol"
)

// memLink is an in-memory Link backed by a byte queue, standing in for a
// real transport driver in tests.
type memLink struct {
	inbound  []byte
	outbound []byte
	peer     bool
}

func (m *memLink) ReadAvailable() (int, error) {
	return len(m.inbound), nil
}

func (m *memLink) ReadExact(buf []byte) error {
	if len(m.inbound) < len(buf) {
		return errors.New("short read")
	}
	copy(buf, m.inbound[:len(buf)])
	m.inbound = m.inbound[len(buf):]
	return nil
}

func (m *memLink) WriteAll(buf []byte) error {
	m.outbound = append(m.outbound, buf...)
	return nil
}

func (m *memLink) HasPeer() bool { return m.peer }

func mustCodec(t *testing.T, policy fcs.Policy) protocol.Codec {
	t.Helper()
	codec, err := protocol.NewCodec(32, 4, policy)
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	return codec
}

func samplePacket(receiver uint8) protocol.Packet {
	return protocol.Packet{
		Header: protocol.NewHeader(1, 0x10, protocol.HeaderFields{
			Type:       protocol.TypeData,
			ReceiverID: receiver,
		}),
		UID:     7,
		Payload: []byte{0x01, 0x02},
	}
}

func TestTryReceiveNotEnoughBytes(t *testing.T) {
	codec := mustCodec(t, fcs.None)
	link := &memLink{}
	tr := New(link, codec, 0x10)

	_, ok, err := tr.TryReceive()
	if err != nil || ok {
		t.Fatalf("expected none on short buffer, got ok=%v err=%v", ok, err)
	}
}

func TestSendThenReceiveRoundTrip(t *testing.T) {
	codec := mustCodec(t, fcs.CRC32)
	link := &memLink{}
	sender := New(link, codec, 0x10)

	p := samplePacket(0x10)
	if err := sender.Send(p); err != nil {
		t.Fatalf("send: %v", err)
	}

	link.inbound = link.outbound
	receiver := New(link, codec, 0x10)
	got, ok, err := receiver.TryReceive()
	if err != nil || !ok {
		t.Fatalf("expected a packet, got ok=%v err=%v", ok, err)
	}
	if got.UID != p.UID || string(got.Payload[:2]) != string(p.Payload) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestTryReceiveDropsAddresseeMismatch(t *testing.T) {
	codec := mustCodec(t, fcs.CRC32)
	link := &memLink{}
	sender := New(link, codec, 0x10)

	if err := sender.Send(samplePacket(0x11)); err != nil {
		t.Fatalf("send: %v", err)
	}

	link.inbound = link.outbound
	receiver := New(link, codec, 0x10)
	_, ok, err := receiver.TryReceive()
	if err != nil || ok {
		t.Fatalf("expected drop on addressee mismatch, got ok=%v err=%v", ok, err)
	}
}

func TestTryReceiveDropsCorruptedFCS(t *testing.T) {
	codec := mustCodec(t, fcs.CRC32)
	link := &memLink{}
	sender := New(link, codec, 0x10)

	if err := sender.Send(samplePacket(0x10)); err != nil {
		t.Fatalf("send: %v", err)
	}

	link.outbound[protocol.PayloadOffset] ^= 0xFF
	link.inbound = link.outbound
	receiver := New(link, codec, 0x10)
	_, ok, err := receiver.TryReceive()
	if err != nil || ok {
		t.Fatalf("expected drop on fcs mismatch, got ok=%v err=%v", ok, err)
	}
}
