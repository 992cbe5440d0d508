package hub

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/tasknet/taskrt/internal/observability"
	"github.com/tasknet/taskrt/internal/protocol"
)

// Port is the subset of transport.Transport the hub depends on. Any type
// exposing Send and TryReceive with these signatures — transport.Transport
// included — satisfies it.
type Port interface {
	Send(p protocol.Packet) error
	TryReceive() (protocol.Packet, bool, error)
}

// Hub multiplexes send and receive across a fixed, ordered list of ports.
// Registration order is both the send fan-out order and the receive poll
// order.
type Hub struct {
	ports       []Port
	sendEnabled []bool
	recvEnabled []bool
}

// New builds a Hub over ports, all enabled for both send and receive.
func New(ports ...Port) *Hub {
	h := &Hub{
		ports:       append([]Port{}, ports...),
		sendEnabled: make([]bool, len(ports)),
		recvEnabled: make([]bool, len(ports)),
	}
	for i := range h.ports {
		h.sendEnabled[i] = true
		h.recvEnabled[i] = true
	}
	return h
}

// Len returns the number of registered ports.
func (h *Hub) Len() int {
	return len(h.ports)
}

func (h *Hub) checkIndex(i int) error {
	if i < 0 || i >= len(h.ports) {
		return fmt.Errorf("hub: port index %d out of range [0,%d)", i, len(h.ports))
	}
	return nil
}

// EnableSender sets the send-enable bit for port i.
func (h *Hub) EnableSender(i int) error {
	if err := h.checkIndex(i); err != nil {
		return err
	}
	h.sendEnabled[i] = true
	return nil
}

// DisableSender clears the send-enable bit for port i.
func (h *Hub) DisableSender(i int) error {
	if err := h.checkIndex(i); err != nil {
		return err
	}
	h.sendEnabled[i] = false
	return nil
}

// EnableReceiver sets the receive-enable bit for port i.
func (h *Hub) EnableReceiver(i int) error {
	if err := h.checkIndex(i); err != nil {
		return err
	}
	h.recvEnabled[i] = true
	return nil
}

// DisableReceiver clears the receive-enable bit for port i.
func (h *Hub) DisableReceiver(i int) error {
	if err := h.checkIndex(i); err != nil {
		return err
	}
	h.recvEnabled[i] = false
	return nil
}

// PortStatus snapshots one port's enable bits, for introspection.
type PortStatus struct {
	Index       int  `json:"index"`
	SendEnabled bool `json:"send_enabled"`
	RecvEnabled bool `json:"recv_enabled"`
}

// Status returns a PortStatus for every registered port, in registration
// order.
func (h *Hub) Status() []PortStatus {
	out := make([]PortStatus, len(h.ports))
	for i := range h.ports {
		out[i] = PortStatus{Index: i, SendEnabled: h.sendEnabled[i], RecvEnabled: h.recvEnabled[i]}
	}
	return out
}

// Send fans p out to every send-enabled port in registration order.
// Per-port failure is logged and does not abort the loop.
func (h *Hub) Send(p protocol.Packet) {
	for i, port := range h.ports {
		if !h.sendEnabled[i] {
			continue
		}
		if err := port.Send(p); err != nil {
			log.Warn().Err(err).Int("port", i).Msg("hub: send failed")
			continue
		}
		observability.RecordHubSend(strconv.Itoa(i))
	}
}

// TryReceive polls receive-enabled ports in registration order, returning
// the first packet any of them produces. It short-circuits: later ports
// are not polled once one yields a packet.
func (h *Hub) TryReceive() (protocol.Packet, bool) {
	for i, port := range h.ports {
		if !h.recvEnabled[i] {
			continue
		}
		p, ok, err := port.TryReceive()
		if err != nil {
			log.Warn().Err(err).Int("port", i).Msg("hub: receive failed")
			continue
		}
		if ok {
			observability.RecordHubReceive(strconv.Itoa(i))
			return p, true
		}
	}
	return protocol.Packet{}, false
}
