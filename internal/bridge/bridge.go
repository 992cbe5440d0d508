package bridge

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tasknet/taskrt/internal/envelope"
	"github.com/tasknet/taskrt/internal/protocol"
	"github.com/tasknet/taskrt/internal/scheduler"
	"github.com/tasknet/taskrt/internal/status"
)

// Hub is the subset of hub.Hub the bridge depends on.
type Hub interface {
	Send(p protocol.Packet)
	TryReceive() (protocol.Packet, bool)
}

// Scheduler is the subset of scheduler.Scheduler the bridge drives.
type Scheduler interface {
	RegisterTask(channel scheduler.Channel, initiatorID uint8, uid protocol.UID, params envelope.View) status.Code
	PauseTask(uid protocol.UID) status.Code
	ResumeTask(uid protocol.UID) status.Code
	AbortTask(uid protocol.UID) status.Code
}

// Bridge wires one Hub to one Scheduler. It is itself a scheduler.Channel:
// it registers itself as every task's result sink.
type Bridge struct {
	hub             Hub
	sched           Scheduler
	codec           protocol.Codec
	protocolVersion uint8
	boardID         uint8
}

// New returns a Bridge over hub and sched, sizing reply packets to codec
// and stamping protocolVersion/boardID into every outgoing header.
func New(h Hub, sched Scheduler, codec protocol.Codec, protocolVersion, boardID uint8) *Bridge {
	return &Bridge{hub: h, sched: sched, codec: codec, protocolVersion: protocolVersion, boardID: boardID}
}

// Update runs one poll-and-dispatch step: at most one inbound packet is
// consumed and translated into a scheduler call.
func (b *Bridge) Update() {
	p, ok := b.hub.TryReceive()
	if !ok {
		return
	}

	iid := p.Header.SenderID
	uid := p.UID
	var code status.Code

	switch p.Header.Flags {
	case protocol.FlagNone:
		view := envelope.NewView(p.Payload)
		code = b.sched.RegisterTask(b, iid, uid, view)
	case protocol.FlagAbort:
		code = b.sched.AbortTask(uid)
	case protocol.FlagPause:
		code = b.sched.PauseTask(uid)
	case protocol.FlagResume:
		code = b.sched.ResumeTask(uid)
	default:
		log.Debug().Uint8("flags", uint8(p.Header.Flags)).Msg("bridge: ignoring unrecognized flags")
		return
	}

	if code != status.OK {
		b.sendErrorReply(iid, uid, code)
	}
}

// OnResult implements scheduler.Channel: it encodes a task's terminal
// result into a reply packet and hands it to the hub.
func (b *Bridge) OnResult(initiatorID uint8, uid protocol.UID, env envelope.Envelope, code status.Code) {
	payload := env.Data()
	if payloadCap := b.codec.PayloadCapacity(); len(payload) > payloadCap {
		payload = payload[:payloadCap]
	}
	p := protocol.Packet{
		Header: protocol.NewHeader(b.protocolVersion, b.boardID, protocol.HeaderFields{
			Type:       protocol.TypeData,
			Flags:      protocol.FlagNone,
			ReceiverID: initiatorID,
		}),
		Status:  uint8(code),
		UID:     uid,
		Payload: payload,
	}
	b.hub.Send(p)
}

// sendErrorReply synthesizes an error reply for a rejected command. uid
// alone does not uniquely identify a rejected registration (the task was
// never admitted, so it never got a live record), so each rejection gets
// its own correlation id purely for log tracing — it never appears on
// the wire.
func (b *Bridge) sendErrorReply(initiatorID uint8, taskUID protocol.UID, code status.Code) {
	corr := uuid.New()
	log.Warn().
		Str("correlation_id", corr.String()).
		Uint8("initiator", initiatorID).
		Uint32("uid", uint32(taskUID)).
		Str("status", code.String()).
		Msg("bridge: rejecting command")

	p := protocol.Packet{
		Header: protocol.NewHeader(b.protocolVersion, b.boardID, protocol.HeaderFields{
			Type:       protocol.TypeData,
			Flags:      protocol.FlagError,
			ReceiverID: initiatorID,
		}),
		Status: uint8(code),
		UID:    taskUID,
	}
	b.hub.Send(p)
}
