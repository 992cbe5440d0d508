package protocol

import "fmt"

// PacketType occupies bits 31-28 of the control word.
type PacketType uint8

const (
	TypeData PacketType = iota
	TypeConfig
	TypeControl
	TypeRouting
	TypeTimeSync
	TypeAuth
	TypeSession
	TypeStatus
	TypeLog
	TypeDebug
	TypeFirmware
	typeReserved11
	typeReserved12
	typeReserved13
	typeReserved14
	typeReserved15
)

func (t PacketType) String() string {
	switch t {
	case TypeData:
		return "data"
	case TypeConfig:
		return "config"
	case TypeControl:
		return "control"
	case TypeRouting:
		return "routing"
	case TypeTimeSync:
		return "time_sync"
	case TypeAuth:
		return "auth"
	case TypeSession:
		return "session"
	case TypeStatus:
		return "status"
	case TypeLog:
		return "log"
	case TypeDebug:
		return "debug"
	case TypeFirmware:
		return "firmware"
	default:
		return fmt.Sprintf("reserved(%d)", uint8(t))
	}
}

// Flag occupies bits 20-18 of the control word.
type Flag uint8

const (
	FlagNone Flag = iota
	FlagAck
	FlagError
	FlagHeartbeat
	FlagAbort
	FlagPause
	FlagResume
	flagReserved7
)

func (f Flag) String() string {
	switch f {
	case FlagNone:
		return "none"
	case FlagAck:
		return "ack"
	case FlagError:
		return "error"
	case FlagHeartbeat:
		return "heartbeat"
	case FlagAbort:
		return "abort"
	case FlagPause:
		return "pause"
	case FlagResume:
		return "resume"
	default:
		return "reserved"
	}
}
