package protocol

import "errors"

var (
	ErrShortHeader     = errors.New("protocol: short header")
	ErrShortPacket     = errors.New("protocol: short packet")
	ErrPayloadTooLarge = errors.New("protocol: payload too large for packet size")
	ErrSizeTooSmall    = errors.New("protocol: packet size too small for header, status, uid and fcs")
	ErrSizeNotWordMult = errors.New("protocol: packet size is not a multiple of the word size")
)
