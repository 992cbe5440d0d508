// Package protocol owns the wire header and packet layouts.
//
// Ownership boundary:
// - control-word bit layout and its 6-byte wire image (header.go)
// - basic/framed packet wire codec with a fixed 4-byte uid (packet.go)
//
// Nothing here touches a transport, an fcs policy's math, or a task; packet
// sealing/validation lives in package validator, one layer up.
package protocol
