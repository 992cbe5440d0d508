// Package validator owns the seal/verify pipeline for framed packets.
//
// Ownership boundary:
// - stamping an fcs into an encoded packet buffer (Seal)
// - recomputing and comparing it (IsValid)
//
// Both operate on the already-encoded wire buffer, not the decoded
// Packet, because the covered range is a contiguous byte span
// (header..end-of-payload) rather than a set of struct fields.
package validator
