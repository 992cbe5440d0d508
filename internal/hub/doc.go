// Package hub multiplexes send and receive across a fixed set of
// transports, each independently enable-bitted per direction.
//
// Ownership boundary:
// - the ordered transport list (registration order is send/receive order)
// - the two enable bitsets (send, receive), both all-set by default
//
// The hub owns its transports exclusively; nothing outside this package
// reaches into them directly once registered.
package hub
