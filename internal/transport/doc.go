// Package transport defines the capability surface a concrete link
// (UART, TCP, radio, or anything else) must provide, plus the
// receive/send wrapper that layers the validator pipeline on top of any
// conforming implementation.
//
// Ownership boundary:
// - the Link capability interface (read_available/read_exact/write_all/has_peer)
// - Transport, which owns one Link plus the Codec and device identity
//   needed to run try-receive and send
//
// Concrete links (an actual UART driver, a TCP socket wrapper) are out of
// scope here; this package is indifferent to what backs a Link so long as
// it honors the non-blocking read contract.
package transport
