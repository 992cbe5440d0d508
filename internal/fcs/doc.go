// Package fcs owns frame check sequence computation.
//
// Ownership boundary:
// - policy-parameterized integrity codecs (sum, crc, fletcher, adler, internet)
// - wire-size and little-endian put/get for the fcs field
//
// Everything here is a total function: no policy ever fails to produce a
// value, it simply produces a (possibly meaningless) one for malformed
// input sizes, same as the reference behaviour it mirrors.
package fcs
