// Package debughttp is the optional, read-only HTTP surface for
// inspecting a running runtime: scheduler snapshots, hub enable bits, and
// the prometheus metrics endpoint. It is never on the core's dispatch
// path — bridge.Update and scheduler.Update run whether or not this
// server is started.
package debughttp
