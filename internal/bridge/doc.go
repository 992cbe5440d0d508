// Package bridge is the external bridge channel: it decodes incoming
// command packets into scheduler calls, and encodes results and errors
// back into outgoing packets.
//
// Ownership boundary:
// - the poll-and-dispatch step run once per application tick
// - the scheduler.Channel implementation that turns a task's terminal
//   result into a reply packet
//
// Bridge owns neither the hub nor the scheduler it's handed; both are
// long-lived, constructed once in the application's composition root.
package bridge
