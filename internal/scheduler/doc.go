// Package scheduler owns the task lifecycle state machine: registering
// tasks, enforcing legal state transitions, driving one lifecycle step per
// tick per task, delivering results on their channel, and reaping
// finished records.
//
// Ownership boundary:
// - the ordered task record list and each record's task.Hooks instance,
//   from register through reap
// - the reentrancy guard that rejects public calls made from inside a
//   hook invoked by the same Update call
//
// The registry (package registry) owns the uid -> constructor table; the
// scheduler only ever calls Find on it. Results flow out through the
// caller-supplied Channel; the scheduler never decides how or where a
// result is delivered beyond calling OnResult exactly once per task.
package scheduler
