// Package registry owns the uid -> task constructor/destructor table.
//
// Ownership boundary:
// - building the table from a list of (uid, make, destroy) entries, or
//   via incremental Register + Freeze calls
// - O(log k) lookup by uid over the table's sorted index
//
// A dedicated static storage slot per uid with an "at most one live
// instance" invariant is one way to implement this; that invariant moves
// here to the scheduler's duplicate check (see package scheduler) — Go's
// heap-allocated, garbage-collected task instances need no manual slot
// bookkeeping.
package registry
