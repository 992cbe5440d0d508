// Package task owns the task hook contract and the lifecycle state bitset
// the scheduler drives every registered task through.
//
// Ownership boundary:
// - the Hooks interface and Base's no-op defaults
// - State and its fluent mutators
//
// Nothing here schedules anything; package scheduler owns the tick loop
// that calls these hooks in order.
package task
