// Package taskschema validates a JSON task-definition file — a mapping
// of task name to {uid, params, return} — and derives the narrowest
// unsigned integer width that fits every declared uid.
//
// This is a build-time/deployment-time tool, not a runtime dependency of
// internal/registry or internal/scheduler: a device's uid width is fixed
// at compile time (see DESIGN.md's "UID width" open question), and this
// package is how that width gets chosen before the fixed-width
// registry/scheduler code is written against it.
package taskschema
