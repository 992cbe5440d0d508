package task

import (
	"github.com/tasknet/taskrt/internal/envelope"
	"github.com/tasknet/taskrt/internal/status"
)

// Hooks is the contract every registered task satisfies. Embed Base to
// pick up the no-op defaults and override only what a concrete task
// needs — the same shape the registry's constructors return.
type Hooks interface {
	// OnStart fires exactly once, before any other hook.
	OnStart()
	// OnExecute fires repeatedly while the task is running.
	OnExecute()
	// IsFinished is polled after each tick's work to decide termination.
	IsFinished() bool
	// OnComplete fires exactly once, as the terminal hook. interrupted
	// distinguishes an abort from natural completion.
	OnComplete(interrupted bool) (envelope.Envelope, status.Code)
	// OnPause fires once per pause edge.
	OnPause()
	// OnResume fires once per resume edge.
	OnResume()
}

// Base supplies default hook bodies: no-op execution hooks, immediate
// finish, and an empty/ok completion. Concrete task types embed Base and
// override whichever hooks they need.
type Base struct{}

func (Base) OnStart() {}

func (Base) OnExecute() {}

func (Base) IsFinished() bool { return true }

func (Base) OnComplete(interrupted bool) (envelope.Envelope, status.Code) {
	return envelope.Empty, status.OK
}

func (Base) OnPause() {}

func (Base) OnResume() {}

var _ Hooks = Base{}

// Constructor builds a task instance from a single inbound payload view.
// Constructors must not fail in a way that panics; report invalid params
// by returning a nil Hooks paired with a non-nil error, which the
// scheduler's register_task turns into an invalid_params status.
type Constructor func(params envelope.View) (Hooks, error)
