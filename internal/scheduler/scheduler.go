package scheduler

import (
	"github.com/tasknet/taskrt/internal/envelope"
	"github.com/tasknet/taskrt/internal/observability"
	"github.com/tasknet/taskrt/internal/protocol"
	"github.com/tasknet/taskrt/internal/registry"
	"github.com/tasknet/taskrt/internal/status"
	"github.com/tasknet/taskrt/internal/task"
)

// Channel is a sink for task results. The scheduler calls OnResult at
// most once per task, on the same tick the task terminates.
type Channel interface {
	OnResult(initiatorID uint8, uid protocol.UID, env envelope.Envelope, code status.Code)
}

// record is one live task instance plus its bookkeeping. The scheduler
// owns every record exclusively from register to reap.
type record struct {
	hooks       task.Hooks
	state       task.State
	initiatorID uint8
	uid         protocol.UID
	channel     Channel
	reap        bool
}

// Scheduler is the task manager: it registers tasks, enforces legal state
// transitions, drives one lifecycle step per tick per task, delivers
// results, and reaps finished entries.
type Scheduler struct {
	registry *registry.Registry
	records  []*record
	inTick   bool
}

// New returns a Scheduler that looks up task constructors in reg.
func New(reg *registry.Registry) *Scheduler {
	return &Scheduler{registry: reg}
}

// findActive returns the live record for uid, if any.
func (s *Scheduler) findActive(uid protocol.UID) *record {
	for _, rec := range s.records {
		if rec.uid == uid {
			return rec
		}
	}
	return nil
}

// RegisterTask constructs and appends a task record for uid. See the
// reject table in the package doc comment's source (the scheduler
// component design) for the exact precedence of failure codes.
func (s *Scheduler) RegisterTask(channel Channel, initiatorID uint8, uid protocol.UID, params envelope.View) status.Code {
	if s.inTick {
		observability.RecordTaskRegister(status.ReentrancyConflict.String())
		return status.ReentrancyConflict
	}
	if channel == nil {
		observability.RecordTaskRegister(status.ChannelNull.String())
		return status.ChannelNull
	}
	if s.findActive(uid) != nil {
		observability.RecordTaskRegister(status.DuplicateTask.String())
		return status.DuplicateTask
	}
	entry, ok := s.registry.Find(uid)
	if !ok {
		observability.RecordTaskRegister(status.TaskUnknown.String())
		return status.TaskUnknown
	}
	hooks, err := entry.Make(params)
	if err != nil {
		observability.RecordTaskRegister(status.InvalidParams.String())
		return status.InvalidParams
	}
	s.records = append(s.records, &record{
		hooks:       hooks,
		state:       task.Idle,
		initiatorID: initiatorID,
		uid:         uid,
		channel:     channel,
	})
	observability.RecordTaskRegister(status.OK.String())
	return status.OK
}

// PauseTask marks uid's record paused. Rejected if the task is unknown,
// finished, aborted, already paused, or has never been started.
func (s *Scheduler) PauseTask(uid protocol.UID) status.Code {
	if s.inTick {
		return status.ReentrancyConflict
	}
	rec := s.findActive(uid)
	if rec == nil {
		return status.TaskNotRegistered
	}
	switch {
	case rec.state.Has(task.Finished):
		return status.TaskAlreadyFinished
	case rec.state.Has(task.Aborted):
		return status.TaskAlreadyAborted
	case rec.state.Has(task.Paused):
		return status.TaskAlreadyPaused
	case !rec.state.Has(task.Started):
		return status.TaskNotRunning
	}
	// Only the request bit is set here; the next tick's pause edge calls
	// on_pause and applies SetPaused.
	rec.state = rec.state | task.Paused
	return status.OK
}

// ResumeTask marks uid's record resumed. Rejected if the task is unknown,
// finished, aborted, already running, already resumed, or has never been
// started — the last condition is not enumerated in the reject table the
// component design states for resume_task, but is required to preserve
// the invariant that on_start precedes every other hook: without it, a
// never-started idle task could be resumed straight into on_execute.
func (s *Scheduler) ResumeTask(uid protocol.UID) status.Code {
	if s.inTick {
		return status.ReentrancyConflict
	}
	rec := s.findActive(uid)
	if rec == nil {
		return status.TaskNotRegistered
	}
	switch {
	case rec.state.Has(task.Finished):
		return status.TaskAlreadyFinished
	case rec.state.Has(task.Aborted):
		return status.TaskAlreadyAborted
	case rec.state.Has(task.Running):
		return status.TaskAlreadyRunning
	case rec.state.Has(task.Resumed):
		return status.TaskAlreadyResumed
	case !rec.state.Has(task.Started):
		return status.TaskNotRunning
	}
	// Only the request bit is set here; the next tick's resume edge calls
	// on_resume and applies SetResumed.
	rec.state = rec.state | task.Resumed
	return status.OK
}

// AbortTask marks uid's record aborted. Rejected if the task is unknown,
// finished, or already aborted. Abort is sticky and cooperative: the task
// is not removed until the next Update call runs its on_complete(true).
func (s *Scheduler) AbortTask(uid protocol.UID) status.Code {
	if s.inTick {
		return status.ReentrancyConflict
	}
	rec := s.findActive(uid)
	if rec == nil {
		return status.TaskNotRegistered
	}
	switch {
	case rec.state.Has(task.Finished):
		return status.TaskAlreadyFinished
	case rec.state.Has(task.Aborted):
		return status.TaskAlreadyAborted
	}
	rec.state = rec.state.SetAborted()
	return status.OK
}

// Update runs one tick: a single pass over every record in insertion
// order applying the first matching clause, followed by compaction of
// reaped records.
func (s *Scheduler) Update() {
	observability.RecordSchedulerTick()
	s.inTick = true
	for _, rec := range s.records {
		s.tickRecord(rec)
	}
	s.inTick = false
	s.compact()
}

// tickRecord applies one record's lifecycle step for this tick.
func (s *Scheduler) tickRecord(rec *record) {
	justStarted := false
	if rec.state.Has(task.Idle) && !rec.state.Has(task.Started) {
		rec.state = rec.state.SetRunning().SetStarted()
		rec.hooks.OnStart()
		justStarted = true
	}

	switch {
	case rec.state.Has(task.Aborted):
		env, code := rec.hooks.OnComplete(true)
		s.deliver(rec, env, code)
	case rec.hooks.IsFinished():
		env, code := rec.hooks.OnComplete(false)
		s.deliver(rec, env, code)
	case justStarted:
		// Clause 1 falls through only to the termination checks above;
		// no on_execute and no pause/resume edge on the same tick a
		// task starts.
	case rec.state.Has(task.Paused) && rec.state.Has(task.Running):
		rec.hooks.OnPause()
		rec.state = rec.state.SetPaused()
	case rec.state.Has(task.Resumed) && rec.state.Has(task.Idle):
		rec.hooks.OnResume()
		rec.state = rec.state.SetResumed()
	case rec.state.Has(task.Running):
		rec.hooks.OnExecute()
	}
}

func (s *Scheduler) deliver(rec *record, env envelope.Envelope, code status.Code) {
	rec.state = rec.state.SetFinished()
	rec.reap = true
	observability.RecordTaskReaped()
	rec.channel.OnResult(rec.initiatorID, rec.uid, env, code)
}

func (s *Scheduler) compact() {
	kept := s.records[:0]
	for _, rec := range s.records {
		if !rec.reap {
			kept = append(kept, rec)
		}
	}
	s.records = kept
}

// Snapshot is a read-only view of one task record, for introspection
// (e.g. a debug HTTP surface) outside the hot tick path.
type Snapshot struct {
	UID         protocol.UID `json:"uid"`
	State       task.State   `json:"state"`
	InitiatorID uint8        `json:"initiator_id"`
}

// Snapshots returns one Snapshot per currently live task record, in
// insertion order.
func (s *Scheduler) Snapshots() []Snapshot {
	out := make([]Snapshot, len(s.records))
	for i, rec := range s.records {
		out[i] = Snapshot{UID: rec.uid, State: rec.state, InitiatorID: rec.initiatorID}
	}
	return out
}
