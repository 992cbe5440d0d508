package status

import "fmt"

// Code is a status byte partitioned into three ranges: manager/API
// (0x00..0x1F), task/runtime (0x20..0x6F) and custom (0x70..0xFF).
type Code uint8

// Manager/API range.
const (
	OK Code = iota
	TaskNotRegistered
	TaskAlreadyRunning
	TaskAlreadyPaused
	TaskAlreadyResumed
	TaskNotPaused
	TaskNotRunning
	InvalidStateTransition
	TaskAlreadyFinished
	TaskAlreadyAborted
	PermissionDenied
	WouldBlock
	ReentrancyConflict
	ChannelNull
	ChannelError
	ConstructorNotFound
	InvalidParams
	OutOfMemory
	TaskLimitReached
	DuplicateTask
	TaskUnknown
	InternalError
)

// Task/runtime range.
const (
	TaskFinished Code = 0x20 + iota
	TaskAborted
	TaskTimeout
	TaskIOError
	TaskValidationFailed
	TaskDependencyMissing
	TaskBusy
)

// CustomRangeStart marks the beginning of the user-defined status range.
const CustomRangeStart Code = 0x70

var names = map[Code]string{
	OK:                     "ok",
	TaskNotRegistered:      "task_not_registered",
	TaskAlreadyRunning:     "task_already_running",
	TaskAlreadyPaused:      "task_already_paused",
	TaskAlreadyResumed:     "task_already_resumed",
	TaskNotPaused:          "task_not_paused",
	TaskNotRunning:         "task_not_running",
	InvalidStateTransition: "invalid_state_transition",
	TaskAlreadyFinished:    "task_already_finished",
	TaskAlreadyAborted:     "task_already_aborted",
	PermissionDenied:       "permission_denied",
	WouldBlock:             "would_block",
	ReentrancyConflict:     "reentrancy_conflict",
	ChannelNull:            "channel_null",
	ChannelError:           "channel_error",
	ConstructorNotFound:    "constructor_not_found",
	InvalidParams:          "invalid_params",
	OutOfMemory:            "out_of_memory",
	TaskLimitReached:       "task_limit_reached",
	DuplicateTask:          "duplicate_task",
	TaskUnknown:            "task_unknown",
	InternalError:          "internal_error",
	TaskFinished:           "task_finished",
	TaskAborted:            "task_aborted",
	TaskTimeout:            "task_timeout",
	TaskIOError:            "task_io_error",
	TaskValidationFailed:   "task_validation_failed",
	TaskDependencyMissing:  "task_dependency_missing",
	TaskBusy:               "task_busy",
}

// String renders the code's mnemonic, "custom(0xNN)" for an unnamed code
// in the user-defined range, or "status(0xNN)" for any other unnamed code.
func (c Code) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	if c.IsCustom() {
		return fmt.Sprintf("custom(0x%02X)", uint8(c))
	}
	return fmt.Sprintf("status(0x%02X)", uint8(c))
}

// Error satisfies the error interface so Code can be returned directly
// from scheduler operations. OK.Error() still renders "ok" — callers that
// care should compare against OK rather than check for a nil error.
func (c Code) Error() string {
	return c.String()
}

// IsManager reports whether c falls in the manager/API range 0x00..0x1F.
func (c Code) IsManager() bool {
	return c <= 0x1F
}

// IsTask reports whether c falls in the task/runtime range 0x20..0x6F.
func (c Code) IsTask() bool {
	return c >= 0x20 && c <= 0x6F
}

// IsCustom reports whether c falls in the custom range 0x70..0xFF.
func (c Code) IsCustom() bool {
	return c >= CustomRangeStart
}
