package sim

import "errors"

// Predefined kernel errors. Kinds marked fatal indicate a logic bug in the
// caller; the rest are part of normal control flow.
var (
	// ErrNegativeDuration indicates Hold was called with a duration < 0 (fatal).
	ErrNegativeDuration = errors.New("sim: negative hold duration")

	// ErrInvalidTime indicates an event was scheduled before the current
	// simulation time (fatal).
	ErrInvalidTime = errors.New("sim: schedule time before current time")

	// ErrEmptySchedule indicates Advance was called with no pending events.
	// Run loops treat this as normal termination.
	ErrEmptySchedule = errors.New("sim: no pending events")

	// ErrEmptyQueue indicates Pop on an empty queue. The caller's loop guard
	// should have prevented this (fatal).
	ErrEmptyQueue = errors.New("sim: pop on empty queue")

	// ErrCapacityExceeded indicates Enter beyond the queue's maximum length.
	// Recoverable: the caller may retry later or reject the item.
	ErrCapacityExceeded = errors.New("sim: queue capacity exceeded")

	// ErrNotFound indicates Leave for an item that is not a queue member.
	ErrNotFound = errors.New("sim: item not in queue")

	// ErrAlreadyQueued indicates Enter for an item that is already a member
	// of some queue. Membership is exclusive.
	ErrAlreadyQueued = errors.New("sim: item already in a queue")

	// ErrTerminated indicates an operation on a process whose control flow
	// has already completed.
	ErrTerminated = errors.New("sim: process already terminated")

	// ErrStopped unwinds process goroutines when the environment shuts down.
	// Process bodies must propagate it; it is not a failure.
	ErrStopped = errors.New("sim: environment stopped")

	// ErrInterrupted wraps context cancellation so callers can distinguish an
	// operator interrupt from an ordinary run-to-completion.
	ErrInterrupted = errors.New("sim: run interrupted")
)
