package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Status is the scheduling state of a Process.
type Status int

const (
	// StatusData is the initial state: created, never scheduled.
	StatusData Status = iota
	// StatusScheduled means a wake-up event is pending.
	StatusScheduled
	// StatusCurrent means the process is the one currently executing.
	StatusCurrent
	// StatusStandby means the process yielded its slot at the current time.
	StatusStandby
	// StatusPassive means suspended indefinitely until another process
	// activates it.
	StatusPassive
	// StatusInterrupted means a pending wake-up was cancelled; the process
	// may be reactivated later.
	StatusInterrupted
	// StatusTerminated means the control flow has completed.
	StatusTerminated
)

func (s Status) String() string {
	switch s {
	case StatusData:
		return "data"
	case StatusScheduled:
		return "scheduled"
	case StatusCurrent:
		return "current"
	case StatusStandby:
		return "standby"
	case StatusPassive:
		return "passive"
	case StatusInterrupted:
		return "interrupted"
	case StatusTerminated:
		return "terminated"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Body is a process's control flow. It runs on its own goroutine and must
// suspend only through the Hold/Passivate/Standby methods of its Process.
// Any error returned from those methods (notably ErrStopped at shutdown)
// must be propagated up and out of the body.
type Body func(*Process) error

// Process is a suspendable unit of simulated execution: a machine, a part,
// a generator or publisher. The kernel owns its scheduling metadata; the
// body owns its local state.
type Process struct {
	env  *Environment
	name string

	status     Status
	resumeTime float64 // valid only while status == StatusScheduled
	pending    *event  // pending wake-up, nil if none

	queue     *Queue  // at most one queue membership
	enteredAt float64 // queue entry time, for wait statistics

	body    Body
	started bool
	// wake carries control from the scheduler to the process. A nil value
	// resumes normally; ErrStopped unwinds the goroutine.
	wake chan error
}

// Name returns the process name given at creation.
func (p *Process) Name() string { return p.name }

// Status returns the current scheduling state.
func (p *Process) Status() Status { return p.status }

// IsPassive reports whether the process is suspended waiting for an
// explicit Activate.
func (p *Process) IsPassive() bool { return p.status == StatusPassive }

// ResumeTime returns the pending wake-up time. Valid only while the process
// is scheduled.
func (p *Process) ResumeTime() float64 { return p.resumeTime }

// Queue returns the queue this process is currently a member of, or nil.
func (p *Process) Queue() *Queue { return p.queue }

// Proc makes *Process satisfy the Occupant interface so bare processes can
// wait in queues.
func (p *Process) Proc() *Process { return p }

// Hold suspends the calling process for the given simulated duration. It
// must be called by the process itself while current. The control flow
// resumes exactly here when the scheduled event fires.
func (p *Process) Hold(duration float64) error {
	if duration < 0 {
		return fmt.Errorf("hold %q: duration %v: %w", p.name, duration, ErrNegativeDuration)
	}
	if err := p.env.scheduleProcess(p, p.env.now+duration, 0, KindHold); err != nil {
		return err
	}
	return p.suspend()
}

// Passivate suspends the calling process indefinitely. It resumes only when
// another process (or external setup code) calls Activate on it. This is
// the rendezvous primitive for resource waiting.
func (p *Process) Passivate() error {
	p.env.cancelEvent(p)
	p.status = StatusPassive
	return p.suspend()
}

// Standby yields the calling process's slot: it reschedules itself at the
// current time with lowest urgency, letting every other event already due
// now fire first.
func (p *Process) Standby() error {
	if err := p.env.scheduleProcess(p, p.env.now, standbyPriority, KindStandby); err != nil {
		return err
	}
	p.status = StatusStandby
	return p.suspend()
}

// standbyPriority orders standby wake-ups after all ordinary events at the
// same time.
const standbyPriority = 1 << 20

// Activate schedules the process to resume at the current simulation time.
// If the target is already scheduled, its pending event is replaced
// (cancel-then-schedule). Activating a terminated process is an error.
func (p *Process) Activate() error {
	return p.ActivateAt(p.env.now)
}

// ActivateAt schedules the process to resume at the given simulation time.
func (p *Process) ActivateAt(t float64) error {
	if p.status == StatusTerminated {
		return fmt.Errorf("activate %q: %w", p.name, ErrTerminated)
	}
	p.env.cancelEvent(p)
	return p.env.scheduleProcess(p, t, 0, KindActivate)
}

// Cancel removes the process's pending wake-up without terminating it. The
// process moves to StatusInterrupted and may be reactivated later. Calling
// Cancel on a process with no pending event is a no-op: no error, no state
// change.
func (p *Process) Cancel() {
	if p.pending == nil {
		return
	}
	p.env.cancelEvent(p)
	p.status = StatusInterrupted
}

// suspend hands control back to the scheduler and blocks until the next
// wake-up. Returns ErrStopped when the environment shuts down.
func (p *Process) suspend() error {
	p.env.park <- struct{}{}
	return <-p.wake
}

// loop is the goroutine wrapper around the body. The first wake releases the
// body; the final park tells the scheduler the goroutine is done.
func (p *Process) loop() {
	err := <-p.wake
	if err == nil {
		err = p.body(p)
	}
	if err != nil && !errors.Is(err, ErrStopped) {
		logrus.Errorf("process %q failed: %v", p.name, err)
	}
	p.status = StatusTerminated
	p.env.park <- struct{}{}
}
