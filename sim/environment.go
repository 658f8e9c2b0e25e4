package sim

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jobshop-sim/jobshop-sim/sim/trace"
)

// Environment holds the simulation clock, the event heap, and every process
// created in it. It is the explicit context object all components receive;
// there is no ambient global state.
//
// All kernel state is mutated either by the scheduler loop or by the single
// currently-running process, never concurrently, so no locking is required.
type Environment struct {
	now float64
	seq int64

	events  eventQueue
	pending int // live (non-cancelled) events in the heap

	procs []*Process
	// park receives one signal each time the current process suspends or
	// terminates, returning control to the scheduler.
	park chan struct{}

	pacer  *Pacer
	tracer *trace.Recorder
}

// NewEnvironment creates an empty environment at time zero.
func NewEnvironment() *Environment {
	return &Environment{
		events: make(eventQueue, 0),
		park:   make(chan struct{}),
	}
}

// Now returns the current simulation time.
func (env *Environment) Now() float64 { return env.now }

// SetPacer attaches a real-time pacer. A nil pacer (the default) runs the
// simulation as fast as possible.
func (env *Environment) SetPacer(p *Pacer) { env.pacer = p }

// SetTracer attaches an event trace recorder. A nil recorder disables
// tracing.
func (env *Environment) SetTracer(r *trace.Recorder) { env.tracer = r }

// NewProcess registers a process in StatusData. It is not scheduled until
// Activate or ActivateAt is called on it.
func (env *Environment) NewProcess(name string, body Body) *Process {
	p := &Process{
		env:  env,
		name: name,
		body: body,
		wake: make(chan error),
	}
	env.procs = append(env.procs, p)
	return p
}

// NewQueue creates a queue without a capacity bound.
func (env *Environment) NewQueue(name string) *Queue {
	return &Queue{env: env, name: name}
}

// NewBoundedQueue creates a queue that rejects entries beyond maxLength.
func (env *Environment) NewBoundedQueue(name string, maxLength int) *Queue {
	return &Queue{env: env, name: name, maxLength: maxLength}
}

// scheduleProcess inserts a wake-up event for p. Any previously pending
// event for p is cancelled first, so a process has at most one.
func (env *Environment) scheduleProcess(p *Process, due float64, priority int, kind EventKind) error {
	if due < env.now {
		return fmt.Errorf("schedule %q at %v (now %v): %w", p.name, due, env.now, ErrInvalidTime)
	}
	env.cancelEvent(p)
	env.seq++
	ev := &event{due: due, priority: priority, seq: env.seq, proc: p, kind: kind}
	heap.Push(&env.events, ev)
	env.pending++
	p.pending = ev
	p.status = StatusScheduled
	p.resumeTime = due
	return nil
}

// cancelEvent lazily cancels p's pending event, if any. The heap entry is
// discarded when it reaches the top.
func (env *Environment) cancelEvent(p *Process) {
	if p.pending == nil {
		return
	}
	p.pending = nil
	env.pending--
}

// popEvent removes and returns the earliest live event, skipping cancelled
// entries. Returns nil when no live events remain.
func (env *Environment) popEvent() *event {
	for env.events.Len() > 0 {
		ev := heap.Pop(&env.events).(*event)
		if ev.proc.pending == ev {
			ev.proc.pending = nil
			env.pending--
			return ev
		}
	}
	return nil
}

// nextDue reports the due time of the earliest live event without firing
// it. Cancelled entries encountered on the way are discarded.
func (env *Environment) nextDue() (float64, bool) {
	for env.events.Len() > 0 {
		ev := env.events[0]
		if ev.proc.pending == ev {
			return ev.due, true
		}
		heap.Pop(&env.events)
	}
	return 0, false
}

// Advance pops the earliest event, moves the clock to its due time, and runs
// the associated process until its next suspension point. Fails with
// ErrEmptySchedule when no events remain; time never moves backwards.
func (env *Environment) Advance() error {
	ev := env.popEvent()
	if ev == nil {
		return ErrEmptySchedule
	}
	env.now = ev.due
	if env.tracer != nil {
		env.tracer.Record(trace.Record{
			Time:    ev.due,
			Seq:     ev.seq,
			Process: ev.proc.name,
			Kind:    string(ev.kind),
		})
	}
	logrus.Debugf("t=%.3f fire %s %q", ev.due, ev.kind, ev.proc.name)
	env.fire(ev.proc)
	return nil
}

// fire hands control to p and blocks until it suspends or terminates.
// Exactly one process is current at any instant.
func (env *Environment) fire(p *Process) {
	p.status = StatusCurrent
	if !p.started {
		p.started = true
		go p.loop()
	}
	p.wake <- nil
	<-env.park
}

// Run advances events until no live events remain (quiescence) or ctx is
// cancelled. Quiescence returns nil; cancellation returns an error wrapping
// ErrInterrupted. In both cases every process goroutine is released before
// Run returns.
func (env *Environment) Run(ctx context.Context) error {
	return env.run(ctx, 0, false)
}

// RunUntil is Run with a horizon: the loop stops once the next event would
// fire after the given time, leaving that event pending and setting the
// clock to the horizon.
func (env *Environment) RunUntil(ctx context.Context, until float64) error {
	return env.run(ctx, until, true)
}

func (env *Environment) run(ctx context.Context, until float64, bounded bool) error {
	defer env.shutdown()
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrInterrupted, ctx.Err())
		default:
		}
		due, ok := env.nextDue()
		if !ok {
			return nil // quiescence: the schedule emptied, stop gracefully
		}
		if bounded && due > until {
			env.now = until
			return nil
		}
		if env.pacer != nil {
			if err := env.pacer.Pace(ctx, due); err != nil {
				return fmt.Errorf("%w: %w", ErrInterrupted, err)
			}
		}
		if err := env.Advance(); err != nil {
			return err
		}
	}
}

// shutdown unwinds every started, unterminated process goroutine by waking
// it with ErrStopped. In-flight machine cycles are abandoned, not rolled
// back.
func (env *Environment) shutdown() {
	for _, p := range env.procs {
		if !p.started || p.status == StatusTerminated {
			continue
		}
		p.wake <- ErrStopped
		<-env.park
	}
}
