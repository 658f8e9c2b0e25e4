package sim

// EventKind names the operation that scheduled a wake-up. It exists for
// tracing and logging; the kernel treats all kinds identically.
type EventKind string

const (
	// KindHold is a resume scheduled by Process.Hold.
	KindHold EventKind = "hold"
	// KindActivate is a resume scheduled by Process.Activate / ActivateAt.
	KindActivate EventKind = "activate"
	// KindStandby is a same-time yield scheduled by Process.Standby.
	KindStandby EventKind = "standby"
)

// event is a pending wake-up owned by the environment's heap. Cancellation is
// lazy: the heap entry stays behind and is skipped on pop when it is no
// longer the process's pending event.
type event struct {
	due      float64
	priority int
	seq      int64
	proc     *Process
	kind     EventKind
}

// eventQueue implements heap.Interface and orders events by due time, then
// explicit priority (lower fires first), then insertion sequence. The
// sequence tie-break makes replay deterministic: of two events at the same
// time and priority, the one scheduled earlier fires first.
type eventQueue []*event

func (eq eventQueue) Len() int { return len(eq) }

func (eq eventQueue) Less(i, j int) bool {
	if eq[i].due != eq[j].due {
		return eq[i].due < eq[j].due
	}
	if eq[i].priority != eq[j].priority {
		return eq[i].priority < eq[j].priority
	}
	return eq[i].seq < eq[j].seq
}

func (eq eventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *eventQueue) Push(x any) {
	*eq = append(*eq, x.(*event))
}

func (eq *eventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*eq = old[0 : n-1]
	return item
}
