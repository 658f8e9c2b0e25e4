package sim

import "fmt"

// Occupant is anything that can wait in a Queue. Membership bookkeeping
// lives on the occupant's Process, which also guarantees an occupant is in
// at most one queue at a time.
type Occupant interface {
	Proc() *Process
}

// QueueStats accumulates per-queue wait times, recorded from entry to
// departure. They are reporting data only; correctness never depends on
// them.
type QueueStats struct {
	Entries    int     // total successful Enter calls
	Departures int     // total Leave/Pop removals
	TotalWait  float64 // summed wait of departed items
	MaxWait    float64 // longest single wait among departed items
}

// MeanWait returns the average wait of departed items, or 0 before any
// departure.
func (s QueueStats) MeanWait() float64 {
	if s.Departures == 0 {
		return 0
	}
	return s.TotalWait / float64(s.Departures)
}

// Queue is an ordered FIFO collection of waiting occupants with an optional
// capacity bound. Entries are removed only explicitly, via Leave or Pop.
type Queue struct {
	env       *Environment
	name      string
	maxLength int // 0 = unbounded
	items     []Occupant
	stats     QueueStats
}

// Name returns the queue name given at creation.
func (q *Queue) Name() string { return q.name }

// Len returns the number of occupants. O(1).
func (q *Queue) Len() int { return len(q.items) }

// IsEmpty reports whether the queue has no occupants. O(1).
func (q *Queue) IsEmpty() bool { return len(q.items) == 0 }

// Stats returns the accumulated wait-time statistics.
func (q *Queue) Stats() QueueStats { return q.stats }

// Enter appends the occupant at the tail. Fails with ErrCapacityExceeded
// when a capacity bound is set and reached, and with ErrAlreadyQueued when
// the occupant is already a member of any queue.
func (q *Queue) Enter(occ Occupant) error {
	p := occ.Proc()
	if p.queue != nil {
		return fmt.Errorf("enter %q: %q: %w", q.name, p.name, ErrAlreadyQueued)
	}
	if q.maxLength > 0 && len(q.items) >= q.maxLength {
		return fmt.Errorf("enter %q: length %d: %w", q.name, len(q.items), ErrCapacityExceeded)
	}
	p.queue = q
	p.enteredAt = q.env.now
	q.items = append(q.items, occ)
	q.stats.Entries++
	return nil
}

// Leave removes a specific member. Fails with ErrNotFound if the occupant
// is not in this queue.
func (q *Queue) Leave(occ Occupant) error {
	p := occ.Proc()
	if p.queue != q {
		return fmt.Errorf("leave %q: %q: %w", q.name, p.name, ErrNotFound)
	}
	for i, item := range q.items {
		if item.Proc() == p {
			q.items = append(q.items[:i], q.items[i+1:]...)
			q.depart(p)
			return nil
		}
	}
	return fmt.Errorf("leave %q: %q: %w", q.name, p.name, ErrNotFound)
}

// Pop removes and returns the head occupant (FCFS). Fails with
// ErrEmptyQueue when empty; callers must guard with Len or IsEmpty first.
func (q *Queue) Pop() (Occupant, error) {
	if len(q.items) == 0 {
		return nil, fmt.Errorf("pop %q: %w", q.name, ErrEmptyQueue)
	}
	occ := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	q.depart(occ.Proc())
	return occ, nil
}

// Peek returns the head occupant without removing it, or nil when empty.
func (q *Queue) Peek() Occupant {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[0]
}

func (q *Queue) depart(p *Process) {
	wait := q.env.now - p.enteredAt
	q.stats.Departures++
	q.stats.TotalWait += wait
	if wait > q.stats.MaxWait {
		q.stats.MaxWait = wait
	}
	p.queue = nil
}
