// Package trace records the kernel's event firings for replay inspection
// and debugging. Tracing is off unless a Recorder is attached to the
// Environment, in which case every fired event appends one Record.
package trace

// Record is one fired event: when it fired, its insertion sequence number,
// which process it woke, and the operation that scheduled it.
type Record struct {
	Time    float64
	Seq     int64
	Process string
	Kind    string
}

// Recorder collects event records during a run.
type Recorder struct {
	records []Record
}

// NewRecorder creates a Recorder ready for recording.
func NewRecorder() *Recorder {
	return &Recorder{records: make([]Record, 0)}
}

// Record appends one event record.
func (r *Recorder) Record(rec Record) {
	r.records = append(r.records, rec)
}

// Records returns the recorded events in firing order. The returned slice
// is the recorder's internal storage; callers must not modify it.
func (r *Recorder) Records() []Record {
	return r.records
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	return len(r.records)
}
