package trace

// Summary aggregates statistics from a Recorder.
type Summary struct {
	Events       int
	Start        float64        // time of the first fired event
	End          float64        // time of the last fired event
	KindCounts   map[string]int // event kind → count
	ProcessCount map[string]int // process name → events fired for it
}

// Summarize computes aggregate statistics from a Recorder. Safe for nil or
// empty recorders (returns zero-value fields).
func Summarize(r *Recorder) *Summary {
	summary := &Summary{
		KindCounts:   make(map[string]int),
		ProcessCount: make(map[string]int),
	}
	if r == nil || len(r.records) == 0 {
		return summary
	}

	summary.Events = len(r.records)
	summary.Start = r.records[0].Time
	summary.End = r.records[len(r.records)-1].Time
	for _, rec := range r.records {
		summary.KindCounts[rec.Kind]++
		summary.ProcessCount[rec.Process]++
	}
	return summary
}
