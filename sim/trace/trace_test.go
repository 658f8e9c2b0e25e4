package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorder_AppendsInOrder(t *testing.T) {
	r := NewRecorder()
	r.Record(Record{Time: 0, Seq: 1, Process: "machine_0", Kind: "activate"})
	r.Record(Record{Time: 2, Seq: 3, Process: "machine_0", Kind: "hold"})

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, "activate", r.Records()[0].Kind)
	assert.Equal(t, 2.0, r.Records()[1].Time)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(NewRecorder())
	assert.Equal(t, 0, s.Events)
	assert.Empty(t, s.KindCounts)

	assert.NotNil(t, Summarize(nil))
}

func TestSummarize_AggregatesKindsAndProcesses(t *testing.T) {
	r := NewRecorder()
	r.Record(Record{Time: 0, Seq: 1, Process: "machine_0", Kind: "activate"})
	r.Record(Record{Time: 1, Seq: 2, Process: "part_0", Kind: "activate"})
	r.Record(Record{Time: 5, Seq: 3, Process: "machine_0", Kind: "hold"})

	s := Summarize(r)
	assert.Equal(t, 3, s.Events)
	assert.Equal(t, 0.0, s.Start)
	assert.Equal(t, 5.0, s.End)
	assert.Equal(t, 2, s.KindCounts["activate"])
	assert.Equal(t, 1, s.KindCounts["hold"])
	assert.Equal(t, 2, s.ProcessCount["machine_0"])
}
