package metrics

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCount(t *testing.T, h prometheus.Observer) uint64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, h.(prometheus.Metric).Write(&m))
	return m.GetHistogram().GetSampleCount()
}

func counterValue(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	c, err := vec.GetMetricWithLabelValues(labels...)
	require.NoError(t, err)
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r)

	assert.NotNil(t, r.SolvesTotal)
	assert.NotNil(t, r.SolveDuration)
	assert.NotNil(t, r.GraphNodes)
	assert.NotNil(t, r.GraphEdges)
	assert.NotNil(t, r.SolutionsFound)
	assert.NotNil(t, r.MazeFileOperationsTotal)
	assert.NotNil(t, r.GetPrometheusRegistry())
}

func TestNewRegistry_Independent(t *testing.T) {
	a, b := NewRegistry(), NewRegistry()
	a.RecordSolve("solve", ResultFound, time.Millisecond, 1)

	assert.Equal(t, 1.0, counterValue(t, a.SolvesTotal, "solve", ResultFound))
	assert.Equal(t, 0.0, counterValue(t, b.SolvesTotal, "solve", ResultFound))
}

func TestDefaultRegistry(t *testing.T) {
	assert.Same(t, DefaultRegistry(), DefaultRegistry())
}

func TestRecordSolve(t *testing.T) {
	r := NewRegistry()

	r.RecordSolve("solve", ResultFound, 2*time.Millisecond, 1)
	r.RecordSolve("solve_all", ResultFound, time.Millisecond, 3)
	r.RecordSolve("solve", ResultNone, time.Millisecond, 0)
	r.RecordSolve("solve", ResultError, time.Millisecond, 0)

	assert.Equal(t, 1.0, counterValue(t, r.SolvesTotal, "solve", ResultFound))
	assert.Equal(t, 1.0, counterValue(t, r.SolvesTotal, "solve_all", ResultFound))
	assert.Equal(t, 1.0, counterValue(t, r.SolvesTotal, "solve", ResultNone))
	assert.Equal(t, 1.0, counterValue(t, r.SolvesTotal, "solve", ResultError))
	assert.Equal(t, uint64(3), sampleCount(t, r.SolveDuration.WithLabelValues("solve")))
	assert.Equal(t, uint64(1), sampleCount(t, r.SolveDuration.WithLabelValues("solve_all")))

	// Errors do not count towards solutions found.
	assert.Equal(t, uint64(3), sampleCount(t, r.SolutionsFound))
}

func TestRecordGraph(t *testing.T) {
	r := NewRegistry()
	r.RecordGraph(12, 22)
	r.RecordGraph(8, 16)

	assert.Equal(t, uint64(2), sampleCount(t, r.GraphNodes))
	assert.Equal(t, uint64(2), sampleCount(t, r.GraphEdges))
}

func TestRecordMazeFile(t *testing.T) {
	r := NewRegistry()
	r.RecordMazeFile("load", nil, 25)
	r.RecordMazeFile("load", errors.New("boom"), 0)

	assert.Equal(t, 1.0, counterValue(t, r.MazeFileOperationsTotal, "load", "ok"))
	assert.Equal(t, 1.0, counterValue(t, r.MazeFileOperationsTotal, "load", ResultError))
	assert.Equal(t, uint64(1), sampleCount(t, r.MazeFileBytes.WithLabelValues("load")))
}

func TestWriteText(t *testing.T) {
	r := NewRegistry()
	r.RecordSolve("solve", ResultFound, time.Millisecond, 1)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, `lvmaze_solves_total{operation="solve",result="found"} 1`)
	assert.Contains(t, out, "# TYPE lvmaze_solve_duration_seconds histogram")
}
