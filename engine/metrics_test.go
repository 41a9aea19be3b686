package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BaSui01/formflow/types"
)

func TestMetricsRecorderWindowCap(t *testing.T) {
	r := NewMetricsRecorder(100)

	for i := 0; i < 150; i++ {
		r.Record("chair", "japanese", types.PerformanceMetrics{
			GenerationTime: time.Duration(i) * time.Millisecond,
			PolygonCount:   i,
		})
	}

	report := r.Report()
	require.Contains(t, report, "chair-japanese")
	got := report["chair-japanese"]

	assert.Equal(t, 100, got.Count)
	// Samples 50..149 survive; their mean polygon count is 99.5.
	assert.InDelta(t, 99.5, got.MeanPolygonCount, 1e-9)
}

func TestMetricsRecorderAggregation(t *testing.T) {
	r := NewMetricsRecorder(10)

	r.Record("table", "modern", types.PerformanceMetrics{
		GenerationTime: 10 * time.Millisecond, PolygonCount: 60, MemoryBytes: 1000,
	})
	r.Record("table", "modern", types.PerformanceMetrics{
		GenerationTime: 30 * time.Millisecond, PolygonCount: 120, MemoryBytes: 3000,
	})

	got := r.Report()["table-modern"]
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, 20*time.Millisecond, got.MeanGenerationTime)
	assert.InDelta(t, 90, got.MeanPolygonCount, 1e-9)
	assert.InDelta(t, 2000, got.MeanMemoryBytes, 1e-9)
}

func TestMetricsRecorderKeysIndependent(t *testing.T) {
	r := NewMetricsRecorder(10)

	r.Record("chair", "japanese", types.PerformanceMetrics{PolygonCount: 10})
	r.Record("chair", "modern", types.PerformanceMetrics{PolygonCount: 90})

	report := r.Report()
	assert.Len(t, report, 2)
	assert.InDelta(t, 10, report["chair-japanese"].MeanPolygonCount, 1e-9)
	assert.InDelta(t, 90, report["chair-modern"].MeanPolygonCount, 1e-9)
}

func TestMetricsRecorderReset(t *testing.T) {
	r := NewMetricsRecorder(10)
	r.Record("chair", "japanese", types.PerformanceMetrics{PolygonCount: 10})

	r.Reset()
	assert.Empty(t, r.Report())
}

func TestMetricsRecorderDefaultWindow(t *testing.T) {
	r := NewMetricsRecorder(0)
	for i := 0; i < 250; i++ {
		r.Record("lamp", "french", types.PerformanceMetrics{})
	}
	assert.Equal(t, 100, r.Report()["lamp-french"].Count)
}
