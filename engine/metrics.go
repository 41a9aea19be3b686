package engine

import (
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/BaSui01/formflow/types"
)

// defaultMetricsWindow is the per-key sample cap.
const defaultMetricsWindow = 100

// MetricsReport aggregates the current window for one "{type}-{culture}" key.
type MetricsReport struct {
	Count              int           `json:"count"`
	MeanGenerationTime time.Duration `json:"mean_generation_time"`
	MeanPolygonCount   float64       `json:"mean_polygon_count"`
	MeanMemoryBytes    float64       `json:"mean_memory_bytes"`
}

// MetricsRecorder keeps a bounded FIFO window of timing/size samples per
// "{type}-{culture}" key. Recording past the window drops the oldest sample
// first; reporting is read-only and never mutates stored samples.
type MetricsRecorder struct {
	mu      sync.Mutex
	window  int
	samples map[string][]types.PerformanceMetrics
}

// NewMetricsRecorder creates a recorder. windowSize <= 0 selects the
// default window of 100 samples.
func NewMetricsRecorder(windowSize int) *MetricsRecorder {
	if windowSize <= 0 {
		windowSize = defaultMetricsWindow
	}
	return &MetricsRecorder{
		window:  windowSize,
		samples: make(map[string][]types.PerformanceMetrics),
	}
}

// Record appends a sample for the (typeTag, culture) key, evicting the
// oldest sample when the window is full.
func (r *MetricsRecorder) Record(typeTag, culture string, sample types.PerformanceMetrics) {
	key := metricsKey(typeTag, culture)

	r.mu.Lock()
	defer r.mu.Unlock()

	window := append(r.samples[key], sample)
	if len(window) > r.window {
		window = window[len(window)-r.window:]
	}
	r.samples[key] = window
}

// Report aggregates every key's current window.
func (r *MetricsRecorder) Report() map[string]MetricsReport {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]MetricsReport, len(r.samples))
	for key, window := range r.samples {
		times := make([]float64, len(window))
		polygons := make([]float64, len(window))
		memory := make([]float64, len(window))
		for i, s := range window {
			times[i] = float64(s.GenerationTime)
			polygons[i] = float64(s.PolygonCount)
			memory[i] = float64(s.MemoryBytes)
		}
		out[key] = MetricsReport{
			Count:              len(window),
			MeanGenerationTime: time.Duration(stat.Mean(times, nil)),
			MeanPolygonCount:   stat.Mean(polygons, nil),
			MeanMemoryBytes:    stat.Mean(memory, nil),
		}
	}
	return out
}

// Reset drops all recorded samples.
func (r *MetricsRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples = make(map[string][]types.PerformanceMetrics)
}

func metricsKey(typeTag, culture string) string {
	return typeTag + "-" + culture
}
