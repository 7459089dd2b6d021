// Package telemetry collects per-frame statistics and phase timings for the
// visualizer, with structured logging and CSV output.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// FrameStats holds the measurements of a single simulation tick.
type FrameStats struct {
	Tick            int32
	SimTime         float64
	GridWidth       int
	GridHeight      int
	Isolines        int
	MinValue        float64
	MaxValue        float64
	ContourVertices int
	ContourSegments int
}

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Settings at window end
	GridWidth  int `csv:"grid_w"`
	GridHeight int `csv:"grid_h"`
	Isolines   int `csv:"isolines"`

	// Field range over the window
	MinValueMean float64 `csv:"min_value_mean"`
	MaxValueMean float64 `csv:"max_value_mean"`
	SpanMean     float64 `csv:"span_mean"`
	SpanStd      float64 `csv:"span_std"`

	// Contour output size distribution
	SegmentsMean float64 `csv:"segments_mean"`
	SegmentsP10  float64 `csv:"segments_p10"`
	SegmentsP50  float64 `csv:"segments_p50"`
	SegmentsP90  float64 `csv:"segments_p90"`
	VerticesMean float64 `csv:"vertices_mean"`
}

// Quantile returns the p-th empirical quantile of values. p should be in
// [0, 1]. Returns 0 for an empty slice.
func Quantile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("grid_w", s.GridWidth),
		slog.Int("grid_h", s.GridHeight),
		slog.Int("isolines", s.Isolines),
		slog.Float64("min_value_mean", s.MinValueMean),
		slog.Float64("max_value_mean", s.MaxValueMean),
		slog.Float64("span_mean", s.SpanMean),
		slog.Float64("span_std", s.SpanStd),
		slog.Float64("segments_mean", s.SegmentsMean),
		slog.Float64("segments_p10", s.SegmentsP10),
		slog.Float64("segments_p50", s.SegmentsP50),
		slog.Float64("segments_p90", s.SegmentsP90),
		slog.Float64("vertices_mean", s.VerticesMean),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"grid_w", s.GridWidth,
		"grid_h", s.GridHeight,
		"isolines", s.Isolines,
		"min_value_mean", s.MinValueMean,
		"max_value_mean", s.MaxValueMean,
		"span_mean", s.SpanMean,
		"span_std", s.SpanStd,
		"segments_mean", s.SegmentsMean,
		"segments_p10", s.SegmentsP10,
		"segments_p50", s.SegmentsP50,
		"segments_p90", s.SegmentsP90,
		"vertices_mean", s.VerticesMean,
	)
}
