package telemetry

import "gonum.org/v1/gonum/stat"

// Collector accumulates per-frame stats and aggregates them into window
// statistics once the configured window of simulation time has elapsed.
type Collector struct {
	windowSec       float64
	windowStartTick int32
	windowStartTime float64

	frames []FrameStats
}

// NewCollector creates a collector aggregating over windowSec of sim time.
func NewCollector(windowSec float64) *Collector {
	if windowSec <= 0 {
		windowSec = 2.0
	}
	return &Collector{windowSec: windowSec}
}

// Record adds one frame's measurements to the current window.
func (c *Collector) Record(f FrameStats) {
	c.frames = append(c.frames, f)
}

// WindowElapsed reports whether the current window is complete.
func (c *Collector) WindowElapsed(simTime float64) bool {
	return simTime-c.windowStartTime >= c.windowSec
}

// Flush aggregates the current window into WindowStats and starts a new
// window. Settings fields reflect the last recorded frame.
func (c *Collector) Flush(endTick int32, simTime float64) WindowStats {
	ws := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   endTick,
		SimTimeSec:      simTime,
	}

	if n := len(c.frames); n > 0 {
		last := c.frames[n-1]
		ws.GridWidth = last.GridWidth
		ws.GridHeight = last.GridHeight
		ws.Isolines = last.Isolines

		mins := make([]float64, n)
		maxs := make([]float64, n)
		spans := make([]float64, n)
		segments := make([]float64, n)
		vertices := make([]float64, n)
		for i, f := range c.frames {
			mins[i] = f.MinValue
			maxs[i] = f.MaxValue
			spans[i] = f.MaxValue - f.MinValue
			segments[i] = float64(f.ContourSegments)
			vertices[i] = float64(f.ContourVertices)
		}

		ws.MinValueMean = stat.Mean(mins, nil)
		ws.MaxValueMean = stat.Mean(maxs, nil)
		ws.SpanMean = stat.Mean(spans, nil)
		if n > 1 {
			ws.SpanStd = stat.StdDev(spans, nil)
		}
		ws.SegmentsMean = stat.Mean(segments, nil)
		ws.SegmentsP10 = Quantile(segments, 0.10)
		ws.SegmentsP50 = Quantile(segments, 0.50)
		ws.SegmentsP90 = Quantile(segments, 0.90)
		ws.VerticesMean = stat.Mean(vertices, nil)
	}

	c.frames = c.frames[:0]
	c.windowStartTick = endTick
	c.windowStartTime = simTime

	return ws
}
