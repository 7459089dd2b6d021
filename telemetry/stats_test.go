package telemetry

import (
	"math"
	"testing"
)

func TestQuantile(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.5, 5.0},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.0},
		{"unsorted input", []float64{9, 1, 5, 3, 7}, 1.0, 9.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quantile(tt.values, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Quantile(%v, %v) = %v, want %v", tt.values, tt.p, got, tt.want)
			}
		})
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(1.0)

	frames := []FrameStats{
		{Tick: 1, SimTime: 0.3, GridWidth: 40, GridHeight: 30, Isolines: 5, MinValue: 0.0, MaxValue: 0.4, ContourVertices: 100, ContourSegments: 10},
		{Tick: 2, SimTime: 0.6, GridWidth: 40, GridHeight: 30, Isolines: 5, MinValue: 0.1, MaxValue: 0.5, ContourVertices: 200, ContourSegments: 20},
		{Tick: 3, SimTime: 1.1, GridWidth: 60, GridHeight: 45, Isolines: 7, MinValue: 0.2, MaxValue: 0.6, ContourVertices: 300, ContourSegments: 30},
	}
	for _, f := range frames {
		c.Record(f)
	}

	if !c.WindowElapsed(1.1) {
		t.Fatal("window should have elapsed at sim time 1.1")
	}

	ws := c.Flush(3, 1.1)

	if ws.WindowEndTick != 3 {
		t.Errorf("window end tick = %d, want 3", ws.WindowEndTick)
	}
	// Settings reflect the last recorded frame
	if ws.GridWidth != 60 || ws.GridHeight != 45 || ws.Isolines != 7 {
		t.Errorf("settings = %dx%d/%d, want 60x45/7", ws.GridWidth, ws.GridHeight, ws.Isolines)
	}
	if math.Abs(ws.SegmentsMean-20) > 0.001 {
		t.Errorf("segments mean = %v, want 20", ws.SegmentsMean)
	}
	if math.Abs(ws.VerticesMean-200) > 0.001 {
		t.Errorf("vertices mean = %v, want 200", ws.VerticesMean)
	}
	// Span is max-min per frame: 0.4 each
	if math.Abs(ws.SpanMean-0.4) > 0.001 {
		t.Errorf("span mean = %v, want 0.4", ws.SpanMean)
	}
	if ws.SpanStd > 0.001 {
		t.Errorf("span std = %v, want ~0", ws.SpanStd)
	}
}

func TestCollectorResetsAfterFlush(t *testing.T) {
	c := NewCollector(1.0)

	c.Record(FrameStats{Tick: 1, SimTime: 0.5, ContourSegments: 10})
	c.Flush(1, 1.0)

	if c.WindowElapsed(1.5) {
		t.Error("window should not have elapsed right after flush")
	}

	ws := c.Flush(2, 2.0)
	if ws.WindowStartTick != 1 {
		t.Errorf("window start tick = %d, want 1", ws.WindowStartTick)
	}
	if ws.SegmentsMean != 0 {
		t.Errorf("segments mean after empty window = %v, want 0", ws.SegmentsMean)
	}
}

func TestCollectorEmptyFlush(t *testing.T) {
	c := NewCollector(2.0)
	ws := c.Flush(0, 0)

	if ws.SegmentsMean != 0 || ws.SpanMean != 0 {
		t.Error("empty window should aggregate to zeros")
	}
}
