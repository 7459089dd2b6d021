package field

import (
	"math"
	"testing"
)

func TestSampleParallelBuffers(t *testing.T) {
	g, err := NewGrid(8, 6)
	if err != nil {
		t.Fatal(err)
	}
	f := New([]Source{{Pos: Vec2{X: 0, Y: 0}, R: 1.5, C: 1.2}}, 5, 5)

	s := Sample(g, f)

	if len(s.Values) != len(g.Positions) {
		t.Errorf("len(Values) = %d, want %d", len(s.Values), len(g.Positions))
	}
	if len(s.Colors) != len(g.Positions) {
		t.Errorf("len(Colors) = %d, want %d", len(s.Colors), len(g.Positions))
	}
}

func TestSampleMinMax(t *testing.T) {
	g, err := NewGrid(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	f := New([]Source{
		{Pos: Vec2{X: 1, Y: -0.3}, R: 1.2, C: 1.2},
		{Pos: Vec2{X: -1, Y: 0}, R: 0.9, C: 1.5},
	}, 5, 5)

	s := Sample(g, f)

	if s.Min > s.Max {
		t.Fatalf("Min %v > Max %v", s.Min, s.Max)
	}
	for i, v := range s.Values {
		if v < s.Min || v > s.Max {
			t.Errorf("value %d = %v outside [%v, %v]", i, v, s.Min, s.Max)
		}
	}
}

func TestSampleColorFormula(t *testing.T) {
	g, err := NewGrid(6, 4)
	if err != nil {
		t.Fatal(err)
	}
	f := New([]Source{{Pos: Vec2{X: 0.5, Y: 0.5}, R: 2, C: 1}}, 5, 5)

	s := Sample(g, f)

	span := s.Max - s.Min
	if span == 0 {
		t.Fatal("expected a non-flat sample")
	}

	for i, v := range s.Values {
		tt := (v - s.Min) / span
		want := Color{R: 1 - 0.4*tt, G: 1 - 0.6*tt, B: 1 - tt}
		got := s.Colors[i]

		if math.Abs(float64(got.R-want.R)) > 1e-6 ||
			math.Abs(float64(got.G-want.G)) > 1e-6 ||
			math.Abs(float64(got.B-want.B)) > 1e-6 {
			t.Fatalf("color %d = %v, want %v", i, got, want)
		}
	}
}

func TestSampleFlatField(t *testing.T) {
	g, err := NewGrid(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	// No sources: the field is identically zero, min == max.
	f := New(nil, 5, 5)

	s := Sample(g, f)

	if s.Min != s.Max {
		t.Fatalf("flat field sampled min %v != max %v", s.Min, s.Max)
	}

	// Degenerate normalization must yield the base tint, never NaN.
	want := Color{R: 1, G: 1, B: 1}
	for i, c := range s.Colors {
		if c != want {
			t.Fatalf("color %d = %v, want %v", i, c, want)
		}
	}
}
