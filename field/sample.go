package field

// Color is an RGB triple with float32 channels.
type Color struct {
	R, G, B float32
}

// SampledField holds one frame's field values at every grid vertex, the true
// min/max over the sample, and the derived per-vertex colors. Values and
// Colors are parallel to Grid.Positions.
type SampledField struct {
	Values []float32
	Colors []Color
	Min    float32
	Max    float32
}

// Sample evaluates the field at every grid vertex and maps the values to
// colors with a fixed gradient: near-white at the minimum shading toward
// blue at the maximum. Runs a full O(vertices) pass; nothing is cached
// across frames since the field moves continuously.
func Sample(g *Grid, f *Field) *SampledField {
	s := &SampledField{
		Values: make([]float32, len(g.Positions)),
		Colors: make([]Color, len(g.Positions)),
	}

	for i, p := range g.Positions {
		v := f.Evaluate(p.X, p.Y)
		s.Values[i] = v
		if i == 0 || v < s.Min {
			s.Min = v
		}
		if i == 0 || v > s.Max {
			s.Max = v
		}
	}

	span := s.Max - s.Min
	for i, v := range s.Values {
		var t float32
		if span != 0 {
			t = (v - s.Min) / span
		}
		s.Colors[i] = ValueColor(t)
	}

	return s
}

// ValueColor maps a normalized field value t to the display gradient.
func ValueColor(t float32) Color {
	return Color{
		R: 1 - 0.4*t,
		G: 1 - 0.6*t,
		B: 1 - t,
	}
}
