// Package isoline extracts iso-value contour lines from a scalar field
// sampled on a regular grid, using per-cell crossing classification with
// edge interpolation and shared-vertex deduplication.
package isoline

import (
	"fmt"

	"github.com/pthm-cable/isofield/field"
)

// ContourSet is the line mesh produced by one extraction pass. Consecutive
// index pairs denote independent segments, not a connected polyline.
type ContourSet struct {
	Positions []field.Vec2
	Indices   []uint32
}

// Segments returns the number of line segments in the set.
func (c *ContourSet) Segments() int {
	return len(c.Indices) / 2
}

// edgeKey identifies a grid edge by the unordered pair of its vertex indices.
type edgeKey struct {
	lo, hi int
}

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{lo: a, hi: b}
}

// Extract produces count iso-levels evenly spaced strictly between the
// sampled min and max (level k = min + (max-min)·k/(count+1)); the endpoints
// themselves are never chosen, so cells at the extremes stay quiet. Each
// level is extracted independently: interpolated vertices are deduplicated
// per level by the grid edge they lie on, never shared across levels.
//
// A negative count is a contract violation. A flat sample (min == max)
// degenerates every level to the min value itself; all cell corners then sit
// exactly on the level, no crossing is detected, and the result is empty.
func Extract(g *field.Grid, s *field.SampledField, count int) (*ContourSet, error) {
	if count < 0 {
		return nil, fmt.Errorf("isoline: count must be non-negative, got %d", count)
	}

	out := &ContourSet{}
	span := s.Max - s.Min
	for k := 1; k <= count; k++ {
		level := s.Min + span*float32(k)/float32(count+1)
		extractLevel(g, s, level, out)
	}
	return out, nil
}

// cellCorners is the fixed cyclic corner order within a cell: top-left,
// top-right, bottom-right, bottom-left. Neighbor references use (k±1)%4 on
// this ring.
func cellCorners(g *field.Grid, i, j int) [4]int {
	return [4]int{
		g.VertexIndex(i, j),
		g.VertexIndex(i, j+1),
		g.VertexIndex(i+1, j+1),
		g.VertexIndex(i+1, j),
	}
}

// extractLevel walks every grid cell and appends the level's segments to out.
func extractLevel(g *field.Grid, s *field.SampledField, level float32, out *ContourSet) {
	// Interpolation cache for this level only: unordered grid-vertex pair ->
	// index of the interpolated vertex in out.Positions.
	cache := make(map[edgeKey]uint32)

	for i := 0; i < g.Height; i++ {
		for j := 0; j < g.Width; j++ {
			corners := cellCorners(g, i, j)

			var d [4]float32
			positive := 0
			for k, c := range corners {
				d[k] = s.Values[c] - level
				if d[k] > 0 {
					positive++
				}
			}

			var crossings [][2]int
			switch positive {
			case 1, 3:
				// One corner sits alone on the minority side; cut it off
				// with the short segment across its two edges.
				for k := 0; k < 4; k++ {
					if d[k]*d[(k+3)%4] < 0 && d[k]*d[(k+1)%4] < 0 {
						crossings = append(crossings,
							[2]int{k, (k + 3) % 4},
							[2]int{k, (k + 1) % 4},
						)
					}
				}

			case 2:
				switch {
				case d[0]*d[1] > 0:
					// Top pair vs bottom pair: split across the side edges.
					crossings = [][2]int{{0, 3}, {1, 2}}
				case d[0]*d[3] > 0:
					// Left pair vs right pair: split across top and bottom.
					crossings = [][2]int{{0, 1}, {2, 3}}
				default:
					// Diagonal saddle: emit all four crossings as two
					// segments rather than disambiguating.
					crossings = [][2]int{{0, 1}, {1, 2}, {0, 3}, {2, 3}}
				}

			default:
				// 0 or 4: the level does not cross this cell.
				continue
			}

			for _, pair := range crossings {
				ga, gb := corners[pair[0]], corners[pair[1]]
				key := newEdgeKey(ga, gb)

				idx, ok := cache[key]
				if !ok {
					idx = uint32(len(out.Positions))
					out.Positions = append(out.Positions, interpolate(g, s, ga, gb, level))
					cache[key] = idx
				}
				out.Indices = append(out.Indices, idx)
			}
		}
	}
}

// interpolate returns the point on the edge between grid vertices a and b
// where the field crosses level. Grid edges are axis-aligned, so only the
// coordinate that differs between the endpoints is interpolated. When both
// endpoints sit exactly on the level the point snaps to a, keeping NaN out
// of the draw buffers.
func interpolate(g *field.Grid, s *field.SampledField, a, b int, level float32) field.Vec2 {
	pa, pb := g.Positions[a], g.Positions[b]
	va, vb := s.Values[a], s.Values[b]

	var t float32
	if vb != va {
		t = (level - va) / (vb - va)
	}

	if pa.Y == pb.Y {
		return field.Vec2{X: pa.X + t*(pb.X-pa.X), Y: pa.Y}
	}
	return field.Vec2{X: pa.X, Y: pa.Y + t*(pb.Y-pa.Y)}
}
