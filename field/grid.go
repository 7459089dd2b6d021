package field

import "fmt"

// Grid is a fixed-topology rectangular sample mesh: (Width+1)×(Height+1)
// vertex positions laid out row-major with row 0 at the top (y decreases as
// the row index grows), and a triangle index list splitting every cell into
// two consistently wound triangles. Both are computed once at construction
// and never mutated; changing the resolution means building a new Grid.
type Grid struct {
	Width  int
	Height int

	Positions []Vec2   // x ∈ [-1,1] left→right, y ∈ [1,-1] top→bottom
	Indices   []uint32 // triangle list, 6 indices per cell
}

// NewGrid builds a grid with the given cell counts. Non-positive dimensions
// are a contract violation.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("field: grid dimensions must be positive, got %dx%d", width, height)
	}

	g := &Grid{
		Width:     width,
		Height:    height,
		Positions: make([]Vec2, 0, (width+1)*(height+1)),
		Indices:   make([]uint32, 0, 6*width*height),
	}

	for i := 0; i <= height; i++ {
		for j := 0; j <= width; j++ {
			x := 2.0/float32(width)*float32(j) - 1
			y := -(2.0/float32(height)*float32(i) - 1)
			g.Positions = append(g.Positions, Vec2{X: x, Y: y})
		}
	}

	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			ind := uint32(i*(width+1) + j)
			w := uint32(width)

			g.Indices = append(g.Indices,
				ind+w+1, ind+1, ind,
				ind+1, ind+w+1, ind+w+2,
			)
		}
	}

	return g, nil
}

// VertexIndex returns the flat index of the vertex at row i, column j.
func (g *Grid) VertexIndex(i, j int) int {
	return i*(g.Width+1) + j
}
