package scene

import "fmt"

// Mesh is indexed triangle geometry: packed xyz positions and uint16 indices.
type Mesh struct {
	Positions []float32
	Indices   []uint16
}

var cubePositions = [...]float32{
	// Front face
	-0.5, -0.5, 0.5,
	0.5, -0.5, 0.5,
	-0.5, 0.5, 0.5,
	0.5, 0.5, 0.5,
	// Back face
	-0.5, -0.5, -0.5,
	0.5, -0.5, -0.5,
	-0.5, 0.5, -0.5,
	0.5, 0.5, -0.5,
}

var cubeIndices = [...]uint16{
	// Front
	0, 1, 2, 1, 3, 2,
	// Back
	4, 5, 6, 5, 7, 6,
	// Top
	2, 3, 6, 3, 7, 6,
	// Bottom
	0, 1, 4, 1, 5, 4,
	// Right
	1, 3, 5, 3, 7, 5,
	// Left
	0, 2, 4, 2, 6, 4,
}

// CubeMesh returns a fresh copy of the unit cube centered at the origin.
func CubeMesh() Mesh {
	return Mesh{
		Positions: append([]float32(nil), cubePositions[:]...),
		Indices:   append([]uint16(nil), cubeIndices[:]...),
	}
}

func (m Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

func (m Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Validate checks that positions are whole xyz triples and that every index
// refers to an existing vertex.
func (m Mesh) Validate() error {
	if len(m.Positions) == 0 || len(m.Positions)%3 != 0 {
		return fmt.Errorf("mesh: %d position floats is not a whole number of vertices", len(m.Positions))
	}
	if len(m.Indices) == 0 || len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh: %d indices is not a whole number of triangles", len(m.Indices))
	}
	n := m.VertexCount()
	for i, idx := range m.Indices {
		if int(idx) >= n {
			return fmt.Errorf("mesh: index %d at %d out of range (%d vertices)", idx, i, n)
		}
	}
	return nil
}
