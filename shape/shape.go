// Package shape generates primitive mesh geometry as interleaved vertex
// data: position (3 floats), normal (3 floats), uv (2 floats) per vertex,
// plus triangle indices. No GL calls happen here; uploading the buffers
// is the caller's concern.
package shape

// Stride is the number of floats per interleaved vertex.
const Stride = 8

type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices in the interleaved array.
func (m Mesh) VertexCount() int {
	return len(m.Vertices) / Stride
}

func (m *Mesh) addVertex(px, py, pz, nx, ny, nz, u, v float32) {
	m.Vertices = append(m.Vertices, px, py, pz, nx, ny, nz, u, v)
}

func (m *Mesh) addTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// Plane returns a flat rectangle in the XZ plane, centered at the origin,
// facing +Y.
func Plane(width, depth float32) Mesh {
	hw, hd := width/2, depth/2

	var m Mesh
	m.addVertex(-hw, 0, -hd, 0, 1, 0, 0, 1)
	m.addVertex(-hw, 0, hd, 0, 1, 0, 0, 0)
	m.addVertex(hw, 0, hd, 0, 1, 0, 1, 0)
	m.addVertex(hw, 0, -hd, 0, 1, 0, 1, 1)
	m.addTriangle(0, 1, 2)
	m.addTriangle(2, 3, 0)
	return m
}

// Box returns an axis-aligned box centered at the origin. Each face has
// its own four vertices so normals stay flat.
func Box(width, height, depth float32) Mesh {
	hw, hh, hd := width/2, height/2, depth/2

	// four corners per face, counter-clockwise seen from outside
	faces := [6]struct {
		n [3]float32    // face normal
		c [4][3]float32 // corner positions
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-hw, -hh, hd}, {hw, -hh, hd}, {hw, hh, hd}, {-hw, hh, hd}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{hw, -hh, -hd}, {-hw, -hh, -hd}, {-hw, hh, -hd}, {hw, hh, -hd}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{hw, -hh, hd}, {hw, -hh, -hd}, {hw, hh, -hd}, {hw, hh, hd}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-hw, -hh, -hd}, {-hw, -hh, hd}, {-hw, hh, hd}, {-hw, hh, -hd}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-hw, hh, hd}, {hw, hh, hd}, {hw, hh, -hd}, {-hw, hh, -hd}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-hw, -hh, -hd}, {hw, -hh, -hd}, {hw, -hh, hd}, {-hw, -hh, hd}}},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	var m Mesh
	for _, f := range faces {
		base := uint32(m.VertexCount())
		for i, c := range f.c {
			m.addVertex(c[0], c[1], c[2], f.n[0], f.n[1], f.n[2], uvs[i][0], uvs[i][1])
		}
		m.addTriangle(base, base+1, base+2)
		m.addTriangle(base+2, base+3, base)
	}
	return m
}
