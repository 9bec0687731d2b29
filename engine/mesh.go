package engine

import (
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"

	"deskscene/shape"
)

// Shape names the primitive meshes the scene can draw.
type Shape string

const (
	ShapePlane           Shape = "plane"
	ShapeBox             Shape = "box"
	ShapeSphere          Shape = "sphere"
	ShapeCylinder        Shape = "cylinder"
	ShapeTaperedCylinder Shape = "tapered cylinder"
	ShapeCone            Shape = "cone"
	ShapeTorus           Shape = "torus"
)

// builders generate the unit geometry for each shape. Cylinders and
// cones sit with their base at the origin; everything else is centered.
var builders = map[Shape]func() shape.Mesh{
	ShapePlane:           func() shape.Mesh { return shape.Plane(2, 2) },
	ShapeBox:             func() shape.Mesh { return shape.Box(1, 1, 1) },
	ShapeSphere:          func() shape.Mesh { return shape.Sphere(1, 36, 18) },
	ShapeCylinder:        func() shape.Mesh { return shape.Cylinder(1, 1, 1, 36, 1, true, true) },
	ShapeTaperedCylinder: func() shape.Mesh { return shape.TaperedCylinder(1, 1, 36, 1) },
	ShapeCone:            func() shape.Mesh { return shape.Cone(1, 1, 36, 1) },
	ShapeTorus:           func() shape.Mesh { return shape.Torus(1, 0.25, 36, 18) },
}

// MeshBuffer identifies one uploaded mesh on the device.
type MeshBuffer struct {
	VAO, VBO, EBO uint32
	IndexCount    int32
}

// MeshDevice is the GPU side of the mesh library: upload interleaved
// geometry once, draw it any number of times, release it at shutdown.
type MeshDevice interface {
	Upload(m shape.Mesh) MeshBuffer
	Draw(b MeshBuffer)
	Release(b MeshBuffer)
}

// MeshLibrary uploads primitive geometry once and draws it any number of
// times. It exclusively owns the buffers it creates.
type MeshLibrary struct {
	dev     MeshDevice
	buffers map[Shape]MeshBuffer
}

func NewMeshLibrary(dev MeshDevice) *MeshLibrary {
	return &MeshLibrary{dev: dev, buffers: make(map[Shape]MeshBuffer)}
}

// Load generates and uploads the geometry for s. Loading an already
// loaded shape is a no-op; one upload serves every draw.
func (l *MeshLibrary) Load(s Shape) {
	if _, ok := l.buffers[s]; ok {
		return
	}
	build, ok := builders[s]
	if !ok {
		log.Printf("mesh library: unknown shape %q", s)
		return
	}
	l.buffers[s] = l.dev.Upload(build())
}

// LoadAll loads every primitive shape.
func (l *MeshLibrary) LoadAll() {
	for s := range builders {
		l.Load(s)
	}
}

// Draw renders s with the current shader state. Drawing a shape that was
// never loaded is skipped with a diagnostic.
func (l *MeshLibrary) Draw(s Shape) {
	b, ok := l.buffers[s]
	if !ok {
		log.Printf("mesh library: draw before load of %q", s)
		return
	}
	l.dev.Draw(b)
}

// Loaded reports whether s has been uploaded.
func (l *MeshLibrary) Loaded(s Shape) bool {
	_, ok := l.buffers[s]
	return ok
}

// Dispose releases all uploaded buffers.
func (l *MeshLibrary) Dispose() {
	for _, b := range l.buffers {
		l.dev.Release(b)
	}
	l.buffers = make(map[Shape]MeshBuffer)
}

// GLMeshDevice implements MeshDevice against the current OpenGL context
// with one VAO and interleaved VBO per mesh.
type GLMeshDevice struct{}

func (GLMeshDevice) Upload(m shape.Mesh) MeshBuffer {
	b := MeshBuffer{IndexCount: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &b.VAO)
	gl.BindVertexArray(b.VAO)

	gl.GenBuffers(1, &b.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &b.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	stride := int32(shape.Stride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

	gl.BindVertexArray(0)
	return b
}

func (GLMeshDevice) Draw(b MeshBuffer) {
	gl.BindVertexArray(b.VAO)
	gl.DrawElements(gl.TRIANGLES, b.IndexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (GLMeshDevice) Release(b MeshBuffer) {
	gl.DeleteBuffers(1, &b.VBO)
	gl.DeleteBuffers(1, &b.EBO)
	gl.DeleteVertexArrays(1, &b.VAO)
}
