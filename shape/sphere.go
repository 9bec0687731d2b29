package shape

import (
	"math"

	"github.com/chewxy/math32"
)

// Sphere returns a sphere of the given radius centered at the origin,
// built as a latitude/longitude grid with widthSegs segments around the
// equator and heightSegs segments pole to pole.
func Sphere(radius float32, widthSegs, heightSegs int) Mesh {
	var m Mesh

	for j := 0; j <= heightSegs; j++ {
		v := float32(j) / float32(heightSegs)
		elev := v * math.Pi // 0 = top pole
		for i := 0; i <= widthSegs; i++ {
			u := float32(i) / float32(widthSegs)
			azim := u * 2 * math.Pi

			nx := math32.Sin(elev) * math32.Cos(azim)
			ny := math32.Cos(elev)
			nz := math32.Sin(elev) * math32.Sin(azim)
			m.addVertex(radius*nx, radius*ny, radius*nz, nx, ny, nz, u, 1-v)
		}
	}

	cols := uint32(widthSegs + 1)
	for j := 0; j < heightSegs; j++ {
		for i := 0; i < widthSegs; i++ {
			a := uint32(j)*cols + uint32(i)
			b := a + cols
			m.addTriangle(a, b+1, b)
			m.addTriangle(a, a+1, b+1)
		}
	}
	return m
}
