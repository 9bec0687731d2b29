package shape

import (
	"math"

	"github.com/chewxy/math32"
)

// Torus returns a torus centered at the origin in the XY plane, with the
// given ring radius and solid tube radius. radialSegs runs around the
// ring, tubeSegs around the tube.
func Torus(radius, tubeRadius float32, radialSegs, tubeSegs int) Mesh {
	var m Mesh

	for j := 0; j <= radialSegs; j++ {
		u := float32(j) / float32(radialSegs) * 2 * math.Pi
		cx := radius * math32.Cos(u)
		cy := radius * math32.Sin(u)

		for i := 0; i <= tubeSegs; i++ {
			v := float32(i) / float32(tubeSegs) * 2 * math.Pi

			px := (radius + tubeRadius*math32.Cos(v)) * math32.Cos(u)
			py := (radius + tubeRadius*math32.Cos(v)) * math32.Sin(u)
			pz := tubeRadius * math32.Sin(v)

			nx, ny, nz := px-cx, py-cy, pz
			inv := 1 / math32.Sqrt(nx*nx+ny*ny+nz*nz)
			m.addVertex(px, py, pz, nx*inv, ny*inv, nz*inv,
				float32(i)/float32(tubeSegs), float32(j)/float32(radialSegs))
		}
	}

	cols := uint32(tubeSegs + 1)
	for j := 0; j < radialSegs; j++ {
		for i := 0; i < tubeSegs; i++ {
			a := uint32(j)*cols + uint32(i)
			b := a + cols
			m.addTriangle(a, b, b+1)
			m.addTriangle(a, b+1, a+1)
		}
	}
	return m
}
