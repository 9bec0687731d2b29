package shape

import (
	"math"

	"github.com/chewxy/math32"
)

// Cylinder returns a generalized cylinder with its base circle at the
// origin and height along +Y. Different top and bottom radii give a
// truncated cone; a zero top radius gives a cone. top and bottom control
// the end-cap discs.
func Cylinder(height, topRad, botRad float32, radialSegs, heightSegs int, top, bottom bool) Mesh {
	var m Mesh

	// side surface, rings bottom to top
	slope := (botRad - topRad) / height
	for j := 0; j <= heightSegs; j++ {
		v := float32(j) / float32(heightSegs)
		y := v * height
		r := botRad + (topRad-botRad)*v
		for i := 0; i <= radialSegs; i++ {
			u := float32(i) / float32(radialSegs)
			azim := u * 2 * math.Pi
			cos, sin := math32.Cos(azim), math32.Sin(azim)

			nx, ny, nz := cos, slope, sin
			inv := 1 / math32.Sqrt(nx*nx+ny*ny+nz*nz)
			m.addVertex(r*cos, y, r*sin, nx*inv, ny*inv, nz*inv, u, v)
		}
	}

	cols := uint32(radialSegs + 1)
	for j := 0; j < heightSegs; j++ {
		for i := 0; i < radialSegs; i++ {
			a := uint32(j)*cols + uint32(i)
			b := a + cols
			m.addTriangle(a, b, b+1)
			m.addTriangle(a, b+1, a+1)
		}
	}

	if bottom && botRad > 0 {
		m.addCap(0, botRad, radialSegs, false)
	}
	if top && topRad > 0 {
		m.addCap(height, topRad, radialSegs, true)
	}
	return m
}

// TaperedCylinder returns a truncated cone with the top circle at half
// the bottom radius, base at the origin, capped at both ends.
func TaperedCylinder(height, radius float32, radialSegs, heightSegs int) Mesh {
	return Cylinder(height, radius/2, radius, radialSegs, heightSegs, true, true)
}

// Cone returns a cone with its base disc at the origin and apex at
// height along +Y.
func Cone(height, radius float32, radialSegs, heightSegs int) Mesh {
	return Cylinder(height, 0, radius, radialSegs, heightSegs, false, true)
}

// addCap appends a disc fan at the given height, facing +Y when up is
// true and -Y otherwise.
func (m *Mesh) addCap(y, radius float32, radialSegs int, up bool) {
	ny := float32(-1)
	if up {
		ny = 1
	}

	center := uint32(m.VertexCount())
	m.addVertex(0, y, 0, 0, ny, 0, 0.5, 0.5)
	for i := 0; i <= radialSegs; i++ {
		azim := float32(i) / float32(radialSegs) * 2 * math.Pi
		cos, sin := math32.Cos(azim), math32.Sin(azim)
		m.addVertex(radius*cos, y, radius*sin, 0, ny, 0, 0.5+cos/2, 0.5+sin/2)
	}

	for i := 0; i < radialSegs; i++ {
		a := center + 1 + uint32(i)
		if up {
			m.addTriangle(center, a+1, a)
		} else {
			m.addTriangle(center, a, a+1)
		}
	}
}
