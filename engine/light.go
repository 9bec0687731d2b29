package engine

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MaxLights matches TOTAL_LIGHTS in the fragment shader.
const MaxLights = 4

// Light is one point light source. All instances are written once at
// scene setup and never mutated afterward.
type Light struct {
	Position          mgl32.Vec3
	AmbientColor      mgl32.Vec3
	DiffuseColor      mgl32.Vec3
	SpecularColor     mgl32.Vec3
	FocalStrength     float32
	SpecularIntensity float32
}
