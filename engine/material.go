package engine

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Material is a phong lighting preset, looked up by tag.
type Material struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// MaterialRegistry holds an ordered list of material presets. Populated
// once at scene setup, read-only afterwards.
type MaterialRegistry struct {
	materials []Material
}

func NewMaterialRegistry() *MaterialRegistry {
	return &MaterialRegistry{}
}

// Add appends a preset. Registration order matters: Find returns the
// first match for a duplicated tag.
func (r *MaterialRegistry) Add(m Material) {
	r.materials = append(r.materials, m)
}

// Find returns the first preset registered under tag. The second result
// reports whether the tag was found; on a miss the returned Material is
// the zero value and must not be used.
func (r *MaterialRegistry) Find(tag string) (Material, bool) {
	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

func (r *MaterialRegistry) Len() int {
	return len(r.materials)
}
