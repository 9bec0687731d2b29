package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestMaterialRegistryFind(t *testing.T) {
	reg := NewMaterialRegistry()
	wood := Material{
		Tag:             "wood",
		AmbientColor:    mgl32.Vec3{0.05, 0.05, 0.05},
		AmbientStrength: 0.1,
		DiffuseColor:    mgl32.Vec3{0.2, 0.1, 0.05},
		SpecularColor:   mgl32.Vec3{0.5, 0.5, 0.5},
		Shininess:       32,
	}
	reg.Add(wood)

	got, ok := reg.Find("wood")
	assert.True(t, ok)
	assert.Equal(t, wood, got)
}

func TestMaterialRegistryFindMiss(t *testing.T) {
	reg := NewMaterialRegistry()
	reg.Add(Material{Tag: "wood"})

	got, ok := reg.Find("glass")
	assert.False(t, ok)
	assert.Equal(t, Material{}, got)
}

func TestMaterialRegistryFindEmpty(t *testing.T) {
	reg := NewMaterialRegistry()
	_, ok := reg.Find("wood")
	assert.False(t, ok)
	assert.Zero(t, reg.Len())
}

func TestMaterialRegistryFirstMatchWins(t *testing.T) {
	reg := NewMaterialRegistry()
	reg.Add(Material{Tag: "metal", Shininess: 16})
	reg.Add(Material{Tag: "metal", Shininess: 128})

	got, ok := reg.Find("metal")
	assert.True(t, ok)
	assert.Equal(t, float32(16), got.Shininess)
}
