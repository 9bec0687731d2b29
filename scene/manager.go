// Package scene drives the desk still-life: it owns the texture,
// material and mesh registries and pushes per-draw state into the shader
// program uniforms.
package scene

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"deskscene/engine"
)

// Uniform names consumed from the shader program.
const (
	uniformModel       = "model"
	uniformColor       = "objectColor"
	uniformTexture     = "objectTexture"
	uniformUseTexture  = "bUseTexture"
	uniformUseLighting = "bUseLighting"
	uniformUVScale     = "UVscale"
)

// Manager composes transforms and pushes draw state to an optionally
// attached shader. A nil shader detaches the manager: every setter is a
// safe no-op, so a scene can be prepared and exercised headless.
type Manager struct {
	shader engine.UniformSetter

	Textures  *engine.TextureRegistry
	Materials *engine.MaterialRegistry
	Meshes    *engine.MeshLibrary
}

func NewManager(shader engine.UniformSetter, textures engine.TextureDevice, meshes engine.MeshDevice) *Manager {
	return &Manager{
		shader:    shader,
		Textures:  engine.NewTextureRegistry(textures),
		Materials: engine.NewMaterialRegistry(),
		Meshes:    engine.NewMeshLibrary(meshes),
	}
}

// SetTransform composes the model matrix from t and pushes it.
func (m *Manager) SetTransform(t engine.Transform) {
	if m.shader == nil {
		return
	}
	m.shader.SetMat4(uniformModel, engine.Compose(t))
}

// SetColor switches the next draw to a flat color: the texture-use flag
// is forced off.
func (m *Manager) SetColor(r, g, b, a float32) {
	if m.shader == nil {
		return
	}
	m.shader.SetBool(uniformUseTexture, false)
	m.shader.SetVec4(uniformColor, mgl32.Vec4{r, g, b, a})
}

// SetTexture switches the next draw to the texture registered under tag:
// the texture is bound to its unit, the sampler uniform receives the
// unit index and the texture-use flag is forced on. An unknown tag
// leaves all shader state untouched.
func (m *Manager) SetTexture(tag string) {
	if m.shader == nil {
		return
	}
	slot := m.Textures.Bind(tag)
	if slot < 0 {
		log.Printf("scene: texture %q not registered", tag)
		return
	}
	m.shader.SetInt(uniformTexture, int32(slot))
	m.shader.SetBool(uniformUseTexture, true)
}

// SetUVScale sets the texture coordinate tiling factors.
func (m *Manager) SetUVScale(u, v float32) {
	if m.shader == nil {
		return
	}
	m.shader.SetVec2(uniformUVScale, mgl32.Vec2{u, v})
}

// SetMaterial pushes the five material fields of the preset registered
// under tag. An unknown tag leaves all shader state untouched.
func (m *Manager) SetMaterial(tag string) {
	if m.shader == nil {
		return
	}
	mat, ok := m.Materials.Find(tag)
	if !ok {
		log.Printf("scene: material %q not registered", tag)
		return
	}
	m.shader.SetVec3("material.ambientColor", mat.AmbientColor)
	m.shader.SetFloat("material.ambientStrength", mat.AmbientStrength)
	m.shader.SetVec3("material.diffuseColor", mat.DiffuseColor)
	m.shader.SetVec3("material.specularColor", mat.SpecularColor)
	m.shader.SetFloat("material.shininess", mat.Shininess)
}

// SetLight writes light source i. Indexes outside [0, MaxLights) are
// ignored.
func (m *Manager) SetLight(i int, l engine.Light) {
	if m.shader == nil || i < 0 || i >= engine.MaxLights {
		return
	}
	prefix := fmt.Sprintf("lightSources[%d].", i)
	m.shader.SetVec3(prefix+"position", l.Position)
	m.shader.SetVec3(prefix+"ambientColor", l.AmbientColor)
	m.shader.SetVec3(prefix+"diffuseColor", l.DiffuseColor)
	m.shader.SetVec3(prefix+"specularColor", l.SpecularColor)
	m.shader.SetFloat(prefix+"focalStrength", l.FocalStrength)
	m.shader.SetFloat(prefix+"specularIntensity", l.SpecularIntensity)
}

// SetLighting toggles the phong lighting pass.
func (m *Manager) SetLighting(on bool) {
	if m.shader == nil {
		return
	}
	m.shader.SetBool(uniformUseLighting, on)
}
