package scene

import (
	"log"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"deskscene/engine"
)

// DeskScene is the still-life: a desk plane carrying a pen cup, a lamp,
// a clock and a soap bottle. The draw sequence and all transform,
// texture and material parameters are fixed content.
type DeskScene struct {
	mgr        *Manager
	textureDir string
}

func NewDeskScene(mgr *Manager, textureDir string) *DeskScene {
	return &DeskScene{mgr: mgr, textureDir: textureDir}
}

// Prepare loads textures, materials, lights and meshes. Geometry and
// textures are uploaded once here and reused by every frame.
func (s *DeskScene) Prepare() {
	s.loadTextures()
	s.defineMaterials()
	s.setupLights()

	s.mgr.Meshes.Load(engine.ShapePlane)
	s.mgr.Meshes.Load(engine.ShapeCylinder)
	s.mgr.Meshes.Load(engine.ShapeTaperedCylinder)
	s.mgr.Meshes.Load(engine.ShapeTorus)
	s.mgr.Meshes.Load(engine.ShapeBox)
	s.mgr.Meshes.Load(engine.ShapeSphere)
	s.mgr.Meshes.Load(engine.ShapeCone)

	s.mgr.Textures.BindAll()
}

// Dispose releases the GPU resources the scene owns.
func (s *DeskScene) Dispose() {
	s.mgr.Textures.Destroy()
	s.mgr.Meshes.Dispose()
}

// loadTextures registers the scene's bitmaps. Registration order fixes
// the texture unit of every entry, so new textures go at the end. A
// texture that fails to load is reported and simply stays absent.
func (s *DeskScene) loadTextures() {
	files := []struct {
		file, tag string
	}{
		{"ashberrysmooth.jpg", "ashberry"},
		{"flagstonerubble.jpg", "flagstone"},
		{"granite.jpg", "granite"},
		{"marmoreal.jpg", "marmoreal"},
		{"oak.jpg", "oak"},
		{"charredtimber.jpg", "charredtimber"},
		{"black-leather.jpg", "black-leather"},
		{"fabric.jpg", "fabric"},
		{"gray-surface.jpg", "gray-surface"},
		{"green-blue-surface.jpg", "green-blue-surface"},
		{"clock-face.jpg", "clock-face"},
	}

	for _, f := range files {
		if err := s.mgr.Textures.Load(filepath.Join(s.textureDir, f.file), f.tag); err != nil {
			log.Printf("scene: %v", err)
		}
	}
}

func (s *DeskScene) defineMaterials() {
	ambient := mgl32.Vec3{0.05, 0.05, 0.05}

	presets := []engine.Material{
		{Tag: "charredtimber", DiffuseColor: mgl32.Vec3{0.2, 0.1, 0.05}, SpecularColor: mgl32.Vec3{0.5, 0.5, 0.5}, Shininess: 32},
		{Tag: "ashberry", DiffuseColor: mgl32.Vec3{0.6, 0.2, 0.2}, SpecularColor: mgl32.Vec3{0.7, 0.7, 0.7}, Shininess: 64},
		{Tag: "flagstone", DiffuseColor: mgl32.Vec3{0.4, 0.4, 0.4}, SpecularColor: mgl32.Vec3{0.3, 0.3, 0.3}, Shininess: 16},
		{Tag: "granite", DiffuseColor: mgl32.Vec3{0.5, 0.5, 0.5}, SpecularColor: mgl32.Vec3{0.8, 0.8, 0.8}, Shininess: 128},
		{Tag: "marmoreal", DiffuseColor: mgl32.Vec3{0.8, 0.8, 0.8}, SpecularColor: mgl32.Vec3{0.9, 0.9, 0.9}, Shininess: 256},
		{Tag: "black-leather", DiffuseColor: mgl32.Vec3{0.1, 0.1, 0.1}, SpecularColor: mgl32.Vec3{0.2, 0.2, 0.2}, Shininess: 8},
		{Tag: "fabric", DiffuseColor: mgl32.Vec3{0.2, 0.2, 0.2}, SpecularColor: mgl32.Vec3{0.3, 0.3, 0.3}, Shininess: 16},
		{Tag: "gray-surface", DiffuseColor: mgl32.Vec3{0.5, 0.5, 0.5}, SpecularColor: mgl32.Vec3{0.6, 0.6, 0.6}, Shininess: 32},
		{Tag: "green-blue-surface", DiffuseColor: mgl32.Vec3{0, 0.5, 0.5}, SpecularColor: mgl32.Vec3{0.6, 0.6, 0.6}, Shininess: 32},
		{Tag: "clock-face", DiffuseColor: mgl32.Vec3{0.8, 0.8, 0.8}, SpecularColor: mgl32.Vec3{0.9, 0.9, 0.9}, Shininess: 256},
	}

	for _, p := range presets {
		p.AmbientColor = ambient
		p.AmbientStrength = 0.1
		s.mgr.Materials.Add(p)
	}
}

func (s *DeskScene) setupLights() {
	// two warm overhead lights simulating sunlight
	sunAmbient := mgl32.Vec3{0.3, 0.24, 0.1}
	sunDiffuse := mgl32.Vec3{0.8, 0.7, 0.5}
	sunSpecular := mgl32.Vec3{1, 0.9, 0.8}

	s.mgr.SetLight(0, engine.Light{
		Position:          mgl32.Vec3{3, 14, 0},
		AmbientColor:      sunAmbient,
		DiffuseColor:      sunDiffuse,
		SpecularColor:     sunSpecular,
		FocalStrength:     32,
		SpecularIntensity: 0.05,
	})
	s.mgr.SetLight(1, engine.Light{
		Position:          mgl32.Vec3{-3, 14, 0},
		AmbientColor:      sunAmbient,
		DiffuseColor:      sunDiffuse,
		SpecularColor:     sunSpecular,
		FocalStrength:     32,
		SpecularIntensity: 0.05,
	})
	// bluish front fill
	s.mgr.SetLight(2, engine.Light{
		Position:          mgl32.Vec3{0.6, 5, 6},
		AmbientColor:      mgl32.Vec3{0.2, 0.2, 0.4},
		DiffuseColor:      mgl32.Vec3{0.4, 0.4, 0.8},
		SpecularColor:     mgl32.Vec3{0.5, 0.5, 1},
		FocalStrength:     12,
		SpecularIntensity: 0.5,
	})
	// neutral back light
	s.mgr.SetLight(3, engine.Light{
		Position:          mgl32.Vec3{-0.6, 7, -6},
		AmbientColor:      mgl32.Vec3{0.1, 0.1, 0.1},
		DiffuseColor:      mgl32.Vec3{0.6, 0.6, 0.6},
		SpecularColor:     mgl32.Vec3{0.9, 0.9, 0.9},
		FocalStrength:     12,
		SpecularIntensity: 0.5,
	})

	s.mgr.SetLighting(true)
}

// Render issues the ordered draw sequence for one frame.
func (s *DeskScene) Render() {
	m := s.mgr
	m.SetUVScale(1, 1)

	// desk surface
	m.SetTransform(engine.Transform{
		Scale:       mgl32.Vec3{20, 1, 10},
		Translation: mgl32.Vec3{0, 0, 0},
	})
	m.SetTexture("charredtimber")
	m.SetMaterial("charredtimber")
	m.Meshes.Draw(engine.ShapePlane)

	// pen cup: body
	m.SetTransform(engine.Transform{
		Scale:       mgl32.Vec3{1, 2, 1},
		Translation: mgl32.Vec3{9, 0, 0},
	})
	m.SetTexture("ashberry")
	m.SetMaterial("ashberry")
	m.Meshes.Draw(engine.ShapeCylinder)

	// pen cup: tapered top
	m.SetTransform(engine.Transform{
		Scale:       mgl32.Vec3{1, 0.5, 1},
		Translation: mgl32.Vec3{9, 2, 0},
	})
	m.SetTexture("flagstone")
	m.SetMaterial("flagstone")
	m.Meshes.Draw(engine.ShapeTaperedCylinder)

	// pen cup: lower rim
	m.SetTransform(engine.Transform{
		Scale:       mgl32.Vec3{0.8, 0.8, 0.2},
		RotationDeg: mgl32.Vec3{90, 0, 0},
		Translation: mgl32.Vec3{9, 2.2, 0},
	})
	m.SetTexture("granite")
	m.SetMaterial("granite")
	m.Meshes.Draw(engine.ShapeTorus)

	// pen cup: inner neck
	m.SetTransform(engine.Transform{
		Scale:       mgl32.Vec3{0.75, 0.5, 0.75},
		Translation: mgl32.Vec3{9, 2, 0},
	})
	m.SetTexture("flagstone")
	m.SetMaterial("flagstone")
	m.Meshes.Draw(engine.ShapeCylinder)

	// pen cup: upper rim
	m.SetTransform(engine.Transform{
		Scale:       mgl32.Vec3{0.8, 0.8, 0.2},
		RotationDeg: mgl32.Vec3{90, 0, 0},
		Translation: mgl32.Vec3{9, 2.4, 0},
	})
	m.SetTexture("granite")
	m.SetMaterial("granite")
	m.Meshes.Draw(engine.ShapeTorus)

	// red pen leaning out of the cup
	m.SetTransform(engine.Transform{
		Scale:       mgl32.Vec3{0.1, 0.7, 0.1},
		RotationDeg: mgl32.Vec3{-30, 0, 0},
		Translation: mgl32.Vec3{8.8, 2.5, 0},
	})
	m.SetColor(1, 0, 0, 1)
	m.SetMaterial("flagstone")
	m.Meshes.Draw(engine.ShapeCylinder)

	// blue pen
	m.SetTransform(engine.Transform{
		Scale:       mgl32.Vec3{0.1, 0.7, 0.1},
		RotationDeg: mgl32.Vec3{30, 0, 0},
		Translation: mgl32.Vec3{9.4, 2.5, 0},
	})
	m.SetColor(0, 0, 1, 1)
	m.SetMaterial("flagstone")
	m.Meshes.Draw(engine.ShapeCylinder)

	// lamp: base
	m.SetTransform(engine.Transform{
		Scale:       mgl32.Vec3{1, 0.2, 1},
		Translation: mgl32.Vec3{-5, 0.1, 0},
	})
	m.SetTexture("gray-surface")
	m.SetMaterial("gray-surface")
	m.Meshes.Draw(engine.ShapeCylinder)

	// lamp: stem
	m.SetTransform(engine.Transform{
		Scale:       mgl32.Vec3{0.2, 3, 0.2},
		Translation: mgl32.Vec3{-5, 0.5, 0},
	})
	m.SetTexture("gray-surface")
	m.SetMaterial("gray-surface")
	m.Meshes.Draw(engine.ShapeCylinder)

	// lamp: shade
	m.SetTransform(engine.Transform{
		Scale:       mgl32.Vec3{1.5, 1.5, 1.5},
		Translation: mgl32.Vec3{-5, 3, 0},
	})
	m.SetTexture("fabric")
	m.SetMaterial("fabric")
	m.Meshes.Draw(engine.ShapeCone)

	// clock: body
	m.SetTransform(engine.Transform{
		Scale:       mgl32.Vec3{1, 0.5, 1},
		Translation: mgl32.Vec3{-7, 0.5, 0},
	})
	m.SetTexture("black-leather")
	m.SetMaterial("black-leather")
	m.Meshes.Draw(engine.ShapeBox)

	// clock: face, slightly proud of the body
	m.SetTransform(engine.Transform{
		Scale:       mgl32.Vec3{0.9, 0.4, 0.9},
		Translation: mgl32.Vec3{-7, 0.5, 0.075},
	})
	m.SetTexture("clock-face")
	m.SetMaterial("clock-face")
	m.Meshes.Draw(engine.ShapeBox)

	// soap bottle: body
	m.SetTransform(engine.Transform{
		Scale:       mgl32.Vec3{0.5, 1.5, 0.5},
		Translation: mgl32.Vec3{7, 0.1, 0},
	})
	m.SetTexture("black-leather")
	m.SetMaterial("green-blue-surface")
	m.Meshes.Draw(engine.ShapeCylinder)

	// soap bottle: pump cap
	m.SetTransform(engine.Transform{
		Scale:       mgl32.Vec3{0.2, 0.5, 0.2},
		Translation: mgl32.Vec3{7, 1.5, 0},
	})
	m.SetTexture("gray-surface")
	m.SetMaterial("gray-surface")
	m.Meshes.Draw(engine.ShapeCylinder)

	// soap bottle: pump neck
	m.SetTransform(engine.Transform{
		Scale:       mgl32.Vec3{0.1, 0.2, 0.1},
		Translation: mgl32.Vec3{7, 2, 0},
	})
	m.SetTexture("gray-surface")
	m.SetMaterial("gray-surface")
	m.Meshes.Draw(engine.ShapeCylinder)
}
