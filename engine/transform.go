package engine

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform describes one object's placement. Built fresh for every draw
// call, never retained.
type Transform struct {
	Scale       mgl32.Vec3
	RotationDeg mgl32.Vec3 // per-axis rotation in degrees
	Translation mgl32.Vec3
}

// Compose builds the model matrix as
//
//	Translation * RotZ * RotY * RotX * Scale
//
// so scale applies first and rotations apply X, then Y, then Z. The
// ordering is a contract: every object in the scene script was authored
// against it.
func Compose(t Transform) mgl32.Mat4 {
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	rotX := mgl32.HomogRotate3DX(mgl32.DegToRad(t.RotationDeg.X()))
	rotY := mgl32.HomogRotate3DY(mgl32.DegToRad(t.RotationDeg.Y()))
	rotZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(t.RotationDeg.Z()))
	trans := mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z())

	return trans.Mul4(rotZ).Mul4(rotY).Mul4(rotX).Mul4(scale)
}
