package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestComposeIdentity(t *testing.T) {
	m := Compose(Transform{Scale: mgl32.Vec3{1, 1, 1}})
	assert.True(t, m.ApproxEqual(mgl32.Ident4()))
}

func TestComposeMovesPoints(t *testing.T) {
	tests := []struct {
		name  string
		tf    Transform
		point mgl32.Vec3
		want  mgl32.Vec3
	}{
		{
			name:  "translation only",
			tf:    Transform{Scale: mgl32.Vec3{1, 1, 1}, Translation: mgl32.Vec3{1, 2, 3}},
			point: mgl32.Vec3{0, 0, 0},
			want:  mgl32.Vec3{1, 2, 3},
		},
		{
			name:  "rotation about x",
			tf:    Transform{Scale: mgl32.Vec3{1, 1, 1}, RotationDeg: mgl32.Vec3{90, 0, 0}},
			point: mgl32.Vec3{0, 1, 0},
			want:  mgl32.Vec3{0, 0, 1},
		},
		{
			name:  "rotation about z",
			tf:    Transform{Scale: mgl32.Vec3{1, 1, 1}, RotationDeg: mgl32.Vec3{0, 0, 90}},
			point: mgl32.Vec3{1, 0, 0},
			want:  mgl32.Vec3{0, 1, 0},
		},
		{
			// Scale is applied first, then rotation, then translation.
			// The reversed order would land at (3, 0, -2) instead.
			name: "scale then rotate then translate",
			tf: Transform{
				Scale:       mgl32.Vec3{2, 1, 1},
				RotationDeg: mgl32.Vec3{0, 90, 0},
				Translation: mgl32.Vec3{5, 0, 0},
			},
			point: mgl32.Vec3{1, 0, 0},
			want:  mgl32.Vec3{5, 0, -2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mgl32.TransformCoordinate(tt.point, Compose(tt.tf))
			assert.InDelta(t, tt.want.X(), got.X(), 1e-5)
			assert.InDelta(t, tt.want.Y(), got.Y(), 1e-5)
			assert.InDelta(t, tt.want.Z(), got.Z(), 1e-5)
		})
	}
}

func TestComposeRotationOrderZYX(t *testing.T) {
	tf := Transform{Scale: mgl32.Vec3{1, 1, 1}, RotationDeg: mgl32.Vec3{30, 40, 50}}
	want := mgl32.HomogRotate3DZ(mgl32.DegToRad(50)).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(40))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(30)))
	assert.True(t, Compose(tf).ApproxEqualThreshold(want, 1e-5))
}
