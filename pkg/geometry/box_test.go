package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func unitBox() *Box {
	s, m := plain()
	return NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), s, m)
}

func TestBox_Intersect_Faces(t *testing.T) {
	box := unitBox()

	tests := []struct {
		name     string
		origin   core.Vec3
		dir      core.Vec3
		expected float64
		normal   core.Vec3
		face     int
	}{
		{"front +Z", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 4, core.NewVec3(0, 0, 1), FacePosZ},
		{"back -Z", core.NewVec3(0, 0, -3), core.NewVec3(0, 0, 1), 2, core.NewVec3(0, 0, -1), FaceNegZ},
		{"right +X", core.NewVec3(4, 0.5, 0), core.NewVec3(-1, 0, 0), 3, core.NewVec3(1, 0, 0), FacePosX},
		{"left -X", core.NewVec3(-3, 0, 0.2), core.NewVec3(1, 0, 0), 2, core.NewVec3(-1, 0, 0), FaceNegX},
		{"top +Y", core.NewVec3(0, 6, 0), core.NewVec3(0, -1, 0), 5, core.NewVec3(0, 1, 0), FacePosY},
		{"bottom -Y", core.NewVec3(0.3, -2, -0.3), core.NewVec3(0, 1, 0), 1, core.NewVec3(0, -1, 0), FaceNegY},
		{"inside leaves through +X", core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), 1, core.NewVec3(1, 0, 0), FacePosX},
		{"inside leaves through -Y", core.NewVec3(0, 0.5, 0), core.NewVec3(0, -1, 0), 1.5, core.NewVec3(0, -1, 0), FaceNegY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.dir)
			intr := resolved(t, box, ray)

			if math.Abs(intr.T-tt.expected) > tolerance {
				t.Errorf("Expected t=%f, got t=%f", tt.expected, intr.T)
			}
			assertVec(t, "normal", tt.normal, intr.N)
			if intr.Aux[0] != tt.face {
				t.Errorf("Expected face %d, got %d", tt.face, intr.Aux[0])
			}
		})
	}
}

func TestBox_Intersect_Diagonal(t *testing.T) {
	box := unitBox()
	// Enters through the +X face: x reaches 1 before y and z reach their faces
	ray := core.NewRay(core.NewVec3(3, 0.5, 0.5), core.NewVec3(-1, -0.1, 0))
	intr := resolved(t, box, ray)

	assertVec(t, "normal", core.NewVec3(1, 0, 0), intr.N)
	if math.Abs(intr.P.X-1) > 1e-9 {
		t.Errorf("Expected hit on x=1, got %v", intr.P)
	}
}

func TestBox_Intersect_Misses(t *testing.T) {
	box := unitBox()

	tests := []struct {
		name   string
		origin core.Vec3
		dir    core.Vec3
	}{
		{"above, parallel", core.NewVec3(0, 3, -3), core.NewVec3(0, 0, 1)},
		{"box behind", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1)},
		{"passes corner", core.NewVec3(-3, 2.5, 0), core.NewVec3(1, 0.1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if intr, ok := box.Intersect(core.NewRay(tt.origin, tt.dir)); ok {
				t.Errorf("Expected miss, but got hit at t=%f", intr.T)
			}
		})
	}
}

func TestBox_Validate(t *testing.T) {
	s, m := plain()
	tests := []struct {
		name    string
		min     core.Vec3
		max     core.Vec3
		wantErr bool
	}{
		{"unit", core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), false},
		{"inverted", core.NewVec3(1, -1, -1), core.NewVec3(-1, 1, 1), true},
		{"flat", core.NewVec3(-1, 0, -1), core.NewVec3(1, 0, 1), true},
		{"infinite", core.NewVec3(math.Inf(-1), -1, -1), core.NewVec3(1, 1, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewBox(tt.min, tt.max, s, m).Validate()
			if tt.wantErr != errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("wantErr=%t, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNewCenteredBox(t *testing.T) {
	s, m := plain()
	box := NewCenteredBox(core.NewVec3(1, 2, 3), core.NewVec3(0.5, 1, 1.5), s, m)

	assertVec(t, "min corner", core.NewVec3(0.5, 1, 1.5), box.MinBB)
	assertVec(t, "max corner", core.NewVec3(1.5, 3, 4.5), box.MaxBB)
}
