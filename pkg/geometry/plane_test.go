package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestPlane_Intersect_ThroughOrigin(t *testing.T) {
	s, m := plain()
	plane := NewPlaneDistance(core.NewVec3(0, 1, 0), 0, s, m)
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))

	intr := resolved(t, plane, ray)

	if math.Abs(intr.T-5) > tolerance {
		t.Errorf("Expected t=5, got t=%f", intr.T)
	}
	assertVec(t, "hit point", core.NewVec3(0, 0, 0), intr.P)
	assertVec(t, "normal", core.NewVec3(0, 1, 0), intr.N)
}

func TestPlane_NewPlane_FromPoint(t *testing.T) {
	s, m := plain()
	// Unnormalized normal, plane y = -1
	plane := NewPlane(core.NewVec3(0, 3, 0), core.NewVec3(4, -1, 7), s, m)

	if math.Abs(plane.D-1) > tolerance {
		t.Errorf("Expected D=1, got %f", plane.D)
	}

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	intr := resolved(t, plane, ray)
	if math.Abs(intr.T-2) > tolerance {
		t.Errorf("Expected t=2, got t=%f", intr.T)
	}
	if math.Abs(intr.N.Length()-1) > tolerance {
		t.Errorf("Expected unit normal, got %v", intr.N)
	}
}

func TestPlane_Intersect_Misses(t *testing.T) {
	s, m := plain()
	plane := NewPlaneDistance(core.NewVec3(0, 1, 0), 0, s, m)

	tests := []struct {
		name string
		ray  core.Ray
	}{
		{"parallel above", core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0))},
		{"lying in plane", core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))},
		{"plane behind", core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if intr, ok := plane.Intersect(tt.ray); ok {
				t.Errorf("Expected miss, but got hit at t=%f", intr.T)
			}
		})
	}
}

func TestPlane_Intersect_FromBelow(t *testing.T) {
	s, m := plain()
	plane := NewPlaneDistance(core.NewVec3(0, 1, 0), 0, s, m)
	ray := core.NewRay(core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0))

	intr := resolved(t, plane, ray)
	if math.Abs(intr.T-2) > tolerance {
		t.Errorf("Expected t=2, got t=%f", intr.T)
	}
	// Normal is constant; orientation is the scene's job
	assertVec(t, "normal", core.NewVec3(0, 1, 0), intr.N)
}

func TestPlane_Validate(t *testing.T) {
	s, m := plain()
	if err := NewPlaneDistance(core.NewVec3(0, 0, 0), 0, s, m).Validate(); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("Expected ErrInvalidGeometry for zero normal, got %v", err)
	}
	if err := NewPlaneDistance(core.NewVec3(0, 1, 0), math.NaN(), s, m).Validate(); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("Expected ErrInvalidGeometry for NaN offset, got %v", err)
	}
	if err := NewPlaneDistance(core.NewVec3(1, 1, 0), 2, s, m).Validate(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}
