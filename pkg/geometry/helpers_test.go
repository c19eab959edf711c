package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

const tolerance = 1e-9

func assertVec(t *testing.T, what string, expected, got core.Vec3) {
	t.Helper()
	if math.Abs(got.X-expected.X) > tolerance ||
		math.Abs(got.Y-expected.Y) > tolerance ||
		math.Abs(got.Z-expected.Z) > tolerance {
		t.Errorf("Expected %s %v, got %v", what, expected, got)
	}
}

// resolved intersects and resolves P and N the way the scene does
func resolved(t *testing.T, shape Shape, ray core.Ray) Intersection {
	t.Helper()
	intr, ok := shape.Intersect(ray)
	if !ok {
		t.Fatalf("Expected hit, but got miss for ray %v", ray)
	}
	intr.Resolve(ray)
	return intr
}

func plain() (material.Surface, material.Environment) {
	return material.DefaultSurface(), material.Air()
}
