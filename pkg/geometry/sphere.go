package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	Finish
	r2 float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, surface material.Surface, medium material.Environment) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Finish: Finish{Surface: surface, Medium: medium},
		r2:     radius * radius,
	}
}

// Intersect solves the ray-sphere quadratic geometrically.
// A ray starting inside the sphere hits the exit point.
func (s *Sphere) Intersect(ray core.Ray) (Intersection, bool) {
	a := s.Center.Subtract(ray.Origin)
	oc2 := a.Dot(a)
	ok := a.Dot(ray.Direction)
	h2 := s.r2 - (oc2 - ok*ok)

	// Origin inside the sphere
	if oc2 < s.r2 {
		t := ok + math.Sqrt(h2)
		if t <= core.Threshold {
			return Intersection{}, false
		}
		return Intersection{T: t, Shape: s}, true
	}

	// Center is behind the origin, or the ray passes by
	if ok < 0 || h2 < 0 {
		return Intersection{}, false
	}

	t := ok - math.Sqrt(h2)
	if t <= core.Threshold {
		return Intersection{}, false
	}
	return Intersection{T: t, Shape: s, P: ray.At(t), HasP: true}, true
}

// GetNormal sets the outward unit normal at the hit point
func (s *Sphere) GetNormal(intr *Intersection) {
	intr.N = intr.P.Subtract(s.Center).Normalize()
}

// Validate rejects non-positive or non-finite radii
func (s *Sphere) Validate() error {
	if !s.Center.IsFinite() {
		return fmt.Errorf("%w: sphere center %v is not finite", ErrInvalidGeometry, s.Center)
	}
	if math.IsNaN(s.Radius) || math.IsInf(s.Radius, 0) || s.Radius <= 0 {
		return fmt.Errorf("%w: sphere radius %v must be positive", ErrInvalidGeometry, s.Radius)
	}
	return nil
}
