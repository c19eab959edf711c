package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Plane represents an infinite plane N·X + D = 0
type Plane struct {
	Normal core.Vec3 // Unit normal
	D      float64   // Signed offset, -(N·P) for a point P on the plane
	Finish
}

// NewPlane creates a plane through point with the given normal
func NewPlane(normal, point core.Vec3, surface material.Surface, medium material.Environment) *Plane {
	n := normal.Normalize()
	return &Plane{
		Normal: n,
		D:      -n.Dot(point),
		Finish: Finish{Surface: surface, Medium: medium},
	}
}

// NewPlaneDistance creates a plane from its normal and offset D
func NewPlaneDistance(normal core.Vec3, d float64, surface material.Surface, medium material.Environment) *Plane {
	return &Plane{
		Normal: normal.Normalize(),
		D:      d,
		Finish: Finish{Surface: surface, Medium: medium},
	}
}

// Intersect tests if a ray intersects with the plane.
// A ray lying in the plane is reported as a miss.
func (p *Plane) Intersect(ray core.Ray) (Intersection, bool) {
	nd := p.Normal.Dot(ray.Direction)
	if math.Abs(nd) < core.Threshold {
		return Intersection{}, false
	}

	t := -(ray.Origin.Dot(p.Normal) + p.D) / nd
	if t < core.Threshold {
		return Intersection{}, false
	}

	return Intersection{T: t, Shape: p}, true
}

// GetNormal sets the constant plane normal
func (p *Plane) GetNormal(intr *Intersection) {
	intr.N = p.Normal
}

// Validate rejects a zero or non-finite normal
func (p *Plane) Validate() error {
	if !p.Normal.IsFinite() || p.Normal.LengthSquared() == 0 {
		return fmt.Errorf("%w: plane normal %v is degenerate", ErrInvalidGeometry, p.Normal)
	}
	if math.IsNaN(p.D) || math.IsInf(p.D, 0) {
		return fmt.Errorf("%w: plane offset %v is not finite", ErrInvalidGeometry, p.D)
	}
	return nil
}
