package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	P0, P1, P2 core.Vec3
	Finish

	normal core.Vec3 // Unit plane normal
	d      float64   // Plane offset, -(N·P0)

	// Dual basis of the two edges: (P·u1 - u0, P·v1 - v0) are the
	// barycentric coordinates of a plane point P
	u1, v1     core.Vec3
	u0, v0     float64
	degenerate bool
}

// NewTriangle creates a new triangle and precomputes its plane and
// barycentric basis
func NewTriangle(p0, p1, p2 core.Vec3, surface material.Surface, medium material.Environment) *Triangle {
	t := &Triangle{
		P0:     p0,
		P1:     p1,
		P2:     p2,
		Finish: Finish{Surface: surface, Medium: medium},
	}
	t.computeBasis()
	return t
}

func (t *Triangle) computeBasis() {
	s1 := t.P1.Subtract(t.P0)
	s2 := t.P2.Subtract(t.P0)

	n := s1.Cross(s2)
	s11, s22, s12 := s1.Dot(s1), s2.Dot(s2), s1.Dot(s2)
	det := s11*s22 - s12*s12

	// Zero area: collinear or coincident vertices
	if n.LengthSquared() == 0 || math.Abs(det) <= core.Threshold*s11*s22 || !n.IsFinite() {
		t.degenerate = true
		return
	}

	t.normal = n.Normalize()
	t.d = -t.normal.Dot(t.P0)

	t.u1 = s1.Multiply(s22).Subtract(s2.Multiply(s12)).Divide(det)
	t.u0 = t.P0.Dot(t.u1)
	t.v1 = s2.Multiply(s11).Subtract(s1.Multiply(s12)).Divide(det)
	t.v0 = t.P0.Dot(t.v1)
}

// Intersect intersects the supporting plane, then checks the barycentric
// coordinates of the hit point
func (t *Triangle) Intersect(ray core.Ray) (Intersection, bool) {
	if t.degenerate {
		return Intersection{}, false
	}

	nd := t.normal.Dot(ray.Direction)
	if math.Abs(nd) < core.Threshold {
		return Intersection{}, false
	}

	dist := -(ray.Origin.Dot(t.normal) + t.d) / nd
	if dist < core.Threshold {
		return Intersection{}, false
	}

	p := ray.At(dist)
	u := p.Dot(t.u1) - t.u0
	v := p.Dot(t.v1) - t.v0
	if u < 0 || u > 1 || v < 0 || v > 1 || u+v > 1 {
		return Intersection{}, false
	}

	intr := Intersection{T: dist, Shape: t, P: p, HasP: true}
	intr.Scalars[0] = u
	intr.Scalars[1] = v
	return intr, true
}

// GetNormal sets the unit plane normal, oriented by the vertex winding
func (t *Triangle) GetNormal(intr *Intersection) {
	intr.N = t.normal
}

// Normal returns the unit normal, (P1-P0)×(P2-P0) normalized
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Validate rejects zero-area triangles
func (t *Triangle) Validate() error {
	if !t.P0.IsFinite() || !t.P1.IsFinite() || !t.P2.IsFinite() {
		return fmt.Errorf("%w: triangle vertices are not finite", ErrInvalidGeometry)
	}
	if t.degenerate {
		return fmt.Errorf("%w: triangle %v %v %v has zero area", ErrInvalidGeometry, t.P0, t.P1, t.P2)
	}
	return nil
}
