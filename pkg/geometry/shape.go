package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Intersection contains information about a ray-shape intersection.
// P and N are computed lazily: HasP and HasN record whether they are set.
type Intersection struct {
	T     float64   // Distance along the ray, +Inf when nothing was hit
	Shape Shape     // Shape that was hit
	P     core.Vec3 // Point of intersection
	HasP  bool
	N     core.Vec3 // Surface normal at P
	HasN  bool

	// Shape specific scratch data, e.g. the face index of a box
	Aux     [5]int
	Scalars [5]float64
}

// NoHit returns the sentinel intersection
func NoHit() Intersection {
	return Intersection{T: math.Inf(1)}
}

// Hit reports whether the record describes an actual intersection
func (i *Intersection) Hit() bool {
	return i.Shape != nil && !math.IsInf(i.T, 1)
}

// Resolve computes the hit point and the normal if the shape did not
func (i *Intersection) Resolve(ray core.Ray) {
	if !i.HasP {
		i.P = ray.At(i.T)
		i.HasP = true
	}
	if !i.HasN {
		i.Shape.GetNormal(i)
		i.HasN = true
	}
}
