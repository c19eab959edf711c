package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Face indices into boxNormals
const (
	FacePosX = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
)

// slabFaces holds the min and max face of each axis
var slabFaces = [3][2]int{
	{FaceNegX, FacePosX},
	{FaceNegY, FacePosY},
	{FaceNegZ, FacePosZ},
}

var boxNormals = [6]core.Vec3{
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
	{Z: 1}, {Z: -1},
}

// Box represents an axis-aligned box between two corners
type Box struct {
	MinBB core.Vec3
	MaxBB core.Vec3
	Finish
}

// NewBox creates a new axis-aligned box from its min and max corners
func NewBox(minBB, maxBB core.Vec3, surface material.Surface, medium material.Environment) *Box {
	return &Box{
		MinBB:  minBB,
		MaxBB:  maxBB,
		Finish: Finish{Surface: surface, Medium: medium},
	}
}

// NewCenteredBox creates a box from its center and half-extents
func NewCenteredBox(center, halfSize core.Vec3, surface material.Surface, medium material.Environment) *Box {
	return NewBox(center.Subtract(halfSize), center.Add(halfSize), surface, medium)
}

// Intersect clips the ray against the X, Y and Z slabs in turn.
// The face that produced the hit is stored in Aux[0].
func (b *Box) Intersect(ray core.Ray) (Intersection, bool) {
	tnear, tfar := math.Inf(-1), math.Inf(1)
	nearFace, farFace := -1, -1

	for axis := 0; axis < 3; axis++ {
		org := ray.Origin.Component(axis)
		dir := ray.Direction.Component(axis)
		lo := b.MinBB.Component(axis)
		hi := b.MaxBB.Component(axis)

		// Parallel to the slab: either always inside it or never
		if math.Abs(dir) < core.Threshold {
			if org < lo || org > hi {
				return Intersection{}, false
			}
			continue
		}

		t0 := (lo - org) / dir
		t1 := (hi - org) / dir
		enter, exit := slabFaces[axis][0], slabFaces[axis][1]
		if t0 > t1 {
			t0, t1 = t1, t0
			enter, exit = exit, enter
		}
		if t0 > tnear {
			tnear, nearFace = t0, enter
		}
		if t1 < tfar {
			tfar, farFace = t1, exit
		}

		// The ray passes by the box
		if tnear > tfar {
			return Intersection{}, false
		}
		// The box is behind the ray
		if tfar < 0 {
			return Intersection{}, false
		}
	}

	intr := Intersection{Shape: b}
	switch {
	case tnear > core.Threshold && nearFace >= 0:
		intr.T = tnear
		intr.Aux[0] = nearFace
	case tfar > core.Threshold && farFace >= 0:
		// Origin inside the box, leave through the far face
		intr.T = tfar
		intr.Aux[0] = farFace
	default:
		return Intersection{}, false
	}
	intr.P = ray.At(intr.T)
	intr.HasP = true
	return intr, true
}

// GetNormal looks up the normal of the face stored by Intersect
func (b *Box) GetNormal(intr *Intersection) {
	intr.N = boxNormals[intr.Aux[0]]
}

// Validate rejects inverted, flat or non-finite boxes
func (b *Box) Validate() error {
	if !b.MinBB.IsFinite() || !b.MaxBB.IsFinite() {
		return fmt.Errorf("%w: box corners %v %v are not finite", ErrInvalidGeometry, b.MinBB, b.MaxBB)
	}
	if b.MinBB.X >= b.MaxBB.X || b.MinBB.Y >= b.MaxBB.Y || b.MinBB.Z >= b.MaxBB.Z {
		return fmt.Errorf("%w: box min %v must be below max %v on every axis", ErrInvalidGeometry, b.MinBB, b.MaxBB)
	}
	return nil
}
