package geometry

import (
	"errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// ErrInvalidGeometry is returned by Validate for shapes whose parameters
// would make intersection or normal evaluation produce NaN or Inf
var ErrInvalidGeometry = errors.New("invalid geometry")

// Shape interface for objects that can be hit by rays.
// Implementations must not mutate themselves in Intersect or GetNormal so
// that a scene can be traced from many goroutines at once.
type Shape interface {
	// Intersect returns the nearest intersection with T > core.Threshold
	Intersect(ray core.Ray) (Intersection, bool)
	// GetNormal fills in the normal at the already resolved hit point
	GetNormal(intr *Intersection)
	GetSurface() material.Surface
	GetMedium() material.Environment
}

// Validator interface for shapes that can check their own parameters
type Validator interface {
	Validate() error
}

// Finish carries the surface coefficients and inner medium of a shape
type Finish struct {
	Surface material.Surface     // Shading coefficients
	Medium  material.Environment // Medium inside the shape
}

// GetSurface returns the shading coefficients
func (f Finish) GetSurface() material.Surface {
	return f.Surface
}

// GetMedium returns the medium inside the shape
func (f Finish) GetMedium() material.Environment {
	return f.Medium
}
