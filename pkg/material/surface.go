package material

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Surface holds the Phong shading coefficients of a shape
type Surface struct {
	Ka core.Vec3 // Ambient reflectance
	Kd core.Vec3 // Diffuse reflectance
	Ks core.Vec3 // Specular reflectance
	Ph float64   // Phong shininess exponent
	Kr float64   // Mirror reflection weight
	Kt float64   // Transmission weight
}

// NewSurface creates a surface from its coefficients
func NewSurface(ka, kd, ks core.Vec3, ph, kr, kt float64) Surface {
	return Surface{Ka: ka, Kd: kd, Ks: ks, Ph: ph, Kr: kr, Kt: kt}
}

// DefaultSurface returns a dull, slightly reflective and transmissive surface
func DefaultSurface() Surface {
	return Surface{
		Ka: core.Splat(0.1),
		Kd: core.Splat(0.8),
		Ks: core.Splat(0.2),
		Ph: 1,
		Kr: 0.1,
		Kt: 0.1,
	}
}

// Validate checks that every coefficient is finite and non-negative
func (s Surface) Validate() error {
	if !s.Ka.IsFinite() || !s.Kd.IsFinite() || !s.Ks.IsFinite() {
		return fmt.Errorf("%w: non-finite color coefficient", ErrInvalidSurface)
	}
	for _, c := range []float64{s.Ph, s.Kr, s.Kt} {
		if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
			return fmt.Errorf("%w: coefficient %v out of range", ErrInvalidSurface, c)
		}
	}
	return nil
}
