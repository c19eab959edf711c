package lights

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PointLight emits uniformly from a single position
type PointLight struct {
	Position core.Vec3
	Color    core.Vec3
	Attenuation
}

// NewPointLight creates a point light with constant, linear and quadratic
// attenuation coefficients
func NewPointLight(position, color core.Vec3, cc, cl, cq float64) *PointLight {
	return &PointLight{
		Position:    position,
		Color:       color,
		Attenuation: Attenuation{Cc: cc, Cl: cl, Cq: cq},
	}
}

// Type implements the Light interface
func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Shadow implements the Light interface
func (pl *PointLight) Shadow(p core.Vec3) (float64, LightInfo) {
	toLight := pl.Position.Subtract(p)
	dist := toLight.Length()

	info := LightInfo{
		Color: pl.Color,
		Dist:  dist,
	}
	if dist > 0 {
		info.L = toLight.Divide(dist)
	}

	return pl.At(dist), info
}

// Validate rejects non-finite positions and negative coefficients
func (pl *PointLight) Validate() error {
	if !pl.Position.IsFinite() || !pl.Color.IsFinite() {
		return fmt.Errorf("%w: point light at %v is not finite", ErrInvalidLight, pl.Position)
	}
	if !pl.Attenuation.valid() {
		return fmt.Errorf("%w: negative attenuation %+v", ErrInvalidLight, pl.Attenuation)
	}
	return nil
}
