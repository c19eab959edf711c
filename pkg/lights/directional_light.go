package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DirectionalLight is an infinitely distant light with parallel rays
type DirectionalLight struct {
	Direction core.Vec3 // Direction the light travels in
	Color     core.Vec3
}

// NewDirectionalLight creates a light shining along direction
func NewDirectionalLight(direction, color core.Vec3) *DirectionalLight {
	return &DirectionalLight{Direction: direction.Normalize(), Color: color}
}

// Type implements the Light interface
func (dl *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// Shadow implements the Light interface. There is no falloff and any
// occluder along L casts a shadow.
func (dl *DirectionalLight) Shadow(p core.Vec3) (float64, LightInfo) {
	return 1, LightInfo{
		L:     dl.Direction.Negate(),
		Color: dl.Color,
		Dist:  math.Inf(1),
	}
}

// Validate rejects a zero direction
func (dl *DirectionalLight) Validate() error {
	if dl.Direction.LengthSquared() == 0 || !dl.Direction.IsFinite() {
		return fmt.Errorf("%w: directional light has no direction", ErrInvalidLight)
	}
	return nil
}
