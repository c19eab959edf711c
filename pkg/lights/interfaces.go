package lights

import (
	"errors"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

type LightType string

const (
	LightTypePoint       LightType = "point"
	LightTypeSpot        LightType = "spot"
	LightTypeDirectional LightType = "directional"
)

// ErrInvalidLight is returned by Validate for lights with unusable parameters
var ErrInvalidLight = errors.New("invalid light")

// Light interface for sources queried by the shading loop
type Light interface {
	Type() LightType

	// Shadow returns the attenuation of the light at point p and fills in
	// the direction toward the light, its color and its distance
	Shadow(p core.Vec3) (float64, LightInfo)
}

// LightInfo describes a light as seen from a shading point
type LightInfo struct {
	L     core.Vec3 // Unit direction from the shading point to the light
	Color core.Vec3 // Light color
	Dist  float64   // Distance to the light, +Inf for directional lights
}

// Attenuation holds the constant, linear and quadratic falloff coefficients
type Attenuation struct {
	Cc, Cl, Cq float64
}

// At returns min(1 / (Cc + Cl·d + Cq·d²), 1)
func (a Attenuation) At(d float64) float64 {
	return min(1/(a.Cc+a.Cl*d+a.Cq*d*d), 1)
}

func (a Attenuation) valid() bool {
	return a.Cc >= 0 && a.Cl >= 0 && a.Cq >= 0
}
