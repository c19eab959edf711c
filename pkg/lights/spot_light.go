package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// SpotLight is a point light restricted to a cone with a smooth edge
type SpotLight struct {
	PointLight
	direction       core.Vec3 // Normalized direction vector (from -> to)
	cosTotalWidth   float64   // Cosine of total cone angle (outer edge)
	cosFalloffStart float64   // Cosine of falloff start angle (inner cone)
}

// NewSpotLight creates a new spot light
// from: light position
// to: point the light is aimed at
// coneAngleDegrees: total cone angle in degrees
// coneDeltaAngleDegrees: falloff transition angle in degrees
func NewSpotLight(from, to, color core.Vec3, coneAngleDegrees, coneDeltaAngleDegrees float64, att Attenuation) *SpotLight {
	totalWidthRadians := coneAngleDegrees * math.Pi / 180.0
	falloffStartRadians := (coneAngleDegrees - coneDeltaAngleDegrees) * math.Pi / 180.0

	return &SpotLight{
		PointLight: PointLight{
			Position:    from,
			Color:       color,
			Attenuation: att,
		},
		direction:       to.Subtract(from).Normalize(),
		cosTotalWidth:   math.Cos(totalWidthRadians),
		cosFalloffStart: math.Cos(falloffStartRadians),
	}
}

// Type implements the Light interface
func (sl *SpotLight) Type() LightType {
	return LightTypeSpot
}

// Shadow implements the Light interface, scaling the point light
// attenuation by the cone falloff
func (sl *SpotLight) Shadow(p core.Vec3) (float64, LightInfo) {
	att, info := sl.PointLight.Shadow(p)
	if info.Dist == 0 {
		return 0, info
	}

	cosAngle := sl.direction.Dot(info.L.Negate())
	return att * sl.falloff(cosAngle), info
}

// falloff calculates the spot light falloff
// Based on the cosine of the angle between light direction and direction to point
func (sl *SpotLight) falloff(cosAngle float64) float64 {
	// Outside the total cone width
	if cosAngle < sl.cosTotalWidth {
		return 0.0
	}

	// Inside the inner cone (full intensity)
	if cosAngle >= sl.cosFalloffStart {
		return 1.0
	}

	// Smooth quartic falloff across the transition region
	delta := (cosAngle - sl.cosTotalWidth) / (sl.cosFalloffStart - sl.cosTotalWidth)
	return delta * delta * delta * delta
}

// Validate checks the underlying point light and the aim direction
func (sl *SpotLight) Validate() error {
	if err := sl.PointLight.Validate(); err != nil {
		return err
	}
	if sl.direction.LengthSquared() == 0 || !sl.direction.IsFinite() {
		return fmt.Errorf("%w: spot light has no aim direction", ErrInvalidLight)
	}
	return nil
}
