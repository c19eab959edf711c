package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS, cubed
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b
	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// NewSphereGridScene creates a grid of colored mirror spheres on a floor
func NewSphereGridScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Location: core.NewVec3(4.5, 6, 18),
		LookAt:   core.NewVec3(4.5, 0.8, 4.5),
		Up:       core.NewVec3(0, 1, 0),
		ProjDist: 0.1,
		Size:     0.08,
		Width:    640,
		Height:   360,
	}

	s := NewScene()
	s.CameraConfig = applyCameraOverrides(defaultCameraConfig, cameraOverrides)
	s.AmbientColor = core.Splat(0.4)
	s.Background = core.NewVec3(0.5, 0.7, 1.0)
	s.MaxRecLevel = 6

	s.Add(geometry.NewPlane(
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 0),
		material.NewSurface(core.Splat(0.1), core.Splat(0.5), core.Splat(0.1), 2, 0.1, 0),
		material.Air(),
	))
	s.AddLight(lights.NewPointLight(
		core.NewVec3(20, 25, 20),
		core.NewVec3(1.0, 0.96, 0.9),
		1, 0, 0,
	))

	gridSize := 8
	targetArea := 9.0
	spacing := targetArea / float64(gridSize-1)
	sphereRadius := spacing * 0.35

	// OKLCH parameters for color variation
	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5
			position := core.NewVec3(x, sphereRadius, z)

			// Hue varies across X, chroma across Z
			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)
			color := oklchToRGB(lightness, chroma, hue)

			// Vary reflectivity slightly
			kr := 0.2 + 0.3*float64((i+j)%3)/2.0
			surf := material.NewSurface(color.Multiply(0.2), color, core.Splat(0.6), 32, kr, 0)

			s.Add(geometry.NewSphere(position, sphereRadius, surf, material.Air()))
		}
	}

	return s
}
