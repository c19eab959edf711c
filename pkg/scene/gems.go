package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewGemsScene creates ruby and emerald spheres and a murky glass ball on a
// slate floor, lit by a 2x2 grid of white lights
func NewGemsScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Location: core.NewVec3(2.5, 4, 14),
		LookAt:   core.NewVec3(2.5, 1, -2),
		Up:       core.NewVec3(0, 1, 0),
		ProjDist: 0.1,
		Size:     0.1,
		Width:    480,
		Height:   270,
	}

	s := NewScene()
	s.CameraConfig = applyCameraOverrides(defaultCameraConfig, cameraOverrides)
	s.AmbientColor = core.Splat(0.3)
	s.Background = core.NewVec3(0.02, 0.02, 0.05)
	// Four lights quadruple the secondary rays at every level
	s.MaxRecLevel = 6

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 2, -3.5), 2, material.Ruby(), material.Glass()),
		geometry.NewSphere(core.NewVec3(5, 2, -3.5), 2, material.Emerald(), material.Glass()),
		geometry.NewSphere(core.NewVec3(0.5, 1.5, 6.5), 1, material.Violet(), material.NewEnvironment(1.01, 0.99)),
		geometry.NewPlaneDistance(core.NewVec3(0, 1, 0), 0, material.Slate(), material.Air()),
	)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			s.AddLight(lights.NewPointLight(
				core.NewVec3(float64(j)*3, 7, float64(i)*3),
				core.NewVec3(1, 1, 1),
				1, 0.3, 0.1,
			))
		}
	}

	return s
}
