package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// applyCameraOverrides merges the first override, if any, onto the defaults
func applyCameraOverrides(defaults renderer.CameraConfig, overrides []renderer.CameraConfig) renderer.CameraConfig {
	if len(overrides) > 0 {
		return renderer.MergeCameraConfig(defaults, overrides[0])
	}
	return defaults
}

// NewDefaultScene creates two overlapping violet spheres above a floor,
// lit by a single violet point light
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	s := NewScene()
	s.CameraConfig = applyCameraOverrides(renderer.DefaultCameraConfig(), cameraOverrides)

	violet := material.Violet()
	dull := material.DefaultSurface()
	dull.Kr = 0.9

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1, violet, material.Air()),
		geometry.NewSphere(core.NewVec3(-0.2, 0, -2), 1, dull, material.Air()),
		geometry.NewPlane(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), violet, material.Air()),
	)

	s.AddLight(lights.NewPointLight(
		core.NewVec3(1, 7, 2),   // position
		core.NewVec3(0.5, 0, 1), // color
		0, 0.1, 0,               // linear falloff only
	))

	return s
}
