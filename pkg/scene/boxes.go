package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewBoxesScene creates a box and a triangle pyramid over a mirror floor,
// lit by a spot light and a directional light
func NewBoxesScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Location: core.NewVec3(3, 3, 7),
		LookAt:   core.NewVec3(0, 0, 0),
		Up:       core.NewVec3(0, 1, 0),
		ProjDist: 0.1,
		Size:     0.1,
		Width:    400,
		Height:   300,
	}

	s := NewScene()
	s.CameraConfig = applyCameraOverrides(defaultCameraConfig, cameraOverrides)
	s.AmbientColor = core.Splat(0.25)
	s.Background = core.NewVec3(0.05, 0.05, 0.1)
	s.ShadowMode = ShadowPerLight

	bronze := material.NewSurface(
		core.NewVec3(0.25, 0.148, 0.06475),
		core.NewVec3(0.4, 0.2368, 0.1036),
		core.NewVec3(0.774597, 0.458561, 0.200621),
		76.8, 0.4, 0,
	)

	s.Add(
		geometry.NewPlane(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), material.Mirror(), material.Air()),
		geometry.NewCenteredBox(core.NewVec3(-1.2, -0.4, 0), core.NewVec3(0.6, 0.6, 0.6), bronze, material.Air()),
	)

	// Square pyramid, apex up
	ruby := material.Ruby()
	base := [4]core.Vec3{
		core.NewVec3(0.5, -1, -0.8),
		core.NewVec3(2.1, -1, -0.8),
		core.NewVec3(2.1, -1, 0.8),
		core.NewVec3(0.5, -1, 0.8),
	}
	apex := core.NewVec3(1.3, 0.6, 0)
	for i := range base {
		s.Add(geometry.NewTriangle(base[i], base[(i+1)%4], apex, ruby, material.Glass()))
	}

	s.AddLight(
		lights.NewSpotLight(
			core.NewVec3(0, 5, 3),
			core.NewVec3(0, -1, 0),
			core.NewVec3(1, 1, 0.9),
			35, 10,
			lights.Attenuation{Cc: 1, Cl: 0.05},
		),
		lights.NewDirectionalLight(core.NewVec3(-1, -2, -1), core.NewVec3(0.2, 0.25, 0.4)),
	)

	return s
}
