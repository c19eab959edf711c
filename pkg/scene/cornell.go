package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewCornellScene creates a Cornell box style room from five planes, with a
// tall box and a glass sphere inside and a point light under the ceiling
func NewCornellScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Location: core.NewVec3(0, 0, 3.4), // Just inside the open front of the room
		LookAt:   core.NewVec3(0, 0, 0),
		Up:       core.NewVec3(0, 1, 0),
		ProjDist: 0.1,
		Size:     0.1,
		Width:    400,
		Height:   400, // Square room, square frame
	}

	s := NewScene()
	s.CameraConfig = applyCameraOverrides(defaultCameraConfig, cameraOverrides)
	s.AmbientColor = core.Splat(0.2)

	wall := func(kd core.Vec3) material.Surface {
		return material.NewSurface(kd.Multiply(0.2), kd, core.Splat(0.05), 4, 0.05, 0)
	}
	white := wall(core.NewVec3(0.73, 0.73, 0.73))
	red := wall(core.NewVec3(0.65, 0.05, 0.05))
	green := wall(core.NewVec3(0.12, 0.45, 0.15))

	// Room spans [-1, 1] on every axis, open toward +Z
	s.Add(
		geometry.NewPlane(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), white, material.Air()), // floor
		geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), white, material.Air()), // ceiling
		geometry.NewPlane(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), white, material.Air()), // back wall
		geometry.NewPlane(core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0), red, material.Air()),   // left wall
		geometry.NewPlane(core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0), green, material.Air()), // right wall
	)

	tallBox := geometry.NewBox(
		core.NewVec3(-0.7, -1, -0.6),
		core.NewVec3(-0.15, 0.2, -0.05),
		material.NewSurface(core.Splat(0.1), core.Splat(0.7), core.Splat(0.3), 16, 0.2, 0),
		material.Air(),
	)
	glassSphere := geometry.NewSphere(
		core.NewVec3(0.4, -0.6, 0.2),
		0.4,
		material.NewSurface(core.Splat(0), core.Splat(0.05), core.Splat(0.8), 64, 0.1, 0.85),
		material.Glass(),
	)
	s.Add(tallBox, glassSphere)

	s.AddLight(lights.NewPointLight(
		core.NewVec3(0, 0.9, 0),
		core.NewVec3(1, 0.95, 0.9),
		1, 0.1, 0.05,
	))

	return s
}
