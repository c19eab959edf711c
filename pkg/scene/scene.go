package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

const (
	// DefaultMaxRecLevel bounds the depth counter of Trace
	DefaultMaxRecLevel = 8
	// ShadowFactor darkens the color of an occluded shading point
	ShadowFactor = 0.30
)

// ErrInvalidScene is returned by Preprocess for unusable scene parameters
var ErrInvalidScene = errors.New("invalid scene")

// ShadowMode selects how an occluded light darkens a shading point
type ShadowMode int

const (
	// ShadowCompound multiplies the whole color accumulated so far, so an
	// occluder of one light also darkens the lights processed before it
	ShadowCompound ShadowMode = iota
	// ShadowPerLight multiplies only the occluded light's own contribution
	ShadowPerLight
)

func (m ShadowMode) String() string {
	switch m {
	case ShadowCompound:
		return "compound"
	case ShadowPerLight:
		return "per-light"
	default:
		return fmt.Sprintf("ShadowMode(%d)", int(m))
	}
}

// ParseShadowMode converts a name produced by String back to a mode
func ParseShadowMode(name string) (ShadowMode, error) {
	switch name {
	case "compound", "":
		return ShadowCompound, nil
	case "per-light", "perlight":
		return ShadowPerLight, nil
	default:
		return 0, fmt.Errorf("unknown shadow mode %q", name)
	}
}

// Fog blends hit colors toward Color with distance along the ray.
// Hits closer than Start are untouched, hits beyond End take Color.
type Fog struct {
	Color      core.Vec3
	Start, End float64
}

// Visibility returns the fraction of the surface color kept at distance t
func (f *Fog) Visibility(t float64) float64 {
	switch {
	case t <= f.Start:
		return 1
	case t >= f.End:
		return 0
	default:
		return (f.End - t) / (f.End - f.Start)
	}
}

// Scene contains all the elements needed for rendering.
// A scene must not be modified while it is being traced.
type Scene struct {
	Shapes       []geometry.Shape // Objects in the scene
	Lights       []lights.Light   // Lights in the scene
	AmbientColor core.Vec3        // Scene-wide ambient light, scaled by each surface's Ka
	Background   core.Vec3        // Color of rays that escape or run out of depth/energy
	MaxRecLevel  int              // Depth at which Trace stops recursing
	Air          material.Environment
	ShadowMode   ShadowMode
	Fog          *Fog // Optional depth fog, nil disables it
	CameraConfig renderer.CameraConfig
}

// NewScene creates an empty scene with white ambient light, a black
// background and the default recursion limit
func NewScene() *Scene {
	return &Scene{
		Shapes:       make([]geometry.Shape, 0),
		Lights:       make([]lights.Light, 0),
		AmbientColor: core.Splat(1),
		Background:   core.Splat(0),
		MaxRecLevel:  DefaultMaxRecLevel,
		Air:          material.Air(),
		ShadowMode:   ShadowCompound,
		CameraConfig: renderer.DefaultCameraConfig(),
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddLight appends lights to the scene
func (s *Scene) AddLight(lts ...lights.Light) {
	s.Lights = append(s.Lights, lts...)
}

// Preprocess validates the scene before rendering. It fails on the first
// shape, surface, medium or light that would produce NaN or Inf colors.
func (s *Scene) Preprocess() error {
	if s.MaxRecLevel < 0 {
		return fmt.Errorf("%w: max recursion level %d is negative", ErrInvalidScene, s.MaxRecLevel)
	}
	if !s.AmbientColor.IsFinite() || !s.Background.IsFinite() {
		return fmt.Errorf("%w: ambient and background colors must be finite", ErrInvalidScene)
	}
	if err := s.Air.Validate(); err != nil {
		return fmt.Errorf("scene air: %w", err)
	}
	if s.Fog != nil && !(s.Fog.End > s.Fog.Start) {
		return fmt.Errorf("%w: fog end %v must be beyond start %v", ErrInvalidScene, s.Fog.End, s.Fog.Start)
	}

	for i, shape := range s.Shapes {
		if shape == nil {
			return fmt.Errorf("%w: shape %d is nil", ErrInvalidScene, i)
		}
		if validator, ok := shape.(geometry.Validator); ok {
			if err := validator.Validate(); err != nil {
				return fmt.Errorf("shape %d: %w", i, err)
			}
		}
		if err := shape.GetSurface().Validate(); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
		if err := shape.GetMedium().Validate(); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}

	for i, light := range s.Lights {
		if light == nil {
			return fmt.Errorf("%w: light %d is nil", ErrInvalidScene, i)
		}
		if validator, ok := light.(geometry.Validator); ok {
			if err := validator.Validate(); err != nil {
				return fmt.Errorf("light %d: %w", i, err)
			}
		}
	}

	return nil
}

// Intersection finds the nearest shape hit by the ray with a linear scan
func (s *Scene) Intersection(ray core.Ray) (geometry.Intersection, bool) {
	closest := geometry.NoHit()

	for _, shape := range s.Shapes {
		if hit, ok := shape.Intersect(ray); ok && hit.T < closest.T {
			closest = hit
		}
	}

	return closest, closest.Hit()
}

// occluded reports whether any shape blocks the segment from p toward the light
func (s *Scene) occluded(p core.Vec3, info lights.LightInfo) bool {
	shadowRay := core.Ray{Origin: p.Add(info.L.Multiply(core.Threshold)), Direction: info.L}
	hit, ok := s.Intersection(shadowRay)
	return ok && hit.T < info.Dist
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// TraceRay implements renderer.Tracer: a primary ray starts in the scene's
// air with full weight at depth 0
func (s *Scene) TraceRay(ray core.Ray) core.Vec3 {
	return s.Trace(ray, s.Air, 1, 0)
}
