package loaders

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ErrInvalidConfig is returned for scene descriptions that cannot be built
var ErrInvalidConfig = errors.New("invalid scene config")

// Vec3Cfg is a vector written as a JSON array [x, y, z]
type Vec3Cfg [3]float64

// Vec returns the vector value
func (v Vec3Cfg) Vec() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// vecOr returns v, or fallback when v is absent
func vecOr(v *Vec3Cfg, fallback core.Vec3) core.Vec3 {
	if v == nil {
		return fallback
	}
	return v.Vec()
}

type CameraCfg struct {
	Location *Vec3Cfg `json:"location,omitempty"`
	LookAt   *Vec3Cfg `json:"lookAt,omitempty"`
	Up       *Vec3Cfg `json:"up,omitempty"`
	ProjDist float64  `json:"projDist,omitempty"`
	Size     float64  `json:"size,omitempty"`
	Width    int      `json:"width,omitempty"`
	Height   int      `json:"height,omitempty"`
}

// SurfaceCfg starts from a named preset and overrides individual coefficients
type SurfaceCfg struct {
	Preset string   `json:"preset,omitempty"` // default, ruby, emerald, violet, slate, mirror
	Ka     *Vec3Cfg `json:"ka,omitempty"`
	Kd     *Vec3Cfg `json:"kd,omitempty"`
	Ks     *Vec3Cfg `json:"ks,omitempty"`
	Ph     *float64 `json:"ph,omitempty"`
	Kr     *float64 `json:"kr,omitempty"`
	Kt     *float64 `json:"kt,omitempty"`
}

type MediumCfg struct {
	Preset     string   `json:"preset,omitempty"` // air, glass
	Refraction *float64 `json:"refraction,omitempty"`
	Decay      *float64 `json:"decay,omitempty"`
}

type ShapeCfg struct {
	Type string `json:"type"` // sphere, plane, box, triangle

	// sphere
	Center *Vec3Cfg `json:"center,omitempty"`
	Radius float64  `json:"radius,omitempty"`

	// plane: normal and either a point or a distance
	Normal *Vec3Cfg `json:"normal,omitempty"`
	Point  *Vec3Cfg `json:"point,omitempty"`
	D      float64  `json:"d,omitempty"`

	// box: min/max corners or center/halfSize
	Min      *Vec3Cfg `json:"min,omitempty"`
	Max      *Vec3Cfg `json:"max,omitempty"`
	HalfSize *Vec3Cfg `json:"halfSize,omitempty"`

	// triangle
	Vertices []Vec3Cfg `json:"vertices,omitempty"`

	Surface SurfaceCfg `json:"surface"`
	Medium  MediumCfg  `json:"medium"`
}

type LightCfg struct {
	Type        string   `json:"type"` // point, spot, directional
	Position    *Vec3Cfg `json:"position,omitempty"`
	Color       Vec3Cfg  `json:"color"`
	Attenuation Vec3Cfg  `json:"attenuation"` // constant, linear, quadratic

	// spot
	Target   *Vec3Cfg `json:"target,omitempty"`
	ConeDeg  float64  `json:"coneDeg,omitempty"`
	DeltaDeg float64  `json:"deltaDeg,omitempty"`

	// directional
	Direction *Vec3Cfg `json:"direction,omitempty"`
}

type FogCfg struct {
	Color Vec3Cfg `json:"color"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// SceneConfig is the JSON description of a scene
type SceneConfig struct {
	Camera       CameraCfg  `json:"camera"`
	AmbientColor *Vec3Cfg   `json:"ambient,omitempty"`
	Background   *Vec3Cfg   `json:"background,omitempty"`
	MaxRecLevel  *int       `json:"maxRecLevel,omitempty"` // nil keeps the scene default
	Air          MediumCfg  `json:"air"`
	ShadowMode   string     `json:"shadowMode,omitempty"` // compound, per-light
	Fog          *FogCfg    `json:"fog,omitempty"`
	Shapes       []ShapeCfg `json:"shapes"`
	Lights       []LightCfg `json:"lights"`
}

// LoadScene reads a JSON scene description from path and builds the scene
func LoadScene(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScene builds a scene from JSON. Omitted scene parameters take the
// defaults of scene.NewScene and renderer.DefaultCameraConfig.
func ParseScene(data []byte) (*scene.Scene, error) {
	var cfg SceneConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg.Build()
}

// Build constructs the scene. Parameter ranges are left to Scene.Preprocess.
func (cfg SceneConfig) Build() (*scene.Scene, error) {
	if len(cfg.Lights) == 0 {
		return nil, fmt.Errorf("%w: config has no lights", ErrInvalidConfig)
	}

	s := scene.NewScene()
	s.CameraConfig = renderer.MergeCameraConfig(renderer.DefaultCameraConfig(), cfg.Camera.config())
	s.AmbientColor = vecOr(cfg.AmbientColor, s.AmbientColor)
	s.Background = vecOr(cfg.Background, s.Background)
	if cfg.MaxRecLevel != nil {
		s.MaxRecLevel = *cfg.MaxRecLevel
	}

	air, err := cfg.Air.build(material.Air())
	if err != nil {
		return nil, fmt.Errorf("air: %w", err)
	}
	s.Air = air

	mode, err := scene.ParseShadowMode(cfg.ShadowMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	s.ShadowMode = mode

	if cfg.Fog != nil {
		s.Fog = &scene.Fog{Color: cfg.Fog.Color.Vec(), Start: cfg.Fog.Start, End: cfg.Fog.End}
	}

	for i, sc := range cfg.Shapes {
		shape, err := sc.Build()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		s.Add(shape)
	}

	for i, lc := range cfg.Lights {
		light, err := lc.Build()
		if err != nil {
			return nil, fmt.Errorf("light %d: %w", i, err)
		}
		s.AddLight(light)
	}

	return s, nil
}

func (c CameraCfg) config() renderer.CameraConfig {
	return renderer.CameraConfig{
		Location: vecOr(c.Location, core.Vec3{}),
		LookAt:   vecOr(c.LookAt, core.Vec3{}),
		Up:       vecOr(c.Up, core.Vec3{}),
		ProjDist: c.ProjDist,
		Size:     c.Size,
		Width:    c.Width,
		Height:   c.Height,
	}
}

func surfacePreset(name string) (material.Surface, error) {
	switch name {
	case "", "default":
		return material.DefaultSurface(), nil
	case "ruby":
		return material.Ruby(), nil
	case "emerald":
		return material.Emerald(), nil
	case "violet":
		return material.Violet(), nil
	case "slate":
		return material.Slate(), nil
	case "mirror":
		return material.Mirror(), nil
	default:
		return material.Surface{}, fmt.Errorf("%w: unknown surface preset %q", ErrInvalidConfig, name)
	}
}

// Build returns the preset with the configured overrides applied
func (c SurfaceCfg) Build() (material.Surface, error) {
	surf, err := surfacePreset(c.Preset)
	if err != nil {
		return surf, err
	}
	surf.Ka = vecOr(c.Ka, surf.Ka)
	surf.Kd = vecOr(c.Kd, surf.Kd)
	surf.Ks = vecOr(c.Ks, surf.Ks)
	if c.Ph != nil {
		surf.Ph = *c.Ph
	}
	if c.Kr != nil {
		surf.Kr = *c.Kr
	}
	if c.Kt != nil {
		surf.Kt = *c.Kt
	}
	return surf, nil
}

func (c MediumCfg) build(fallback material.Environment) (material.Environment, error) {
	env := fallback
	switch c.Preset {
	case "":
	case "air":
		env = material.Air()
	case "glass":
		env = material.Glass()
	default:
		return env, fmt.Errorf("%w: unknown medium preset %q", ErrInvalidConfig, c.Preset)
	}
	if c.Refraction != nil {
		env.RefractionCoef = *c.Refraction
	}
	if c.Decay != nil {
		env.DecayCoef = *c.Decay
	}
	return env, nil
}

// Build constructs the shape described by the config
func (c ShapeCfg) Build() (geometry.Shape, error) {
	surf, err := c.Surface.Build()
	if err != nil {
		return nil, err
	}
	medium, err := c.Medium.build(material.Air())
	if err != nil {
		return nil, err
	}

	missing := func(field string) error {
		return fmt.Errorf("%w: %s needs %q", ErrInvalidConfig, c.Type, field)
	}

	switch c.Type {
	case "sphere":
		if c.Center == nil {
			return nil, missing("center")
		}
		return geometry.NewSphere(c.Center.Vec(), c.Radius, surf, medium), nil

	case "plane":
		if c.Normal == nil {
			return nil, missing("normal")
		}
		if c.Point != nil {
			return geometry.NewPlane(c.Normal.Vec(), c.Point.Vec(), surf, medium), nil
		}
		return geometry.NewPlaneDistance(c.Normal.Vec(), c.D, surf, medium), nil

	case "box":
		if c.Min != nil && c.Max != nil {
			return geometry.NewBox(c.Min.Vec(), c.Max.Vec(), surf, medium), nil
		}
		if c.Center != nil && c.HalfSize != nil {
			return geometry.NewCenteredBox(c.Center.Vec(), c.HalfSize.Vec(), surf, medium), nil
		}
		return nil, missing("min/max or center/halfSize")

	case "triangle":
		if len(c.Vertices) != 3 {
			return nil, fmt.Errorf("%w: triangle needs 3 vertices, got %d", ErrInvalidConfig, len(c.Vertices))
		}
		return geometry.NewTriangle(c.Vertices[0].Vec(), c.Vertices[1].Vec(), c.Vertices[2].Vec(), surf, medium), nil

	default:
		return nil, fmt.Errorf("%w: unknown shape type %q", ErrInvalidConfig, c.Type)
	}
}

// Build constructs the light described by the config
func (c LightCfg) Build() (lights.Light, error) {
	att := lights.Attenuation{Cc: c.Attenuation[0], Cl: c.Attenuation[1], Cq: c.Attenuation[2]}

	switch lights.LightType(c.Type) {
	case lights.LightTypePoint:
		if c.Position == nil {
			return nil, fmt.Errorf("%w: point light needs a position", ErrInvalidConfig)
		}
		return lights.NewPointLight(c.Position.Vec(), c.Color.Vec(), att.Cc, att.Cl, att.Cq), nil

	case lights.LightTypeSpot:
		if c.Position == nil || c.Target == nil {
			return nil, fmt.Errorf("%w: spot light needs a position and a target", ErrInvalidConfig)
		}
		return lights.NewSpotLight(c.Position.Vec(), c.Target.Vec(), c.Color.Vec(), c.ConeDeg, c.DeltaDeg, att), nil

	case lights.LightTypeDirectional:
		if c.Direction == nil {
			return nil, fmt.Errorf("%w: directional light needs a direction", ErrInvalidConfig)
		}
		return lights.NewDirectionalLight(c.Direction.Vec(), c.Color.Vec()), nil

	default:
		return nil, fmt.Errorf("%w: unknown light type %q", ErrInvalidConfig, c.Type)
	}
}
