package renderer

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CameraConfig contains all parameters needed to set up a camera
type CameraConfig struct {
	Location core.Vec3 // Eye position
	LookAt   core.Vec3 // Point the camera looks at
	Up       core.Vec3 // Approximate up direction
	ProjDist float64   // Distance from the eye to the projection plane
	Size     float64   // Projection plane extent along the shorter frame side
	Width    int       // Frame width in pixels
	Height   int       // Frame height in pixels
}

// DefaultCameraConfig returns a camera on +Z looking at the origin
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Location: core.NewVec3(0, 0, 5),
		LookAt:   core.NewVec3(0, 0, 0),
		Up:       core.NewVec3(0, 1, 0),
		ProjDist: 0.1,
		Size:     0.1,
		Width:    400,
		Height:   300,
	}
}

// MergeCameraConfig overlays the non-zero fields of override onto base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Location != (core.Vec3{}) {
		result.Location = override.Location
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.ProjDist != 0 {
		result.ProjDist = override.ProjDist
	}
	if override.Size != 0 {
		result.Size = override.Size
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	return result
}

// Camera generates primary rays through a frame of pixels
type Camera struct {
	config CameraConfig
	dir    core.Vec3 // Unit view direction
	right  core.Vec3 // Unit right vector
	up     core.Vec3 // Unit up vector, orthogonal to dir
	wp, hp float64   // Projection plane extents
}

// NewCamera creates a camera from a config
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", config.Width, config.Height)
	}
	if config.ProjDist <= 0 || config.Size <= 0 {
		return nil, fmt.Errorf("projection distance and size must be positive, got %v and %v", config.ProjDist, config.Size)
	}

	dir := config.LookAt.Subtract(config.Location).Normalize()
	right := dir.Cross(config.Up).Normalize()
	if dir.LengthSquared() == 0 || right.LengthSquared() == 0 {
		return nil, fmt.Errorf("camera at %v looking at %v with up %v has no valid basis",
			config.Location, config.LookAt, config.Up)
	}
	up := right.Cross(dir)

	wp, hp := config.Size, config.Size
	if config.Width > config.Height {
		wp *= float64(config.Width) / float64(config.Height)
	} else {
		hp *= float64(config.Height) / float64(config.Width)
	}

	return &Camera{
		config: config,
		dir:    dir,
		right:  right,
		up:     up,
		wp:     wp,
		hp:     hp,
	}, nil
}

// GenerateRay returns the ray through frame coordinates (x, y), with y
// growing downward. Pixel centers are at half-integer coordinates.
func (c *Camera) GenerateRay(x, y float64) core.Ray {
	w := float64(c.config.Width)
	h := float64(c.config.Height)

	a := c.dir.Multiply(c.config.ProjDist)
	b := c.right.Multiply((x - w/2) * c.wp / w)
	cc := c.up.Multiply((h/2 - y) * c.hp / h)
	x3 := a.Add(b).Add(cc)

	return core.NewRay(c.config.Location.Add(x3), x3)
}

// PixelRay returns the ray through the center of pixel (px, py)
func (c *Camera) PixelRay(px, py int) core.Ray {
	return c.GenerateRay(float64(px)+0.5, float64(py)+0.5)
}

// Width returns the frame width in pixels
func (c *Camera) Width() int {
	return c.config.Width
}

// Height returns the frame height in pixels
func (c *Camera) Height() int {
	return c.config.Height
}

// GetCameraForward returns the unit view direction
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.dir
}
