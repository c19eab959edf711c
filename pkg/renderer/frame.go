package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// FrameSink receives traced colors. Colors are linear, roughly in [0, 1];
// the sink is responsible for tone mapping.
type FrameSink interface {
	PutPixel(x, y int, color core.Vec3)
}

// Frame is a FrameSink backed by an RGBA image.
// Concurrent PutPixel calls are safe as long as they target distinct pixels.
type Frame struct {
	img *image.RGBA
}

// NewFrame allocates a width x height frame
func NewFrame(width, height int) *Frame {
	return &Frame{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// PutPixel stores the tone mapped color, ignoring pixels outside the frame
func (f *Frame) PutPixel(x, y int, c core.Vec3) {
	if !(image.Point{X: x, Y: y}).In(f.img.Rect) {
		return
	}
	f.img.SetRGBA(x, y, ToRGBA(c))
}

// Image returns the underlying image
func (f *Frame) Image() *image.RGBA {
	return f.img
}

// Width returns the frame width
func (f *Frame) Width() int {
	return f.img.Rect.Dx()
}

// Height returns the frame height
func (f *Frame) Height() int {
	return f.img.Rect.Dy()
}

// ToRGBA converts a color to 8-bit channels with clamp(c*255, 0, 255)
func ToRGBA(c core.Vec3) color.RGBA {
	scaled := c.Multiply(255).Clamp(0, 255)
	return color.RGBA{
		R: channel(scaled.X),
		G: channel(scaled.Y),
		B: channel(scaled.Z),
		A: 255,
	}
}

// ToRGB packs a color as 0x00BBGGRR
func ToRGB(c core.Vec3) uint32 {
	rgba := ToRGBA(c)
	return uint32(rgba.R) | uint32(rgba.G)<<8 | uint32(rgba.B)<<16
}

func channel(v float64) uint8 {
	// NaN fails every comparison in Clamp and would otherwise convert
	// to an undefined value
	if v != v {
		return 0
	}
	return uint8(v)
}
