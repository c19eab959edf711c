package renderer

import (
	"image/color"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestToRGBA(t *testing.T) {
	tests := []struct {
		name     string
		input    core.Vec3
		expected color.RGBA
	}{
		{"black", core.NewVec3(0, 0, 0), color.RGBA{0, 0, 0, 255}},
		{"white", core.NewVec3(1, 1, 1), color.RGBA{255, 255, 255, 255}},
		{"half", core.NewVec3(0.5, 0.5, 0.5), color.RGBA{127, 127, 127, 255}},
		{"overexposed", core.NewVec3(3, 1.5, 0.2), color.RGBA{255, 255, 51, 255}},
		{"negative", core.NewVec3(-1, 0, 0), color.RGBA{0, 0, 0, 255}},
		{"NaN", core.NewVec3(math.NaN(), 1, 0), color.RGBA{0, 255, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToRGBA(tt.input)
			if result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestToRGB_PacksBGR(t *testing.T) {
	packed := ToRGB(core.NewVec3(1, 0, 0))
	if packed != 0x000000FF {
		t.Errorf("Expected red in the low byte, got %#08x", packed)
	}

	packed = ToRGB(core.NewVec3(0, 0, 1))
	if packed != 0x00FF0000 {
		t.Errorf("Expected blue in the third byte, got %#08x", packed)
	}
}

func TestFramePutPixel(t *testing.T) {
	frame := NewFrame(4, 3)
	if frame.Width() != 4 || frame.Height() != 3 {
		t.Fatalf("Expected 4x3 frame, got %dx%d", frame.Width(), frame.Height())
	}

	frame.PutPixel(1, 2, core.NewVec3(1, 0, 0))
	if got := frame.Image().RGBAAt(1, 2); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("Expected red pixel, got %v", got)
	}

	// Out of range writes are ignored
	frame.PutPixel(-1, 0, core.NewVec3(1, 1, 1))
	frame.PutPixel(4, 0, core.NewVec3(1, 1, 1))
	frame.PutPixel(0, 3, core.NewVec3(1, 1, 1))
}
