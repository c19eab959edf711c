package renderer

import (
	"testing"
	"time"
)

func TestRenderStats_PixelsPerSecond(t *testing.T) {
	stats := RenderStats{TotalPixels: 1000, Duration: 2 * time.Second}
	if got := stats.PixelsPerSecond(); got != 500 {
		t.Errorf("Expected 500 pixels/s, got %f", got)
	}

	empty := RenderStats{TotalPixels: 1000}
	if got := empty.PixelsPerSecond(); got != 0 {
		t.Errorf("Expected 0 pixels/s for zero duration, got %f", got)
	}
}
